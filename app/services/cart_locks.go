package services

import (
	"hash/fnv"
	"sync"
)

const cartLockStripes = 64

// CartLocks serializes mutations per cart so two concurrent increments on
// the same line cannot both read quantity=1 and write 2. Striped by cart ID
// hash; unrelated carts rarely share a stripe and catalog reads never take
// a lock. One instance is shared between the cart and checkout services so
// a conversion cannot interleave with an item mutation on the same cart.
type CartLocks struct {
	stripes [cartLockStripes]sync.Mutex
}

func NewCartLocks() *CartLocks {
	return &CartLocks{}
}

func (l *CartLocks) Lock(cartID string) {
	l.stripes[stripeFor(cartID)].Lock()
}

func (l *CartLocks) Unlock(cartID string) {
	l.stripes[stripeFor(cartID)].Unlock()
}

func stripeFor(cartID string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(cartID))
	return h.Sum32() % cartLockStripes
}
