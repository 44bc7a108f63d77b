package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cart is keyed 1:1 by the visitor's opaque session key. It is created
// lazily on first cart-touching request and never deleted; checkout only
// drains its items.
type Cart struct {
	ID         string     `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	SessionKey string     `gorm:"size:100;not null;uniqueIndex" json:"session_key"`
	CartItems  []CartItem `gorm:"constraint:OnDelete:CASCADE" json:"cart_items,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (c *Cart) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

// TotalItems sums quantities over the loaded items.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.CartItems {
		total += item.Quantity
	}
	return total
}

// Subtotal sums price x quantity over the loaded items. Requires each
// item's Product to be preloaded.
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range c.CartItems {
		subtotal = subtotal.Add(item.Subtotal())
	}
	return subtotal
}
