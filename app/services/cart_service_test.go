package services

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/kanakjewels/kanak-shop/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCartIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db, NewCartLocks())
	ctx := context.Background()

	sessionKey := uuid.New().String()

	first, err := svc.ResolveCart(ctx, sessionKey)
	require.NoError(t, err)
	second, err := svc.ResolveCart(ctx, sessionKey)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.Cart{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestResolveCartDistinctSessions(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db, NewCartLocks())
	ctx := context.Background()

	first, err := svc.ResolveCart(ctx, uuid.New().String())
	require.NoError(t, err)
	second, err := svc.ResolveCart(ctx, uuid.New().String())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestAddItemAccumulatesQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db, NewCartLocks())
	ctx := context.Background()

	product := createProduct(t, db, "Classic Gold Ring", "24999.00")
	cart, err := svc.ResolveCart(ctx, uuid.New().String())
	require.NoError(t, err)

	first, err := svc.AddItem(ctx, cart.ID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Quantity)

	second, err := svc.AddItem(ctx, cart.ID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Quantity)
	assert.Equal(t, first.ID, second.ID)

	// Never two lines for the same (cart, product) pair.
	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).
		Where("cart_id = ? AND product_id = ?", cart.ID, product.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAddItemUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db, NewCartLocks())
	ctx := context.Background()

	cart, err := svc.ResolveCart(ctx, uuid.New().String())
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, cart.ID, uuid.New().String())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddItemUnknownCart(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db, NewCartLocks())
	ctx := context.Background()

	product := createProduct(t, db, "Ruby Bracelet", "38999.00")

	_, err := svc.AddItem(ctx, uuid.New().String(), product.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateItemActions(t *testing.T) {
	testCases := []struct {
		name     string
		startQty int
		action   string
		wantQty  int
		wantGone bool
	}{
		{name: "increment", startQty: 1, action: CartActionIncrement, wantQty: 2},
		{name: "decrement above floor", startQty: 3, action: CartActionDecrement, wantQty: 2},
		{name: "decrement at one deletes", startQty: 1, action: CartActionDecrement, wantGone: true},
		{name: "remove", startQty: 5, action: CartActionRemove, wantGone: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := newTestDB(t)
			svc := newCartService(db, NewCartLocks())
			ctx := context.Background()

			product := createProduct(t, db, "Emerald Pendant", "45999.00")
			cart, err := svc.ResolveCart(ctx, uuid.New().String())
			require.NoError(t, err)

			item := &models.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: tc.startQty}
			require.NoError(t, db.Create(item).Error)

			require.NoError(t, svc.UpdateItem(ctx, cart.ID, item.ID, tc.action))

			var got models.CartItem
			err = db.First(&got, "id = ?", item.ID).Error
			if tc.wantGone {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.wantQty, got.Quantity)
			}
		})
	}
}

func TestUpdateItemDecrementTwiceAtFloor(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db, NewCartLocks())
	ctx := context.Background()

	product := createProduct(t, db, "Sapphire Necklace", "99999.00")
	cart, err := svc.ResolveCart(ctx, uuid.New().String())
	require.NoError(t, err)

	item, err := svc.AddItem(ctx, cart.ID, product.ID)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateItem(ctx, cart.ID, item.ID, CartActionDecrement))

	// The item is gone; a second decrement on the same id is NotFound.
	err = svc.UpdateItem(ctx, cart.ID, item.ID, CartActionDecrement)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateItemForeignCart(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db, NewCartLocks())
	ctx := context.Background()

	product := createProduct(t, db, "Minimal Gold Chain", "21999.00")
	owner, err := svc.ResolveCart(ctx, uuid.New().String())
	require.NoError(t, err)
	intruder, err := svc.ResolveCart(ctx, uuid.New().String())
	require.NoError(t, err)

	item, err := svc.AddItem(ctx, owner.ID, product.ID)
	require.NoError(t, err)

	err = svc.UpdateItem(ctx, intruder.ID, item.ID, CartActionRemove)
	assert.ErrorIs(t, err, ErrNotFound)

	// The owner's line is untouched.
	var got models.CartItem
	require.NoError(t, db.First(&got, "id = ?", item.ID).Error)
	assert.Equal(t, 1, got.Quantity)
}

func TestTotalsRecomputedAfterEveryMutation(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db, NewCartLocks())
	ctx := context.Background()

	productA := createProduct(t, db, "Product A", "100.00")
	productB := createProduct(t, db, "Product B", "50.00")
	cart, err := svc.ResolveCart(ctx, uuid.New().String())
	require.NoError(t, err)

	totals, err := svc.Totals(ctx, cart.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, totals.TotalItems)
	assert.True(t, totals.Subtotal.IsZero())

	_, err = svc.AddItem(ctx, cart.ID, productA.ID)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, cart.ID, productA.ID)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, cart.ID, productB.ID)
	require.NoError(t, err)

	totals, err = svc.Totals(ctx, cart.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, totals.TotalItems)
	assert.Equal(t, "250.00", totals.Subtotal.StringFixed(2))
}

func TestAddItemConcurrentSameCart(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db, NewCartLocks())
	ctx := context.Background()

	product := createProduct(t, db, "Diamond Stud Earrings", "55999.00")
	cart, err := svc.ResolveCart(ctx, uuid.New().String())
	require.NoError(t, err)

	const adds = 8
	var wg sync.WaitGroup
	for i := 0; i < adds; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.AddItem(ctx, cart.ID, product.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	totals, err := svc.Totals(ctx, cart.ID)
	require.NoError(t, err)
	assert.Equal(t, adds, totals.TotalItems)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
