package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kanakjewels/kanak-shop/app/models"
	"github.com/kanakjewels/kanak-shop/app/repositories"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	CartActionIncrement = "inc"
	CartActionDecrement = "dec"
	CartActionRemove    = "remove"
)

const addItemRetries = 2

// CartTotals is recomputed from current items on every call, never cached.
type CartTotals struct {
	TotalItems int             `json:"total_items"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

type CartService struct {
	cartRepo     repositories.CartRepositoryImpl
	cartItemRepo repositories.CartItemRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
	locks        *CartLocks
}

func NewCartService(
	cartRepo repositories.CartRepositoryImpl,
	cartItemRepo repositories.CartItemRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	locks *CartLocks,
) *CartService {
	return &CartService{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
		locks:        locks,
	}
}

// ResolveCart maps a session key to its one cart, creating it on first
// access. Idempotent: the same session always resolves to the same cart.
func (s *CartService) ResolveCart(ctx context.Context, sessionKey string) (*models.Cart, error) {
	cart, err := s.cartRepo.GetOrCreateBySessionKey(ctx, sessionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve cart for session: %w", err)
	}
	return cart, nil
}

func (s *CartService) GetCart(ctx context.Context, cartID string) (*models.Cart, error) {
	cart, err := s.cartRepo.GetCartWithItems(ctx, cartID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	return cart, nil
}

// AddItem puts one unit of the product into the cart: an existing
// (cart, product) line is incremented, otherwise a new line starts at
// quantity 1. Stock is informational only and not checked here.
func (s *CartService) AddItem(ctx context.Context, cartID, productID string) (*models.CartItem, error) {
	s.locks.Lock(cartID)
	defer s.locks.Unlock(cartID)

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up product: %w", err)
	}

	if _, err := s.cartRepo.GetByID(ctx, cartID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up cart: %w", err)
	}

	for attempt := 0; attempt <= addItemRetries; attempt++ {
		existing, err := s.cartItemRepo.GetByCartAndProduct(ctx, cartID, productID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing cart item: %w", err)
		}

		if existing != nil {
			existing.Quantity += 1
			if err := s.cartItemRepo.Update(ctx, existing); err != nil {
				return nil, fmt.Errorf("failed to update cart item: %w", err)
			}
			existing.Product = product
			return existing, nil
		}

		item := &models.CartItem{
			CartID:    cartID,
			ProductID: productID,
			Quantity:  1,
		}
		err = s.cartItemRepo.Add(ctx, item)
		if err == nil {
			item.Product = product
			return item, nil
		}
		// A concurrent add for the same product won the unique-index race;
		// retry, which now lands on the increment path.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			continue
		}
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}

	return nil, ErrConflict
}

// UpdateItem applies inc/dec/remove to an item that must belong to the
// given cart. Decrement at quantity 1 deletes the line; stored quantity
// never reaches zero.
func (s *CartService) UpdateItem(ctx context.Context, cartID, itemID, action string) error {
	s.locks.Lock(cartID)
	defer s.locks.Unlock(cartID)

	item, err := s.cartItemRepo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get cart item: %w", err)
	}
	if item.CartID != cartID {
		return ErrNotFound
	}

	switch action {
	case CartActionIncrement:
		item.Quantity += 1
		if err := s.cartItemRepo.Update(ctx, item); err != nil {
			return fmt.Errorf("failed to increment cart item: %w", err)
		}
	case CartActionDecrement:
		if item.Quantity > 1 {
			item.Quantity -= 1
			if err := s.cartItemRepo.Update(ctx, item); err != nil {
				return fmt.Errorf("failed to decrement cart item: %w", err)
			}
		} else {
			if err := s.cartItemRepo.Delete(ctx, item.ID); err != nil {
				return fmt.Errorf("failed to delete cart item: %w", err)
			}
		}
	case CartActionRemove:
		if err := s.cartItemRepo.Delete(ctx, item.ID); err != nil {
			return fmt.Errorf("failed to remove cart item: %w", err)
		}
	default:
		return fmt.Errorf("unknown cart action %q", action)
	}

	return nil
}

// Totals scans current items and recomputes fresh every call, so the result
// is always consistent with item state at the cost of an O(items) read.
func (s *CartService) Totals(ctx context.Context, cartID string) (CartTotals, error) {
	items, err := s.cartItemRepo.GetByCartID(ctx, cartID)
	if err != nil {
		return CartTotals{}, fmt.Errorf("failed to load cart items: %w", err)
	}

	totals := CartTotals{Subtotal: decimal.Zero}
	for _, item := range items {
		totals.TotalItems += item.Quantity
		totals.Subtotal = totals.Subtotal.Add(item.Subtotal())
	}
	return totals, nil
}
