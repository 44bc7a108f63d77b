package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/kanakjewels/kanak-shop/app/models"
	"github.com/kanakjewels/kanak-shop/app/repositories"
	"gorm.io/gorm"
)

// CustomerInfo is the checkout form payload, snapshotted verbatim onto the
// order.
type CustomerInfo struct {
	FirstName  string `json:"first_name" validate:"required,max=100"`
	LastName   string `json:"last_name" validate:"required,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Address    string `json:"address" validate:"required,max=255"`
	City       string `json:"city" validate:"required,max=100"`
	PostalCode string `json:"postal_code" validate:"required,max=20"`
}

type CheckoutService struct {
	db            *gorm.DB
	cartRepo      repositories.CartRepositoryImpl
	cartItemRepo  repositories.CartItemRepositoryImpl
	orderRepo     repositories.OrderRepository
	orderItemRepo repositories.OrderItemRepository
	locks         *CartLocks
	validate      *validator.Validate
}

func NewCheckoutService(
	db *gorm.DB,
	cartRepo repositories.CartRepositoryImpl,
	cartItemRepo repositories.CartItemRepositoryImpl,
	orderRepo repositories.OrderRepository,
	orderItemRepo repositories.OrderItemRepository,
	locks *CartLocks,
) *CheckoutService {
	return &CheckoutService{
		db:            db,
		cartRepo:      cartRepo,
		cartItemRepo:  cartItemRepo,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		locks:         locks,
		validate:      validator.New(),
	}
}

// Checkout converts the cart's current items into an order plus line items
// with the product price snapshotted at this moment, then drains the cart.
// Runs entirely inside one transaction: any failure rolls everything back
// and the cart is untouched for a retry. An empty cart still yields an
// order with zero items, matching the storefront's inquiry-first flow.
func (s *CheckoutService) Checkout(ctx context.Context, cartID string, customer CustomerInfo) (*models.Order, error) {
	if err := s.validate.Struct(customer); err != nil {
		return nil, fmt.Errorf("invalid customer details: %w", err)
	}

	s.locks.Lock(cartID)
	defer s.locks.Unlock(cartID)

	if _, err := s.cartRepo.GetByID(ctx, cartID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up cart: %w", err)
	}

	cartItems, err := s.cartItemRepo.GetByCartID(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart items: %w", err)
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("%w: failed to begin transaction: %v", ErrCheckoutFailed, tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("Checkout: rolling back transaction after panic: %v", r)
			tx.Rollback()
			panic(r)
		}
	}()

	// Paid is a stub: no gateway is wired, so every order is marked paid at
	// creation. A future payment integration replaces exactly this line.
	order := &models.Order{
		FirstName:  customer.FirstName,
		LastName:   customer.LastName,
		Email:      customer.Email,
		Address:    customer.Address,
		City:       customer.City,
		PostalCode: customer.PostalCode,
		Paid:       true,
	}

	if err := s.orderRepo.Create(ctx, tx, order); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("%w: failed to create order: %v", ErrCheckoutFailed, err)
	}

	orderItems := make([]models.OrderItem, 0, len(cartItems))
	for _, cartItem := range cartItems {
		if cartItem.Product == nil {
			tx.Rollback()
			return nil, fmt.Errorf("%w: product %s vanished before conversion", ErrCheckoutFailed, cartItem.ProductID)
		}
		orderItems = append(orderItems, models.OrderItem{
			OrderID:   order.ID,
			ProductID: cartItem.ProductID,
			Price:     cartItem.Product.Price,
			Quantity:  cartItem.Quantity,
		})
	}

	if err := s.orderItemRepo.BulkCreate(ctx, tx, orderItems); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("%w: failed to create order items: %v", ErrCheckoutFailed, err)
	}

	if err := s.cartItemRepo.ClearCartItems(ctx, tx, cartID); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("%w: failed to clear cart: %v", ErrCheckoutFailed, err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("%w: failed to commit: %v", ErrCheckoutFailed, err)
	}

	order.OrderItems = orderItems
	return order, nil
}
