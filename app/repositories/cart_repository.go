package repositories

import (
	"context"

	"github.com/kanakjewels/kanak-shop/app/models"
	"gorm.io/gorm"
)

type CartRepositoryImpl interface {
	GetOrCreateBySessionKey(ctx context.Context, sessionKey string) (*models.Cart, error)
	GetByID(ctx context.Context, id string) (*models.Cart, error)
	GetCartWithItems(ctx context.Context, cartID string) (*models.Cart, error)
	GetCartItemCount(ctx context.Context, cartID string) (int, error)
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepositoryImpl {
	return &cartRepository{db}
}

// GetOrCreateBySessionKey resolves the one cart for a session, creating it
// on first access. The unique index on session_key collapses a concurrent
// first-touch race into a single row; the loser retries as a plain read.
func (r *cartRepository) GetOrCreateBySessionKey(ctx context.Context, sessionKey string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).
		Where(models.Cart{SessionKey: sessionKey}).
		FirstOrCreate(&cart).Error
	if err == gorm.ErrDuplicatedKey {
		err = r.db.WithContext(ctx).
			Where("session_key = ?", sessionKey).
			First(&cart).Error
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) GetByID(ctx context.Context, id string) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) GetCartWithItems(ctx context.Context, cartID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).
		Preload("CartItems.Product.SubCategory.Category").
		Preload("CartItems.Product").
		Preload("CartItems").
		Where("id = ?", cartID).
		First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) GetCartItemCount(ctx context.Context, cartID string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("cart_items").
		Where("cart_id = ?", cartID).
		Count(&count).Error
	return int(count), err
}
