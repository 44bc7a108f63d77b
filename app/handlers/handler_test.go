package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/kanakjewels/kanak-shop/app/helpers"
	"github.com/kanakjewels/kanak-shop/app/models"
	"github.com/kanakjewels/kanak-shop/app/models/migrations"
	"github.com/kanakjewels/kanak-shop/app/repositories"
	"github.com/kanakjewels/kanak-shop/app/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db          *gorm.DB
	cartSvc     *services.CartService
	checkoutSvc *services.CheckoutService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migrations.AutoMigrate(db))

	cartRepo := repositories.NewCartRepository(db)
	cartItemRepo := repositories.NewCartItemRepository(db)
	productRepo := repositories.NewProductRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	orderItemRepo := repositories.NewOrderItemRepository(db)

	locks := services.NewCartLocks()
	return &testEnv{
		db:      db,
		cartSvc: services.NewCartService(cartRepo, cartItemRepo, productRepo, locks),
		checkoutSvc: services.NewCheckoutService(
			db, cartRepo, cartItemRepo, orderRepo, orderItemRepo, locks,
		),
	}
}

func (e *testEnv) createProduct(t *testing.T, name, price string) *models.Product {
	t.Helper()

	p, err := decimal.NewFromString(price)
	require.NoError(t, err)

	product := &models.Product{Name: name, Price: p, Stock: 5}
	require.NoError(t, e.db.Create(product).Error)
	return product
}

func (e *testEnv) createCart(t *testing.T, sessionKey string) *models.Cart {
	t.Helper()

	cart, err := e.cartSvc.ResolveCart(context.Background(), sessionKey)
	require.NoError(t, err)
	return cart
}

// withCartID mimics what CartSessionMiddleware provides in production.
func withCartID(r *http.Request, cartID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), helpers.ContextKeyCartID, cartID))
}
