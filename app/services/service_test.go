package services

import (
	"testing"

	"github.com/kanakjewels/kanak-shop/app/models"
	"github.com/kanakjewels/kanak-shop/app/models/migrations"
	"github.com/kanakjewels/kanak-shop/app/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// sqlite :memory: keeps one database per connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

func newCartService(db *gorm.DB, locks *CartLocks) *CartService {
	return NewCartService(
		repositories.NewCartRepository(db),
		repositories.NewCartItemRepository(db),
		repositories.NewProductRepository(db),
		locks,
	)
}

func newCheckoutService(db *gorm.DB, locks *CartLocks) *CheckoutService {
	return NewCheckoutService(
		db,
		repositories.NewCartRepository(db),
		repositories.NewCartItemRepository(db),
		repositories.NewOrderRepository(db),
		repositories.NewOrderItemRepository(db),
		locks,
	)
}

func createProduct(t *testing.T, db *gorm.DB, name string, price string) *models.Product {
	t.Helper()

	p, err := decimal.NewFromString(price)
	require.NoError(t, err)

	product := &models.Product{
		Name:  name,
		Price: p,
		Stock: 10,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func validCustomer() CustomerInfo {
	return CustomerInfo{
		FirstName:  "Asha",
		LastName:   "Varma",
		Email:      "asha@example.com",
		Address:    "14 MG Road",
		City:       "Jaipur",
		PostalCode: "302001",
	}
}
