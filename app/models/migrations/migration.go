package migrations

import (
	"github.com/kanakjewels/kanak-shop/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Category{},
		&models.SubCategory{},
		&models.Product{},
		&models.HomepageSection{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
}
