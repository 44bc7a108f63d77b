package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID            string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	SubCategoryID *string         `gorm:"size:36;index" json:"sub_category_id,omitempty"`
	SubCategory   *SubCategory    `gorm:"foreignKey:SubCategoryID" json:"sub_category,omitempty"`
	Name          string          `gorm:"size:200;not null" json:"name"`
	Slug          string          `gorm:"size:220;not null;uniqueIndex" json:"slug"`
	Description   string          `gorm:"type:text" json:"description"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock         int             `gorm:"not null;default:0" json:"stock"`
	GemstoneType  string          `gorm:"size:120" json:"gemstone_type"`
	MetalType     string          `gorm:"size:120" json:"metal_type"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Slug == "" {
		p.Slug = slug.Make(p.Name)
	}
	return
}

// Category walks SubCategory to its parent. Never persisted: re-parenting a
// subcategory must be visible immediately. Requires SubCategory.Category to
// be preloaded; returns nil for unparented products.
func (p *Product) Category() *Category {
	if p.SubCategory == nil {
		return nil
	}
	return p.SubCategory.Category
}
