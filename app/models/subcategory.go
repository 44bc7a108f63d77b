package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// SubCategory names are unique within their category, not globally, so the
// slug carries no unique index of its own.
type SubCategory struct {
	ID         string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	CategoryID string    `gorm:"size:36;not null;index:idx_subcategory_category_name,unique" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Name       string    `gorm:"size:120;not null;index:idx_subcategory_category_name,unique" json:"name"`
	Slug       string    `gorm:"size:140;not null;index" json:"slug"`
	Products   []Product `gorm:"constraint:OnDelete:CASCADE" json:"products,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (sc *SubCategory) BeforeCreate(tx *gorm.DB) (err error) {
	if sc.ID == "" {
		sc.ID = uuid.New().String()
	}
	if sc.Slug == "" {
		sc.Slug = slug.Make(sc.Name)
	}
	return
}
