package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// HomepageSection is an admin-curated grouping of categories and
// subcategories for the storefront homepage. Read-side only.
type HomepageSection struct {
	ID            string        `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Title         string        `gorm:"size:120;not null" json:"title"`
	Slug          string        `gorm:"size:140;not null;uniqueIndex" json:"slug"`
	IsActive      bool          `gorm:"not null;default:true" json:"is_active"`
	DisplayOrder  int           `gorm:"not null;default:0" json:"display_order"`
	Categories    []Category    `gorm:"many2many:section_categories" json:"categories,omitempty"`
	SubCategories []SubCategory `gorm:"many2many:section_subcategories" json:"sub_categories,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (hs *HomepageSection) BeforeCreate(tx *gorm.DB) (err error) {
	if hs.ID == "" {
		hs.ID = uuid.New().String()
	}
	if hs.Slug == "" {
		hs.Slug = slug.Make(hs.Title)
	}
	return
}
