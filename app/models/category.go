package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type Category struct {
	ID            string        `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name          string        `gorm:"size:120;not null;uniqueIndex" json:"name"`
	Slug          string        `gorm:"size:140;not null;uniqueIndex" json:"slug"`
	SubCategories []SubCategory `gorm:"constraint:OnDelete:CASCADE" json:"sub_categories,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Slug == "" {
		c.Slug = slug.Make(c.Name)
	}
	return
}
