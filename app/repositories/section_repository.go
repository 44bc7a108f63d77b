package repositories

import (
	"context"

	"github.com/kanakjewels/kanak-shop/app/models"
	"gorm.io/gorm"
)

type SectionRepositoryImpl interface {
	GetActiveSections(ctx context.Context) ([]models.HomepageSection, error)
	GetBySlug(ctx context.Context, slug string) (*models.HomepageSection, error)
	GetAll(ctx context.Context) ([]models.HomepageSection, error)
}

type sectionRepository struct {
	db *gorm.DB
}

func NewSectionRepository(db *gorm.DB) SectionRepositoryImpl {
	return &sectionRepository{db}
}

func (r *sectionRepository) GetActiveSections(ctx context.Context) ([]models.HomepageSection, error) {
	var sections []models.HomepageSection
	err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("SubCategories.Category").
		Where("is_active = ?", true).
		Order("display_order ASC, title ASC").
		Find(&sections).Error
	if err != nil {
		return nil, err
	}
	return sections, nil
}

func (r *sectionRepository) GetBySlug(ctx context.Context, slug string) (*models.HomepageSection, error) {
	var section models.HomepageSection
	err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("SubCategories").
		First(&section, "slug = ?", slug).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &section, nil
}

func (r *sectionRepository) GetAll(ctx context.Context) ([]models.HomepageSection, error) {
	var sections []models.HomepageSection
	err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("SubCategories").
		Order("display_order ASC, title ASC").
		Find(&sections).Error
	if err != nil {
		return nil, err
	}
	return sections, nil
}
