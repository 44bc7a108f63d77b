package repositories

import (
	"context"

	"github.com/kanakjewels/kanak-shop/app/models"
	"gorm.io/gorm"
)

type SubCategoryRepositoryImpl interface {
	Create(ctx context.Context, subCategory *models.SubCategory) error
	GetByID(ctx context.Context, id string) (*models.SubCategory, error)
	GetByCategoryID(ctx context.Context, categoryID string) ([]models.SubCategory, error)
	GetAll(ctx context.Context) ([]models.SubCategory, error)
}

type subCategoryRepository struct {
	db *gorm.DB
}

func NewSubCategoryRepository(db *gorm.DB) SubCategoryRepositoryImpl {
	return &subCategoryRepository{db: db}
}

func (r *subCategoryRepository) Create(ctx context.Context, subCategory *models.SubCategory) error {
	return r.db.WithContext(ctx).Create(subCategory).Error
}

func (r *subCategoryRepository) GetByID(ctx context.Context, id string) (*models.SubCategory, error) {
	var subCategory models.SubCategory
	err := r.db.WithContext(ctx).Preload("Category").First(&subCategory, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &subCategory, nil
}

func (r *subCategoryRepository) GetByCategoryID(ctx context.Context, categoryID string) ([]models.SubCategory, error) {
	var subCategories []models.SubCategory
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("name ASC").
		Find(&subCategories).Error
	if err != nil {
		return nil, err
	}
	return subCategories, nil
}

func (r *subCategoryRepository) GetAll(ctx context.Context) ([]models.SubCategory, error) {
	var subCategories []models.SubCategory
	err := r.db.WithContext(ctx).Preload("Category").Order("name ASC").Find(&subCategories).Error
	if err != nil {
		return nil, err
	}
	return subCategories, nil
}
