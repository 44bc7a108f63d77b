package repositories

import (
	"context"
	"strings"

	"github.com/kanakjewels/kanak-shop/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductFilters is a conjunctive filter over catalog fields; zero values
// mean "no constraint".
type ProductFilters struct {
	Query        string
	CategorySlug string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	MetalType    string
	GemstoneType string
	Sort         string // price_asc | price_desc | new
}

type ProductRepositoryImpl interface {
	GetProducts(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetByCategorySlug(ctx context.Context, slug string) ([]models.Product, error)
	GetNewArrivals(ctx context.Context, limit int) ([]models.Product, error)
	GetBestSellers(ctx context.Context, limit int) ([]models.Product, error)
	Search(ctx context.Context, filters ProductFilters) ([]models.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (p *productRepository) GetProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Preload("SubCategory.Category").
		Preload("SubCategory").
		Order("name ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (p *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := p.db.WithContext(ctx).
		Preload("SubCategory.Category").
		Preload("SubCategory").
		Where("id = ?", id).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	if err := p.db.WithContext(ctx).
		Preload("SubCategory.Category").
		Preload("SubCategory").
		Where("slug = ?", slug).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetByCategorySlug(ctx context.Context, slug string) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Joins("JOIN sub_categories sc ON sc.id = products.sub_category_id").
		Joins("JOIN categories c ON c.id = sc.category_id").
		Where("c.slug = ?", slug).
		Preload("SubCategory.Category").
		Preload("SubCategory").
		Order("products.name ASC").
		Find(&products).Error
	return products, err
}

func (p *productRepository) GetNewArrivals(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Preload("SubCategory.Category").
		Preload("SubCategory").
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (p *productRepository) GetBestSellers(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Preload("SubCategory.Category").
		Preload("SubCategory").
		Order("stock DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (p *productRepository) Search(ctx context.Context, filters ProductFilters) ([]models.Product, error) {
	var products []models.Product

	query := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Joins("LEFT JOIN sub_categories sc ON sc.id = products.sub_category_id").
		Joins("LEFT JOIN categories c ON c.id = sc.category_id").
		Preload("SubCategory.Category").
		Preload("SubCategory")

	if filters.Query != "" {
		keyword := "%" + strings.ToLower(filters.Query) + "%"
		query = query.Where(
			"LOWER(products.name) LIKE ? OR LOWER(products.description) LIKE ? OR LOWER(c.name) LIKE ? OR LOWER(products.gemstone_type) LIKE ? OR LOWER(products.metal_type) LIKE ?",
			keyword, keyword, keyword, keyword, keyword,
		)
	}
	if filters.CategorySlug != "" {
		query = query.Where("c.slug = ?", filters.CategorySlug)
	}
	if filters.MinPrice != nil {
		query = query.Where("products.price >= ?", filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		query = query.Where("products.price <= ?", filters.MaxPrice)
	}
	if filters.MetalType != "" {
		query = query.Where("LOWER(products.metal_type) LIKE ?", "%"+strings.ToLower(filters.MetalType)+"%")
	}
	if filters.GemstoneType != "" {
		query = query.Where("LOWER(products.gemstone_type) LIKE ?", "%"+strings.ToLower(filters.GemstoneType)+"%")
	}

	switch filters.Sort {
	case "price_asc":
		query = query.Order("products.price ASC")
	case "price_desc":
		query = query.Order("products.price DESC")
	case "new":
		query = query.Order("products.created_at DESC")
	default:
		query = query.Order("products.name ASC")
	}

	err := query.Find(&products).Error
	return products, err
}
