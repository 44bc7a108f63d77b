package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/kanakjewels/kanak-shop/app/models"
	"github.com/kanakjewels/kanak-shop/app/repositories"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

type ProductHandler struct {
	productRepo     repositories.ProductRepositoryImpl
	categoryRepo    repositories.CategoryRepositoryImpl
	subCategoryRepo repositories.SubCategoryRepositoryImpl
	render          *render.Render
}

func NewProductHandler(
	productRepo repositories.ProductRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
	subCategoryRepo repositories.SubCategoryRepositoryImpl,
	rnd *render.Render,
) *ProductHandler {
	return &ProductHandler{
		productRepo:     productRepo,
		categoryRepo:    categoryRepo,
		subCategoryRepo: subCategoryRepo,
		render:          rnd,
	}
}

// Catalog lists the whole catalog, or one category's products when the
// route carries a category slug.
func (h *ProductHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	categorySlug := mux.Vars(r)["slug"]

	var category *models.Category
	var subCategories []models.SubCategory
	var products []models.Product
	var err error

	if categorySlug != "" {
		category, err = h.categoryRepo.GetBySlug(ctx, categorySlug)
		if err != nil {
			log.Printf("ProductHandler.Catalog: category lookup: %v", err)
			_ = h.render.JSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}
		if category == nil {
			_ = h.render.JSON(w, http.StatusNotFound, errorResponse{Error: "category not found"})
			return
		}
		subCategories, err = h.subCategoryRepo.GetByCategoryID(ctx, category.ID)
		if err != nil {
			log.Printf("ProductHandler.Catalog: subcategories: %v", err)
			_ = h.render.JSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}
		products, err = h.productRepo.GetByCategorySlug(ctx, categorySlug)
	} else {
		products, err = h.productRepo.GetProducts(ctx)
	}
	if err != nil {
		log.Printf("ProductHandler.Catalog: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	categories, err := h.categoryRepo.GetAll(ctx)
	if err != nil {
		log.Printf("ProductHandler.Catalog: categories: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"category":       category,
		"sub_categories": subCategories,
		"categories":     categories,
		"products":       products,
	})
}

func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	product, err := h.productRepo.GetBySlug(r.Context(), slug)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			_ = h.render.JSON(w, http.StatusNotFound, errorResponse{Error: "product not found"})
			return
		}
		log.Printf("ProductHandler.Detail: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"product":  product,
		"category": product.Category(),
	})
}

// Search applies the conjunctive catalog filter from query parameters.
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filters := repositories.ProductFilters{
		Query:        query.Get("q"),
		CategorySlug: query.Get("category"),
		MetalType:    query.Get("metal"),
		GemstoneType: query.Get("gemstone"),
		Sort:         query.Get("sort"),
	}
	if min := query.Get("min_price"); min != "" {
		if d, err := decimal.NewFromString(min); err == nil {
			filters.MinPrice = &d
		}
	}
	if max := query.Get("max_price"); max != "" {
		if d, err := decimal.NewFromString(max); err == nil {
			filters.MaxPrice = &d
		}
	}

	products, err := h.productRepo.Search(r.Context(), filters)
	if err != nil {
		log.Printf("ProductHandler.Search: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"query":    filters.Query,
		"products": products,
	})
}
