package handlers

import (
	"log"
	"net/http"

	"github.com/kanakjewels/kanak-shop/app/models"
	"github.com/kanakjewels/kanak-shop/app/repositories"
	"github.com/unrolled/render"
)

const homeProductsLimit = 8

type HomeHandler struct {
	sectionRepo  repositories.SectionRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
	render       *render.Render
}

func NewHomeHandler(
	sectionRepo repositories.SectionRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	rnd *render.Render,
) *HomeHandler {
	return &HomeHandler{
		sectionRepo:  sectionRepo,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		render:       rnd,
	}
}

type homeSection struct {
	Title      string            `json:"title"`
	Categories []models.Category `json:"categories"`
}

// Home aggregates the curated homepage sections, falling back to a plain
// category listing when none are active, plus new arrivals and best
// sellers.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	active, err := h.sectionRepo.GetActiveSections(ctx)
	if err != nil {
		log.Printf("HomeHandler.Home: sections: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	var sections []homeSection
	if len(active) > 0 {
		for _, sec := range active {
			sections = append(sections, homeSection{
				Title:      sec.Title,
				Categories: sectionCategories(sec),
			})
		}
	} else {
		categories, err := h.categoryRepo.GetAll(ctx)
		if err != nil {
			log.Printf("HomeHandler.Home: categories: %v", err)
			_ = h.render.JSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}
		sections = append(sections, homeSection{Title: "Shop by Category", Categories: categories})
	}

	newArrivals, err := h.productRepo.GetNewArrivals(ctx, homeProductsLimit)
	if err != nil {
		log.Printf("HomeHandler.Home: new arrivals: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	bestSellers, err := h.productRepo.GetBestSellers(ctx, homeProductsLimit)
	if err != nil {
		log.Printf("HomeHandler.Home: best sellers: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"sections":     sections,
		"new_arrivals": newArrivals,
		"best_sellers": bestSellers,
	})
}

// sectionCategories collects a section's own categories plus the parents of
// its featured subcategories, deduplicated.
func sectionCategories(sec models.HomepageSection) []models.Category {
	seen := make(map[string]bool, len(sec.Categories))
	categories := make([]models.Category, 0, len(sec.Categories))

	for _, cat := range sec.Categories {
		if !seen[cat.ID] {
			seen[cat.ID] = true
			categories = append(categories, cat)
		}
	}
	for _, sub := range sec.SubCategories {
		if sub.Category != nil && !seen[sub.Category.ID] {
			seen[sub.Category.ID] = true
			categories = append(categories, *sub.Category)
		}
	}
	return categories
}
