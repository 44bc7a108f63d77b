package seeders

import (
	"log"

	"github.com/kanakjewels/kanak-shop/app/db/fakers"
	"github.com/kanakjewels/kanak-shop/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const fakeProductsPerSubCategory = 3

type seedProduct struct {
	name        string
	category    string
	subCategory string
	price       int64
	stock       int
	gemstone    string
	metal       string
}

var seedSubCategories = map[string][]string{
	"Gold":     {"Rings", "Necklaces", "Chains"},
	"Diamond":  {"Earrings", "Rings"},
	"Gemstone": {"Pendants", "Bracelets", "Necklaces"},
}

var seedProducts = []seedProduct{
	{"Classic Gold Ring", "Gold", "Rings", 24999, 25, "", "Gold"},
	{"Elegant Gold Necklace", "Gold", "Necklaces", 79999, 10, "", "Gold"},
	{"Diamond Stud Earrings", "Diamond", "Earrings", 55999, 15, "Diamond", ""},
	{"Solitaire Diamond Ring", "Diamond", "Rings", 129999, 8, "Diamond", ""},
	{"Emerald Pendant", "Gemstone", "Pendants", 45999, 12, "Emerald", "Gold"},
	{"Ruby Bracelet", "Gemstone", "Bracelets", 38999, 20, "Ruby", "Gold"},
	{"Sapphire Necklace", "Gemstone", "Necklaces", 99999, 6, "Sapphire", "Gold"},
	{"Minimal Gold Chain", "Gold", "Chains", 21999, 30, "", "Gold"},
}

// DBSeed loads the canonical jewellery catalog plus a handful of faker
// products per subcategory, and one active homepage section. Idempotent:
// existing rows are found, not duplicated.
func DBSeed(db *gorm.DB) error {
	categories := make(map[string]*models.Category)
	subCategories := make(map[string]*models.SubCategory)

	for catName, subNames := range seedSubCategories {
		category := &models.Category{Name: catName}
		if err := db.FirstOrCreate(category, models.Category{Name: catName}).Error; err != nil {
			return err
		}
		categories[catName] = category

		for _, subName := range subNames {
			subCategory := &models.SubCategory{CategoryID: category.ID, Name: subName}
			if err := db.FirstOrCreate(subCategory, models.SubCategory{CategoryID: category.ID, Name: subName}).Error; err != nil {
				return err
			}
			subCategories[catName+"/"+subName] = subCategory
		}
	}

	created := 0
	for _, sp := range seedProducts {
		subCategory := subCategories[sp.category+"/"+sp.subCategory]
		product := models.Product{
			SubCategoryID: &subCategory.ID,
			Name:          sp.name,
			Description:   "Beautifully crafted jewellery from Kanak.",
			Price:         decimal.NewFromInt(sp.price),
			Stock:         sp.stock,
			GemstoneType:  sp.gemstone,
			MetalType:     sp.metal,
		}
		result := db.Where(models.Product{Name: sp.name}).FirstOrCreate(&product)
		if result.Error != nil {
			return result.Error
		}
		created += int(result.RowsAffected)
	}

	for _, subCategory := range subCategories {
		for i := 0; i < fakeProductsPerSubCategory; i++ {
			if err := db.Create(fakers.ProductFaker(subCategory)).Error; err != nil {
				return err
			}
			created++
		}
	}

	section := &models.HomepageSection{
		Title:        "Shop by Category",
		IsActive:     true,
		DisplayOrder: 0,
	}
	if err := db.FirstOrCreate(section, models.HomepageSection{Title: "Shop by Category"}).Error; err != nil {
		return err
	}
	for _, category := range categories {
		if err := db.Model(section).Association("Categories").Append(category); err != nil {
			return err
		}
	}

	log.Printf("Seed completed. Categories: %d; products created: %d", len(categories), created)
	return nil
}
