package fakers

import (
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/kanakjewels/kanak-shop/app/models"
	"github.com/shopspring/decimal"
)

var (
	metals    = []string{"Gold", "Rose Gold", "White Gold", "Silver", "Platinum"}
	gemstones = []string{"Diamond", "Emerald", "Ruby", "Sapphire", "Pearl", ""}
	kinds     = []string{"Ring", "Necklace", "Bracelet", "Pendant", "Earrings", "Chain", "Bangle"}
)

// ProductFaker builds a random jewellery product under the given
// subcategory. The slug gets a uuid suffix so generated names can repeat
// without tripping the global slug constraint.
func ProductFaker(subCategory *models.SubCategory) *models.Product {
	metal := metals[rand.Intn(len(metals))]
	gemstone := gemstones[rand.Intn(len(gemstones))]
	kind := kinds[rand.Intn(len(kinds))]

	name := metal + " " + kind
	if gemstone != "" {
		name = gemstone + " " + name
	}

	return &models.Product{
		SubCategoryID: &subCategory.ID,
		Name:          name,
		Slug:          slug.Make(name + "-" + uuid.NewString()[:6]),
		Description:   faker.Paragraph(),
		Price:         fakePrice(),
		Stock:         rand.Intn(30) + 1,
		GemstoneType:  gemstone,
		MetalType:     metal,
	}
}

// fakePrice returns a realistic jewellery price in whole rupees between
// 5,000 and 150,000, at 2 decimal places.
func fakePrice() decimal.Decimal {
	rupees := 5000 + rand.Intn(145001)
	return decimal.NewFromInt(int64(rupees)).Round(2)
}
