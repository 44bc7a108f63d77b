package helpers

import (
	"fmt"
	"net/url"

	"github.com/kanakjewels/kanak-shop/app/models"
)

const whatsAppBaseURL = "https://wa.me/"

// BuildWhatsAppInquiryURL pre-fills a WhatsApp message for a just-added
// product: its name, ID and canonical product link. The storefront sends
// shoppers here instead of a payment flow after an add-to-cart.
func BuildWhatsAppInquiryURL(phone, appBaseURL string, product *models.Product) string {
	productLink := fmt.Sprintf("%s/products/%s", appBaseURL, product.Slug)
	message := fmt.Sprintf(
		"Hello! I'm interested in the %s (ID: %s), priced at %s. Here is the product link: %s",
		product.Name, product.ID, FormatINR(product.Price), productLink,
	)
	return whatsAppBaseURL + phone + "?text=" + url.QueryEscape(message)
}
