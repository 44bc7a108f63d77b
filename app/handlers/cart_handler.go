package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/kanakjewels/kanak-shop/app/helpers"
	"github.com/kanakjewels/kanak-shop/app/models"
	"github.com/kanakjewels/kanak-shop/app/services"
	"github.com/unrolled/render"
)

type CartHandler struct {
	cartSvc       *services.CartService
	render        *render.Render
	whatsAppPhone string
	appBaseURL    string
}

func NewCartHandler(cartSvc *services.CartService, rnd *render.Render, whatsAppPhone, appBaseURL string) *CartHandler {
	return &CartHandler{
		cartSvc:       cartSvc,
		render:        rnd,
		whatsAppPhone: whatsAppPhone,
		appBaseURL:    appBaseURL,
	}
}

type cartResponse struct {
	Cart   *models.Cart        `json:"cart"`
	Totals services.CartTotals `json:"totals"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cartID, ok := r.Context().Value(helpers.ContextKeyCartID).(string)
	if !ok || cartID == "" {
		_ = h.render.JSON(w, http.StatusInternalServerError, errorResponse{Error: "no cart for session"})
		return
	}

	cart, err := h.cartSvc.GetCart(r.Context(), cartID)
	if err != nil {
		log.Printf("CartHandler.GetCart: %v", err)
		writeServiceError(h.render, w, err)
		return
	}

	totals, err := h.cartSvc.Totals(r.Context(), cartID)
	if err != nil {
		log.Printf("CartHandler.GetCart: totals: %v", err)
		writeServiceError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, cartResponse{Cart: cart, Totals: totals})
}

type addItemResponse struct {
	Item        *models.CartItem `json:"item"`
	WhatsAppURL string           `json:"whatsapp_url"`
}

// AddItem adds one unit of a product and answers with the cart line plus a
// pre-filled WhatsApp inquiry link for it.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, errorResponse{Error: "malformed form data"})
		return
	}

	productID := r.FormValue("product_id")
	if productID == "" {
		_ = h.render.JSON(w, http.StatusBadRequest, errorResponse{Error: "product_id is required"})
		return
	}

	cartID, ok := r.Context().Value(helpers.ContextKeyCartID).(string)
	if !ok || cartID == "" {
		_ = h.render.JSON(w, http.StatusInternalServerError, errorResponse{Error: "no cart for session"})
		return
	}

	item, err := h.cartSvc.AddItem(r.Context(), cartID, productID)
	if err != nil {
		log.Printf("CartHandler.AddItem: %v", err)
		writeServiceError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, addItemResponse{
		Item:        item,
		WhatsAppURL: helpers.BuildWhatsAppInquiryURL(h.whatsAppPhone, h.appBaseURL, item.Product),
	})
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, errorResponse{Error: "malformed form data"})
		return
	}

	itemID := mux.Vars(r)["id"]
	action := r.FormValue("action")
	switch action {
	case services.CartActionIncrement, services.CartActionDecrement, services.CartActionRemove:
	default:
		_ = h.render.JSON(w, http.StatusBadRequest, errorResponse{Error: "action must be inc, dec or remove"})
		return
	}

	cartID, ok := r.Context().Value(helpers.ContextKeyCartID).(string)
	if !ok || cartID == "" {
		_ = h.render.JSON(w, http.StatusInternalServerError, errorResponse{Error: "no cart for session"})
		return
	}

	if err := h.cartSvc.UpdateItem(r.Context(), cartID, itemID, action); err != nil {
		log.Printf("CartHandler.UpdateItem: %v", err)
		writeServiceError(h.render, w, err)
		return
	}

	totals, err := h.cartSvc.Totals(r.Context(), cartID)
	if err != nil {
		log.Printf("CartHandler.UpdateItem: totals: %v", err)
		writeServiceError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, totals)
}
