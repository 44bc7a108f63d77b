package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/kanakjewels/kanak-shop/app/helpers"
	"github.com/kanakjewels/kanak-shop/app/services"
	"github.com/unrolled/render"
)

type CheckoutHandler struct {
	checkoutSvc *services.CheckoutService
	render      *render.Render
}

func NewCheckoutHandler(checkoutSvc *services.CheckoutService, rnd *render.Render) *CheckoutHandler {
	return &CheckoutHandler{checkoutSvc: checkoutSvc, render: rnd}
}

func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, errorResponse{Error: "malformed form data"})
		return
	}

	cartID, ok := r.Context().Value(helpers.ContextKeyCartID).(string)
	if !ok || cartID == "" {
		_ = h.render.JSON(w, http.StatusInternalServerError, errorResponse{Error: "no cart for session"})
		return
	}

	customer := services.CustomerInfo{
		FirstName:  r.FormValue("first_name"),
		LastName:   r.FormValue("last_name"),
		Email:      r.FormValue("email"),
		Address:    r.FormValue("address"),
		City:       r.FormValue("city"),
		PostalCode: r.FormValue("postal_code"),
	}

	order, err := h.checkoutSvc.Checkout(r.Context(), cartID, customer)
	if err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			_ = h.render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		log.Printf("CheckoutHandler.Checkout: %v", err)
		writeServiceError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, map[string]interface{}{
		"order": order,
		"total": order.Total(),
	})
}
