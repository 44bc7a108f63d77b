package handlers

import (
	"errors"
	"net/http"

	"github.com/kanakjewels/kanak-shop/app/services"
	"github.com/unrolled/render"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeServiceError(rnd *render.Render, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		_ = rnd.JSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, services.ErrConflict):
		_ = rnd.JSON(w, http.StatusConflict, errorResponse{Error: "conflicting concurrent update, please retry"})
	case errors.Is(err, services.ErrCheckoutFailed):
		_ = rnd.JSON(w, http.StatusInternalServerError, errorResponse{Error: "checkout did not complete, cart is unchanged"})
	default:
		_ = rnd.JSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
