package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unrolled/render"
)

func TestGetCartReturnsCartWithTotals(t *testing.T) {
	env := newTestEnv(t)
	handler := NewCartHandler(env.cartSvc, render.New(), "919876543210", "https://kanak.example")

	product := env.createProduct(t, "Gold Bangle", "24999.00")
	cart := env.createCart(t, "session-get")
	_, err := env.cartSvc.AddItem(context.Background(), cart.ID, product.ID)
	require.NoError(t, err)

	req := withCartID(httptest.NewRequest(http.MethodGet, "/carts", nil), cart.ID)
	rec := httptest.NewRecorder()
	handler.GetCart(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Cart struct {
			ID        string `json:"id"`
			CartItems []struct {
				Quantity int `json:"quantity"`
			} `json:"cart_items"`
		} `json:"cart"`
		Totals struct {
			TotalItems int    `json:"total_items"`
			Subtotal   string `json:"subtotal"`
		} `json:"totals"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, cart.ID, body.Cart.ID)
	require.Len(t, body.Cart.CartItems, 1)
	assert.Equal(t, 1, body.Cart.CartItems[0].Quantity)
	assert.Equal(t, 1, body.Totals.TotalItems)
	assert.Equal(t, "24999.00", decimal.RequireFromString(body.Totals.Subtotal).StringFixed(2))
}

func TestGetCartWithoutSessionCart(t *testing.T) {
	env := newTestEnv(t)
	handler := NewCartHandler(env.cartSvc, render.New(), "919876543210", "https://kanak.example")

	req := httptest.NewRequest(http.MethodGet, "/carts", nil)
	rec := httptest.NewRecorder()
	handler.GetCart(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAddItemRespondsWithInquiryLink(t *testing.T) {
	env := newTestEnv(t)
	handler := NewCartHandler(env.cartSvc, render.New(), "919876543210", "https://kanak.example")

	product := env.createProduct(t, "Diamond Pendant", "74999.00")
	cart := env.createCart(t, "session-add")

	form := url.Values{"product_id": {product.ID}}
	req := httptest.NewRequest(http.MethodPost, "/carts/add", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = withCartID(req, cart.ID)

	rec := httptest.NewRecorder()
	handler.AddItem(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Item struct {
			Quantity  int    `json:"quantity"`
			ProductID string `json:"product_id"`
		} `json:"item"`
		WhatsAppURL string `json:"whatsapp_url"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Item.Quantity)
	assert.Equal(t, product.ID, body.Item.ProductID)
	assert.True(t, strings.HasPrefix(body.WhatsAppURL, "https://wa.me/919876543210?text="), body.WhatsAppURL)
	assert.Contains(t, body.WhatsAppURL, url.QueryEscape("Diamond Pendant"))
}

func TestAddItemValidation(t *testing.T) {
	env := newTestEnv(t)
	handler := NewCartHandler(env.cartSvc, render.New(), "919876543210", "https://kanak.example")
	cart := env.createCart(t, "session-add-bad")

	tests := []struct {
		name       string
		productID  string
		wantStatus int
	}{
		{name: "missing product_id", productID: "", wantStatus: http.StatusBadRequest},
		{name: "unknown product", productID: "no-such-product", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := url.Values{"product_id": {tt.productID}}
			req := httptest.NewRequest(http.MethodPost, "/carts/add", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			req = withCartID(req, cart.ID)

			rec := httptest.NewRecorder()
			handler.AddItem(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestUpdateItemActionsOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	handler := NewCartHandler(env.cartSvc, render.New(), "919876543210", "https://kanak.example")

	product := env.createProduct(t, "Emerald Ring", "100.00")
	cart := env.createCart(t, "session-update")
	item, err := env.cartSvc.AddItem(context.Background(), cart.ID, product.ID)
	require.NoError(t, err)

	do := func(action string) *httptest.ResponseRecorder {
		form := url.Values{"action": {action}}
		req := httptest.NewRequest(http.MethodPost, "/carts/items/"+item.ID, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req = mux.SetURLVars(withCartID(req, cart.ID), map[string]string{"id": item.ID})

		rec := httptest.NewRecorder()
		handler.UpdateItem(rec, req)
		return rec
	}

	rec := do("inc")
	require.Equal(t, http.StatusOK, rec.Code)

	var totals struct {
		TotalItems int `json:"total_items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &totals))
	assert.Equal(t, 2, totals.TotalItems)

	rec = do("dec")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &totals))
	assert.Equal(t, 1, totals.TotalItems)

	rec = do("remove")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &totals))
	assert.Equal(t, 0, totals.TotalItems)

	rec = do("remove")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateItemRejectsUnknownAction(t *testing.T) {
	env := newTestEnv(t)
	handler := NewCartHandler(env.cartSvc, render.New(), "919876543210", "https://kanak.example")
	cart := env.createCart(t, "session-bad-action")

	form := url.Values{"action": {"double"}}
	req := httptest.NewRequest(http.MethodPost, "/carts/items/whatever", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = mux.SetURLVars(withCartID(req, cart.ID), map[string]string{"id": "whatever"})

	rec := httptest.NewRecorder()
	handler.UpdateItem(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
