package middlewares

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/kanakjewels/kanak-shop/app/helpers"
	"github.com/kanakjewels/kanak-shop/app/services"
	"github.com/kanakjewels/kanak-shop/app/utils/sessions"
)

// CartSessionMiddleware resolves the session's cart exactly once per
// request and passes the cart ID down through the context, so handlers and
// services never touch ambient session state.
func CartSessionMiddleware(store *sessions.Store, cartSvc *services.CartService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionKey, err := store.SessionKey(w, r)
			if err != nil {
				log.Printf("CartSessionMiddleware: failed to get session key: %v", err)
				next.ServeHTTP(w, r)
				return
			}

			cart, err := cartSvc.ResolveCart(r.Context(), sessionKey)
			if err != nil {
				log.Printf("CartSessionMiddleware: failed to resolve cart: %v", err)
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), helpers.ContextKeyCartID, cart.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func MethodOverrideMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			_ = r.ParseForm()
			override := r.Form.Get("_method")
			if override != "" {
				r.Method = strings.ToUpper(override)
			}
		}
		next.ServeHTTP(w, r)
	})
}
