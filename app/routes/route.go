package routes

import (
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/kanakjewels/kanak-shop/app/configs"
	"github.com/kanakjewels/kanak-shop/app/handlers"
	"github.com/kanakjewels/kanak-shop/app/middlewares"
	"github.com/kanakjewels/kanak-shop/app/repositories"
	"github.com/kanakjewels/kanak-shop/app/services"
	"github.com/kanakjewels/kanak-shop/app/utils/sessions"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, sessionKeys *configs.SessionKeys) http.Handler {
	rnd := render.New()
	store := sessions.NewStore(sessionKeys.AuthKey, sessionKeys.EncKey)

	categoryRepo := repositories.NewCategoryRepository(db)
	subCategoryRepo := repositories.NewSubCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)
	sectionRepo := repositories.NewSectionRepository(db)
	cartRepo := repositories.NewCartRepository(db)
	cartItemRepo := repositories.NewCartItemRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	orderItemRepo := repositories.NewOrderItemRepository(db)

	locks := services.NewCartLocks()
	cartSvc := services.NewCartService(cartRepo, cartItemRepo, productRepo, locks)
	checkoutSvc := services.NewCheckoutService(db, cartRepo, cartItemRepo, orderRepo, orderItemRepo, locks)

	homeHandler := handlers.NewHomeHandler(sectionRepo, categoryRepo, productRepo, rnd)
	productHandler := handlers.NewProductHandler(productRepo, categoryRepo, subCategoryRepo, rnd)
	cartHandler := handlers.NewCartHandler(cartSvc, rnd, configs.LoadENV.WhatsAppPhone, configs.LoadENV.AppURL)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutSvc, rnd)

	router := mux.NewRouter()
	router.Use(middlewares.MethodOverrideMiddleware)
	router.Use(middlewares.CartSessionMiddleware(store, cartSvc))

	router.HandleFunc("/", homeHandler.Home).Methods("GET")
	router.HandleFunc("/catalog", productHandler.Catalog).Methods("GET")
	router.HandleFunc("/catalog/{slug}", productHandler.Catalog).Methods("GET")
	router.HandleFunc("/products/{slug}", productHandler.Detail).Methods("GET")
	router.HandleFunc("/search", productHandler.Search).Methods("GET")

	router.HandleFunc("/carts", cartHandler.GetCart).Methods("GET")
	router.HandleFunc("/carts/add", cartHandler.AddItem).Methods("POST")
	router.HandleFunc("/carts/items/{id}", cartHandler.UpdateItem).Methods("POST")
	router.HandleFunc("/checkout", checkoutHandler.Checkout).Methods("POST")

	csrfMiddleware := csrf.Protect(sessionKeys.AuthKey, csrf.Secure(false))
	return csrfMiddleware(router)
}
