package router

import (
	"net/http"

	"marketsquare/internal/handler"
	"marketsquare/internal/middleware"

	"github.com/rs/zerolog"
)

// Handlers groups every HTTP handler the router wires up.
type Handlers struct {
	User     *handler.UserHandler
	Shop     *handler.ShopHandler
	Product  *handler.ProductHandler
	Order    *handler.OrderHandler
	Cart     *handler.CartHandler
	Address  *handler.AddressHandler
	Favorite *handler.FavoriteHandler
	Upload   *handler.UploadHandler
	Payment  *handler.PaymentHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, apiKey string, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Accounts
	mux.HandleFunc("POST /api/users/register", h.User.Register)
	mux.HandleFunc("POST /api/users/login", h.User.Login)

	// Shops
	mux.HandleFunc("POST /api/shops", h.Shop.Register)
	mux.HandleFunc("GET /api/shops/{id}", h.Shop.GetByID)
	mux.HandleFunc("GET /api/shops/{id}/analytics", h.Shop.Analytics)

	// Catalogue
	mux.HandleFunc("GET /api/products", h.Product.GetAll)
	mux.HandleFunc("GET /api/products/{id}", h.Product.GetByID)
	mux.HandleFunc("POST /api/products", h.Product.Create)
	mux.HandleFunc("PUT /api/products/{id}", h.Product.Update)
	mux.HandleFunc("DELETE /api/products/{id}", h.Product.Delete)

	// Orders
	mux.HandleFunc("POST /api/orders", h.Order.Create)
	mux.HandleFunc("GET /api/orders", h.Order.List)
	mux.HandleFunc("GET /api/orders/{id}", h.Order.GetByID)
	mux.HandleFunc("PATCH /api/orders/{id}/status", h.Order.UpdateStatus)

	// Cart
	mux.HandleFunc("POST /api/cart", h.Cart.Add)
	mux.HandleFunc("GET /api/cart", h.Cart.Get)
	mux.HandleFunc("DELETE /api/cart", h.Cart.Clear)
	mux.HandleFunc("DELETE /api/cart/{productId}", h.Cart.Remove)

	// Addresses
	mux.HandleFunc("POST /api/addresses", h.Address.Create)
	mux.HandleFunc("GET /api/addresses", h.Address.List)
	mux.HandleFunc("PUT /api/addresses/{id}", h.Address.Update)
	mux.HandleFunc("DELETE /api/addresses/{id}", h.Address.Delete)

	// Favorites
	mux.HandleFunc("POST /api/favorites", h.Favorite.Add)
	mux.HandleFunc("GET /api/favorites", h.Favorite.List)
	mux.HandleFunc("DELETE /api/favorites/{productId}", h.Favorite.Remove)

	// Media uploads
	mux.HandleFunc("POST /api/uploads", h.Upload.Create)

	// Payments
	mux.HandleFunc("POST /api/payments/intent", h.Payment.CreateIntent)

	// Apply middleware in order: Recovery -> Logging -> CORS -> APIKeyAuth
	var root http.Handler = mux
	root = middleware.APIKeyAuth(apiKey, logger)(root)
	root = middleware.CORS(root)
	root = middleware.Logging(logger)(root)
	root = middleware.Recovery(logger)(root)

	return root
}
