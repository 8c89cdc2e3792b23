package router

import (
	"net/http"
	"strings"

	"kart-store/internal/handler"
	"kart-store/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	couponHandler *handler.CouponHandler,
	cartHandler *handler.CartHandler,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Product handler function
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		// Collection routes
		if r.URL.Path == "/api/products" || r.URL.Path == "/api/products/" {
			switch r.Method {
			case http.MethodGet:
				productHandler.GetAll(w, r)
			case http.MethodPost:
				productHandler.Create(w, r)
			default:
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		// Item routes: /api/products/{id}
		switch r.Method {
		case http.MethodGet:
			productHandler.GetByID(w, r)
		case http.MethodPut:
			productHandler.Update(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}

	// Register product routes (both with and without trailing slash)
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// Coupon handler function
	couponRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			couponHandler.GetAll(w, r)
		case http.MethodPost:
			couponHandler.Create(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}

	mux.HandleFunc("/api/coupons", couponRouteHandler)
	mux.HandleFunc("/api/coupons/", couponRouteHandler)

	// Cart handler function, dispatching on the path segments after
	// /api/carts/: {id}, {id}/products, {id}/items, {id}/items/{pid},
	// {id}/coupon.
	cartRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/carts" || r.URL.Path == "/api/carts/" {
			if r.Method == http.MethodPost {
				cartHandler.Create(w, r)
				return
			}
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/carts/"), "/")
		parts := strings.Split(rest, "/")

		switch {
		case len(parts) == 1 && r.Method == http.MethodGet:
			cartHandler.GetByID(w, r)
		case len(parts) == 2 && parts[1] == "products" && r.Method == http.MethodGet:
			cartHandler.Catalog(w, r)
		case len(parts) == 2 && parts[1] == "items" && r.Method == http.MethodPost:
			cartHandler.AddItem(w, r)
		case len(parts) == 3 && parts[1] == "items" && r.Method == http.MethodPut:
			cartHandler.UpdateQuantity(w, r)
		case len(parts) == 3 && parts[1] == "items" && r.Method == http.MethodDelete:
			cartHandler.RemoveItem(w, r)
		case len(parts) == 2 && parts[1] == "coupon" && r.Method == http.MethodPut:
			cartHandler.ApplyCoupon(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}

	mux.HandleFunc("/api/carts", cartRouteHandler)
	mux.HandleFunc("/api/carts/", cartRouteHandler)

	// Apply middleware in order: Recovery -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
