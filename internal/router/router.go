package router

import (
	"net/http"
	"strings"

	"addina-shop/internal/auth"
	"addina-shop/internal/handler"
	"addina-shop/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	authHandler *handler.AuthHandler,
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	wishlistHandler *handler.WishlistHandler,
	profileHandler *handler.ProfileHandler,
	issuer *auth.TokenIssuer,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Auth routes
	mux.HandleFunc("/api/auth/register", authHandler.Register)
	mux.HandleFunc("/api/auth/login", authHandler.Login)
	mux.HandleFunc("/api/auth/refresh", authHandler.Refresh)
	mux.HandleFunc("/api/auth/me", authHandler.Me)

	// Product routes: list, featured, and by-ID share a prefix
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/products" || r.URL.Path == "/api/products/":
			productHandler.GetAll(w, r)
		case r.URL.Path == "/api/products/featured":
			productHandler.GetFeatured(w, r)
		default:
			productHandler.GetByID(w, r)
		}
	}
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// Cart routes
	cartRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		isCollection := r.URL.Path == "/api/cart-items" || r.URL.Path == "/api/cart-items/"
		switch {
		case isCollection && r.Method == http.MethodGet:
			cartHandler.List(w, r)
		case isCollection && r.Method == http.MethodPost:
			cartHandler.Add(w, r)
		case !isCollection && r.Method == http.MethodPatch:
			cartHandler.Update(w, r)
		case !isCollection && r.Method == http.MethodDelete:
			cartHandler.Delete(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}
	mux.HandleFunc("/api/cart-items", cartRouteHandler)
	mux.HandleFunc("/api/cart-items/", cartRouteHandler)
	mux.HandleFunc("/api/cart/clear", cartHandler.Clear)
	mux.HandleFunc("/api/cart/total", cartHandler.Total)

	// Order routes
	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		isCollection := r.URL.Path == "/api/orders" || r.URL.Path == "/api/orders/"
		switch {
		case r.URL.Path == "/api/orders/create-from-cart" && r.Method == http.MethodPost:
			orderHandler.CreateFromCart(w, r)
		case isCollection && r.Method == http.MethodGet:
			orderHandler.List(w, r)
		case strings.HasSuffix(r.URL.Path, "/status") && r.Method == http.MethodPatch:
			orderHandler.UpdateStatus(w, r)
		case !isCollection && r.Method == http.MethodGet:
			orderHandler.GetByID(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}
	mux.HandleFunc("/api/orders", orderRouteHandler)
	mux.HandleFunc("/api/orders/", orderRouteHandler)

	// Wishlist routes
	wishlistRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		isCollection := r.URL.Path == "/api/wishlist-items" || r.URL.Path == "/api/wishlist-items/"
		switch {
		case isCollection && r.Method == http.MethodGet:
			wishlistHandler.List(w, r)
		case isCollection && r.Method == http.MethodPost:
			wishlistHandler.Add(w, r)
		case !isCollection && r.Method == http.MethodDelete:
			wishlistHandler.Delete(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}
	mux.HandleFunc("/api/wishlist-items", wishlistRouteHandler)
	mux.HandleFunc("/api/wishlist-items/", wishlistRouteHandler)
	mux.HandleFunc("/api/wishlist/clear", wishlistHandler.Clear)

	// Profile routes
	mux.HandleFunc("/api/profile/me", profileHandler.Me)
	mux.HandleFunc("/api/profile/avatar", profileHandler.UploadAvatar)

	// Apply middleware in order: Recovery -> Logging -> CORS -> BearerAuth
	var h http.Handler = mux
	h = middleware.BearerAuth(issuer, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
