package httpapi

import (
	"net/http"

	"marketflow-be/internal/basket"
	"marketflow-be/internal/category"
	"marketflow-be/internal/contact"
	"marketflow-be/internal/middleware"
	"marketflow-be/internal/order"
	"marketflow-be/internal/partner"
	"marketflow-be/internal/product"
	"marketflow-be/internal/shop"
	"marketflow-be/internal/user"
)

// Server bundles the domain services behind the REST surface.
type Server struct {
	UserSvc     user.Service
	ContactSvc  contact.Service
	ShopSvc     shop.Service
	CategorySvc category.Service
	ProductSvc  product.Service
	BasketSvc   basket.Service
	OrderSvc    order.Service
	PartnerSvc  partner.Service
}

// Router wires every endpoint through the shared middleware chain.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("POST /user/register", s.handleRegister)
	mux.HandleFunc("POST /user/register/confirm", s.handleConfirm)
	mux.HandleFunc("POST /user/login", s.handleLogin)
	mux.HandleFunc("GET /user/details", s.handleDetailsGet)
	mux.HandleFunc("POST /user/details", s.handleDetailsUpdate)
	mux.HandleFunc("GET /user/contact", s.handleContactList)
	mux.HandleFunc("POST /user/contact", s.handleContactCreate)
	mux.HandleFunc("PUT /user/contact", s.handleContactUpdate)
	mux.HandleFunc("DELETE /user/contact", s.handleContactDelete)

	mux.HandleFunc("POST /partner/update", s.handlePartnerUpdate)
	mux.HandleFunc("GET /partner/state", s.handlePartnerStateGet)
	mux.HandleFunc("POST /partner/state", s.handlePartnerStateSet)
	mux.HandleFunc("GET /partner/orders", s.handlePartnerOrders)

	mux.HandleFunc("GET /shops", s.handleShops)
	mux.HandleFunc("GET /products", s.handleProducts)
	mux.HandleFunc("GET /categories", s.handleCategories)

	mux.HandleFunc("GET /basket", s.handleBasketGet)
	mux.HandleFunc("POST /basket", s.handleBasketAdd)
	mux.HandleFunc("PUT /basket", s.handleBasketUpdate)
	mux.HandleFunc("DELETE /basket", s.handleBasketDelete)

	mux.HandleFunc("GET /order", s.handleOrderList)
	mux.HandleFunc("POST /order", s.handleOrderPlace)

	var h http.Handler = mux
	h = middleware.RateLimitMiddleware(h)
	h = middleware.AuthMiddleware(h)
	h = middleware.LoggingMiddleware(h)
	return h
}
