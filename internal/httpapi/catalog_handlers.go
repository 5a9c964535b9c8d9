package httpapi

import (
	"net/http"
	"strconv"

	"marketflow-be/internal/product"
)

func (s *Server) handleShops(w http.ResponseWriter, r *http.Request) {
	shops, err := s.ShopSvc.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, shops)
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	var filter product.Filter

	if v := r.URL.Query().Get("shop_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, r, errBadQueryParam("shop_id"))
			return
		}
		filter.ShopID = &id
	}

	if v := r.URL.Query().Get("category_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, r, errBadQueryParam("category_id"))
			return
		}
		filter.CategoryID = &id
	}

	products, err := s.ProductSvc.GetProducts(r.Context(), filter)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, products)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	var limit, page *int32

	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			l := int32(n)
			limit = &l
		}
	}
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			p := int32(n)
			page = &p
		}
	}

	result, err := s.CategorySvc.GetCategories(r.Context(), limit, page)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
