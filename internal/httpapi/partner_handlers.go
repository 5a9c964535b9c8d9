package httpapi

import (
	"net/http"

	"marketflow-be/internal/middleware"
)

func (s *Server) handlePartnerUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondAuthRequired(w)
		return
	}

	var body struct {
		URL string `json:"url"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}

	role := middleware.RoleFromContext(r.Context())
	if err := s.PartnerSvc.Import(r.Context(), userID, role, body.URL); err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, statusOK())
}

func (s *Server) handlePartnerStateGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondAuthRequired(w)
		return
	}

	role := middleware.RoleFromContext(r.Context())
	state, err := s.ShopSvc.GetState(r.Context(), userID, role)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, state)
}

func (s *Server) handlePartnerStateSet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondAuthRequired(w)
		return
	}

	var body struct {
		State string `json:"state"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}

	role := middleware.RoleFromContext(r.Context())
	if err := s.ShopSvc.SetState(r.Context(), userID, role, body.State); err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, statusOK())
}

func (s *Server) handlePartnerOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondAuthRequired(w)
		return
	}

	role := middleware.RoleFromContext(r.Context())
	orders, err := s.OrderSvc.PartnerOrders(r.Context(), userID, role)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, orders)
}
