package httpapi

import (
	"net/http"

	"marketflow-be/internal/middleware"
	"marketflow-be/internal/order"
)

func (s *Server) handleOrderList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondAuthRequired(w)
		return
	}

	orders, err := s.OrderSvc.List(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, orders)
}

func (s *Server) handleOrderPlace(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondAuthRequired(w)
		return
	}

	var body struct {
		ID      flexInt `json:"id"`
		Contact flexInt `json:"contact"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}

	err := s.OrderSvc.Place(r.Context(), order.PlaceParams{
		UserID:    userID,
		BasketID:  int(body.ID),
		ContactID: int(body.Contact),
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, statusOK())
}
