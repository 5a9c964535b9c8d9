package httpapi

import (
	"encoding/json"
	"net/http"

	"marketflow-be/internal/basket"
	"marketflow-be/internal/middleware"
)

func (s *Server) handleBasketGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondAuthRequired(w)
		return
	}

	view, err := s.BasketSvc.GetItems(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	// The wire shape is a list of open baskets; there is at most one.
	if len(view.Lines) == 0 {
		respondJSON(w, http.StatusOK, []*basket.View{})
		return
	}
	respondJSON(w, http.StatusOK, []*basket.View{view})
}

type basketAddItem struct {
	ProductInfoID flexInt `json:"product_info"`
	Quantity      flexInt `json:"quantity"`
}

func (s *Server) handleBasketAdd(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondAuthRequired(w)
		return
	}

	var body struct {
		Items json.RawMessage `json:"items"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}

	var raw []basketAddItem
	if err := decodeItems(body.Items, &raw); err != nil {
		respondError(w, r, err)
		return
	}

	items := make([]basket.AddItemInput, 0, len(raw))
	for _, it := range raw {
		items = append(items, basket.AddItemInput{
			ProductInfoID: int(it.ProductInfoID),
			Quantity:      int(it.Quantity),
		})
	}

	created, err := s.BasketSvc.AddItems(r.Context(), userID, items)
	if err != nil {
		respondError(w, r, err)
		return
	}

	resp := statusOK()
	resp[keyCreated] = created
	respondJSON(w, http.StatusOK, resp)
}

type basketUpdateItem struct {
	ID       flexInt `json:"id"`
	Quantity flexInt `json:"quantity"`
}

func (s *Server) handleBasketUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondAuthRequired(w)
		return
	}

	var body struct {
		Items json.RawMessage `json:"items"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}

	var raw []basketUpdateItem
	if err := decodeItems(body.Items, &raw); err != nil {
		respondError(w, r, err)
		return
	}

	items := make([]basket.UpdateItemInput, 0, len(raw))
	for _, it := range raw {
		items = append(items, basket.UpdateItemInput{
			ID:       int(it.ID),
			Quantity: int(it.Quantity),
		})
	}

	updated, err := s.BasketSvc.UpdateItems(r.Context(), userID, items)
	if err != nil {
		respondError(w, r, err)
		return
	}

	resp := statusOK()
	resp[keyUpdated] = updated
	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBasketDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondAuthRequired(w)
		return
	}

	var body struct {
		Items string `json:"items"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}

	ids, err := parseIDList(body.Items)
	if err != nil {
		respondError(w, r, err)
		return
	}

	deleted, err := s.BasketSvc.DeleteItems(r.Context(), userID, ids)
	if err != nil {
		respondError(w, r, err)
		return
	}

	resp := statusOK()
	resp[keyDeleted] = deleted
	respondJSON(w, http.StatusOK, resp)
}
