package httpapi

import (
	"net/http"

	"marketflow-be/internal/contact"
	"marketflow-be/internal/middleware"
)

func (s *Server) handleContactList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondAuthRequired(w)
		return
	}

	contacts, err := s.ContactSvc.List(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, contacts)
}

func (s *Server) handleContactCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondAuthRequired(w)
		return
	}

	var body struct {
		City      string `json:"city"`
		Street    string `json:"street"`
		House     string `json:"house"`
		Structure string `json:"structure"`
		Building  string `json:"building"`
		Apartment string `json:"apartment"`
		Phone     string `json:"phone"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}

	_, err := s.ContactSvc.Create(r.Context(), contact.CreateContactInput{
		UserID:    userID,
		City:      body.City,
		Street:    body.Street,
		House:     body.House,
		Structure: body.Structure,
		Building:  body.Building,
		Apartment: body.Apartment,
		Phone:     body.Phone,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, statusOK())
}

func (s *Server) handleContactUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondAuthRequired(w)
		return
	}

	var body struct {
		ID        flexInt `json:"id"`
		City      *string `json:"city"`
		Street    *string `json:"street"`
		House     *string `json:"house"`
		Structure *string `json:"structure"`
		Building  *string `json:"building"`
		Apartment *string `json:"apartment"`
		Phone     *string `json:"phone"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}

	err := s.ContactSvc.Update(r.Context(), contact.UpdateContactInput{
		ContactID: int(body.ID),
		UserID:    userID,
		City:      body.City,
		Street:    body.Street,
		House:     body.House,
		Structure: body.Structure,
		Building:  body.Building,
		Apartment: body.Apartment,
		Phone:     body.Phone,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, statusOK())
}

func (s *Server) handleContactDelete(w http.ResponseWriter, r *http.Request) {
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

	deleted, err := s.ContactSvc.Delete(r.Context(), userID, ids)
	if err != nil {
		respondError(w, r, err)
		return
	}

	resp := statusOK()
	resp[keyDeleted] = deleted
	respondJSON(w, http.StatusOK, resp)
}
