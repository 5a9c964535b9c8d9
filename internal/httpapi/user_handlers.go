package httpapi

import (
	"net/http"

	"marketflow-be/internal/middleware"
	"marketflow-be/internal/user"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var params user.RegisterParams
	if err := decodeBody(r, &params); err != nil {
		respondError(w, r, err)
		return
	}

	if _, err := s.UserSvc.Register(r.Context(), params); err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, statusOK())
}

func (s *Server) handleConfirm(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
		Token string `json:"token"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}

	if err := s.UserSvc.Confirm(r.Context(), body.Email, body.Token); err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, statusOK())
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}

	token, _, err := s.UserSvc.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	resp := statusOK()
	resp["Token"] = token
	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDetailsGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondAuthRequired(w)
		return
	}

	u, err := s.UserSvc.Details(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, u)
}

func (s *Server) handleDetailsUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondAuthRequired(w)
		return
	}

	var body struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		Email     *string `json:"email"`
		Password  *string `json:"password"`
		Company   *string `json:"company"`
		Position  *string `json:"position"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}

	err := s.UserSvc.UpdateDetails(r.Context(), user.UpdateParams{
		UserID:    userID,
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Password:  body.Password,
		Company:   body.Company,
		Position:  body.Position,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, statusOK())
}
