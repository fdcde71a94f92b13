package httpapi

import (
	"errors"
	"net/http"

	"github.com/avolkov/qanda/internal/common"
	"github.com/avolkov/qanda/internal/server/models"
)

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse is the success body of both signup and login. The user's
// password hash never appears here (models.User excludes it from JSON).
type authResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

func (s *HTTPServer) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeRequest(r, &req, func() bool {
		return req.Name != "" && req.Email != "" && req.Password != ""
	}); err != nil {
		respondMessage(w, http.StatusBadRequest, "Name, email and password are required")
		return
	}

	user, token, err := s.users.Signup(r.Context(), req.Name, req.Email, req.Password)
	switch {
	case err == nil:
		respondJSON(w, http.StatusOK, authResponse{User: user, Token: token})
	case errors.Is(err, common.ErrorAlreadyExists):
		respondMessage(w, http.StatusConflict, "Email already registered")
	default:
		s.logger.Error(r.Context(), "Signup error", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Signup failed")
	}
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeRequest(r, &req, func() bool {
		return req.Email != "" && req.Password != ""
	}); err != nil {
		respondMessage(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, token, err := s.users.Login(r.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		respondJSON(w, http.StatusOK, authResponse{User: user, Token: token})
	case errors.Is(err, common.ErrorUnauthorized):
		// identical body for unknown email and wrong password
		respondMessage(w, http.StatusUnauthorized, "Incorrect email or password")
	default:
		s.logger.Error(r.Context(), "Login error", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Login failed")
	}
}
