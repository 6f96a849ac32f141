package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/authkeeper/internal/common"
)

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerResponse struct {
	Username       string `json:"username"`
	HashedPassword string `json:"hashedPassword"`
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Authenticated bool   `json:"authenticated"`
	JWT           string `json:"jwt,omitempty"`
}

type authResponse struct {
	Username string `json:"username"`
}

type msgResponse struct {
	Msg string `json:"msg"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMsg(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, msgResponse{Msg: msg})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("It works!"))
}

func (s *Server) handleAuth(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(common.AccessTokenHeaderName)

	username, err := s.auth.CheckAuth(r.Context(), token)
	if err != nil {
		writeMsg(w, http.StatusForbidden, "Unauthorized")
		return
	}

	writeJSON(w, http.StatusOK, authResponse{Username: username})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMsg(w, http.StatusBadRequest, "Invalid body format")
		return
	}

	user, err := s.auth.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorMissingFields):
			writeMsg(w, http.StatusBadRequest, "You need to provide username and password")
		case errors.Is(err, common.ErrorAlreadyExists):
			writeMsg(w, http.StatusBadRequest, "User already exists")
		default:
			s.logger.Error(r.Context(), "registration failed", "error", err.Error())
			writeMsg(w, http.StatusInternalServerError, "Internal error")
		}
		return
	}

	s.logger.Info(r.Context(), "Registered", "username", user.UserName)
	writeJSON(w, http.StatusOK, registerResponse{
		Username:       user.UserName,
		HashedPassword: user.HashedPassword,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMsg(w, http.StatusBadRequest, "Invalid body format")
		return
	}

	result, err := s.auth.Login(r.Context(), username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorMissingPassword):
			writeMsg(w, http.StatusBadRequest, "You need to provide a password")
		case errors.Is(err, common.ErrorUnknownUser):
			writeMsg(w, http.StatusBadRequest, fmt.Sprintf("No user found with username: '%s'", username))
		default:
			s.logger.Error(r.Context(), "login failed", "error", err.Error())
			writeMsg(w, http.StatusInternalServerError, "Internal error")
		}
		return
	}

	// a credential mismatch is still a 200: the flag carries the outcome
	writeJSON(w, http.StatusOK, loginResponse{
		Authenticated: result.Authenticated,
		JWT:           result.Token,
	})
}
