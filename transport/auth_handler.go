package transport

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/RrD-111/chat-api/services"
)

type AuthHandler struct {
	auth services.IAuthService
}

func NewAuthHandler(auth services.IAuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login authenticates the credentials and returns a bearer token. Form
// bodies are accepted alongside JSON for OAuth2-password-style clients.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	// Prefix match so a ";charset=..." parameter still lands here.
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		req.Username = r.FormValue("username")
		req.Password = r.FormValue("password")
	} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid request body"})
		return
	}

	token, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, tokenResponse{AccessToken: string(token), TokenType: "bearer"})
}

// Logout revokes the caller's token. Runs behind the authenticate
// middleware, so the token is known valid at this point.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(rawToken(r)); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Successfully logged out"})
}
