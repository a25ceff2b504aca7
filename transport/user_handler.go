package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/RrD-111/chat-api/services"
)

type UserHandler struct {
	users services.IUserService
}

func NewUserHandler(users services.IUserService) *UserHandler {
	return &UserHandler{users: users}
}

type userRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
}

// Create registers a new account. Admin-gated by the router.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid request body"})
		return
	}

	user, err := h.users.Create(r.Context(), req.Username, req.Password, req.IsAdmin)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// Update replaces an account's username, password, and admin flag.
// Admin-gated by the router.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid user id"})
		return
	}

	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid request body"})
		return
	}

	user, err := h.users.Update(r.Context(), id, req.Username, req.Password, req.IsAdmin)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}
