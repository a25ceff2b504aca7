package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/RrD-111/chat-api/services"
)

type GroupHandler struct {
	groups services.IGroupService
}

func NewGroupHandler(groups services.IGroupService) *GroupHandler {
	return &GroupHandler{groups: groups}
}

type createGroupRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, err)
		return
	}

	group, err := h.groups.Create(r.Context(), req.Name, currentUser(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, group)
}

func (h *GroupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid group id"})
		return
	}

	if err := h.groups.Delete(r.Context(), groupID, currentUser(r)); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Group deleted successfully"})
}

func (h *GroupHandler) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.groups.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, groups)
}

func (h *GroupHandler) AddMembers(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid group id"})
		return
	}

	var memberIDs []int64
	if err := json.NewDecoder(r.Body).Decode(&memberIDs); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid request body"})
		return
	}

	if err := h.groups.AddMembers(r.Context(), groupID, memberIDs, currentUser(r)); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Members added successfully"})
}
