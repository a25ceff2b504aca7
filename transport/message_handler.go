package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/RrD-111/chat-api/services"
)

type MessageHandler struct {
	messages services.IMessageService
}

func NewMessageHandler(messages services.IMessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

type sendMessageRequest struct {
	Content string `json:"content" validate:"required,min=1,max=4096"`
}

type likesResponse struct {
	Likes int `json:"likes"`
}

func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid group id"})
		return
	}

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, err)
		return
	}

	message, err := h.messages.Send(r.Context(), groupID, req.Content, currentUser(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, message)
}

func (h *MessageHandler) Like(w http.ResponseWriter, r *http.Request) {
	messageID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid message id"})
		return
	}

	likes, err := h.messages.Like(r.Context(), messageID, currentUser(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, likesResponse{Likes: likes})
}
