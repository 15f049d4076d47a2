package handlers

import (
	"net/http"
	"strconv"

	"greengear/internal/models"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.DB.ListMessages(r.Context())
	if err != nil {
		h.respondAppError(w, err)
		return
	}
	if messages == nil {
		messages = []models.Message{}
	}

	respondJSON(w, http.StatusOK, messages)
}

func (h *Handler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.currentUserID(r); !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	data, err := decodeBody(r)
	if err != nil {
		h.respondAppError(w, err)
		return
	}

	content := stringField(data, "content")
	if content == "" {
		respondError(w, http.StatusBadRequest, "Message content is required")
		return
	}

	authorName := stringField(data, "author_name")
	if authorName == "" {
		authorName = "Anonymous"
	}

	message := models.Message{
		Content:    content,
		AuthorName: authorName,
	}

	if err := h.DB.CreateMessage(r.Context(), &message); err != nil {
		h.respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, message)
}

// DeleteMessage lets any authenticated caller delete any message. Message
// rows carry no owner column, so an ownership check is not possible; the
// board is moderated by its participants.
func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.currentUserID(r); !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	messageID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Message not found")
		return
	}

	deleted, err := h.DB.DeleteMessage(r.Context(), messageID)
	if err != nil {
		h.respondAppError(w, err)
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, "Message not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Message deleted successfully"})
}
