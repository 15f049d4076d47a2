package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"greengear/internal/db"
	"greengear/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
)

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	data, err := decodeBody(r)
	if err != nil {
		h.respondAppError(w, err)
		return
	}

	if !hasFields(data, "title", "content", "post_type") {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	postType := stringField(data, "post_type")
	if !models.PostTypes[postType] {
		respondError(w, http.StatusBadRequest, "Invalid post type")
		return
	}

	post := models.CommunityPost{
		UserID:   userID,
		Title:    stringField(data, "title"),
		Content:  stringField(data, "content"),
		PostType: postType,
	}

	if err := h.DB.CreatePost(r.Context(), &post); err != nil {
		h.respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"id":      post.ID,
		"message": "Post created successfully",
	})
}

func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.DB.ListPosts(r.Context())
	if err != nil {
		h.respondAppError(w, err)
		return
	}
	if posts == nil {
		posts = []models.CommunityPost{}
	}

	respondJSON(w, http.StatusOK, posts)
}

// GetPost returns a single post. Every call bumps the view counter; the
// counter is monotonically increasing and not idempotent.
func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Post not found")
		return
	}

	post, err := h.DB.GetPostAndIncrementViews(r.Context(), postID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			respondError(w, http.StatusNotFound, "Post not found")
			return
		}
		h.respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, post)
}

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	postID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Post not found")
		return
	}

	data, err := decodeBody(r)
	if err != nil {
		h.respondAppError(w, err)
		return
	}

	content := stringField(data, "content")
	if content == "" {
		respondError(w, http.StatusBadRequest, "Comment content is required")
		return
	}

	comment := models.PostComment{
		PostID:  postID,
		UserID:  userID,
		Content: content,
	}

	if err := h.DB.CreateComment(r.Context(), &comment); err != nil {
		if db.IsForeignKeyViolation(err) {
			respondError(w, http.StatusNotFound, "Post not found")
			return
		}
		h.respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"id":      comment.ID,
		"message": "Comment added successfully",
	})
}

func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Post not found")
		return
	}

	comments, err := h.DB.ListComments(r.Context(), postID)
	if err != nil {
		h.respondAppError(w, err)
		return
	}
	if comments == nil {
		comments = []models.PostComment{}
	}

	respondJSON(w, http.StatusOK, comments)
}

func (h *Handler) LikePost(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.currentUserID(r); !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	postID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Post not found")
		return
	}

	liked, err := h.DB.LikePost(r.Context(), postID)
	if err != nil {
		h.respondAppError(w, err)
		return
	}
	if !liked {
		respondError(w, http.StatusNotFound, "Post not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Post liked successfully"})
}

func (h *Handler) LikeComment(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.currentUserID(r); !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	commentID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Comment not found")
		return
	}

	liked, err := h.DB.LikeComment(r.Context(), commentID)
	if err != nil {
		h.respondAppError(w, err)
		return
	}
	if !liked {
		respondError(w, http.StatusNotFound, "Comment not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Comment liked successfully"})
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	commentID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Comment not found")
		return
	}

	comment, err := h.DB.GetComment(r.Context(), commentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			respondError(w, http.StatusNotFound, "Comment not found")
			return
		}
		h.respondAppError(w, err)
		return
	}

	if comment.UserID != userID {
		respondError(w, http.StatusForbidden, "You can only delete your own comments")
		return
	}

	if _, err := h.DB.DeleteComment(r.Context(), commentID); err != nil {
		h.respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Comment deleted successfully"})
}
