package handlers

import (
	"errors"
	"net/http"

	"greengear/internal/auth"
	"greengear/internal/db"
	"greengear/internal/models"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

func userPayload(user *models.User) map[string]any {
	return map[string]any{
		"user": map[string]any{
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
	}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	data, err := decodeBody(r)
	if err != nil {
		h.respondAppError(w, err)
		return
	}

	username := stringField(data, "username")
	email := stringField(data, "email")
	password := stringField(data, "password")

	if username == "" || email == "" || auth.ValidatePassword(password) != nil {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	taken, err := h.DB.UsernameTaken(r.Context(), username)
	if err != nil {
		h.respondAppError(w, err)
		return
	}
	if taken {
		respondError(w, http.StatusBadRequest, "Username already exists")
		return
	}

	taken, err = h.DB.EmailTaken(r.Context(), email)
	if err != nil {
		h.respondAppError(w, err)
		return
	}
	if taken {
		respondError(w, http.StatusBadRequest, "Email already exists")
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		h.respondAppError(w, err)
		return
	}

	user, err := h.DB.CreateUser(r.Context(), username, email, hash)
	if err != nil {
		// Lost the race against a concurrent registration.
		if db.IsUniqueViolation(err) {
			respondError(w, http.StatusBadRequest, "Username or email already exists")
			return
		}
		h.respondAppError(w, err)
		return
	}

	if err := h.establishSession(w, r, user.ID); err != nil {
		h.Log.Error("failed to save session", zap.Error(err))
	}

	respondJSON(w, http.StatusCreated, userPayload(user))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	data, err := decodeBody(r)
	if err != nil {
		h.respondAppError(w, err)
		return
	}

	username := stringField(data, "username")
	password := stringField(data, "password")

	if username == "" || password == "" {
		respondError(w, http.StatusBadRequest, "Missing username or password")
		return
	}

	user, err := h.DB.GetUserByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			respondError(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		h.respondAppError(w, err)
		return
	}

	if err := auth.CheckPassword(password, user.PasswordHash); err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	if err := h.establishSession(w, r, user.ID); err != nil {
		h.Log.Error("failed to save session", zap.Error(err))
	}

	respondJSON(w, http.StatusOK, userPayload(user))
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearSession(w, r)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

func (h *Handler) CheckLogin(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	user, err := h.DB.GetUserByID(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	respondJSON(w, http.StatusOK, userPayload(user))
}
