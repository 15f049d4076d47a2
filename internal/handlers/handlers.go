package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"greengear/internal/apperr"
	"greengear/internal/db"
	"greengear/internal/middleware"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const sessionName = middleware.SessionName

type Handler struct {
	DB    *db.Database
	Store *sessions.CookieStore
	Log   *zap.Logger
}

func New(database *db.Database, store *sessions.CookieStore, log *zap.Logger) *Handler {
	return &Handler{
		DB:    database,
		Store: store,
		Log:   log,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.Ping(r.Context()); err != nil {
		h.Log.Error("health check failed", zap.Error(err))
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondAppError renders an application error, logging the wrapped cause
// server-side so the client only ever sees the opaque message.
func (h *Handler) respondAppError(w http.ResponseWriter, err error) {
	appErr := apperr.From(err)
	if appErr.Err != nil {
		h.Log.Error("request failed", zap.Error(appErr.Err))
	}
	respondError(w, appErr.StatusCode, appErr.Message)
}

// currentUserID reads the caller's identity from the session cookie.
func (h *Handler) currentUserID(r *http.Request) (int, bool) {
	session, _ := h.Store.Get(r, sessionName)
	userID, ok := session.Values["user_id"].(int)
	return userID, ok
}

func (h *Handler) establishSession(w http.ResponseWriter, r *http.Request, userID int) error {
	session, _ := h.Store.Get(r, sessionName)
	session.Values["user_id"] = userID
	return session.Save(r, w)
}

func (h *Handler) clearSession(w http.ResponseWriter, r *http.Request) {
	session, _ := h.Store.Get(r, sessionName)
	// Drop the identity as well as expiring the cookie; an expired cookie
	// replayed by a client must not still decode to a logged-in session.
	delete(session.Values, "user_id")
	session.Options.MaxAge = -1
	session.Save(r, w)
}

// decodeBody parses a JSON object body. Handlers work on the raw map so that
// required-field checks and partial updates can distinguish absent fields
// from zero values.
func decodeBody(r *http.Request) (map[string]any, error) {
	var data map[string]any
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		return nil, apperr.Validation("Invalid JSON body")
	}
	return data, nil
}

func hasFields(data map[string]any, fields ...string) bool {
	for _, f := range fields {
		if _, ok := data[f]; !ok {
			return false
		}
	}
	return true
}

func stringField(data map[string]any, key string) string {
	s, _ := data[key].(string)
	return s
}

func optionalString(data map[string]any, key string) *string {
	if s, ok := data[key].(string); ok && s != "" {
		return &s
	}
	return nil
}

// floatField coerces a JSON number or numeric string to float64.
func floatField(data map[string]any, key string) (float64, bool) {
	switch v := data[key].(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func intField(data map[string]any, key string) (int, bool) {
	f, ok := floatField(data, key)
	return int(f), ok
}

var timestampLayouts = []string{time.RFC3339, "2006-01-02T15:04:05"}

// parseTimestamp accepts RFC 3339 and the zone-less ISO form clients of the
// original API send.
func parseTimestamp(value string) (time.Time, error) {
	var firstErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return parseTimestamp(value)
}
