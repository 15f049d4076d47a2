package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/sessions"
)

// SessionName is the cookie name the session store reads and writes. Handlers
// and middleware must agree on it or the guard sees every caller as anonymous.
const SessionName = "session"

// RequireAuth rejects requests that carry no logged-in session.
func RequireAuth(store *sessions.CookieStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, _ := store.Get(r, SessionName)
			userID := session.Values["user_id"]

			if userID == nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
