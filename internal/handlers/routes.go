package handlers

import (
	"net/http"

	"greengear/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Routes builds the full route table. CORS is layered on top by the caller.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", h.Health)

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	// Logout clears the session unconditionally, so it needs no auth guard.
	r.Post("/logout", h.Logout)
	r.Get("/check_login", h.CheckLogin)

	r.Get("/messages", h.ListMessages)
	r.Get("/api/marketplace/vehicles", h.MarketplaceVehicles)
	r.Get("/posts", h.ListPosts)
	r.Get("/posts/{id}", h.GetPost)
	r.Get("/posts/{id}/comments", h.ListComments)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(h.Store))

		r.Post("/messages", h.CreateMessage)
		r.Delete("/messages/{id}", h.DeleteMessage)

		r.Get("/api/vehicles", h.ListVehicles)
		r.Post("/api/vehicles", h.AddVehicle)
		r.Put("/api/vehicles/{id}", h.UpdateVehicle)
		r.Delete("/api/vehicles/{id}", h.DeleteVehicle)

		r.Post("/trips", h.CreateTrip)
		r.Get("/trips", h.ListTrips)
		r.Post("/emissions", h.RecordEmission)
		r.Get("/emissions", h.ListEmissions)

		r.Post("/posts", h.CreatePost)
		r.Post("/posts/{id}/comments", h.AddComment)
		r.Post("/posts/{id}/like", h.LikePost)
		r.Post("/comments/{id}/like", h.LikeComment)
		r.Delete("/comments/{id}", h.DeleteComment)
	})

	return r
}
