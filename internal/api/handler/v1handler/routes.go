package v1handler

import (
	"net/http"
	"smartdomain/pkg/serrors"

	"github.com/go-chi/chi/v5"
)

// Routes returns the API router, to be mounted under /api.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, r, serrors.With(serrors.ErrNotFound, "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusMethodNotAllowed, envelope{Error: &ErrorBody{
			Code:    "METHOD_NOT_ALLOWED",
			Message: "method not allowed",
		}})
	})

	r.Get("/health", h.Health)
	r.With(h.optionalSession).Post("/generate", h.Generate)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", h.HealthV1)
		r.Get("/stats", h.SystemStats)
		r.Get("/generate", h.GenerateInfo)
		r.With(h.requireAPIKey).Post("/generate", h.GenerateAPI)

		r.Group(func(r chi.Router) {
			r.Use(h.requireUser)

			r.Route("/favorites", func(r chi.Router) {
				r.Get("/", h.ListFavorites)
				r.Post("/", h.CreateFavorite)
				r.Delete("/", h.DeleteFavorites)
				r.Get("/{id}", h.GetFavorite)
				r.Put("/{id}", h.UpdateFavorite)
				r.Delete("/{id}", h.DeleteFavorite)
			})

			r.Route("/history", func(r chi.Router) {
				r.Get("/", h.ListHistory)
				r.Post("/", h.CreateHistory)
				r.Delete("/", h.DeleteHistory)
				r.Get("/stats", h.HistoryStats)
				r.Get("/{id}", h.GetHistory)
			})
		})

		r.Route("/keys", func(r chi.Router) {
			r.Use(h.requireSession)

			r.Get("/", h.ListKeys)
			r.Post("/", h.CreateKey)
			r.Delete("/{id}", h.DeleteKey)
		})
	})

	return r
}
