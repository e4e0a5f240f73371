package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/itchan-dev/mailadmin/backend/internal/handler"
	"github.com/itchan-dev/mailadmin/shared/api"
	"github.com/itchan-dev/mailadmin/shared/config"
	mw "github.com/itchan-dev/mailadmin/shared/middleware"
	"github.com/itchan-dev/mailadmin/shared/middleware/metrics"
	"github.com/itchan-dev/mailadmin/shared/utils"
)

// New creates the chi router with all the routes of the API.
func New(h *handler.Handler, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(metrics.Middleware)
	r.Use(mw.SecurityHeaders(cfg.Public.SecureHeaders))
	if cfg.Public.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.Public.RequestTimeout))
	}

	// CORS for the admin UI, credentials allowed
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Origins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusNotFound, api.ErrorResponse{Error: "Route not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusMethodNotAllowed, api.ErrorResponse{Error: "Method not allowed"})
	})

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/dominios", func(r chi.Router) {
			r.Get("/", h.GetDominios)
			r.Post("/", h.CreateDominio)
			r.Get("/{id}", h.GetDominio)
			r.Put("/{id}", h.UpdateDominio)
			r.Delete("/{id}", h.DeleteDominio)
			r.Patch("/{id}/activate", h.ActivateDominio)
			r.Patch("/{id}/deactivate", h.DeactivateDominio)
		})

		r.Route("/areas", func(r chi.Router) {
			r.Get("/", h.GetAreas)
			r.Post("/", h.CreateArea)
			r.Get("/{id}", h.GetArea)
			r.Put("/{id}", h.UpdateArea)
			r.Delete("/{id}", h.DeleteArea)
		})

		r.Route("/correos", func(r chi.Router) {
			r.Get("/", h.GetCorreos)
			r.Post("/", h.CreateCorreo)
			r.Get("/{id}", h.GetCorreo)
			r.Put("/{id}", h.UpdateCorreo)
			r.Delete("/{id}", h.DeleteCorreo)
		})
	})

	return r
}
