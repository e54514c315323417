package router

import (
	"net/http"

	"wandshop-api/internal/handler"
	"wandshop-api/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Config holds the configuration for creating a router.
type Config struct {
	Handler          *handler.Handler
	WandHandler      *handler.WandHandler
	CustomerHandler  *handler.CustomerHandler
	InventoryHandler *handler.InventoryHandler
	DeliveryHandler  *handler.DeliveryHandler
	SalesHandler     *handler.SalesHandler
	ReferenceHandler *handler.ReferenceHandler
	AdminHandler     *handler.AdminHandler
	AuthMiddleware   func(http.Handler) http.Handler
}

// New creates and configures the HTTP router.
func New(cfg Config) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware stack (applies to ALL routes)
	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "X-API-Key"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	if cfg.Handler != nil {
		r.Get("/api/status", cfg.Handler.Status)
	}

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.Handler != nil {
			r.Get("/health", cfg.Handler.Health)
			r.Get("/ready", cfg.Handler.Ready)
		}

		if h := cfg.WandHandler; h != nil {
			r.Route("/wands", func(r chi.Router) {
				r.Get("/", h.List)
				r.Post("/", h.Create)
				r.Get("/{id}", h.Get)
				r.Put("/{id}", h.Update)
				r.Delete("/{id}", h.Delete)
				r.Get("/{id}/details", h.Details)
			})
		}

		if h := cfg.CustomerHandler; h != nil {
			r.Route("/customers", func(r chi.Router) {
				r.Get("/", h.List)
				r.Post("/", h.Create)
				r.Get("/license/validate", h.ValidateLicense)
				r.Get("/{id}", h.Get)
				r.Put("/{id}", h.Update)
				r.Delete("/{id}", h.Delete)
			})
		}

		if h := cfg.InventoryHandler; h != nil {
			r.Route("/inventory", func(r chi.Router) {
				r.Get("/", h.List)
				r.Post("/adjust", h.Adjust)
				r.Get("/{kind}/{id}", h.GetQuantity)
			})
		}

		if h := cfg.DeliveryHandler; h != nil {
			r.Route("/deliveries", func(r chi.Router) {
				r.Get("/", h.List)
				r.Post("/", h.Record)
				r.Get("/{id}", h.Get)
			})
		}

		if h := cfg.SalesHandler; h != nil {
			r.Get("/sales", h.List)
			r.Post("/sales", h.Purchase)
		}

		if h := cfg.ReferenceHandler; h != nil {
			r.Get("/wood-types", h.WoodTypes)
			r.Get("/wood-types/lookup", h.LookupWood)
			r.Get("/cores", h.Cores)
			r.Get("/cores/lookup", h.LookupCore)
		}

		// Admin endpoints sit behind the API-key middleware.
		if h := cfg.AdminHandler; h != nil {
			r.Group(func(r chi.Router) {
				if cfg.AuthMiddleware != nil {
					r.Use(cfg.AuthMiddleware)
				}
				r.Route("/admin", func(r chi.Router) {
					r.Get("/stats", h.GetStats)
					r.Post("/reset", h.Reset)
					r.Post("/seed", h.Seed)
				})
			})
		}
	})

	return r
}
