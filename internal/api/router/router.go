package router

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/moksh009/topedge-site-sub001/internal/booking"
	"github.com/moksh009/topedge-site-sub001/internal/contact"
	httpmiddleware "github.com/moksh009/topedge-site-sub001/internal/http/middleware"
	"github.com/moksh009/topedge-site-sub001/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	BookingHandler     *booking.Handler
	ContactHandler     *contact.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", healthCheck)

		if cfg.BookingHandler != nil {
			api.Post("/create-meeting", cfg.BookingHandler.CreateMeeting)
			api.Get("/booked-slots", cfg.BookingHandler.BookedSlots)
		}

		if cfg.ContactHandler != nil {
			api.Post("/send-user-email", cfg.ContactHandler.SendUserEmail)
			api.Post("/send-admin-email", cfg.ContactHandler.SendAdminEmail)
			api.Post("/send-contact-user-email", cfg.ContactHandler.SendContactUserEmail)
			api.Post("/send-contact-admin-email", cfg.ContactHandler.SendContactAdminEmail)
			api.Post("/send-maintenance-user-email", cfg.ContactHandler.SendMaintenanceUserEmail)
			api.Post("/send-maintenance-admin-email", cfg.ContactHandler.SendMaintenanceAdminEmail)
		}
	})

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
