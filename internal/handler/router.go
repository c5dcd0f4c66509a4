package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/bookpoint/bookpoint/internal/auth"
	"github.com/bookpoint/bookpoint/pkg/jwt"
)

// Router builds the HTTP surface: the auth flows, the JWT-protected home
// route, and a root liveness endpoint.
func Router(cfg Config, svc *auth.Service, tokens *jwt.Service, healthcheck func(context.Context) error, log *slog.Logger) http.Handler {
	h := &handlers{svc: svc, healthcheck: healthcheck, logger: log}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Post("/register", h.register)
	r.Post("/login", h.login)
	r.Post("/forgot-password", h.forgotPassword)
	r.Post("/reset-password/{token}", h.resetPassword)

	r.Group(func(protected chi.Router) {
		protected.Use(jwt.Middleware(tokens))
		protected.Get("/home", h.home)
	})

	r.Get("/", h.root)

	return r
}
