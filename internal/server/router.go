// Package server assembles the HTTP router: JSON API under /api and the
// static front-end everywhere else.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/portfolio/portfolio-server/internal/config"
	apperrors "github.com/portfolio/portfolio-server/internal/errors"
	"github.com/portfolio/portfolio-server/internal/handler"
	"github.com/portfolio/portfolio-server/internal/httputil"
	"github.com/portfolio/portfolio-server/internal/middleware"
	"github.com/portfolio/portfolio-server/internal/model"
	"github.com/portfolio/portfolio-server/internal/service"
)

type Deps struct {
	AdminService   *service.AdminService
	ContactService *service.ContactService
	Portfolio      *model.Portfolio

	// ContactLimiter backs the per-IP contact limit. Nil or a
	// ContactRateLimit of zero disables it.
	ContactLimiter   middleware.Limiter
	ContactRateLimit int
	ContactWindow    time.Duration

	FrontendURL  string
	StaticDir    string
	IsProduction bool
}

func NewRouter(d Deps) http.Handler {
	window := d.ContactWindow
	if window <= 0 {
		window = config.ContactRateLimitWindow
	}

	healthHandler := handler.NewHealthHandler()
	adminHandler := handler.NewAdminHandler(d.AdminService)
	contactHandler := handler.NewContactHandler(d.ContactService)
	portfolioHandler := handler.NewPortfolioHandler(d.Portfolio)
	spaHandler := handler.NewSPAHandler(d.StaticDir)

	bodyLimitMiddleware := middleware.NewBodyLimitMiddleware(0)
	securityHeadersMiddleware := middleware.NewSecurityHeadersMiddleware(d.IsProduction)
	contactRateLimit := middleware.NewContactRateLimitMiddleware(d.ContactLimiter, d.ContactRateLimit, window)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(config.ServerRequestTimeout))
	r.Use(bodyLimitMiddleware.Handler)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.NewCORS(d.FrontendURL))

		r.Get("/health", healthHandler.Health)
		r.Get("/portfolio", portfolioHandler.Get)
		r.Post("/admin/login", adminHandler.Login)
		r.With(contactRateLimit.Handler).Post("/contact", contactHandler.Submit)
		r.Get("/contacts", contactHandler.List)

		r.NotFound(apiNotFound)
		r.MethodNotAllowed(apiMethodNotAllowed)
	})

	r.Group(func(r chi.Router) {
		r.Use(securityHeadersMiddleware.Handler)
		r.Get("/*", spaHandler.ServeHTTP)
		r.Head("/*", spaHandler.ServeHTTP)
	})

	r.MethodNotAllowed(apiMethodNotAllowed)

	return r
}

func apiNotFound(w http.ResponseWriter, r *http.Request) {
	httputil.WriteError(w, apperrors.NotFound("Route"))
}

func apiMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	httputil.WriteError(w, apperrors.MethodNotAllowed())
}
