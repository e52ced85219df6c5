package router

import (
	"net/http"

	"github.com/EmiDanGuerrero/Sample-account-bank-service/internal/application"
	"github.com/EmiDanGuerrero/Sample-account-bank-service/internal/domain"
	"github.com/EmiDanGuerrero/Sample-account-bank-service/internal/infrastructure/config"
	"github.com/EmiDanGuerrero/Sample-account-bank-service/internal/infrastructure/selfclient"
	"github.com/EmiDanGuerrero/Sample-account-bank-service/internal/interfaces/http/handlers"
	"github.com/EmiDanGuerrero/Sample-account-bank-service/internal/interfaces/http/middleware/ratelimit"
	"github.com/EmiDanGuerrero/Sample-account-bank-service/internal/interfaces/http/middleware/requestcontext"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type Router struct {
	router *chi.Mux
}

// NewRouter wires the lifecycle service, the loopback summary client and
// the REST handlers onto a chi mux. The repository is injected so the
// storage adapter stays a deployment decision.
func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	accountRepo domain.AccountRepository,
) *Router {
	rateLimiter := ratelimit.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.RateLimitTTL)

	accountService := application.NewAccountService(accountRepo, logger)
	selfClient := selfclient.New(cfg.SelfBaseURL, logger)
	summaryService := application.NewSummaryService(selfClient, logger)

	accountHandler := handlers.NewAccountHandler(accountService, summaryService, logger)

	router := createRouter(cfg)
	router.Use(rateLimiter.Middleware)

	// Health check endpoints
	router.Group(func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("OK"))
		})

		r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("Ready"))
		})

		r.Get("/health/live", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("Alive"))
		})
	})

	// Swagger UI configuration
	router.Get("/swagger/*", swagger.Handler(
		swagger.URL("/swagger/doc.json"),
		swagger.DocExpansion("list"),
		swagger.DomID("swagger-ui"),
		swagger.DeepLinking(true),
	))

	router.Get("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		http.ServeFile(w, r, "docs/swagger.json")
	})

	router.Route("/api/v1/accounts", func(r chi.Router) {
		r.Post("/", accountHandler.CreateAccountHandler)
		r.Get("/", accountHandler.ListAccountsHandler)
		r.Get("/{id}", accountHandler.GetAccountHandler)
		r.Get("/{id}/summary", accountHandler.GetAccountSummaryHandler)
		r.Put("/{id}", accountHandler.UpdateAccountHandler)
		r.Delete("/{id}", accountHandler.DeleteAccountHandler)
	})

	return &Router{router: router}
}

func createRouter(cfg *config.Config) *chi.Mux {
	router := chi.NewRouter()

	// RequestContextMiddleware first so the request is in the context for
	// error payloads.
	router.Use(requestcontext.Middleware)

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Timeout(cfg.RequestTimeout))

	return router
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
