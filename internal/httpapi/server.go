// Package httpapi fronts the assessment engine with a thin JSON API
// mirroring the offline operations one-to-one: category listing, quiz
// assembly, grading and certificate download. All semantics live in the
// engine packages; handlers only translate requests and map errors.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/quizcert/quizcert/internal/bank"
	"github.com/quizcert/quizcert/internal/cert"
	"github.com/quizcert/quizcert/internal/envinfo"
	"github.com/quizcert/quizcert/internal/store"
)

// Server wires the engine to HTTP. The bank is loaded once by the caller
// and treated as read-only for the server's lifetime.
type Server struct {
	cfg      Config
	bank     *bank.Bank
	attempts *store.AttemptStore
	renderer *cert.Renderer
	locator  envinfo.Locator
	log      *slog.Logger
}

// New creates a server around a loaded bank.
func New(cfg Config, b *bank.Bank, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	opts := cert.DefaultOptions()
	if cfg.CertTitle != "" {
		opts.Title = cfg.CertTitle
	}
	s := &Server{
		cfg:      cfg,
		bank:     b,
		attempts: store.NewAttemptStore(),
		renderer: cert.NewRenderer(opts),
		log:      logger,
	}
	if cfg.LocateEndpoint != "" {
		s.locator = &envinfo.HTTPLocator{Endpoint: cfg.LocateEndpoint}
	}
	return s
}

// Router builds the chi router with CORS, security headers, rate limiting
// and request logging.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(securityHeaders)
	if s.cfg.RateLimit > 0 {
		r.Use(newRateLimiter(s.cfg.RateLimit).middleware)
	}
	r.Use(s.requestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/api/categories", s.handleCategories)
	r.Get("/api/generate-quiz", s.handleGenerateQuiz)
	r.Post("/api/submit", s.handleSubmit)
	r.Get("/api/certificate", s.handleCertificate)

	return r
}
