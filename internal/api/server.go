// Package api exposes the cipher pipeline over HTTP.
//
// Routes:
//
//	POST /v1/encrypt     {text, layers} -> {text, trace}
//	POST /v1/decrypt     {text, layers} -> {text, trace}
//	POST /v1/diagram     {layers, direction?, format?} -> SVG or DOT
//	GET  /v1/algorithms  registry listing
//	GET  /healthz        liveness
//
// Errors are returned as {code, message, layer?, algorithm?}.
package api

import (
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/cipherstack/cipherstack/pkg/cache"
	errs "github.com/cipherstack/cipherstack/pkg/errors"
	"github.com/cipherstack/cipherstack/pkg/pipeline"
)

// bodyOverhead is the allowance for JSON framing and layer keys on top of
// the maximum text length.
const bodyOverhead = 16 * 1024

// Options configures a Server.
type Options struct {
	Logger *log.Logger

	// MaxInput bounds the text length in bytes.
	MaxInput int

	// DiagramCacheSize bounds the number of memoized diagrams. Zero disables
	// the cache.
	DiagramCacheSize int
}

// Server holds the API's shared dependencies.
type Server struct {
	logger   *log.Logger
	runner   *pipeline.Runner
	diagrams cache.Cache
	maxBody  int64
}

// New creates a Server.
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	maxInput := opts.MaxInput
	if maxInput <= 0 {
		maxInput = errs.DefaultMaxTextLength
	}

	runner := pipeline.NewRunner(logger.WithPrefix("pipeline"))
	runner.MaxInput = maxInput

	var store cache.Cache = cache.NewNullCache()
	if opts.DiagramCacheSize > 0 {
		store = cache.NewMemoryCache(opts.DiagramCacheSize)
	}

	return &Server{
		logger:   logger,
		runner:   runner,
		diagrams: cache.NewInstrumented(store, cache.KeyTypeDiagram),
		maxBody:  int64(maxInput) + bodyOverhead,
	}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(requestLogger(s.logger))
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", s.health)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/algorithms", s.listAlgorithms)
		r.Post("/encrypt", s.encrypt)
		r.Post("/decrypt", s.decrypt)
		r.Post("/diagram", s.diagram)
	})

	return r
}

// Close releases the diagram cache.
func (s *Server) Close() error {
	return s.diagrams.Close()
}
