package server

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/oggyb/beem-sms/internal/middleware"
	routes "github.com/oggyb/beem-sms/internal/router"
)

// Options tunes the middleware chain.
type Options struct {
	// RateLimit is the per-client request rate in requests per second. Zero disables limiting.
	RateLimit float64
	RateBurst int
	Logger    logrus.FieldLogger
}

// Server owns the underlying http.Server instance.
type Server struct {
	http *http.Server
}

// New creates a new HTTP server bound to the given address and configured
// with the provided application dependencies and middleware chain.
func New(addr string, deps routes.AppDeps, opts Options) *Server {
	mux := http.NewServeMux()
	routes.Register(mux, deps)

	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	chain := []Middleware{middleware.RequestLogger(opts.Logger)}
	if opts.RateLimit > 0 {
		burst := max(opts.RateBurst, 1)
		chain = append(chain, middleware.NewRateLimiter(rate.Limit(opts.RateLimit), burst).Middleware())
	}

	root := Chain(mux, chain...)

	return &Server{
		http: &http.Server{
			Addr:              addr,
			Handler:           root,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start runs the HTTP server and blocks until ListenAndServe returns.
func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server, waiting for in-flight
// requests to complete until the given context expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
