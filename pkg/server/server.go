package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/treestore-dev/treestore/pkg/store"
)

// tracerName identifies the server's OpenTelemetry tracer.
const tracerName = "treestore"

// Server serves one store over HTTP and WebSocket.
type Server struct {
	store  *store.Store
	logger *slog.Logger
	tracer trace.Tracer

	gatherer prometheus.Gatherer

	router chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTracerProvider sets the provider backing the server's tracer.
// Defaults to the global otel provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Server) {
		if tp != nil {
			s.tracer = tp.Tracer(tracerName)
		}
	}
}

// WithGatherer sets the Prometheus gatherer behind /metrics.
// Defaults to prometheus.DefaultGatherer.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		if g != nil {
			s.gatherer = g
		}
	}
}

// New wires a server around st.
func New(st *store.Store, opts ...Option) *Server {
	s := &Server{
		store:    st,
		logger:   slog.Default(),
		tracer:   otel.Tracer(tracerName),
		gatherer: prometheus.DefaultGatherer,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]any{"status": "ok"})
	})

	r.Get("/state", s.handleGetState)
	r.Get("/state/{path}", s.handleGetPath)
	r.Patch("/state", s.handleSetPartial)
	r.Post("/flush", s.handleFlush)
	r.Post("/reset", s.handleReset)
	r.Get("/subscribe", s.handleSubscribe)

	r.Method(http.MethodGet, "/metrics",
		promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	return r
}

// Handler returns the server's HTTP handler, for mounting or testing.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("treestore server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
