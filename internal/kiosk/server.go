package kiosk

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Server exposes the board, health and metrics over HTTP
type Server struct {
	log        *zap.SugaredLogger
	httpServer *http.Server
	listener   net.Listener
}

// NewServer creates a kiosk server listening on addr (e.g. ":8080")
func NewServer(addr string, board *Board, gatherer prometheus.Gatherer, log *zap.SugaredLogger) *Server {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	log = log.Named("kiosk")
	return &Server{
		log: log,
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(board, gatherer, log),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// NewRouter builds the route table
func NewRouter(board *Board, gatherer prometheus.Gatherer, log *zap.SugaredLogger) *chi.Mux {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(log))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok")) //nolint:errcheck // best-effort health response
	})
	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/status", HandleStatus(board))
		r.Route("/carousels", func(r chi.Router) {
			r.Get("/", HandleListCarousels(board))
			r.Get("/{name}", HandleGetCarousel(board))
		})
	})
	return r
}

// HandleStatus returns the whole board
func HandleStatus(board *Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, board.Snapshot())
	}
}

// HandleListCarousels returns every known carousel
func HandleListCarousels(board *Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, board.Snapshot().Carousels)
	}
}

// HandleGetCarousel returns one carousel by name
func HandleGetCarousel(board *Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		s, ok := board.Carousel(name)
		if !ok {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, map[string]string{"error": fmt.Sprintf("unknown carousel %q", name)})
			return
		}
		render.JSON(w, r, s)
	}
}

// requestLogger logs through zap; chi's default logger writes to stdout,
// which the UI owns.
func requestLogger(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Debugw("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()))
		})
	}
}

// Start binds the listener and serves in the background. Bind errors are
// returned directly; later serve errors arrive on the channel.
func (s *Server) Start() (<-chan error, error) {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return nil, fmt.Errorf("kiosk listen: %w", err)
	}
	s.listener = ln
	s.log.Infow("kiosk listening", "addr", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("kiosk server: %w", err)
		}
		close(errCh)
	}()
	return errCh, nil
}

// Addr returns the bound address once started
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.httpServer.Addr
	}
	return s.listener.Addr().String()
}

// Shutdown gracefully stops the server, waiting for active connections
// to complete or until the context is cancelled.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
