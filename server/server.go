package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/adrianliechti/toolify/config"
	"github.com/adrianliechti/toolify/pkg/action"
	"github.com/adrianliechti/toolify/server/api"
	"github.com/adrianliechti/toolify/server/mcp"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

const RequestIDHeader = "X-Request-Id"

type Server struct {
	http.Handler

	address string
	logger  *slog.Logger
}

func New(cfg *config.Config, service *action.Service, logger *slog.Logger, version string) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{RequestIDHeader, "Mcp-Session-Id"},
	}))

	r.Use(requestID)

	r.Get("/healthz", api.WriteHealth)

	r.Group(func(r chi.Router) {
		r.Use(limit(cfg.Server.RateLimit, cfg.Server.RateBurst))
		r.Use(logRequests(logger))

		if cfg.Server.MaxBodySize > 0 {
			r.Use(middleware.RequestSize(cfg.Server.MaxBodySize))
		}

		r.Route("/v1", api.New(service, logger).Attach)

		mcp.New(service, version).Attach(r)
	})

	return &Server{
		Handler: otelhttp.NewHandler(r, "toolify"),

		address: cfg.Address,
		logger:  logger,
	}, nil
}

// ListenAndServe serves until ctx is cancelled and then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s,

		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)

	go func() {
		s.logger.Info("server.listening", "address", s.address)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err

	case <-ctx.Done():
	}

	s.logger.Info("server.shutdown")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		srv.Close()
		return err
	}

	return nil
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)

		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, id)

		next.ServeHTTP(w, r.WithContext(action.WithRequestID(r.Context(), id)))
	})
}

func limit(rps float64, burst int) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	if burst < 1 {
		burst = 1
	}

	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				api.WriteError(w, http.StatusTooManyRequests, "too many requests, please try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func logRequests(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Info("http.request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"request_id", action.RequestID(r.Context()),
			)
		})
	}
}
