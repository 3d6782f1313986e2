package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/taskfarm/internal/apidocs"
	"github.com/osse101/taskfarm/internal/eventlog"
	"github.com/osse101/taskfarm/internal/handler"
	"github.com/osse101/taskfarm/internal/logger"
	"github.com/osse101/taskfarm/internal/metrics"
	"github.com/osse101/taskfarm/internal/sse"
)

// Config holds HTTP-level settings
type Config struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	RateLimit      int
	RateWindow     time.Duration
	MaxBodyBytes   int64
}

// Dependencies are the services the routes are bound to
type Dependencies struct {
	Sessions handler.SessionStore
	Catalog  handler.CropLister
	EventLog eventlog.Service
	Hub      *sse.Hub
	// Ready lists dependencies checked by /readyz
	Ready []handler.Pinger
}

// Server hosts the farm HTTP API
type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(cfg Config, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           NewRouter(cfg, deps),
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
		},
	}
}

// NewRouter builds the chi router with the full middleware stack
func NewRouter(cfg Config, deps Dependencies) chi.Router {
	r := chi.NewRouter()

	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}
	limiter := NewRateLimiter(cfg.RateLimit, cfg.RateWindow)

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(AuthMiddleware(cfg.APIKey, cfg.TrustedProxies, limiter))
	r.Use(RateLimitMiddleware(cfg.TrustedProxies, limiter))
	r.Use(RequestSizeLimitMiddleware(maxBody))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Ready...))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	if deps.Hub != nil {
		r.Get("/events", sse.Handler(deps.Hub))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/crops", handler.HandleListCrops(deps.Catalog))
		if deps.EventLog != nil {
			r.Get("/events", handler.HandleRecentEvents(deps.EventLog))
		}

		farmHandler := handler.NewFarmHandler(deps.Sessions)
		r.Post("/sessions", farmHandler.HandleCreateSession)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Delete("/", farmHandler.HandleDeleteSession)
			r.Get("/state", farmHandler.HandleGetState)
			r.Put("/weather", farmHandler.HandleSetWeather)
			r.Put("/season", farmHandler.HandleSetSeason)

			r.Route("/plots/{plot}", func(r chi.Router) {
				r.Post("/plant", farmHandler.HandlePlant)
				r.Post("/accelerate", farmHandler.HandleAccelerate)
				r.Post("/harvest", farmHandler.HandleHarvest)
			})
		})
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush keeps the SSE stream working through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start serves until Stop is called. A graceful shutdown is not reported as an error.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
