// Package http exposes the ledger over a JSON API.
package http

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"duit/internal/cache"
	"duit/internal/ledger"
)

// Options tunes server behaviour. Zero values fall back to sane defaults.
type Options struct {
	CacheTTL           time.Duration
	CacheMaxSize       int
	RateLimitPerMinute int
}

func (o Options) withDefaults() Options {
	if o.CacheTTL <= 0 {
		o.CacheTTL = 5 * time.Minute
	}
	if o.CacheMaxSize <= 0 {
		o.CacheMaxSize = 256
	}
	if o.RateLimitPerMinute <= 0 {
		o.RateLimitPerMinute = 120
	}
	return o
}

type Server struct {
	http.Server
	store       ledger.Store
	rateLimiter *rateLimiter

	// statsCache memoizes statistics responses between writes.
	statsCache *cache.LRUCache[StatisticsResponse]

	shutdownOnce sync.Once
}

// NewServer configures routes and middleware, returning a ready-to-run
// http.Server.
func NewServer(addr string, store ledger.Store, opts Options) *Server {
	opts = opts.withDefaults()
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		store:       store,
		rateLimiter: newRateLimiter(opts.RateLimitPerMinute),
		statsCache:  cache.NewLRUCache[StatisticsResponse](opts.CacheMaxSize, opts.CacheTTL),
	}

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", handleReady)

	mux.HandleFunc("GET /api/categories", s.withCommon(s.handleListCategories))

	mux.HandleFunc("POST /api/transactions", s.withCommon(s.handleCreateTransaction))
	mux.HandleFunc("GET /api/transactions", s.withCommon(s.handleListTransactions))
	mux.HandleFunc("DELETE /api/transactions/{id}", s.withCommon(s.handleDeleteTransaction))

	mux.HandleFunc("GET /api/calendar", s.withCommon(s.handleCalendar))

	mux.HandleFunc("GET /api/statistics", s.withCommon(s.handleStatistics))
	mux.HandleFunc("GET /api/statistics/navigate", s.withCommon(s.handleNavigate))

	mux.HandleFunc("GET /api/export", s.withCommon(s.handleExport))
	mux.HandleFunc("GET /api/export/preview", s.withCommon(s.handleExportPreview))

	mux.HandleFunc("POST /api/goals", s.withCommon(s.handleCreateGoal))
	mux.HandleFunc("GET /api/goals", s.withCommon(s.handleListGoals))
	mux.HandleFunc("GET /api/goals/{id}", s.withCommon(s.handleGetGoal))
	mux.HandleFunc("DELETE /api/goals/{id}", s.withCommon(s.handleDeleteGoal))
	mux.HandleFunc("POST /api/goals/{id}/deposits", s.withCommon(s.handleAddDeposit))
	mux.HandleFunc("POST /api/goals/{id}/complete", s.withCommon(s.handleCompleteGoal))

	return s
}

// invalidateStats drops every cached aggregate. Called after any write so
// statistics never trail the ledger.
func (s *Server) invalidateStats() {
	s.statsCache.Clear()
}

// RegisterCaches hooks the server's caches into a cleanup manager.
func (s *Server) RegisterCaches(m *cache.Manager) {
	m.Register(s.statsCache)
}

// Shutdown gracefully shuts down the server and cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

// withCommon adds request tracing, security headers, rate limiting and
// request logging.
func (s *Server) withCommon(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		clientIP := r.Header.Get("X-Forwarded-For")
		if clientIP == "" {
			clientIP = r.Header.Get("X-Real-IP")
		}
		if clientIP == "" {
			clientIP = r.RemoteAddr
		}

		requestID := generateRequestID()
		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
		r = r.WithContext(ctx)

		slog.InfoContext(ctx, "Request started",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"client_ip", clientIP)

		// Rate limit mutations only; reads are cheap and cached.
		if r.Method != http.MethodGet && !s.rateLimiter.allow(clientIP) {
			slog.WarnContext(ctx, "Rate limit exceeded", "client_ip", clientIP, "method", r.Method, "url", r.URL.Path)
			w.Header().Set("Retry-After", "60")
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		slog.InfoContext(ctx, "Request completed",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", clientIP)
	}
}

type requestIDKey struct{}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
