// Package server provides the HTTP REST API for the profile analyzer.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/profile-analyzer/internal/analysis"
	"github.com/jonathan/profile-analyzer/internal/config"
	"github.com/jonathan/profile-analyzer/internal/content"
	"github.com/jonathan/profile-analyzer/internal/server/middleware"
	"github.com/jonathan/profile-analyzer/internal/server/ratelimit"
	"github.com/jonathan/profile-analyzer/internal/types"
)

// ProfileExtractor turns a profile URL into a raw profile.
type ProfileExtractor interface {
	ExtractProfile(ctx context.Context, profileURL string) (*types.RawProfile, error)
}

// JobFetcher turns a posting URL into description text.
type JobFetcher interface {
	JobDescription(ctx context.Context, jobURL string) (string, error)
}

// AnalysisStore persists analyses. A nil store disables persistence.
type AnalysisStore interface {
	SaveAnalysis(ctx context.Context, profileURL string, profile *types.Profile, a *types.Analysis) (uuid.UUID, error)
	GetAnalysis(ctx context.Context, id uuid.UUID) (*types.StoredAnalysis, error)
	ListRecent(ctx context.Context, limit int) ([]types.StoredAnalysis, error)
	DeleteAnalysis(ctx context.Context, id uuid.UUID) error
}

// Deps are the collaborators the server exposes over HTTP. Analyzer and Auth
// are required; the rest degrade gracefully when nil.
type Deps struct {
	Analyzer  *analysis.Analyzer
	Auth      *config.AuthConfig
	Store     AnalysisStore
	Extractor ProfileExtractor
	Fetcher   JobFetcher
	Suggester *content.Agent
}

// Server is the HTTP server for the analyzer API.
type Server struct {
	httpServer *http.Server
	deps       Deps
	jwtService *JWTService
	limiter    *ratelimit.Limiter
}

// New wires routes and middleware around the provided collaborators.
func New(port int, deps Deps) (*Server, error) {
	if deps.Analyzer == nil {
		return nil, fmt.Errorf("server: analyzer is required")
	}
	if deps.Auth == nil {
		return nil, fmt.Errorf("server: auth configuration is required")
	}

	s := &Server{
		deps:       deps,
		jwtService: NewJWTService(deps.Auth),
		limiter:    ratelimit.NewLimiter(ratelimit.LoadConfig()),
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // scrape-backed analyses can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler builds the route tree with its middleware stack. Exposed for
// httptest.
func (s *Server) Handler() http.Handler {
	authn := middleware.Auth(s.asTokenValidator())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /auth/token", s.handleToken)
	mux.Handle("POST /analyze", authn(http.HandlerFunc(s.handleAnalyze)))
	mux.Handle("GET /analyses", authn(http.HandlerFunc(s.handleListAnalyses)))
	mux.Handle("GET /analyses/{id}", authn(http.HandlerFunc(s.handleGetAnalysis)))
	mux.Handle("DELETE /analyses/{id}", authn(http.HandlerFunc(s.handleDeleteAnalysis)))

	return s.withRateLimit(s.withLogging(s.withCORS(mux)))
}

// Start listens for requests until SIGINT/SIGTERM, then shuts down
// gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.limiter.Stop()
	log.Println("Server stopped")
	return nil
}

// asTokenValidator adapts the JWT service to the middleware interface without
// an import cycle.
func (s *Server) asTokenValidator() middleware.TokenValidator {
	return tokenValidatorFunc(func(tokenString string) (middleware.ClientIDGetter, error) {
		claims, err := s.jwtService.ValidateToken(tokenString)
		if err != nil {
			return nil, err
		}
		return claims, nil
	})
}

type tokenValidatorFunc func(string) (middleware.ClientIDGetter, error)

func (f tokenValidatorFunc) ValidateToken(tokenString string) (middleware.ClientIDGetter, error) {
	return f(tokenString)
}

func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.limiter.Allow(clientIP(r))
		if info.Limit > 0 {
			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		}
		if !allowed {
			if info.RetryAfter > 0 {
				w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
			}
			s.errorResponse(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
