package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"linktrack/internal/model"
	"linktrack/internal/ratelimit"
	"linktrack/internal/service"
)

type LinkManager interface {
	Create(ctx context.Context, owner uuid.UUID, in model.LinkInput) (*model.Link, error)
	Get(ctx context.Context, owner, id uuid.UUID) (*model.Link, error)
	List(ctx context.Context, owner uuid.UUID, page, limit int) (*service.LinkPage, error)
	Update(ctx context.Context, owner, id uuid.UUID, patch model.LinkPatch) (*model.Link, error)
	Delete(ctx context.Context, owner, id uuid.UUID) error
}

type DomainManager interface {
	Register(ctx context.Context, owner uuid.UUID, hostname string) (*model.Domain, error)
	List(ctx context.Context, owner uuid.UUID) ([]model.Domain, error)
}

type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	Resolver    service.Resolver
	Links       LinkManager
	Domains     DomainManager
	Auth        *Middleware
	RateLimiter ratelimit.Limiter
	DB          Pinger

	BaseURL      string
	NotFoundPath string
	ExpiredPath  string

	// TrustProxy takes the client address from X-Forwarded-For and
	// X-Real-IP. Leave it off unless every request comes through a proxy
	// that overwrites those headers; otherwise clients pick their own
	// rate-limit keys.
	TrustProxy bool
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func (h *Handler) Routes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", h.Healthz).Methods("GET")

	r.HandleFunc("/api/redirect/{shortCode}", h.Redirect).Methods("GET")
	r.HandleFunc("/api/redirect/{shortCode}", h.SubmitPassword).Methods("POST")

	r.HandleFunc("/api/links", h.Auth.Require(h.RateLimitMiddleware(h.CreateLink))).Methods("POST")
	r.HandleFunc("/api/links", h.Auth.Require(h.ListLinks)).Methods("GET")
	r.HandleFunc("/api/links/{id}", h.Auth.Require(h.GetLink)).Methods("GET")
	r.HandleFunc("/api/links/{id}", h.Auth.Require(h.UpdateLink)).Methods("PATCH")
	r.HandleFunc("/api/links/{id}", h.Auth.Require(h.DeleteLink)).Methods("DELETE")
	r.HandleFunc("/api/links/{id}/qr", h.Auth.Require(h.LinkQR)).Methods("GET")
	r.HandleFunc("/api/domains", h.Auth.Require(h.RegisterDomain)).Methods("POST")
	r.HandleFunc("/api/domains", h.Auth.Require(h.ListDomains)).Methods("GET")

	// registered ahead of the alias so the pages never resolve as codes
	if strings.HasPrefix(h.NotFoundPath, "/") {
		r.HandleFunc(h.NotFoundPath, h.NotFoundPage).Methods("GET")
	}
	if strings.HasPrefix(h.ExpiredPath, "/") {
		r.HandleFunc(h.ExpiredPath, h.ExpiredPage).Methods("GET")
	}
	r.HandleFunc("/{shortCode}", h.Redirect).Methods("GET")

	r.Use(accessLog)
	if h.TrustProxy {
		return handlers.ProxyHeaders(r)
	}
	return r
}

func (h *Handler) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "not_found")
}

func (h *Handler) ExpiredPage(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusGone, "expired")
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := h.DB.PingContext(ctx); err != nil {
		slog.Error("health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// RateLimitMiddleware limits requests per client IP.
func (h *Handler) RateLimitMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ok, err := h.RateLimiter.Allow(r.Context(), "ip:"+clientIP(r))
		if err != nil {
			slog.Warn("rate limiter unavailable", "error", err)
		} else if !ok {
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	}
}

func accessLog(next http.Handler) http.Handler {
	return handlers.CustomLoggingHandler(io.Discard, next, func(_ io.Writer, p handlers.LogFormatterParams) {
		slog.Info("request",
			"method", p.Request.Method,
			"path", p.URL.Path,
			"status", p.StatusCode,
			"bytes", p.Size,
			"duration", time.Since(p.TimeStamp))
	})
}

// clientIP is the socket peer, or the forwarded client when TrustProxy let
// handlers.ProxyHeaders rewrite RemoteAddr.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeServiceError maps owner API errors to status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Message, Field: verr.Field})
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, service.ErrShortCodeExists):
		writeError(w, http.StatusConflict, "short code already exists")
	case errors.Is(err, service.ErrHostnameExists):
		writeError(w, http.StatusConflict, "hostname already registered")
	case errors.Is(err, service.ErrCredentialConflict):
		writeError(w, http.StatusConflict, "password was changed concurrently, retry")
	default:
		slog.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
