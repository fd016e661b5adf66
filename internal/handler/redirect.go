package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"linktrack/internal/service"
)

const (
	msgPasswordMissing = "Password is required"
	msgWrongPassword   = "Invalid password. Please try again."
)

type passwordRequiredResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Slug    string `json:"slug"`
}

type unlockResponse struct {
	Success     bool   `json:"success"`
	RedirectURL string `json:"redirectUrl"`
}

// Redirect serves GET for a short code. Browsers follow it directly, so
// missing and expired links redirect to their pages.
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	lookup := service.Lookup{
		ShortCode: mux.Vars(r)["shortCode"],
		Host:      r.Host,
		ClientIP:  clientIP(r),
	}

	res, err := h.Resolver.Resolve(r.Context(), lookup)
	if err != nil {
		writeResolveError(w, err)
		return
	}

	switch res.Outcome {
	case service.OutcomeRedirect:
		http.Redirect(w, r, res.URL, http.StatusFound)
	case service.OutcomePasswordRequired:
		writeJSON(w, http.StatusUnauthorized, passwordRequiredResponse{
			Error:   "password_required",
			Message: "This link is password protected",
			Slug:    res.ShortCode,
		})
	case service.OutcomeExpired:
		http.Redirect(w, r, h.ExpiredPath, http.StatusFound)
	default:
		http.Redirect(w, r, h.NotFoundPath, http.StatusFound)
	}
}

// SubmitPassword serves POST with form fields password and domain. Every
// outcome is JSON; the caller navigates to redirectUrl itself.
func (h *Handler) SubmitPassword(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form body")
		return
	}
	host := r.PostForm.Get("domain")
	if host == "" {
		host = r.Host
	}
	lookup := service.Lookup{
		ShortCode: mux.Vars(r)["shortCode"],
		Host:      host,
		ClientIP:  clientIP(r),
	}

	res, err := h.Resolver.ResolveWithPassword(r.Context(), lookup, r.PostForm.Get("password"))
	if err != nil {
		writeResolveError(w, err)
		return
	}

	switch res.Outcome {
	case service.OutcomeRedirect:
		writeJSON(w, http.StatusOK, unlockResponse{Success: true, RedirectURL: res.URL})
	case service.OutcomePasswordRequired:
		writeError(w, http.StatusBadRequest, msgPasswordMissing)
	case service.OutcomeWrongPassword:
		writeError(w, http.StatusUnauthorized, msgWrongPassword)
	case service.OutcomeRateLimited:
		writeError(w, http.StatusTooManyRequests, "too_many_attempts")
	case service.OutcomeExpired:
		writeError(w, http.StatusGone, "expired")
	default:
		writeError(w, http.StatusNotFound, "not_found")
	}
}

// writeResolveError never exposes the cause; it is logged by the resolver.
func writeResolveError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrIntegrityFault) {
		writeError(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	if !errors.Is(err, service.ErrStoreUnavailable) {
		slog.Error("unexpected resolve error", "error", err)
	}
	writeError(w, http.StatusServiceUnavailable, "service_unavailable")
}
