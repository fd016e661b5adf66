package handler

import (
	"encoding/json"
	"net/http"
)

type registerDomainRequest struct {
	Hostname string `json:"hostname"`
}

func (h *Handler) RegisterDomain(w http.ResponseWriter, r *http.Request) {
	var req registerDomainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	d, err := h.Domains.Register(r.Context(), ownerFrom(r.Context()), req.Hostname)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, d)
}

func (h *Handler) ListDomains(w http.ResponseWriter, r *http.Request) {
	ds, err := h.Domains.List(r.Context(), ownerFrom(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ds)
}
