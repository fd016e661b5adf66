package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/skip2/go-qrcode"

	"linktrack/internal/model"
	"linktrack/internal/service"
)

const qrSize = 256

type linkResponse struct {
	*model.Link
	ShortURL string `json:"short_url"`
}

type linkPageResponse struct {
	Links []linkResponse `json:"links"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

func (h *Handler) CreateLink(w http.ResponseWriter, r *http.Request) {
	var in model.LinkInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	link, err := h.Links.Create(r.Context(), ownerFrom(r.Context()), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.present(link))
}

func (h *Handler) ListLinks(w http.ResponseWriter, r *http.Request) {
	pageQ := r.URL.Query().Get("page")
	limitQ := r.URL.Query().Get("limit")
	page := 1
	limit := service.DefaultPageSize
	if pageQ != "" {
		if p, err := strconv.Atoi(pageQ); err == nil {
			page = p
		}
	}
	if limitQ != "" {
		if l, err := strconv.Atoi(limitQ); err == nil {
			limit = l
		}
	}

	res, err := h.Links.List(r.Context(), ownerFrom(r.Context()), page, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	out := linkPageResponse{
		Links: make([]linkResponse, 0, len(res.Links)),
		Total: res.Total,
		Page:  res.Page,
		Limit: res.Limit,
	}
	for i := range res.Links {
		out.Links = append(out.Links, h.present(&res.Links[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) GetLink(w http.ResponseWriter, r *http.Request) {
	id, ok := linkID(w, r)
	if !ok {
		return
	}
	link, err := h.Links.Get(r.Context(), ownerFrom(r.Context()), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.present(link))
}

func (h *Handler) UpdateLink(w http.ResponseWriter, r *http.Request) {
	id, ok := linkID(w, r)
	if !ok {
		return
	}
	var patch model.LinkPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	link, err := h.Links.Update(r.Context(), ownerFrom(r.Context()), id, patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.present(link))
}

func (h *Handler) DeleteLink(w http.ResponseWriter, r *http.Request) {
	id, ok := linkID(w, r)
	if !ok {
		return
	}
	if err := h.Links.Delete(r.Context(), ownerFrom(r.Context()), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// LinkQR renders the public short URL as a PNG QR code.
func (h *Handler) LinkQR(w http.ResponseWriter, r *http.Request) {
	id, ok := linkID(w, r)
	if !ok {
		return
	}
	link, err := h.Links.Get(r.Context(), ownerFrom(r.Context()), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	png, err := qrcode.Encode(h.shortURL(link.ShortCode), qrcode.Medium, qrSize)
	if err != nil {
		slog.Error("qr encode failed", "link_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.Write(png)
}

func (h *Handler) present(link *model.Link) linkResponse {
	return linkResponse{Link: link, ShortURL: h.shortURL(link.ShortCode)}
}

func (h *Handler) shortURL(code string) string {
	return h.BaseURL + "/" + code
}

func linkID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return uuid.Nil, false
	}
	return id, true
}
