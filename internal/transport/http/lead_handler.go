package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"security-funnel-service/internal/app"
	"security-funnel-service/internal/domain"
)

// LeadHandler exposes the lead CRUD endpoints.
type LeadHandler struct {
	service *app.LeadService
	log     *zap.Logger
}

func NewLeadHandler(service *app.LeadService, log *zap.Logger) *LeadHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &LeadHandler{service: service, log: log}
}

// Create handles POST /api/leads.
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in app.LeadInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	lead, err := h.service.Create(r.Context(), in)
	if err != nil {
		if domain.IsValidation(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error("lead creation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Lead creation failed: "+err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, lead)
}

// List handles GET /api/leads?limit=N&cursor=C.
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be a number")
			return
		}
		limit = parsed
	}
	cursor := r.URL.Query().Get("cursor")

	page, err := h.service.List(r.Context(), cursor, limit)
	if err != nil {
		h.log.Error("lead listing failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "List error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// UpdateProcessed handles PATCH /api/leads/{id}.
func (h *LeadHandler) UpdateProcessed(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var body struct {
		Processed *bool `json:"processed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if body.Processed == nil {
		writeError(w, http.StatusBadRequest, "processed field must be a boolean")
		return
	}

	lead, err := h.service.SetProcessed(r.Context(), id, *body.Processed)
	if err != nil {
		if errors.Is(err, domain.ErrLeadNotFound) {
			writeError(w, http.StatusNotFound, "Not Found")
			return
		}
		h.log.Error("lead update failed", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Update failed: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

// Delete handles DELETE /api/leads/{id}. Always reports deleted=true.
func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.log.Error("lead delete failed", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Delete failed: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
