package handler

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/amitiii/udaan-next-gen-translator-api/internal/config"
	"github.com/amitiii/udaan-next-gen-translator-api/internal/domain"
	"github.com/amitiii/udaan-next-gen-translator-api/internal/repository"
	"github.com/amitiii/udaan-next-gen-translator-api/internal/services/translate"
	"github.com/amitiii/udaan-next-gen-translator-api/pkg/logger"
	"go.uber.org/zap"
)

// TranslateHandler handles HTTP requests for translation operations.
type TranslateHandler struct {
	service   *translate.Service
	statsRepo *repository.TranslationLogRepository // nil when the database is disabled
	startedAt time.Time
}

// NewTranslateHandler creates a new translation handler.
func NewTranslateHandler(service *translate.Service, statsRepo *repository.TranslationLogRepository, startedAt time.Time) *TranslateHandler {
	return &TranslateHandler{
		service:   service,
		statsRepo: statsRepo,
		startedAt: startedAt,
	}
}

// TranslationRequest is the body for POST /translate and POST /detect.
type TranslationRequest struct {
	Text       string `json:"text"`
	TargetLang string `json:"target_lang"`
}

// BulkTranslationRequest is the body for POST /translate/bulk.
type BulkTranslationRequest struct {
	Texts      []string `json:"texts"`
	TargetLang string   `json:"target_lang"`
}

// Translate handles POST /translate.
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req TranslationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	outcome, err := h.service.Translate(r.Context(), req.Text, req.TargetLang, clientContext(r))
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, outcome)
}

// TranslateBulk handles POST /translate/bulk.
func (h *TranslateHandler) TranslateBulk(w http.ResponseWriter, r *http.Request) {
	var req BulkTranslationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	batch, err := h.service.TranslateBulk(r.Context(), req.Texts, req.TargetLang, clientContext(r))
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, batch)
}

// Detect handles POST /detect.
func (h *TranslateHandler) Detect(w http.ResponseWriter, r *http.Request) {
	var req TranslationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.Detect(r.Context(), req.Text)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Languages handles GET /languages.
func (h *TranslateHandler) Languages(w http.ResponseWriter, r *http.Request) {
	languages, err := h.service.Languages(r.Context())
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"languages": languages,
		"total":     len(languages),
	})
}

// Health handles GET /health.
func (h *TranslateHandler) Health(w http.ResponseWriter, r *http.Request) {
	languages, err := h.service.Languages(r.Context())
	if err != nil {
		// Catalog trouble does not make the process unhealthy.
		languages = h.service.Backend().SupportedLanguages()
	}

	uptime := time.Since(h.startedAt).Truncate(time.Second)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":           "ok",
		"version":          config.Version,
		"uptime":           uptime.String(),
		"backend":          h.service.Backend().Name(),
		"language_support": languages,
	})
}

// Stats handles GET /stats.
func (h *TranslateHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if h.statsRepo == nil {
		writeError(w, http.StatusServiceUnavailable, "statistics are disabled: no database configured")
		return
	}

	stats, err := h.statsRepo.Stats(r.Context())
	if err != nil {
		logger.Base().Error("failed to load translation stats", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load statistics")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// statusForError maps the validation error taxonomy to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidFormat),
		errors.Is(err, domain.ErrEmptyText),
		errors.Is(err, domain.ErrTextTooLong),
		errors.Is(err, domain.ErrTooManyTexts),
		errors.Is(err, domain.ErrUnsupportedLanguage):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrCatalogUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func clientContext(r *http.Request) translate.ClientContext {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return translate.ClientContext{IP: host}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Base().Error("failed to encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
