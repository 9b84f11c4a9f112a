package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/angeloszaimis/libtranslate/pkg/translate"
)

type Detector interface {
	Detect(ctx context.Context, text string) (translate.Language, error)
	Backends() []translate.BackendInfo
}

type Translator interface {
	Translate(ctx context.Context, text string, source, target translate.Language) (translate.Translation, error)
	Backends() []translate.BackendInfo
}

type TranslateHandler struct {
	logger     *slog.Logger
	detector   Detector
	translator Translator
}

type detectResponse struct {
	Language string `json:"language"`
	Name     string `json:"name"`
}

type translateResponse struct {
	Text   string `json:"text"`
	Source string `json:"source,omitempty"`
	Target string `json:"target"`
}

type backendsResponse struct {
	Detector   []translate.BackendInfo `json:"detector"`
	Translator []translate.BackendInfo `json:"translator"`
}

type errorResponse struct {
	Error        string `json:"error"`
	RetryAfterMs int64  `json:"retry_after_ms,omitempty"`
}

func NewTranslateHandler(logger *slog.Logger, detector Detector, translator Translator) *TranslateHandler {
	return &TranslateHandler{
		logger:     logger,
		detector:   detector,
		translator: translator,
	}
}

// Detect serves GET /v1/detect?q=.
func (h *TranslateHandler) Detect(w http.ResponseWriter, r *http.Request) {
	h.logRequest(r)

	text := r.URL.Query().Get("q")
	if text == "" {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing query parameter q"})
		return
	}

	lang, err := h.detector.Detect(r.Context(), text)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, detectResponse{Language: lang.Code(), Name: lang.String()})
}

// Translate serves GET /v1/translate?q=&sl=&tl=. The source defaults to auto.
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	h.logRequest(r)

	query := r.URL.Query()
	text := query.Get("q")
	if text == "" {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing query parameter q"})
		return
	}

	sl := query.Get("sl")
	if sl == "" {
		sl = translate.Auto.Code()
	}
	source, ok := translate.ParseLanguage(sl)
	if !ok {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown source language " + strconv.Quote(sl)})
		return
	}

	tl := query.Get("tl")
	target, ok := translate.ParseLanguage(tl)
	if !ok {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown target language " + strconv.Quote(tl)})
		return
	}

	res, err := h.translator.Translate(r.Context(), text, source, target)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, translateResponse{
		Text:   res.Text,
		Source: res.Source.Code(),
		Target: res.Target.Code(),
	})
}

// Backends serves GET /v1/backends.
func (h *TranslateHandler) Backends(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, backendsResponse{
		Detector:   h.detector.Backends(),
		Translator: h.translator.Backends(),
	})
}

// Health serves GET /health.
func (h *TranslateHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *TranslateHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var noAvailable *translate.NoAvailableError

	switch {
	case errors.As(err, &noAvailable):
		h.logger.Warn("No backend available",
			slog.String("request_id", RequestIDFrom(r.Context())),
			slog.String("path", r.URL.Path),
			slog.Duration("wait", noAvailable.Wait))

		w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(noAvailable.Wait.Seconds()))))
		h.writeJSON(w, http.StatusServiceUnavailable, errorResponse{
			Error:        err.Error(),
			RetryAfterMs: noAvailable.Wait.Milliseconds(),
		})

	case errors.Is(err, translate.ErrTargetIsAuto),
		errors.Is(err, translate.ErrTargetEqualsSource),
		errors.Is(err, translate.ErrUnknownLanguage):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.writeJSON(w, http.StatusGatewayTimeout, errorResponse{Error: err.Error()})

	default:
		h.logger.Error("Request failed",
			slog.String("request_id", RequestIDFrom(r.Context())),
			slog.String("path", r.URL.Path),
			slog.Any("err", err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}

func (h *TranslateHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Failed to encode response", slog.Any("err", err))
	}
}

func (h *TranslateHandler) logRequest(r *http.Request) {
	h.logger.Info("Received request",
		slog.String("request_id", RequestIDFrom(r.Context())),
		slog.String("from", extractClientIP(r)),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("user_agent", r.UserAgent()))
}

func extractClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}

	host, _, _ := net.SplitHostPort(r.RemoteAddr)
	return host
}
