package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/adrianliechti/toolify/pkg/action"
	"github.com/adrianliechti/toolify/pkg/errdefs"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service *action.Service
	logger  *slog.Logger
}

func New(service *action.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		service: service,
		logger:  logger,
	}
}

func (h *Handler) Attach(r chi.Router) {
	r.Post("/background", h.handleBackground)
	r.Post("/ocr", h.handleOCR)
	r.Post("/paraphrase", h.handleParaphrase)
	r.Post("/convert", h.handleConvert)
	r.Post("/merge", h.handleMerge)
}

func (h *Handler) handleBackground(w http.ResponseWriter, r *http.Request) {
	var req BackgroundRequest

	if !h.readJson(w, r, &req) {
		return
	}

	writeResult(w, h.service.RemoveBackground(r.Context(), req.Image))
}

func (h *Handler) handleOCR(w http.ResponseWriter, r *http.Request) {
	var req OCRRequest

	if !h.readJson(w, r, &req) {
		return
	}

	writeResult(w, h.service.ExtractTextFromImage(r.Context(), action.OCRRequest{
		Image:    req.Image,
		Language: req.Language,
	}))
}

func (h *Handler) handleParaphrase(w http.ResponseWriter, r *http.Request) {
	var req ParaphraseRequest

	if !h.readJson(w, r, &req) {
		return
	}

	writeResult(w, h.service.Paraphrase(r.Context(), action.ParaphraseRequest{
		Text:  req.Text,
		Style: action.Style(req.Style),
	}))
}

func (h *Handler) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req ConvertRequest

	if !h.readJson(w, r, &req) {
		return
	}

	writeResult(w, h.service.ConvertDocumentToWord(r.Context(), req.Document))
}

func (h *Handler) handleMerge(w http.ResponseWriter, r *http.Request) {
	var req MergeRequest

	if !h.readJson(w, r, &req) {
		return
	}

	writeResult(w, h.service.MergeDocumentsToWord(r.Context(), req.Documents))
}

func (h *Handler) readJson(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.logger.Debug("api.request.invalid", "error", err)

		var maxBytes *http.MaxBytesError

		if errors.As(err, &maxBytes) {
			WriteError(w, http.StatusRequestEntityTooLarge, "the uploaded file is too large")
			return false
		}

		WriteError(w, http.StatusBadRequest, "invalid request body")
		return false
	}

	return true
}

func writeResult(w http.ResponseWriter, result action.Result[string]) {
	code := http.StatusOK

	if !result.IsOk() {
		code = StatusCode(result.Cause())
	}

	writeJson(w, code, result)
}

// StatusCode maps an error kind to the HTTP status it is reported with.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, errdefs.ErrValidation), errors.Is(err, errdefs.ErrDecode):
		return http.StatusBadRequest

	case errors.Is(err, errdefs.ErrExtraction), errors.Is(err, errdefs.ErrGeneration):
		return http.StatusBadGateway

	case errors.Is(err, errdefs.ErrNoContent):
		return http.StatusUnprocessableEntity

	default:
		return http.StatusInternalServerError
	}
}

func WriteHealth(w http.ResponseWriter, r *http.Request) {
	writeJson(w, http.StatusOK, Health{Status: "ok"})
}

func WriteError(w http.ResponseWriter, code int, message string) {
	writeJson(w, code, Envelope{
		Error: message,
	})
}

func writeJson(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(v)
}
