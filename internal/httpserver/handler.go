package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/davidbz/estimator/internal/domain"
	"github.com/davidbz/estimator/internal/observability"
)

const (
	// maxRequestBodyBytes bounds estimator form submissions.
	maxRequestBodyBytes = 64 << 10

	headerCache = "X-Estimator-Cache"
)

// errorResponse is the JSON body of every non-2xx reply.
type errorResponse struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

// Handler handles HTTP requests.
type Handler struct {
	quotes *domain.QuoteService
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(quotes *domain.QuoteService) *Handler {
	return &Handler{
		quotes: quotes,
	}
}

// HandleEstimate prices an estimator form submission.
func (h *Handler) HandleEstimate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Early validation.
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	// Parse request.
	var req domain.QuoteRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err), nil)
		return
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body: unexpected data after JSON object", nil)
		return
	}

	logger := observability.FromContext(ctx)
	logger.Info("estimate request received",
		observability.String("project_type", string(req.ProjectType)),
		observability.String("complexity", string(req.Complexity)),
		observability.Int("features", len(req.Features)),
		observability.Int("pages", req.Pages),
	)

	quote, err := h.quotes.CreateQuote(ctx, &req)
	if err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.As(err, &validationErr):
			logger.Info("estimate rejected", observability.Error(err))
			writeError(w, http.StatusBadRequest, domain.ErrInvalidInput.Error(), validationErr.Fields)
		case errors.Is(err, domain.ErrInvalidInput):
			logger.Info("estimate rejected", observability.Error(err))
			writeError(w, http.StatusBadRequest, err.Error(), nil)
		default:
			logger.Error("estimate failed", observability.Error(err))
			writeError(w, http.StatusInternalServerError, err.Error(), nil)
		}
		return
	}

	logger.Info("estimate succeeded",
		observability.String("quote_id", quote.ID),
		observability.Int64("development_cost", quote.Result.DevelopmentCost),
		observability.Int("deadline_weeks", quote.Result.DeadlineWeeks),
		observability.Bool("cached", quote.Cached),
	)

	if h.quotes.CacheEnabled() {
		setCacheHeader(w, quote.Cached)
	}

	writeJSON(w, http.StatusOK, quote)
}

// HandleRates returns the rate catalog used to render the estimator form.
func (h *Handler) HandleRates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=300")
	writeJSON(w, http.StatusOK, h.quotes.Catalog())
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// setCacheHeader reports whether the quote was served from cache.
func setCacheHeader(w http.ResponseWriter, hit bool) {
	if hit {
		w.Header().Set(headerCache, "HIT")
		return
	}
	w.Header().Set(headerCache, "MISS")
}

func writeError(w http.ResponseWriter, status int, message string, fields []domain.FieldError) {
	writeJSON(w, status, errorResponse{
		Error:  message,
		Fields: fields,
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Already written status, can't change it.
		return
	}
}
