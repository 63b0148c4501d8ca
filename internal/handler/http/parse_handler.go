package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/cypherlabdev/chat-bet-parser-service/internal/models"
	"github.com/cypherlabdev/chat-bet-parser-service/internal/service"
	"github.com/cypherlabdev/chat-bet-parser-service/pkg/chatbet"
)

// ParseHandler handles HTTP requests for chat bet parsing
type ParseHandler struct {
	service *service.ParserService
	logger  zerolog.Logger
}

// NewParseHandler creates a new parse HTTP handler
func NewParseHandler(service *service.ParserService, logger zerolog.Logger) *ParseHandler {
	return &ParseHandler{
		service: service,
		logger:  logger.With().Str("component", "parse_handler").Logger(),
	}
}

// RegisterRoutes registers HTTP routes with the provided mux
func (h *ParseHandler) RegisterRoutes(mux *http.ServeMux) {
	// POST /api/v1/parse - Parse any chat message
	mux.HandleFunc("/api/v1/parse", h.handleParse)

	// POST /api/v1/parse/order - Parse, rejecting fills
	mux.HandleFunc("/api/v1/parse/order", h.handleParseOrder)

	// POST /api/v1/parse/fill - Parse, rejecting orders
	mux.HandleFunc("/api/v1/parse/fill", h.handleParseFill)
}

// ParseRequest is the request body for the parse endpoints
type ParseRequest struct {
	Text          string `json:"text"`
	ReferenceDate string `json:"reference_date,omitempty"` // RFC 3339; substitutes for "now"
}

// ParseErrorResponse is the body returned for a rejected chat message
type ParseErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Token string `json:"token,omitempty"`
}

type parseFunc func(ctx context.Context, text string, opts chatbet.Options) (*models.ParseResult, error)

func (h *ParseHandler) handleParse(w http.ResponseWriter, r *http.Request) {
	h.parseWith(w, r, h.service.ParseMessage)
}

func (h *ParseHandler) handleParseOrder(w http.ResponseWriter, r *http.Request) {
	h.parseWith(w, r, h.service.ParseOrder)
}

func (h *ParseHandler) handleParseFill(w http.ResponseWriter, r *http.Request) {
	h.parseWith(w, r, h.service.ParseFill)
}

// parseWith decodes the request, runs the given parse entry point, and
// maps parse failures to 422 with the error kind attached.
func (h *ParseHandler) parseWith(w http.ResponseWriter, r *http.Request, parse parseFunc) {
	if r.Method != http.MethodPost {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Text == "" {
		h.errorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	var opts chatbet.Options
	if req.ReferenceDate != "" {
		ref, err := time.Parse(time.RFC3339, req.ReferenceDate)
		if err != nil {
			h.errorResponse(w, http.StatusBadRequest, "reference_date must be RFC 3339")
			return
		}
		opts.ReferenceDate = ref
	}

	result, err := parse(r.Context(), req.Text, opts)
	if err != nil {
		var perr *chatbet.Error
		if errors.As(err, &perr) {
			h.logger.Debug().
				Str("kind", string(perr.Kind)).
				Str("token", perr.Token).
				Msg("rejected chat message")
			h.jsonResponse(w, http.StatusUnprocessableEntity, ParseErrorResponse{
				Error: perr.Message,
				Kind:  string(perr.Kind),
				Token: perr.Token,
			})
			return
		}
		h.logger.Error().Err(err).Msg("parse request failed")
		h.errorResponse(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.jsonResponse(w, http.StatusOK, result)
}

// jsonResponse writes a JSON response
func (h *ParseHandler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// errorResponse writes a JSON error response
func (h *ParseHandler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{
		"error": message,
	})
}
