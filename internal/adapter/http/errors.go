package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"fundflow/internal/core/domain"
	"fundflow/internal/core/port"
)

// errorBody is the payload of every failed request.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// statusOf maps an error to its HTTP status.
func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrPaymentNotCompleted):
		return http.StatusPaymentRequired
	case errors.Is(err, port.ErrPaymentProvider):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

// writeError writes the error response. Server-side failures are logged and
// their details are not sent to the client.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	body := errorBody{Error: domain.Kind(err), Message: err.Error()}
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		switch status {
		case http.StatusBadGateway:
			body = errorBody{Error: "payment_provider_error", Message: "payment provider unavailable"}
		case http.StatusGatewayTimeout:
			body = errorBody{Error: "timeout", Message: "upstream call timed out"}
		default:
			body.Message = "internal error"
		}
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// The status line is already sent, an encoding failure cannot be reported.
	_ = json.NewEncoder(w).Encode(v)
}
