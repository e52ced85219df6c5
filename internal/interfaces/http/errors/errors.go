// Package errors renders the uniform API error payload. Every failure
// leaves the service with the same JSON shape regardless of where it
// originated.
package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/EmiDanGuerrero/Sample-account-bank-service/internal/domain"
)

// ApiError is the wire representation of any failed request.
type ApiError struct {
	Timestamp time.Time     `json:"timestamp"`
	Status    int           `json:"status"`
	Error     string        `json:"error"`
	Message   string        `json:"message"`
	Path      string        `json:"path"`
	Details   []ErrorDetail `json:"details,omitempty"`
}

// ErrorDetail carries a single field-level validation failure.
type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RespondWithError translates err into a status code and writes the
// uniform payload. The originating path is resolved from the request
// stored in ctx by the request-context middleware.
func RespondWithError(w http.ResponseWriter, ctx context.Context, err error) {
	respond(w, ctx, err, nil)
}

// RespondErrorWithDetails writes the uniform payload with a field-level
// detail list attached.
func RespondErrorWithDetails(w http.ResponseWriter, ctx context.Context, err error, details []ErrorDetail) {
	respond(w, ctx, err, details)
}

func respond(w http.ResponseWriter, ctx context.Context, err error, details []ErrorDetail) {
	status, reason := statusOf(err)

	payload := ApiError{
		Timestamp: time.Now(),
		Status:    status,
		Error:     reason,
		Message:   err.Error(),
		Path:      pathOf(ctx),
		Details:   details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func statusOf(err error) (int, string) {
	var de *domain.Error
	if !stderrors.As(err, &de) {
		return http.StatusInternalServerError, "Internal Server Error"
	}

	switch de.Kind {
	case domain.KindNotFound:
		return http.StatusNotFound, "Not Found"
	case domain.KindDuplicate:
		return http.StatusConflict, "Conflict"
	case domain.KindValidation:
		return http.StatusBadRequest, "Validation Failed"
	case domain.KindUpstream:
		// Forward the remote status when it is resolvable.
		if de.UpstreamStatus >= 100 && de.UpstreamStatus < 600 {
			return de.UpstreamStatus, http.StatusText(de.UpstreamStatus)
		}
		return http.StatusBadGateway, "Bad Gateway"
	default:
		return http.StatusInternalServerError, "Internal Server Error"
	}
}

func pathOf(ctx context.Context) string {
	if r, ok := domain.RequestFromContext(ctx); ok {
		return r.URL.Path
	}
	return ""
}
