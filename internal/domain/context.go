package domain

import (
	"context"
	"net/http"
)

type contextKey string

// RequestKey is the context key under which the inbound *http.Request is
// stored by the request-context middleware.
const RequestKey contextKey = "request"

// RequestFromContext returns the inbound request stored in ctx, if any.
func RequestFromContext(ctx context.Context) (*http.Request, bool) {
	r, ok := ctx.Value(RequestKey).(*http.Request)
	return r, ok
}
