package utils

import (
	"context"

	"promoservice/pkg/auth"
)

type contextKey string

const (
	identityKey  contextKey = "identity"
	requestIDKey contextKey = "request_id"
)

// SetIdentityContext attaches the authenticated identity to the request
// context. It is set once by the auth middleware and read-only afterwards.
func SetIdentityContext(ctx context.Context, ident *auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, ident)
}

// GetIdentityFromContext returns the authenticated identity for this
// request, if any.
func GetIdentityFromContext(ctx context.Context) (*auth.Identity, bool) {
	ident, ok := ctx.Value(identityKey).(*auth.Identity)
	if !ok || ident == nil {
		return nil, false
	}
	return ident, true
}

// SetRequestIDContext stores the correlation ID for this request.
func SetRequestIDContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// GetRequestIDFromContext returns the correlation ID, if set.
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok
}
