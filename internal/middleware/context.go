package middleware

import "context"

// context keys are unexported to avoid collisions
type ctxKey string

const (
	ctxKeyRequestID ctxKey = "req_id"
	ctxKeyIsHTMX    ctxKey = "is_htmx"
	ctxKeySession   ctxKey = "session"
	ctxKeyUser      ctxKey = "user"
	ctxKeyToken     ctxKey = "visitor_token"
	ctxKeyLocaleFB  ctxKey = "locale_fallback"
)

// WithRequestID stores the request id in context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, id)
}

// RequestID gets the request id from context.
func RequestID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxKeyRequestID).(string)
	return v, ok
}

// WithHTMX marks the request as originating from htmx.
func WithHTMX(ctx context.Context, is bool) context.Context {
	return context.WithValue(ctx, ctxKeyIsHTMX, is)
}

// IsHTMX reports whether this is an htmx request.
func IsHTMX(ctx context.Context) bool {
	v, _ := ctx.Value(ctxKeyIsHTMX).(bool)
	return v
}

// User is the authenticated visitor, hydrated from the session or token.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// WithUser stores the visitor in context.
func WithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, ctxKeyUser, u)
}

// UserFromContext returns the visitor if present.
func UserFromContext(ctx context.Context) *User {
	if v := ctx.Value(ctxKeyUser); v != nil {
		if u, ok := v.(*User); ok {
			return u
		}
	}
	return nil
}

// WithToken stores the raw visitor credential so backend calls can forward it.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ctxKeyToken, token)
}

// Token returns the raw visitor credential, if any.
func Token(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyToken).(string)
	return v
}
