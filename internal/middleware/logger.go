package middleware

import (
	"net/http"
	"strings"
	"time"

	chiMid "github.com/go-chi/chi/v5/middleware"

	"lfarma.app/storefront-web/pkg/logx"
)

// Logger emits one structured log line per request.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := NewResponseRecorder(w)
		next.ServeHTTP(rw, r)

		var uid string
		if u := UserFromContext(r.Context()); u != nil {
			uid = u.ID
		}
		logx.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rw.Status()).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Str("remote_ip", clientIP(r)).
			Str("request_id", chiMid.GetReqID(r.Context())).
			Str("user_id", uid).
			Bool("htmx", IsHTMX(r.Context())).
			Msg("request")
	})
}

func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		p := strings.Split(xff, ",")
		return strings.TrimSpace(p[len(p)-1])
	}
	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return xrip
	}
	host := r.RemoteAddr
	if i := strings.LastIndex(host, ":"); i != -1 {
		return host[:i]
	}
	return host
}
