package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"lfarma.app/storefront-web/pkg/logx"
)

// tokenCookieName carries the backend-issued visitor credential.
const tokenCookieName = "lfarma_token"

// Auth extracts the visitor credential from the Authorization header or the
// token cookie and stashes the raw value in context so backend calls can
// forward it. When a secret is configured the token is also verified locally
// (HMAC) and the session user hydrated from its claims; an invalid token just
// leaves the visitor anonymous; the storefront is browseable without one.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				if c, err := r.Cookie(tokenCookieName); err == nil {
					token = strings.TrimSpace(c.Value)
				}
			}
			if token != "" {
				r = r.WithContext(WithToken(r.Context(), token))
				if secret != "" {
					hydrateSessionUser(r, token, secret)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func hydrateSessionUser(r *http.Request, token, secret string) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		logx.Warn().Err(err).Msg("auth: invalid visitor token")
		return
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return
	}
	uid, _ := claims["sub"].(string)
	if uid == "" {
		return
	}
	name, _ := claims["username"].(string)

	s := GetSession(r)
	wasAuthed := s.UserID != ""
	if s.UserID != uid || s.Username != name {
		s.UserID = uid
		s.Username = name
		// first authentication regenerates the session ID to prevent fixation
		if !wasAuthed {
			s.RegenerateID()
		} else {
			s.MarkDirty()
		}
	}
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
