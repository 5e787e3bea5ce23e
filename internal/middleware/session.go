package middleware

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"lfarma.app/storefront-web/internal/cart"
	"lfarma.app/storefront-web/pkg/logx"
)

const sessionCookieName = "LFARMA_WEB_SESSION"

// SessionData is the signed cookie payload. The cart rides here: one durable
// slot per visitor, rewritten wholesale whenever the cart mutates. A cookie
// that fails signature or JSON checks yields a fresh session with an empty
// cart; a valid cookie with a garbled cart field decodes to an empty cart.
type SessionData struct {
	ID        string    `json:"id"`
	UserID    string    `json:"uid,omitempty"`
	Username  string    `json:"uname,omitempty"`
	Locale    string    `json:"locale,omitempty"`
	Cart      cart.Cart `json:"carrito"`
	CSRFToken string    `json:"csrf,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	// internal dirty flag; not serialized
	dirty bool `json:"-"`
}

var sessionSignKey []byte
var sessionSecure bool

func init() {
	// signing key: prefer env var; if absent, generate a process-ephemeral one (dev only)
	key := os.Getenv("LFARMA_WEB_SESSION_SIGNING_KEY")
	if key == "" {
		sessionSignKey = make([]byte, 32)
		if _, err := rand.Read(sessionSignKey); err != nil {
			logx.Error().Err(err).Msg("session: failed to generate signing key")
			sessionSignKey = []byte("insecure-dev-key-please-set-LFARMA_WEB_SESSION_SIGNING_KEY")
		}
		logx.Warn().Msg("session: using ephemeral signing key (dev). Set LFARMA_WEB_SESSION_SIGNING_KEY for production.")
	} else {
		sessionSignKey = []byte(key)
	}
	sessionSecure = strings.ToLower(os.Getenv("LFARMA_WEB_ENV")) == "production"
}

// Session loads or initializes a session and stores it in the request context.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sd, fromCookie := readSessionCookie(r)
		if sd.ID == "" {
			sd.ID = randID()
			sd.CreatedAt = time.Now().UTC()
			sd.UpdatedAt = sd.CreatedAt
			sd.CSRFToken = newCSRFToken()
			sd.dirty = true
		}
		ctx := contextWithSession(r, sd)
		rw := NewResponseRecorder(w)
		// persist the cookie just before the first body write so handlers can
		// still mutate the cart after reading it
		rw.SetBeforeWrite(func(w http.ResponseWriter) {
			if sd.dirty || !fromCookie {
				writeSessionCookie(w, sd)
			}
		})
		next.ServeHTTP(rw, r.WithContext(ctx))
		// nothing written yet (HEAD, 204): persist now
		if !rw.Wrote() && (sd.dirty || !fromCookie) {
			writeSessionCookie(w, sd)
		}
	})
}

func contextWithSession(r *http.Request, s *SessionData) context.Context {
	ctx := context.WithValue(r.Context(), ctxKeySession, s)
	if s.UserID != "" {
		ctx = WithUser(ctx, &User{ID: s.UserID, Name: s.Username})
	}
	return ctx
}

// GetSession returns session data from the request context.
func GetSession(r *http.Request) *SessionData {
	if v := r.Context().Value(ctxKeySession); v != nil {
		if sd, ok := v.(*SessionData); ok {
			return sd
		}
	}
	return &SessionData{}
}

// MarkDirty flags the session for writing at the end of the request.
func (s *SessionData) MarkDirty() { s.dirty = true; s.UpdatedAt = time.Now().UTC() }

// RegenerateID assigns a new session ID and CSRF token to prevent fixation after auth.
func (s *SessionData) RegenerateID() {
	s.ID = randID()
	s.CSRFToken = newCSRFToken()
	s.MarkDirty()
}

// readSessionCookie parses and verifies the signed session cookie.
func readSessionCookie(r *http.Request) (*SessionData, bool) {
	c, err := r.Cookie(sessionCookieName)
	if err != nil || c.Value == "" {
		return &SessionData{}, false
	}
	parts := strings.Split(c.Value, ".")
	if len(parts) != 2 {
		return &SessionData{}, false
	}
	payloadB, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return &SessionData{}, false
	}
	sigB, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return &SessionData{}, false
	}
	mac := hmac.New(sha256.New, sessionSignKey)
	mac.Write(payloadB)
	if !hmac.Equal(sigB, mac.Sum(nil)) {
		return &SessionData{}, false
	}
	var sd SessionData
	if err := json.Unmarshal(payloadB, &sd); err != nil {
		return &SessionData{}, false
	}
	return &sd, true
}

func writeSessionCookie(w http.ResponseWriter, sd *SessionData) {
	b, _ := json.Marshal(sd)
	payload := base64.RawURLEncoding.EncodeToString(b)
	mac := hmac.New(sha256.New, sessionSignKey)
	mac.Write(b)
	sig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    payload + "." + sig,
		Path:     "/",
		HttpOnly: true,
		Secure:   sessionSecure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(30 * 24 * time.Hour),
	})
}

func randID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
