package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"lfarma.app/storefront-web/internal/cart"
)

func TestSessionPersistsCartAcrossRequests(t *testing.T) {
	h := Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := GetSession(r)
		if r.URL.Path == "/add" {
			s.Cart.Add(cart.Line{ID: "a", Name: "Aspirina", Price: 8500})
			s.MarkDirty()
		}
		_, _ = io.WriteString(w, "ok")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/add", nil))

	var sessionCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			sessionCookie = c
		}
	}
	if sessionCookie == nil {
		t.Fatal("no session cookie written")
	}

	var got cart.Cart
	h2 := Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetSession(r).Cart
		_, _ = io.WriteString(w, "ok")
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(sessionCookie)
	h2.ServeHTTP(httptest.NewRecorder(), req)

	if got.Count() != 1 {
		t.Fatalf("cart not restored: %+v", got)
	}
	if got.Lines[0].Name != "Aspirina" || got.Lines[0].Price != 8500 {
		t.Fatalf("cart line mangled: %+v", got.Lines[0])
	}
}

func TestTamperedSessionCookieYieldsFreshSession(t *testing.T) {
	h := Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := GetSession(r)
		s.Cart.Add(cart.Line{ID: "a", Price: 100})
		s.MarkDirty()
		_, _ = io.WriteString(w, "ok")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("no session cookie written")
	}
	cookie.Value = cookie.Value[:len(cookie.Value)-4] + "AAAA"

	var fresh bool
	h2 := Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fresh = GetSession(r).Cart.Empty()
		_, _ = io.WriteString(w, "ok")
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	h2.ServeHTTP(httptest.NewRecorder(), req)

	if !fresh {
		t.Fatal("tampered cookie was accepted")
	}
}

func TestCSRFBlocksPostWithoutToken(t *testing.T) {
	h := Session(CSRF(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "mutated")
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestCSRFAllowsPostWithMatchingTokens(t *testing.T) {
	h := Session(CSRF(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "mutated")
	})))

	// prime cookies with a safe request
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	var csrf, session *http.Cookie
	for _, c := range rec.Result().Cookies() {
		switch c.Name {
		case csrfCookieName:
			csrf = c
		case sessionCookieName:
			session = c
		}
	}
	if csrf == nil || session == nil {
		t.Fatal("priming request did not set cookies")
	}

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.AddCookie(csrf)
	req.AddCookie(session)
	req.Header.Set("X-CSRF-Token", csrf.Value)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
}
