package i18n

import (
	"os"
	"path/filepath"
	"testing"
)

func testBundle(t *testing.T) *Bundle {
	t.Helper()
	dir := t.TempDir()
	es := "brand.name: LFarma\ncart.empty: Tu carrito está vacío\n"
	en := "cart.empty: Your cart is empty\n"
	if err := os.WriteFile(filepath.Join(dir, "es.yaml"), []byte(es), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "en.yaml"), []byte(en), 0o644); err != nil {
		t.Fatal(err)
	}
	b, err := Load(dir, "es", []string{"es", "en"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return b
}

func TestTFallsBackToDefaultLocale(t *testing.T) {
	b := testBundle(t)
	if got := b.T("en", "cart.empty"); got != "Your cart is empty" {
		t.Fatalf("en lookup = %q", got)
	}
	// key missing from en falls back to es
	if got := b.T("en", "brand.name"); got != "LFarma" {
		t.Fatalf("fallback lookup = %q", got)
	}
	// key missing everywhere returns the key
	if got := b.T("es", "no.such.key"); got != "no.such.key" {
		t.Fatalf("missing key = %q", got)
	}
}

func TestResolveHonorsQValues(t *testing.T) {
	b := testBundle(t)
	if got := b.Resolve("es;q=0.8, en;q=0.9"); got != "en" {
		t.Fatalf("expected en, got %s", got)
	}
	if got := b.Resolve("en-US, es;q=0.5"); got != "en" {
		t.Fatalf("expected en from region tag, got %s", got)
	}
	if got := b.Resolve("fr, de;q=0.9"); got != "es" {
		t.Fatalf("expected fallback es, got %s", got)
	}
	if got := b.Resolve(""); got != "es" {
		t.Fatalf("expected fallback for empty header, got %s", got)
	}
}

func TestLoadRequiresFallbackLocale(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(dir, "es", []string{"es", "en"}); err == nil {
		t.Fatal("expected error when fallback locale file is missing")
	}
}
