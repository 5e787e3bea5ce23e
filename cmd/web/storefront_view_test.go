package main

import (
	"strings"
	"testing"
	"time"

	"lfarma.app/storefront-web/internal/catalog"
)

func TestGreetingForFollowsClock(t *testing.T) {
	a := &app{}
	cases := []struct {
		hour int
		want string
	}{
		{8, "¡Buenos días!"},
		{11, "¡Buenos días!"},
		{12, "¡Buenas tardes!"},
		{17, "¡Buenas tardes!"},
		{18, "¡Buenas noches!"},
		{23, "¡Buenas noches!"},
	}
	for _, tc := range cases {
		now := time.Date(2025, 6, 1, tc.hour, 0, 0, 0, time.UTC)
		if got := a.greetingFor(now, "es"); got != tc.want {
			t.Errorf("hour %d: got %q, want %q", tc.hour, got, tc.want)
		}
	}
}

func TestBuildProductCardsAppliesDefaultsAndResolvesImages(t *testing.T) {
	a := &app{}
	cards := a.buildProductCards("es", []catalog.Product{
		{ID: "1", Name: "Aspirina", Price: 8500, Image: "aspirina.png"},
		{ID: "2", Name: "Suero", Price: 12000, Image: ""},
	})
	if len(cards) != 2 {
		t.Fatalf("cards = %d", len(cards))
	}
	if cards[0].Brand != "Genérico" || cards[0].Presentation != "Unidad" {
		t.Fatalf("defaults not applied: %+v", cards[0])
	}
	if cards[0].Image != "/images/aspirina.png" || !cards[0].RealImage {
		t.Fatalf("image not resolved: %+v", cards[0])
	}
	if !strings.HasPrefix(string(cards[1].Image), "data:image/svg") || cards[1].RealImage {
		t.Fatalf("missing image not replaced by placeholder: %+v", cards[1])
	}
	if cards[0].Price != "$ 8.500" {
		t.Fatalf("price = %q", cards[0].Price)
	}
}

func TestCategoryCardsAreTheFixedSix(t *testing.T) {
	a := &app{}
	cats := a.categoryCards("es")
	if len(cats) != 6 {
		t.Fatalf("categories = %d, want 6", len(cats))
	}
	wantNames := []string{"Medicamentos", "Cuidado Personal", "Maternidad & Bebé", "Vitaminas", "Primeros Auxilios", "Equipo Médico"}
	for i, want := range wantNames {
		if cats[i].Name != want {
			t.Errorf("category %d = %q, want %q", i, cats[i].Name, want)
		}
		if cats[i].Icon == "" || cats[i].Color == "" {
			t.Errorf("category %q missing icon or color", cats[i].Name)
		}
	}
}

func TestRenderMarkdownSanitizes(t *testing.T) {
	out := string(renderMarkdown("Alivia el **dolor** leve.\n\n<script>alert(1)</script>"))
	if !strings.Contains(out, "<strong>dolor</strong>") {
		t.Fatalf("markdown not rendered: %s", out)
	}
	if strings.Contains(out, "<script>") {
		t.Fatalf("script not stripped: %s", out)
	}
}
