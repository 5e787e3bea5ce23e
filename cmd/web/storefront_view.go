package main

import (
	"html/template"
	"time"

	"lfarma.app/storefront-web/internal/catalog"
	"lfarma.app/storefront-web/internal/format"
)

// toastDuration is the fixed visibility window of the notification slot, in
// milliseconds. One timer per message; an overlapping message inherits no
// fresh timer from the one already running.
const toastDuration = 3000

// StorefrontView aggregates everything the home page renders.
type StorefrontView struct {
	Lang       string
	Greeting   string
	Username   string
	Carousel   CarouselView
	Categories []CategoryCard
	Cart       CartPanelView
}

// CarouselView is the offers carousel: product cards, or one of the in-place
// states (load error, empty catalog). Toast, when set, rides along as an
// out-of-band fragment.
type CarouselView struct {
	Lang  string
	Cards []ProductCard
	Error string
	Empty string
	Toast *ToastView
}

// ProductCard is one carousel card. Fallback is the precomputed placeholder
// swapped in by the browser when the real image fails to load; the resolver
// is never re-invoked. Image fields are template.URL because placeholders are
// data URIs, which the template engine would otherwise refuse.
type ProductCard struct {
	ID           string
	Name         string
	Brand        string
	Price        string
	Presentation string
	Image        template.URL
	Fallback     template.URL
	RealImage    bool
}

// CategoryCard is one tile of the fixed category grid.
type CategoryCard struct {
	Name    string
	Icon    string
	Color   string
	Tagline string
}

// ToastView is the single-slot notification.
type ToastView struct {
	Message  string
	Duration int
}

func newToast(message string) *ToastView {
	return &ToastView{Message: message, Duration: toastDuration}
}

func (a *app) buildProductCards(lang string, products []catalog.Product) []ProductCard {
	cards := make([]ProductCard, 0, len(products))
	for _, p := range products {
		img := catalog.ResolveImage(p)
		cards = append(cards, ProductCard{
			ID:           p.ID,
			Name:         p.Name,
			Brand:        p.DisplayBrand(),
			Price:        format.FmtPrice(p.Price, lang),
			Presentation: p.DisplayPresentation(),
			Image:        template.URL(img),
			Fallback:     template.URL(catalog.PlaceholderImage(p.Name)),
			RealImage:    !catalog.IsPlaceholder(img),
		})
	}
	return cards
}

func (a *app) buildCarousel(lang string, products []catalog.Product) CarouselView {
	view := CarouselView{Lang: lang}
	if len(products) == 0 {
		view.Empty = a.tr(lang, "storefront.empty", "No hay productos disponibles en este momento")
		return view
	}
	view.Cards = a.buildProductCards(lang, products)
	return view
}

func (a *app) carouselError(lang string) CarouselView {
	return CarouselView{
		Lang:  lang,
		Error: a.tr(lang, "storefront.error", "No se pudieron cargar los productos. Por favor recarga la página."),
	}
}

// categoryCards returns the fixed six-tile grid. The tiles are storefront
// furniture, not catalog data; their names double as category filters.
func (a *app) categoryCards(lang string) []CategoryCard {
	tagline := a.tr(lang, "storefront.categories.tagline", "Productos de calidad")
	cats := []CategoryCard{
		{Name: "Medicamentos", Icon: "fas fa-pills", Color: "#2ECC71"},
		{Name: "Cuidado Personal", Icon: "fas fa-heartbeat", Color: "#3498DB"},
		{Name: "Maternidad & Bebé", Icon: "fas fa-baby", Color: "#9B59B6"},
		{Name: "Vitaminas", Icon: "fas fa-capsules", Color: "#F39C12"},
		{Name: "Primeros Auxilios", Icon: "fas fa-first-aid", Color: "#E74C3C"},
		{Name: "Equipo Médico", Icon: "fas fa-stethoscope", Color: "#1ABC9C"},
	}
	for i := range cats {
		cats[i].Tagline = tagline
	}
	return cats
}

// greetingFor picks the salutation by hour of day.
func (a *app) greetingFor(now time.Time, lang string) string {
	switch h := now.Hour(); {
	case h < 12:
		return a.tr(lang, "greeting.morning", "¡Buenos días!")
	case h < 18:
		return a.tr(lang, "greeting.afternoon", "¡Buenas tardes!")
	default:
		return a.tr(lang, "greeting.evening", "¡Buenas noches!")
	}
}
