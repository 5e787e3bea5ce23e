package main

import (
	"html/template"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lfarma.app/storefront-web/internal/catalog"
	"lfarma.app/storefront-web/internal/config"
	"lfarma.app/storefront-web/internal/i18n"
	mw "lfarma.app/storefront-web/internal/middleware"
	"lfarma.app/storefront-web/internal/telemetry"
)

// app owns all page-lifetime state: configuration, the backend client, the
// catalog store, locales, and parsed templates. Handlers hang off it so no
// package-level mutable state is needed.
type app struct {
	cfg     config.Config
	dev     bool
	tmpl    *template.Template
	i18n    *i18n.Bundle
	backend *catalog.Client
	store   *catalog.Store
}

func newApp(cfg config.Config, bundle *i18n.Bundle) *app {
	return &app{
		cfg:     cfg,
		dev:     !cfg.Environment().IsProduction(),
		i18n:    bundle,
		backend: catalog.NewClient(cfg.BackendURL),
		store:   catalog.NewStore(),
	}
}

func (a *app) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(mw.HTMX)
	r.Use(mw.Session)
	r.Use(mw.Locale(a.i18n))
	r.Use(mw.Auth(a.cfg.AuthSecret))
	r.Use(mw.CSRF)
	r.Use(mw.VaryLocale)
	r.Use(mw.Logger)
	r.Use(telemetry.Middleware)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	assets := http.StripPrefix("/assets", mw.AssetsWithCache(filepath.Join(a.cfg.PublicDir, "assets")))
	r.Handle("/assets/*", assets)

	r.Get("/", a.HomeHandler)
	// the storefront is one page; the nav sections land on it with their own
	// canonical URL and breadcrumb trail
	r.Get("/productos", a.HomeHandler)
	r.Get("/categorias", a.HomeHandler)

	r.Get("/productos/buscar", a.SearchFrag)
	r.Get("/productos/categoria/{categoria}", a.CategoryFrag)
	r.Get("/productos/{productID}/modal", a.ProductModalFrag)
	r.Get("/ubicacion/modal", a.LocationModalFrag)
	r.Get("/cuenta/modal", a.AccountModalFrag)
	r.Post("/logout", a.LogoutHandler)

	r.Get("/carrito/panel", a.CartPanelFrag)
	r.Get("/carrito/badge", a.CartBadgeFrag)
	r.Post("/carrito/items", a.CartAddHandler)
	r.Post("/carrito/items/{productID}/eliminar", a.CartRemoveHandler)

	return r
}
