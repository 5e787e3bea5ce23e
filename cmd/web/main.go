package main

import (
	"net/http"
	"time"

	"lfarma.app/storefront-web/internal/cache"
	"lfarma.app/storefront-web/internal/config"
	"lfarma.app/storefront-web/internal/i18n"
	"lfarma.app/storefront-web/pkg/logx"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logx.Init(logx.Opts{})
		logx.Fatal().Err(err).Msg("load config")
	}
	logx.Init(logx.Opts{Production: cfg.Environment().IsProduction()})

	bundle, err := i18n.Load(cfg.LocalesDir, "es", []string{"es", "en"})
	if err != nil {
		logx.Fatal().Err(err).Msg("load locales")
	}

	a := newApp(cfg, bundle)

	if cfg.RedisAddr != "" {
		cc, err := cache.NewClient(cfg.RedisAddr)
		if err != nil {
			// cache is an optimization; run without it
			logx.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable, catalog cache disabled")
		} else {
			defer cc.Close()
			a.backend.UseCache(cc, cfg.CatalogCacheTTL)
		}
	}

	if !a.dev {
		// parse templates once in production; dev reparses per request
		tc, err := a.parseTemplates()
		if err != nil {
			logx.Fatal().Err(err).Msg("parse templates")
		}
		a.tmpl = tc
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           a.routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logx.Info().Str("addr", cfg.Addr).Str("env", cfg.Env).Bool("demo_catalog", cfg.BackendURL == "").Msg("storefront listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logx.Fatal().Err(err).Msg("listen")
	}
}
