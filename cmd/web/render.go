package main

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"lfarma.app/storefront-web/pkg/logx"
)

// parseTemplates discovers and parses every .tmpl file under the templates
// directory. ParseGlob doesn't support **, so walk.
func (a *app) parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"now": time.Now,
		"T": func(lang, key string) string {
			if a.i18n == nil {
				return key
			}
			return a.i18n.T(lang, key)
		},
	}
	var files []string
	if err := filepath.WalkDir(a.cfg.TemplatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", a.cfg.TemplatesDir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}

func (a *app) templates(w http.ResponseWriter) *template.Template {
	if a.dev {
		tc, err := a.parseTemplates()
		if err != nil {
			http.Error(w, fmt.Sprintf("template parse error: %v", err), http.StatusInternalServerError)
			return nil
		}
		return tc
	}
	if a.tmpl == nil {
		http.Error(w, "template not initialized", http.StatusInternalServerError)
		return nil
	}
	return a.tmpl
}

// renderPage executes the base layout.
func (a *app) renderPage(w http.ResponseWriter, r *http.Request, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	t := a.templates(w)
	if t == nil {
		return
	}
	if err := t.ExecuteTemplate(w, "base", data); err != nil {
		logx.Error().Err(err).Str("template", "base").Msg("render")
		http.Error(w, fmt.Sprintf("template exec error: %v", err), http.StatusInternalServerError)
	}
}

// renderTemplate executes a named fragment template.
func (a *app) renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	t := a.templates(w)
	if t == nil {
		return
	}
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		logx.Error().Err(err).Str("template", name).Msg("render")
		http.Error(w, fmt.Sprintf("template exec error: %v", err), http.StatusInternalServerError)
	}
}

// tr translates key for lang, substituting def when the bundle has no entry.
func (a *app) tr(lang, key, def string) string {
	if a.i18n == nil {
		return def
	}
	if v := a.i18n.T(lang, key); v != key {
		return v
	}
	return def
}

// absoluteURL reconstructs the request URL for canonical links.
func absoluteURL(r *http.Request) string {
	scheme := "https"
	if r.TLS == nil {
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		} else {
			scheme = "http"
		}
	}
	return scheme + "://" + r.Host + r.URL.Path
}
