package main

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"lfarma.app/storefront-web/internal/handlers"
	mw "lfarma.app/storefront-web/internal/middleware"
	"lfarma.app/storefront-web/internal/nav"
	"lfarma.app/storefront-web/pkg/logx"
)

// searchMinRunes is the minimum query length that triggers a real search.
// Shorter queries restore the featured carousel instead.
const searchMinRunes = 3

// HomeHandler renders the storefront page. The catalog and the current user
// are fetched fresh on every full page load; a failed user lookup degrades
// to the generic salutation and a failed catalog fetch renders the error
// state inside the carousel, never an error page.
func (a *app) HomeHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := mw.Lang(r)
	token := mw.Token(ctx)

	username := "Cliente"
	if u := mw.UserFromContext(ctx); u != nil && u.Name != "" {
		username = u.Name
	} else if name, err := a.backend.FetchCurrentUser(ctx, token); err == nil {
		username = name
	} else {
		logx.Debug().Err(err).Msg("current user lookup failed, using default")
	}

	var carousel CarouselView
	products, err := a.backend.FetchProducts(ctx, token)
	if err != nil {
		logx.Error().Err(err).Msg("catalog fetch failed")
		carousel = a.carouselError(lang)
	} else {
		a.store.SetProducts(products)
		carousel = a.buildCarousel(lang, a.store.Featured())
	}

	s := mw.GetSession(r)
	view := StorefrontView{
		Lang:       lang,
		Greeting:   a.greetingFor(time.Now(), lang),
		Username:   username,
		Carousel:   carousel,
		Categories: a.categoryCards(lang),
		Cart:       a.buildCartPanelView(lang, s.Cart),
	}

	data := handlers.PageData{
		Title:       a.tr(lang, "brand.name", "LFarma"),
		Lang:        lang,
		Path:        r.URL.Path,
		Nav:         nav.Build(r.URL.Path),
		Analytics:   handlers.LoadAnalyticsFromEnv(),
		Storefront:  view,
		Breadcrumbs: nav.Breadcrumbs(r.URL.Path),
	}
	data.SEO.Title = a.tr(lang, "brand.name", "LFarma") + " | " + a.tr(lang, "storefront.title", "Tienda")
	data.SEO.Description = a.tr(lang, "storefront.description", "Droguería en línea con entrega a domicilio.")
	data.SEO.Canonical = absoluteURL(r)
	data.SEO.OG.Title = data.SEO.Title
	data.SEO.OG.Description = data.SEO.Description
	data.SEO.OG.Type = "website"
	data.SEO.OG.URL = data.SEO.Canonical
	data.SEO.OG.SiteName = a.tr(lang, "brand.name", "LFarma")
	data.SEO.Twitter.Card = "summary"

	a.renderPage(w, r, data)
}

// ensureCatalog returns the product set, fetching it from the backend the
// first time a fragment arrives before any full page load populated the
// store.
func (a *app) ensureCatalog(r *http.Request) error {
	if a.store.Loaded() {
		return nil
	}
	products, err := a.backend.FetchProducts(r.Context(), mw.Token(r.Context()))
	if err != nil {
		return err
	}
	a.store.SetProducts(products)
	return nil
}

// SearchFrag serves the carousel fragment for search-as-you-type. Queries
// below the length threshold restore the featured set without a toast. A
// search with no matches leaves the carousel untouched and only announces
// the empty result.
func (a *app) SearchFrag(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	if err := a.ensureCatalog(r); err != nil {
		logx.Error().Err(err).Msg("catalog fetch failed")
		a.renderTemplate(w, r, "frag_carousel", a.carouselError(lang))
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if utf8.RuneCountInString(query) < searchMinRunes {
		a.renderTemplate(w, r, "frag_carousel", a.buildCarousel(lang, a.store.Featured()))
		return
	}

	matches := a.store.Search(query)
	if len(matches) == 0 {
		// Keep the current carousel; only the toast goes out.
		w.Header().Set("HX-Reswap", "none")
		a.renderTemplate(w, r, "frag_toast_oob", newToast(a.tr(lang, "toast.search_none", "No se encontraron productos")))
		return
	}

	view := a.buildCarousel(lang, matches)
	view.Toast = newToast(fmt.Sprintf(a.tr(lang, "toast.search_results", "Encontrados %d productos"), len(matches)))
	a.renderTemplate(w, r, "frag_carousel", view)
}

// CategoryFrag filters the carousel by category tile.
func (a *app) CategoryFrag(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	if err := a.ensureCatalog(r); err != nil {
		logx.Error().Err(err).Msg("catalog fetch failed")
		a.renderTemplate(w, r, "frag_carousel", a.carouselError(lang))
		return
	}

	category := chi.URLParam(r, "categoria")
	if dec, err := url.PathUnescape(category); err == nil {
		category = dec
	}
	matches := a.store.FilterByCategory(category)
	if len(matches) == 0 {
		w.Header().Set("HX-Reswap", "none")
		a.renderTemplate(w, r, "frag_toast_oob", newToast(fmt.Sprintf(a.tr(lang, "toast.filter_none", "No hay productos en %s"), category)))
		return
	}

	view := a.buildCarousel(lang, matches)
	view.Toast = newToast(fmt.Sprintf(a.tr(lang, "toast.filter", "Filtrado por: %s"), category))
	a.renderTemplate(w, r, "frag_carousel", view)
}

// ProductModalFrag serves the detail dialog for one product.
func (a *app) ProductModalFrag(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	if err := a.ensureCatalog(r); err != nil {
		logx.Error().Err(err).Msg("catalog fetch failed")
		http.Error(w, "catalog unavailable", http.StatusBadGateway)
		return
	}
	p, ok := a.store.FindByID(chi.URLParam(r, "productID"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	a.renderTemplate(w, r, "frag_modal", a.buildProductModalView(lang, p))
}

// LogoutHandler drops the visitor credential and the session identity. The
// cart stays: signing out does not empty it.
func (a *app) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	s := mw.GetSession(r)
	s.UserID = ""
	s.Username = ""
	s.RegenerateID()

	http.SetCookie(w, &http.Cookie{
		Name:     "lfarma_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	w.WriteHeader(http.StatusNoContent)
}

// AccountModalFrag serves the account dialog: the signed-in name and the
// sign-out action. The name is resolved the same way the header greeting is,
// so both always show the same identity.
func (a *app) AccountModalFrag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := mw.Lang(r)
	username := "Cliente"
	if u := mw.UserFromContext(ctx); u != nil && u.Name != "" {
		username = u.Name
	} else if name, err := a.backend.FetchCurrentUser(ctx, mw.Token(ctx)); err == nil {
		username = name
	}
	a.renderTemplate(w, r, "frag_account", struct {
		Lang     string
		Username string
	}{lang, username})
}

// LocationModalFrag serves the delivery coverage dialog. Static copy only.
func (a *app) LocationModalFrag(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	a.renderTemplate(w, r, "frag_location", struct{ Lang string }{lang})
}
