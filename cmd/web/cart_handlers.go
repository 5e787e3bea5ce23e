package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"lfarma.app/storefront-web/internal/cart"
	"lfarma.app/storefront-web/internal/catalog"
	mw "lfarma.app/storefront-web/internal/middleware"
	"lfarma.app/storefront-web/pkg/logx"
)

// CartPanelFrag serves the current panel contents, rendered when the panel
// is opened.
func (a *app) CartPanelFrag(w http.ResponseWriter, r *http.Request) {
	s := mw.GetSession(r)
	a.renderTemplate(w, r, "frag_cart_panel", a.buildCartPanelView(mw.Lang(r), s.Cart))
}

// CartBadgeFrag serves just the header badge.
func (a *app) CartBadgeFrag(w http.ResponseWriter, r *http.Request) {
	s := mw.GetSession(r)
	a.renderTemplate(w, r, "frag_cart_badge", a.buildCartPanelView(mw.Lang(r), s.Cart))
}

// CartAddHandler adds one unit of a product to the cart. The product is
// looked up in the store; an id the catalog doesn't know is dropped without
// touching the cart. The response is an out-of-band bundle refreshing the
// badge, the panel contents and the notification slot in one swap.
func (a *app) CartAddHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	s := mw.GetSession(r)

	if err := a.ensureCatalog(r); err != nil {
		logx.Error().Err(err).Msg("catalog fetch failed")
		a.renderCartUpdate(w, r, lang, s, nil)
		return
	}

	id := r.PostFormValue("producto_id")
	p, ok := a.store.FindByID(id)
	if !ok {
		logx.Warn().Str("product_id", id).Msg("add to cart for unknown product")
		a.renderCartUpdate(w, r, lang, s, nil)
		return
	}

	// placeholders are synthesized again at render time; persisting the data
	// URI would blow up the session cookie
	img := catalog.ResolveImage(p)
	if catalog.IsPlaceholder(img) {
		img = ""
	}
	s.Cart.Add(cart.Line{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Image: img,
	})
	s.MarkDirty()

	w.Header().Set("HX-Trigger", "carrito:actualizado")
	a.renderCartUpdate(w, r, lang, s, newToast(a.tr(lang, "toast.cart_added", "Producto agregado al carrito")))
}

// CartRemoveHandler drops a whole line from the cart. Removing an id that
// is not in the cart is a no-op apart from the refreshed fragments.
func (a *app) CartRemoveHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	s := mw.GetSession(r)

	id := chi.URLParam(r, "productID")
	var toast *ToastView
	if _, ok := s.Cart.Find(id); ok {
		s.Cart.Remove(id)
		s.MarkDirty()
		toast = newToast(a.tr(lang, "toast.cart_removed", "Producto eliminado del carrito"))
		w.Header().Set("HX-Trigger", "carrito:actualizado")
	}
	a.renderCartUpdate(w, r, lang, s, toast)
}

func (a *app) renderCartUpdate(w http.ResponseWriter, r *http.Request, lang string, s *mw.SessionData, toast *ToastView) {
	view := a.buildCartPanelView(lang, s.Cart)
	view.Toast = toast
	a.renderTemplate(w, r, "frag_cart_update", view)
}
