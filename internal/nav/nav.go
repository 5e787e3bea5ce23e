package nav

import (
	"path"
	"strings"
)

// Item represents a top-level navigation item.
type Item struct {
	Path     string // e.g. "/productos"
	LabelKey string // i18n key, e.g. "nav.products"
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href     string
	LabelKey string
	Active   bool
}

// Crumb represents a breadcrumb entry. If LabelKey is empty, use Label.
type Crumb struct {
	Href     string
	LabelKey string
	Label    string
	Active   bool
}

// Main is the primary storefront navigation. Every entry maps to a served
// route; account access lives in the user-action bar, not here.
var Main = []Item{
	{Path: "/", LabelKey: "nav.home"},
	{Path: "/productos", LabelKey: "nav.products"},
	{Path: "/categorias", LabelKey: "nav.categories"},
}

// Build renders navigation items with active state given the current path.
func Build(currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:     it.Path,
			LabelKey: it.LabelKey,
			Active:   isActive(it.Path, currentPath),
		})
	}
	return items
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	if currentPath == itemPath {
		return true
	}
	return strings.HasPrefix(currentPath, itemPath+"/")
}

// Breadcrumbs builds breadcrumb entries from the current path: Home first,
// label keys for known sections, prettified segments deeper down.
func Breadcrumbs(currentPath string) []Crumb {
	if currentPath == "" {
		currentPath = "/"
	}
	crumbs := []Crumb{{Href: "/", LabelKey: "nav.home", Active: currentPath == "/"}}
	if currentPath == "/" {
		return crumbs
	}

	clean := path.Clean(currentPath)
	if clean == "." {
		clean = "/"
	}
	parts := strings.Split(strings.TrimPrefix(clean, "/"), "/")

	if len(parts) > 0 && parts[0] != "" {
		top := "/" + parts[0]
		labelKey := ""
		for _, it := range Main {
			if it.Path == top {
				labelKey = it.LabelKey
				break
			}
		}
		crumbs = append(crumbs, Crumb{Href: top, LabelKey: labelKey, Label: titleFromSegment(parts[0]), Active: len(parts) == 1})
	}

	if len(parts) > 1 {
		href := "/" + parts[0]
		for i := 1; i < len(parts); i++ {
			href = href + "/" + parts[i]
			crumbs = append(crumbs, Crumb{
				Href:   href,
				Label:  titleFromSegment(parts[i]),
				Active: i == len(parts)-1,
			})
		}
	}
	return crumbs
}

func titleFromSegment(seg string) string {
	if seg == "" {
		return seg
	}
	s := strings.ReplaceAll(seg, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	r := []rune(s)
	r[0] = toUpper(r[0])
	return string(r)
}

func toUpper(r rune) rune {
	// ASCII is enough for slugs
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
