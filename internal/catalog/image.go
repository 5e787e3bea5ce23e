package catalog

import (
	"encoding/base64"
	"fmt"
	"html"
	"strings"
)

const (
	// imageBasePath is where the backend serves uploaded product photos.
	imageBasePath = "/images/"
	// imageSentinel is the backend's placeholder marker for "no photo".
	imageSentinel = "default.jpg"
	// placeholderNameRunes caps the label embedded in synthesized placeholders.
	placeholderNameRunes = 15
)

// ResolveImage decides the display URL for a product photo. Absolute URLs and
// absolute paths pass through untouched, bare filenames are anchored under the
// image base path, and anything else (blank or sentinel) yields a synthesized
// placeholder. Pure function, no I/O.
func ResolveImage(p Product) string {
	img := strings.TrimSpace(p.Image)
	if img == "" || img == imageSentinel {
		return PlaceholderImage(p.Name)
	}
	if strings.HasPrefix(img, "http") || strings.HasPrefix(img, "/") {
		return img
	}
	return imageBasePath + img
}

// PlaceholderImage synthesizes a minimal SVG stand-in carrying the product
// name, returned as a self-contained data URI so it never touches the network.
func PlaceholderImage(name string) string {
	label := truncateRunes(name, placeholderNameRunes)
	svg := fmt.Sprintf(`<svg width="150" height="150" xmlns="http://www.w3.org/2000/svg">`+
		`<rect width="100%%" height="100%%" fill="#2ECC71"/>`+
		`<text x="50%%" y="50%%" font-family="Arial" font-size="14" fill="white" text-anchor="middle" dy=".3em">%s</text>`+
		`</svg>`, html.EscapeString(label))
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}

// IsPlaceholder reports whether a resolved URL is a synthesized stand-in.
func IsPlaceholder(url string) bool {
	return strings.HasPrefix(url, "data:image/svg")
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
