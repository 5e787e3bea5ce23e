package catalog

import "strings"

// Product mirrors one record of the backend catalog payload. Field tags follow
// the backend's Spanish JSON schema.
type Product struct {
	ID           string  `json:"_id"`
	Name         string  `json:"nombre"`
	Brand        string  `json:"marca,omitempty"`
	Price        float64 `json:"precio"`
	Presentation string  `json:"presentacion,omitempty"`
	Category     string  `json:"categoria,omitempty"`
	Description  string  `json:"descripcion,omitempty"`
	Image        string  `json:"imagen,omitempty"`
}

// HasRealImage reports whether the image field references an actual photo
// instead of the backend's "default.jpg" sentinel or nothing at all.
func (p Product) HasRealImage() bool {
	img := strings.TrimSpace(p.Image)
	return img != "" && img != imageSentinel
}

// DisplayBrand returns the brand or the generic label used across the storefront.
func (p Product) DisplayBrand() string {
	if strings.TrimSpace(p.Brand) == "" {
		return "Genérico"
	}
	return p.Brand
}

// DisplayPresentation returns the unit label, defaulting to "Unidad".
func (p Product) DisplayPresentation() string {
	if strings.TrimSpace(p.Presentation) == "" {
		return "Unidad"
	}
	return p.Presentation
}

// DisplayCategory returns the category, defaulting to "Medicamento" for the
// detail view.
func (p Product) DisplayCategory() string {
	if strings.TrimSpace(p.Category) == "" {
		return "Medicamento"
	}
	return p.Category
}
