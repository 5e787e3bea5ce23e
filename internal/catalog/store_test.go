package catalog

import (
	"testing"

	"lfarma.app/storefront-web/internal/cart"
)

func sampleCatalog() []Product {
	return []Product{
		{ID: "1", Name: "Aspirina 100mg", Brand: "Bayer", Category: "Medicamentos", Price: 8500, Image: "aspirina.png"},
		{ID: "2", Name: "Ibuprofeno 400mg", Brand: "MK", Category: "Medicamentos", Price: 6200, Image: ""},
		{ID: "3", Name: "Crema hidratante", Brand: "Eucerin", Category: "Cuidado Personal", Price: 32000, Image: "https://cdn.example.com/crema.png"},
		{ID: "4", Name: "Vitamina C 1g", Brand: "Genfar", Category: "Vitaminas", Price: 15000, Image: "default.jpg"},
	}
}

func TestStoreSearchMatchesNameBrandCategory(t *testing.T) {
	s := NewStore()
	s.SetProducts(sampleCatalog())

	if got := s.Search("aspirina"); len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("search by name: got %v", got)
	}
	if got := s.Search("BAYER"); len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("search by brand, case-insensitive: got %v", got)
	}
	if got := s.Search("medicamentos"); len(got) != 2 {
		t.Fatalf("search by category: got %d results, want 2", len(got))
	}
	if got := s.Search("paracetamol"); got != nil {
		t.Fatalf("search with no match: got %v, want nil", got)
	}
	if got := s.Search("   "); got != nil {
		t.Fatalf("blank query: got %v, want nil", got)
	}
}

func TestStoreFilterByCategoryIgnoresNameAndBrand(t *testing.T) {
	s := NewStore()
	s.SetProducts(sampleCatalog())

	got := s.FilterByCategory("Cuidado Personal")
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("filter: got %v", got)
	}
	// "Eucerin" is a brand, not a category
	if got := s.FilterByCategory("Eucerin"); got != nil {
		t.Fatalf("filter matched brand: got %v", got)
	}
}

func TestStoreFeaturedPrefersRealImages(t *testing.T) {
	s := NewStore()
	s.SetProducts(sampleCatalog())

	got := s.Featured()
	if len(got) != 2 {
		t.Fatalf("featured: got %d products, want 2 with genuine photos", len(got))
	}
	for _, p := range got {
		if !p.HasRealImage() {
			t.Fatalf("featured included product without a photo: %+v", p)
		}
	}
}

func TestStoreFeaturedFallsBackWhenNoImages(t *testing.T) {
	products := make([]Product, 10)
	for i := range products {
		products[i] = Product{ID: string(rune('a' + i)), Name: "Producto", Image: ""}
	}
	s := NewStore()
	s.SetProducts(products)

	got := s.Featured()
	if len(got) != 7 {
		t.Fatalf("featured fallback: got %d, want 7", len(got))
	}
}

func TestSearchThenCartScenario(t *testing.T) {
	s := NewStore()
	s.SetProducts([]Product{
		{ID: "a", Name: "Aspirina", Price: 1200, Image: ""},
		{ID: "b", Name: "Ibuprofeno", Price: 800, Image: "ibu.jpg"},
	})

	got := s.Search("ibu")
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("search(ibu) = %v", got)
	}

	var c cart.Cart
	p := got[0]
	c.Add(cart.Line{ID: p.ID, Name: p.Name, Price: p.Price})
	c.Add(cart.Line{ID: p.ID, Name: p.Name, Price: p.Price})
	c.Remove("a")

	if len(c.Lines) != 1 || c.Lines[0].ID != "b" || c.Lines[0].Quantity != 2 {
		t.Fatalf("cart = %+v", c.Lines)
	}
	if c.Subtotal() != 1600 {
		t.Fatalf("subtotal = %v, want 1600", c.Subtotal())
	}
}

func TestStoreFindByID(t *testing.T) {
	s := NewStore()
	if s.Loaded() {
		t.Fatal("fresh store reports loaded")
	}
	s.SetProducts(sampleCatalog())
	if !s.Loaded() {
		t.Fatal("store not loaded after SetProducts")
	}
	if _, ok := s.FindByID("2"); !ok {
		t.Fatal("FindByID missed existing product")
	}
	if _, ok := s.FindByID("999"); ok {
		t.Fatal("FindByID matched unknown id")
	}
}
