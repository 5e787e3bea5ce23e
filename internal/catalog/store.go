package catalog

import (
	"strings"
	"sync"
)

// featuredLimit caps the number of cards in the offers carousel.
const featuredLimit = 7

// Store holds the last successfully fetched product list. The list is replaced
// wholesale on each refresh and never mutated in place. All reads re-scan the
// in-memory slice; with at most a few hundred products no index is warranted.
// Guarded by a mutex because fragment handlers run on concurrent goroutines.
type Store struct {
	mu       sync.RWMutex
	products []Product
	loaded   bool
}

func NewStore() *Store {
	return &Store{}
}

// SetProducts replaces the catalog with a fresh fetch result.
func (s *Store) SetProducts(products []Product) {
	cp := make([]Product, len(products))
	copy(cp, products)
	s.mu.Lock()
	s.products = cp
	s.loaded = true
	s.mu.Unlock()
}

// Loaded distinguishes "no matches" from "catalog never fetched".
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Products returns a copy of the current catalog.
func (s *Store) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cp := make([]Product, len(s.products))
	copy(cp, s.products)
	return cp
}

// FindByID looks a product up by its backend identifier.
func (s *Store) FindByID(id string) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Search returns products whose name, category, or brand contains the query,
// case-insensitively. Callers only invoke it for queries longer than two
// characters; the store itself does not enforce that threshold.
func (s *Store) Search(query string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Category), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) {
			out = append(out, p)
		}
	}
	return out
}

// FilterByCategory matches the category field only, case-insensitive substring.
func (s *Store) FilterByCategory(name string) []Product {
	q := strings.ToLower(strings.TrimSpace(name))
	if q == "" {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Product
	for _, p := range s.products {
		if p.Category != "" && strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out
}

// Featured applies the carousel display policy: prefer products carrying a
// genuine photo, capped at seven; when none qualifies, fall back to the first
// seven of the full set so the carousel still shows placeholders.
func (s *Store) Featured() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var withImage []Product
	for _, p := range s.products {
		if p.HasRealImage() {
			withImage = append(withImage, p)
		}
	}
	pool := withImage
	if len(pool) == 0 {
		pool = s.products
	}
	if len(pool) > featuredLimit {
		pool = pool[:featuredLimit]
	}
	cp := make([]Product, len(pool))
	copy(cp, pool)
	return cp
}
