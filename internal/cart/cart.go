// Package cart implements the visitor's shopping cart: an ordered list of
// line items keyed by product id, persisted wholesale in the session cookie.
package cart

import "math"

// Line is one cart entry. Name, price, and image are denormalized snapshots
// taken from the catalog at add time; the JSON field names match the persisted
// cart payload.
type Line struct {
	ID       string  `json:"id"`
	Name     string  `json:"nombre"`
	Price    float64 `json:"precio"`
	Image    string  `json:"imagen,omitempty"`
	Quantity int     `json:"cantidad"`
}

// Cart holds lines in insertion order, at most one per product id.
type Cart struct {
	Lines []Line
}

// Add merges the line into the cart: an existing id gains one unit, a new id
// is appended with quantity 1. The incoming quantity is ignored; every add is
// a single unit. Invalid prices are stored as 0.
func (c *Cart) Add(line Line) {
	for i := range c.Lines {
		if c.Lines[i].ID == line.ID {
			c.Lines[i].Quantity++
			return
		}
	}
	line.Quantity = 1
	line.Price = sanePrice(line.Price)
	c.Lines = append(c.Lines, line)
}

// Remove drops the whole line for id, whatever its quantity. Absent ids are a
// no-op and other lines keep their order.
func (c *Cart) Remove(id string) {
	for i := range c.Lines {
		if c.Lines[i].ID == id {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// Count is the total item count across lines, 0 for an empty cart.
func (c Cart) Count() int {
	total := 0
	for _, l := range c.Lines {
		total += l.Quantity
	}
	return total
}

// Subtotal sums price times quantity over all lines. Missing or invalid
// prices count as 0.
func (c Cart) Subtotal() float64 {
	var total float64
	for _, l := range c.Lines {
		total += sanePrice(l.Price) * float64(l.Quantity)
	}
	return total
}

// Empty reports whether the cart has no lines.
func (c Cart) Empty() bool {
	return len(c.Lines) == 0
}

// Find returns the line for id, if present.
func (c Cart) Find(id string) (Line, bool) {
	for _, l := range c.Lines {
		if l.ID == id {
			return l, true
		}
	}
	return Line{}, false
}

func sanePrice(p float64) float64 {
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
		return 0
	}
	return p
}
