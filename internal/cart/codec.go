package cart

import "encoding/json"

// The cart serializes as a bare line array, the shape persisted in the session
// cookie. Decode(Encode(c)) == c.

// MarshalJSON encodes the cart as its line array. An empty cart encodes as [].
func (c Cart) MarshalJSON() ([]byte, error) {
	if len(c.Lines) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(c.Lines)
}

// UnmarshalJSON decodes a line array. Malformed payloads yield an empty cart
// rather than an error: a corrupt persisted cart is treated as no cart.
func (c *Cart) UnmarshalJSON(data []byte) error {
	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		c.Lines = nil
		return nil
	}
	c.Lines = lines
	return nil
}

// Decode parses a persisted cart payload. Nil, empty, or malformed input all
// produce an empty cart.
func Decode(data []byte) Cart {
	var c Cart
	if len(data) == 0 {
		return c
	}
	_ = c.UnmarshalJSON(data)
	return c
}

// Encode serializes the cart for persistence.
func Encode(c Cart) []byte {
	b, err := c.MarshalJSON()
	if err != nil {
		return []byte("[]")
	}
	return b
}
