package cart

import (
	"encoding/json"
	"math"
	"testing"
)

func TestAddMergesExistingLine(t *testing.T) {
	var c Cart
	c.Add(Line{ID: "a", Name: "Aspirina", Price: 8500})
	c.Add(Line{ID: "a", Name: "Aspirina", Price: 8500})
	if len(c.Lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(c.Lines))
	}
	if c.Lines[0].Quantity != 2 {
		t.Fatalf("quantity = %d, want 2", c.Lines[0].Quantity)
	}
}

func TestAddAppendsDistinctProducts(t *testing.T) {
	var c Cart
	c.Add(Line{ID: "a", Price: 1000})
	c.Add(Line{ID: "b", Price: 500})
	if len(c.Lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(c.Lines))
	}
	for _, l := range c.Lines {
		if l.Quantity != 1 {
			t.Fatalf("fresh line quantity = %d, want 1", l.Quantity)
		}
	}
}

func TestCountAndSubtotal(t *testing.T) {
	var c Cart
	c.Add(Line{ID: "a", Price: 1000})
	c.Add(Line{ID: "a", Price: 1000})
	c.Add(Line{ID: "b", Price: 500})
	c.Add(Line{ID: "b", Price: 500})
	c.Add(Line{ID: "b", Price: 500})
	if got := c.Count(); got != 5 {
		t.Fatalf("count = %d, want 5", got)
	}
	if got := c.Subtotal(); got != 3500 {
		t.Fatalf("subtotal = %v, want 3500", got)
	}
}

func TestRemoveDropsWholeLine(t *testing.T) {
	var c Cart
	c.Add(Line{ID: "a", Price: 1000})
	c.Add(Line{ID: "a", Price: 1000})
	c.Remove("a")
	if !c.Empty() {
		t.Fatalf("cart not empty after remove: %+v", c.Lines)
	}
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	var c Cart
	c.Add(Line{ID: "a", Price: 1000})
	c.Remove("zzz")
	if len(c.Lines) != 1 || c.Count() != 1 {
		t.Fatalf("cart changed by absent remove: %+v", c.Lines)
	}
}

func TestInsanePricesAreZeroed(t *testing.T) {
	var c Cart
	c.Add(Line{ID: "a", Price: math.NaN()})
	c.Add(Line{ID: "b", Price: math.Inf(1)})
	c.Add(Line{ID: "c", Price: -50})
	if got := c.Subtotal(); got != 0 {
		t.Fatalf("subtotal = %v, want 0", got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	var c Cart
	c.Add(Line{ID: "a", Name: "Aspirina", Price: 8500, Image: "/images/aspirina.png"})
	c.Add(Line{ID: "a", Name: "Aspirina", Price: 8500, Image: "/images/aspirina.png"})

	raw, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	// persisted form is a bare array with Spanish field names
	var arr []map[string]any
	if err := json.Unmarshal(raw, &arr); err != nil {
		t.Fatalf("persisted form is not an array: %s", raw)
	}
	if arr[0]["nombre"] != "Aspirina" || arr[0]["cantidad"] != float64(2) {
		t.Fatalf("unexpected wire shape: %s", raw)
	}

	var back Cart
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Count() != c.Count() || back.Subtotal() != c.Subtotal() {
		t.Fatalf("round trip changed cart: %+v vs %+v", back, c)
	}
}

func TestEmptyCartMarshalsToEmptyArray(t *testing.T) {
	raw, err := json.Marshal(Cart{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != "[]" {
		t.Fatalf("empty cart = %s, want []", raw)
	}
}

func TestMalformedPayloadYieldsEmptyCart(t *testing.T) {
	for _, raw := range []string{"not json", `{"lines":[]}`, `[{"cantidad":"dos"}]`} {
		var c Cart
		if err := json.Unmarshal([]byte(raw), &c); err != nil {
			t.Fatalf("unmarshal(%q) returned error: %v", raw, err)
		}
		if !c.Empty() {
			t.Fatalf("unmarshal(%q) produced non-empty cart: %+v", raw, c.Lines)
		}
	}
}

func TestDecodeEncodeHelpers(t *testing.T) {
	c := Decode([]byte(`[{"id":"x","nombre":"Suero","precio":12000,"cantidad":3}]`))
	if c.Count() != 3 {
		t.Fatalf("decode count = %d, want 3", c.Count())
	}
	if got := Decode(Encode(c)); got.Subtotal() != c.Subtotal() {
		t.Fatalf("encode/decode changed subtotal")
	}
}
