package kasir

import "fmt"

// Line is one cart entry: a value copy of a catalog product plus a
// quantity. The price is captured at add-time, not live-linked; later
// catalog edits do not move it.
type Line struct {
	ProductID int64
	Name      string
	Price     Money
	Quantity  int
}

// Subtotal returns quantity times unit price.
func (l Line) Subtotal() Money { return l.Price.MulInt(l.Quantity) }

// Cart is the ephemeral list of lines being sold. It is never persisted;
// checkout snapshots it into the ledger and clears it. One line per
// distinct product id, quantity always >= 1.
type Cart struct {
	lines []Line
}

func NewCart() *Cart { return &Cart{} }

// Add puts one unit of the product into the cart: an existing line for the
// id gets its quantity incremented, otherwise a new line is appended at the
// current catalog price. Returns ErrNotFound when the id is not in the
// catalog, leaving the cart unchanged.
func (c *Cart) Add(catalog *Catalog, id int64) error {
	p, ok := catalog.Get(id)
	if !ok {
		return fmt.Errorf("cannot add product %d to cart: %w", id, ErrNotFound)
	}
	for i := range c.lines {
		if c.lines[i].ProductID == id {
			c.lines[i].Quantity++
			return nil
		}
	}
	c.lines = append(c.lines, Line{ProductID: p.ID, Name: p.Name, Price: p.Price, Quantity: 1})
	return nil
}

// Remove deletes the line at the given position and reports whether the
// index was in range. Stale indices from a previous read must not crash
// the caller, so out-of-range is a false, not a panic.
func (c *Cart) Remove(index int) bool {
	if index < 0 || index >= len(c.lines) {
		return false
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
	return true
}

// RemoveProduct purges every line referencing the product id and returns
// how many were removed. This is the cart half of the catalog-delete
// contract: Catalog.Delete does not reach into carts.
func (c *Cart) RemoveProduct(id int64) int {
	kept := c.lines[:0]
	removed := 0
	for _, l := range c.lines {
		if l.ProductID == id {
			removed++
			continue
		}
		kept = append(kept, l)
	}
	c.lines = kept
	return removed
}

// Clear empties the cart.
func (c *Cart) Clear() { c.lines = nil }

// Len returns the number of lines.
func (c *Cart) Len() int { return len(c.lines) }

// Lines returns a snapshot of the cart lines.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total sums quantity times price over all lines.
func (c *Cart) Total() Money {
	total := M(0)
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}
