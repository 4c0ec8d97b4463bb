package cart

import (
	"suseli-shop/internal/catalog"
)

// Cart holds the shopper's pending line items. It is a plain value type;
// the shop container owns locking and persistence.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add increments the quantity of an existing line for the product, or
// appends a new line with quantity 1. The return value reports whether an
// existing line was bumped.
func (c *Cart) Add(p catalog.Product) bool {
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			c.lines[i].Quantity++
			return true
		}
	}
	c.lines = append(c.lines, newLine(p))
	return false
}

// Remove deletes the line for the product id. Removing an absent id is a
// no-op; the return value reports whether a line was deleted.
func (c *Cart) Remove(productID int) bool {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateQuantity adjusts a line's quantity by delta, clamped at 1. Lines
// are only deleted through Remove. Unknown ids are a no-op.
func (c *Cart) UpdateQuantity(productID, delta int) bool {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			qty := c.lines[i].Quantity + delta
			if qty < 1 {
				qty = 1
			}
			c.lines[i].Quantity = qty
			return true
		}
	}
	return false
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the current line items.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Units returns the total item count across all lines (the cart badge).
func (c *Cart) Units() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Totals recomputes subtotal, tax and total from the current lines.
func (c *Cart) Totals(taxRate float64) (Totals, error) {
	var t Totals
	for _, l := range c.lines {
		price, err := catalog.ParsePrice(l.Price)
		if err != nil {
			return Totals{}, err
		}
		t.Subtotal += price * float64(l.Quantity)
	}
	t.Tax = t.Subtotal * taxRate
	t.Total = t.Subtotal + t.Tax
	return t, nil
}
