package shop

import (
	"time"

	"suseli-shop/internal/cart"
	"suseli-shop/internal/orders"
)

// Details is what the checkout form collects. Validation (non-empty cart,
// plausible phone number) is the caller's job; the discount code is
// accepted but neither validated nor applied.
type Details struct {
	CustomerName string
	PhoneNumber  string
	DiscountCode string
}

// Receipt is the locally-held echo of a just-placed order, returned for
// immediate display. The authoritative record arrives later through the
// backend-sourced order list; the two are never merged.
type Receipt struct {
	ID           string
	Date         time.Time
	Status       orders.Status
	Items        []cart.Line
	Subtotal     float64
	Tax          float64
	Total        float64
	CustomerName string
	PhoneNumber  string
	DiscountCode string
}
