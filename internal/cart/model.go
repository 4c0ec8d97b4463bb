package cart

import "suseli-shop/internal/catalog"

// Line is one product entry in the cart. There is at most one line per
// product id; Quantity never drops below 1 while the line exists.
type Line struct {
	ProductID int    `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Price     string `json:"price"`
	Desc      string `json:"desc"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
}

func newLine(p catalog.Product) Line {
	return Line{
		ProductID: p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price,
		Desc:      p.Desc,
		Image:     p.Image,
		Quantity:  1,
	}
}

// Totals is derived from the current lines on every call, never cached.
type Totals struct {
	Subtotal float64
	Tax      float64
	Total    float64
}
