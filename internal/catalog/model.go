package catalog

// Product is a read-only catalog entry. Prices are display strings
// ("$4.50") and are parsed on demand for cart math.
type Product struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    string `json:"price"`
	Desc     string `json:"desc"`
	Image    string `json:"image"`
}
