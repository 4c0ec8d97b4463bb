package catalog

// products is the full Suseli menu. The catalog is static; there is no
// inventory or product administration.
var products = []Product{
	{ID: 1, Name: "Artisan Croissant", Category: "Pastries", Price: "$4.50", Desc: "Buttery, flaky French perfection", Image: "https://images.unsplash.com/photo-1555507036-ab1f4038808a?w=800&auto=format&fit=crop"},
	{ID: 2, Name: "Sourdough Loaf", Category: "Breads", Price: "$8.00", Desc: "Traditional slow-fermented bread", Image: "https://images.unsplash.com/photo-1509440159596-0249088772ff?w=800&auto=format&fit=crop"},
	{ID: 3, Name: "Chocolate Cake", Category: "Cakes", Price: "$32.00", Desc: "Rich Belgian chocolate layers", Image: "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=800&auto=format&fit=crop"},
	{ID: 4, Name: "Almond Cookies", Category: "Cookies", Price: "$12.00", Desc: "12 pieces of crunchy delight", Image: "https://images.unsplash.com/photo-1558961363-fa8fdf82db35?w=800&auto=format&fit=crop"},
	{ID: 5, Name: "Fruit Tart", Category: "Pastries", Price: "$6.00", Desc: "Seasonal fresh fruits on custard", Image: "https://images.unsplash.com/photo-1488477181946-6428a0291777?w=800&auto=format&fit=crop"},
	{ID: 6, Name: "Baguette", Category: "Breads", Price: "$5.00", Desc: "Classic French bread", Image: "https://images.unsplash.com/photo-1549931319-a545dcf3bc73?w=800&auto=format&fit=crop"},
	{ID: 7, Name: "Éclair", Category: "Pastries", Price: "$5.50", Desc: "Rich chocolate pastry cream", Image: "https://images.unsplash.com/photo-1612203985729-70726954388c?w=800&auto=format&fit=crop"},
	{ID: 8, Name: "Red Velvet Cake", Category: "Cakes", Price: "$35.00", Desc: "Classic with cream cheese frosting", Image: "https://images.unsplash.com/photo-1586985289688-ca3cf47d3e6e?w=800&auto=format&fit=crop"},
}

// All returns a copy of the catalog.
func All() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// ByID looks up a single product.
func ByID(id int) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// ByCategory filters the catalog. "All" (or empty) returns everything.
func ByCategory(category string) []Product {
	if category == "" || category == "All" {
		return All()
	}
	var out []Product
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the menu filter tabs, "All" first, then the distinct
// product categories in catalog order.
func Categories() []string {
	out := []string{"All"}
	seen := map[string]bool{}
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}
