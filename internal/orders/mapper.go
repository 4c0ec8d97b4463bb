package orders

import "suseli-shop/internal/backend"

// FromRows joins backend order and item rows into the display model,
// preserving the backend's ordering (newest first). Backend column names
// are mapped here: created_at becomes the order date, product_name the
// item name.
func FromRows(orderRows []backend.OrderRow, itemRows []backend.ItemRow) []Order {
	itemsByOrder := make(map[string][]Item, len(orderRows))
	for _, it := range itemRows {
		itemsByOrder[it.OrderID] = append(itemsByOrder[it.OrderID], Item{
			Name:     it.ProductName,
			Quantity: it.Quantity,
			Price:    it.Price,
			Image:    it.Image,
		})
	}

	out := make([]Order, 0, len(orderRows))
	for _, row := range orderRows {
		out = append(out, Order{
			ID:           row.ID,
			CustomerName: row.CustomerName,
			PhoneNumber:  row.PhoneNumber,
			Total:        row.Total,
			Status:       Status(row.Status),
			DiscountCode: row.DiscountCode,
			Date:         row.CreatedAt,
			Items:        itemsByOrder[row.ID],
		})
	}
	return out
}
