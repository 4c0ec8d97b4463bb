package orders

import "time"

type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
)

// Steps is the tracking ladder shown to customers. Cancelled sits outside
// the ladder as a terminal error state.
var Steps = []Status{StatusPending, StatusProcessing, StatusCompleted}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Item is one product line inside a placed order. Prices stay display
// strings; the order total was computed at checkout.
type Item struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
	Image    string `json:"image"`
}

// Order is immutable once created except for Status and eventual deletion.
type Order struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName"`
	PhoneNumber  string    `json:"phoneNumber"`
	Total        float64   `json:"total"`
	Status       Status    `json:"status"`
	DiscountCode string    `json:"discountCode,omitempty"`
	Date         time.Time `json:"date"`
	Items        []Item    `json:"items"`
}
