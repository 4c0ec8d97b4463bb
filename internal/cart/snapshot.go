package cart

import "encoding/json"

// Snapshot serializes the cart lines for the local store.
func (c *Cart) Snapshot() ([]byte, error) {
	lines := c.lines
	if lines == nil {
		lines = []Line{}
	}
	return json.Marshal(lines)
}

// FromSnapshot rebuilds a cart from persisted state. A missing or
// unparsable snapshot yields an empty cart; saved junk must never be fatal.
func FromSnapshot(data []byte) *Cart {
	if len(data) == 0 {
		return New()
	}
	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return New()
	}
	return &Cart{lines: lines}
}
