package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidPrice = errors.New("invalid price string")

// ParsePrice converts a display price like "$4.50" to its numeric value.
func ParsePrice(price string) (float64, error) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(price), "$"))
	if trimmed == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, price)
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, price)
	}
	return v, nil
}

// FormatPrice renders a numeric amount the way the catalog displays it.
func FormatPrice(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
