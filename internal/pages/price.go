package pages

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePrice extracts the decimal value from a displayed price. The shop
// renders prices as "$29.99"; summary labels embed them in longer text such
// as "Item total: $29.99", so everything up to the last "$" is ignored.
// A malformed price is a hard error, never a silent zero.
func ParsePrice(text string) (float64, error) {
	i := strings.LastIndex(text, "$")
	if i < 0 {
		return 0, fmt.Errorf("price %q: no \"$\" found", text)
	}
	raw := strings.TrimSpace(text[i+1:])
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("price %q: %w", text, err)
	}
	return v, nil
}

// FormatPrice renders a value the way the shop displays it, with a leading
// "$" and two decimal places.
func FormatPrice(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// productID maps a human product name to the id fragment used in the
// application's add-to-cart and remove button ids: lower-cased, spaces
// replaced with hyphens. This rule is a contract with the markup under test.
func productID(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
