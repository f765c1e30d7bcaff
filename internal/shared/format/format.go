package format

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// MoneyFromCents converts cents to a human-readable currency string.
// E.g., 1099 USD -> "$10.99"
func MoneyFromCents(cents int64, currency string) string {
	major := cents / 100
	remainder := cents % 100
	if remainder < 0 {
		remainder = -remainder
	}
	return fmt.Sprintf("%s%d.%02d", currencySymbol(currency), major, remainder)
}

func currencySymbol(code string) string {
	switch code {
	case "EUR":
		return "€"
	case "USD":
		return "$"
	case "GBP":
		return "£"
	case "JPY":
		return "¥"
	case "BDT":
		return "৳"
	default:
		return code + " "
	}
}

// Date renders a timestamp the way list screens show it.
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// DateTime renders a timestamp with the time of day.
func DateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006 15:04")
}

// Ago renders a relative timestamp ("3 days ago") for order history.
func Ago(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.Time(t)
}
