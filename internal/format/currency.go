// Package format renders prices for display.
package format

import (
	"math"

	"github.com/dustin/go-humanize"
)

// Currency formats a value in Brazilian reais, e.g. 1234.5 -> "R$ 1.234,50"
func Currency(value float64) string {
	if value < 0 {
		return "-R$ " + humanize.FormatFloat("#.###,##", math.Abs(value))
	}
	return "R$ " + humanize.FormatFloat("#.###,##", value)
}

// Discount formats a percent-off badge, e.g. 30 -> "-30%"
func Discount(percent int) string {
	if percent <= 0 {
		return ""
	}
	return "-" + humanize.Comma(int64(percent)) + "%"
}
