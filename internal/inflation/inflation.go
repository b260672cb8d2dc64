// Package inflation holds the pure price math for the annual CPI adjustment:
// applying a percentage rate to a base value, rounding to the display
// granularity, and rendering price strings for the guide pages.
package inflation

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DisplayGranularity is the rounding unit for user-facing prices. Raw inflated
// values ("$4,512.37") are smoothed to the nearest hundred before display.
const DisplayGranularity = 100

var printer = message.NewPrinter(language.English)

// Apply compounds a percentage rate onto a base value. The rate may be
// negative in a deflationary year.
func Apply(base float64, ratePercent float64) float64 {
	return base * (1 + ratePercent/100)
}

// ApplyOptional is Apply lifted over a nullable value. Entries without a max
// price carry nil through the whole pipeline, never a zero.
func ApplyOptional(base *float64, ratePercent float64) *float64 {
	if base == nil {
		return nil
	}
	v := Apply(*base, ratePercent)
	return &v
}

// RoundToDisplay rounds a value to the nearest DisplayGranularity.
// Idempotent: rounding an already-rounded value is a no-op.
func RoundToDisplay(value float64) float64 {
	return math.Round(value/DisplayGranularity) * DisplayGranularity
}

// RoundToDisplayOptional is RoundToDisplay lifted over a nullable value.
func RoundToDisplayOptional(value *float64) *float64 {
	if value == nil {
		return nil
	}
	v := RoundToDisplay(*value)
	return &v
}

// FormatPrice renders a display price. A single value renders as "$<min>",
// a range as "$<min> - $<max>", both with thousands separators.
func FormatPrice(min float64, max *float64) string {
	if max == nil {
		return printer.Sprintf("$%d", int64(math.Round(min)))
	}
	return printer.Sprintf("$%d - $%d", int64(math.Round(min)), int64(math.Round(*max)))
}
