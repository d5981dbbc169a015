package tally

import (
	"fmt"
	"math"
)

const secondsPerQuarter = 900

// QuarterHours converts seconds to decimal hours rounded to the nearest
// quarter hour, halves away from zero.
func QuarterHours(seconds int64) float64 {
	return math.Round(float64(seconds)/secondsPerQuarter) / 4
}

// FormatHours renders h with two decimals. Values in [-1, 0] render empty,
// which also hides small negative totals.
func FormatHours(h float64) string {
	if h >= -1.0 && h <= 0.0 {
		return ""
	}
	return fmt.Sprintf("%.2f", h)
}

// SumHours adds already-rounded per-day values. The result can differ from
// rounding the raw total once.
func SumHours(hours [DaysInReport]float64) float64 {
	var sum float64
	for _, h := range hours {
		sum += h
	}
	return sum
}
