package tally

import (
	"iter"

	"github.com/alexanderramin/clocktally/internal/domain"
)

// DaysInReport is the fixed number of day slots. Slots past the end of a
// shorter month stay at zero.
const DaysInReport = 31

// Buckets holds worked seconds per day of month; index is day - 1.
type Buckets [DaysInReport]int64

// Fold adds every interval's seconds to its start day. It drains the whole
// sequence before returning.
func Fold(intervals iter.Seq[domain.Interval]) Buckets {
	var b Buckets
	for iv := range intervals {
		b[iv.Day()-1] += iv.Seconds()
	}
	return b
}

// Total returns the sum of all slots in seconds.
func (b Buckets) Total() int64 {
	var sum int64
	for _, s := range b {
		sum += s
	}
	return sum
}

// Hours returns each slot rounded to the nearest quarter hour.
func (b Buckets) Hours() [DaysInReport]float64 {
	var h [DaysInReport]float64
	for i, s := range b {
		h[i] = QuarterHours(s)
	}
	return h
}

// Cells returns each slot formatted for the report row.
func (b Buckets) Cells() [DaysInReport]string {
	var c [DaysInReport]string
	for i, h := range b.Hours() {
		c[i] = FormatHours(h)
	}
	return c
}
