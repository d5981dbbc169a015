package formatter

import (
	"fmt"
	"strings"
)

// Separator closes the diagnostic listing.
var Separator = strings.Repeat("-", 80)

// FormatDayListing renders one "DD:VALUE" line per day, day right-aligned in
// two columns and value in six. A nil st renders plain text.
func FormatDayListing(cells []string, st *Styles) string {
	var b strings.Builder
	for i, cell := range cells {
		day := fmt.Sprintf("%2d", i+1)
		value := fmt.Sprintf("%6s", cell)
		if st != nil {
			day = st.Day.Render(day)
			value = st.Hours.Render(value)
		}
		b.WriteString(day + ":" + value + "\n")
	}
	return b.String()
}

// FormatTotal renders the "T:" line for the sum of the rounded day values.
func FormatTotal(total float64, st *Styles) string {
	line := fmt.Sprintf("T:%7.2f", total)
	if st != nil {
		line = st.Total.Render(line)
	}
	return line + "\n"
}

// FormatSeparator renders the closing rule.
func FormatSeparator(st *Styles) string {
	if st != nil {
		return st.Rule.Render(Separator) + "\n"
	}
	return Separator + "\n"
}

// FormatRow joins the day cells with tabs. This is the machine-readable line,
// never styled.
func FormatRow(cells []string) string {
	return strings.Join(cells, "\t") + "\n"
}
