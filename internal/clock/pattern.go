package clock

import (
	"fmt"
	"regexp"
	"time"

	"github.com/alexanderramin/clocktally/internal/domain"
)

// patternTemplate anchors the start timestamp to one year-month; the end
// timestamp is any well-shaped date-time.
const patternTemplate = `CLOCK: \[(%04d-%02d-\d{2} ... \d{2}:\d{2})\]--\[(\d{4}-\d{2}-\d{2} ... \d{2}:\d{2})\]`

// Pattern matches CLOCK interval annotations whose start falls in a given month.
type Pattern struct {
	re *regexp.Regexp
}

// NewPattern builds the matcher for the month containing date.
func NewPattern(date time.Time) (*Pattern, error) {
	expr := fmt.Sprintf(patternTemplate, date.Year(), int(date.Month()))
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compiling interval pattern: %w", err)
	}
	return &Pattern{re: re}, nil
}

// Match returns the raw start and end timestamps of the first annotation on
// line. Path and Line are left for the caller to fill in.
func (p *Pattern) Match(line string) (domain.Capture, bool) {
	m := p.re.FindStringSubmatch(line)
	if m == nil {
		return domain.Capture{}, false
	}
	return domain.Capture{Start: m[1], End: m[2]}, true
}

// String returns the regular expression source.
func (p *Pattern) String() string {
	return p.re.String()
}
