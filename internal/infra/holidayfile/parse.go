package holidayfile

import (
	"strings"

	"github.com/golang-sql/civil"

	"github.com/aalvaropc/dayoff/internal/domain"
)

const separator = ": "

// Parse converts lines into a holiday set, keeping source order and
// silently skipping lines without a leading date.
func Parse(lines []string) domain.HolidaySet {
	var hs []domain.Holiday
	for _, line := range lines {
		if h, ok := ParseLine(line); ok {
			hs = append(hs, h)
		}
	}
	return domain.NewHolidaySet(hs...)
}

// ParseLine splits line on the first ": " and parses the left part as
// YYYY-MM-DD. Headers ("---"), comments and blank lines report ok=false.
func ParseLine(line string) (domain.Holiday, bool) {
	left, right, _ := strings.Cut(line, separator)

	d, err := civil.ParseDate(strings.TrimSpace(left))
	if err != nil {
		return domain.Holiday{}, false
	}
	return domain.Holiday{Date: d, Name: strings.TrimSpace(right)}, true
}
