package domain

import (
	"time"

	"github.com/golang-sql/civil"
)

// Verdict is the classification of a single date.
type Verdict struct {
	Date    civil.Date
	Weekend bool
	Listed  bool
}

// Classify builds the verdict for d against s.
func Classify(d civil.Date, s HolidaySet) Verdict {
	return Verdict{
		Date:    d,
		Weekend: IsWeekend(d),
		Listed:  s.Contains(d),
	}
}

// NonWorking is the final answer: true for a weekend or listed holiday.
func (v Verdict) NonWorking() bool {
	return v.Weekend || v.Listed
}

// CheckReport summarizes one check for recorders. When Available is false
// the holiday data could not be loaded and Verdict is meaningless.
type CheckReport struct {
	Date         civil.Date
	Available    bool
	Verdict      Verdict
	HolidayCount int
	CheckedAt    time.Time
}
