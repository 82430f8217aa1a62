package cli

import (
	"errors"
	"fmt"

	"github.com/aalvaropc/dayoff/internal/domain"
)

// Process exit statuses. The check writes nothing to stdout/stderr, so these
// are its whole interface. ExitUnavailable is 255, the value a -1 status
// truncates to on POSIX systems; it is set explicitly.
const (
	ExitWorkingDay    = 0
	ExitNonWorkingDay = 1
	ExitUnavailable   = 255
)

// NonWorkingDay is returned by the check command when the date is a weekend
// or a listed holiday. It is a result, not a failure.
type NonWorkingDay struct {
	Verdict domain.Verdict
}

func (e *NonWorkingDay) Error() string {
	return fmt.Sprintf("%s is a non-working day", e.Verdict.Date)
}

// ExitCode maps a command result to a process exit status. Any error other
// than NonWorkingDay means the status could not be determined.
func ExitCode(err error) int {
	if err == nil {
		return ExitWorkingDay
	}
	var nwd *NonWorkingDay
	if errors.As(err, &nwd) {
		return ExitNonWorkingDay
	}
	return ExitUnavailable
}
