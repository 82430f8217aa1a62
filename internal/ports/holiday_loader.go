package ports

import "github.com/aalvaropc/dayoff/internal/domain"

// HolidayLoader builds a holiday set from a source (e.g., a file on disk).
type HolidayLoader interface {
	Load(path string) (domain.HolidaySet, error)
}
