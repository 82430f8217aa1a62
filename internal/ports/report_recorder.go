package ports

import "github.com/aalvaropc/dayoff/internal/domain"

// ReportRecorder persists the outcome of a check (e.g., a metrics textfile).
type ReportRecorder interface {
	Record(report domain.CheckReport) error
}
