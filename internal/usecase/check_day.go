package usecase

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aalvaropc/dayoff/internal/domain"
	"github.com/aalvaropc/dayoff/internal/ports"
)

// CheckDay loads the holiday list once and classifies today's date.
type CheckDay struct {
	holidays ports.HolidayLoader
	clock    ports.Clock
	recorder ports.ReportRecorder
	logger   *slog.Logger
	now      func() time.Time
}

type CheckOption func(*CheckDay)

// WithRecorder persists every report; a nil recorder disables recording.
func WithRecorder(r ports.ReportRecorder) CheckOption {
	return func(uc *CheckDay) { uc.recorder = r }
}

func WithLogger(l *slog.Logger) CheckOption {
	return func(uc *CheckDay) {
		if l != nil {
			uc.logger = l
		}
	}
}

// WithNow overrides the timestamp written into reports (useful for tests).
func WithNow(now func() time.Time) CheckOption {
	return func(uc *CheckDay) {
		if now != nil {
			uc.now = now
		}
	}
}

func NewCheckDay(hl ports.HolidayLoader, clock ports.Clock, opts ...CheckOption) *CheckDay {
	uc := &CheckDay{
		holidays: hl,
		clock:    clock,
		logger:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute returns the verdict for today. A load failure is returned as is
// (domain.KindUnavailable from the file loader) and no verdict is decided.
func (uc *CheckDay) Execute(ctx context.Context, holidaysPath string) (domain.Verdict, error) {
	if err := ctx.Err(); err != nil {
		return domain.Verdict{}, err
	}

	today := uc.clock.Today()
	report := domain.CheckReport{Date: today, CheckedAt: uc.now()}

	set, err := uc.holidays.Load(holidaysPath)
	if err != nil {
		uc.logger.Error("check.load_failed", "path", holidaysPath, "date", today.String(), "err", err)
		uc.record(report)
		return domain.Verdict{Date: today}, err
	}
	uc.logger.Debug("check.loaded", "path", holidaysPath, "holidays", set.Len())

	v := domain.Classify(today, set)

	report.Available = true
	report.Verdict = v
	report.HolidayCount = set.Len()
	uc.record(report)

	uc.logger.Info("check.verdict",
		"date", today.String(),
		"weekday", domain.Weekday(today).String(),
		"weekend", v.Weekend,
		"listed", v.Listed,
		"non_working", v.NonWorking(),
	)
	return v, nil
}

// record never fails the check; the exit status only reflects the verdict.
func (uc *CheckDay) record(report domain.CheckReport) {
	if uc.recorder == nil {
		return
	}
	if err := uc.recorder.Record(report); err != nil {
		uc.logger.Warn("check.record_failed", "err", err)
	}
}
