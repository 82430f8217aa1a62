package textfile

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aalvaropc/dayoff/internal/domain"
	"github.com/aalvaropc/dayoff/internal/ports"
)

// Recorder writes each check as a node_exporter textfile (atomically replaced).
type Recorder struct {
	path string
}

func NewRecorder(path string) *Recorder {
	return &Recorder{path: path}
}

var _ ports.ReportRecorder = (*Recorder)(nil)

func (r *Recorder) Record(report domain.CheckReport) error {
	reg := prometheus.NewRegistry()

	available := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dayoff_data_available",
		Help: "1 if the holiday list could be loaded for the last check.",
	})
	info := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dayoff_check_info",
			Help: "Date evaluated by the last check.",
		},
		[]string{"date", "weekday"},
	)
	checkedAt := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dayoff_last_check_timestamp_seconds",
		Help: "Unix time of the last check.",
	})
	reg.MustRegister(available, info, checkedAt)

	info.WithLabelValues(report.Date.String(), domain.Weekday(report.Date).String()).Set(1)
	if !report.CheckedAt.IsZero() {
		checkedAt.Set(float64(report.CheckedAt.Unix()))
	}

	if report.Available {
		available.Set(1)

		nonWorking := prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dayoff_non_working_day",
			Help: "1 if the date is a weekend or a listed holiday.",
		})
		weekend := prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dayoff_weekend",
			Help: "1 if the date is a Saturday or Sunday.",
		})
		listed := prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dayoff_listed_holiday",
			Help: "1 if the date appears in the holiday list.",
		})
		loaded := prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dayoff_holidays_loaded",
			Help: "Number of entries parsed from the holiday list.",
		})
		reg.MustRegister(nonWorking, weekend, listed, loaded)

		nonWorking.Set(boolToFloat(report.Verdict.NonWorking()))
		weekend.Set(boolToFloat(report.Verdict.Weekend))
		listed.Set(boolToFloat(report.Verdict.Listed))
		loaded.Set(float64(report.HolidayCount))
	}

	if err := prometheus.WriteToTextfile(r.path, reg); err != nil {
		return &domain.OpError{
			Op:   "textfile.record",
			Kind: domain.KindUnavailable,
			Path: r.path,
			Err:  err,
		}
	}
	return nil
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
