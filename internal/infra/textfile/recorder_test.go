package textfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-sql/civil"

	"github.com/aalvaropc/dayoff/internal/domain"
)

func readFile(t *testing.T, p string) string {
	t.Helper()
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return string(b)
}

func TestRecord_Available(t *testing.T) {
	p := filepath.Join(t.TempDir(), "dayoff.prom")
	day := civil.Date{Year: 1970, Month: time.January, Day: 3}

	err := NewRecorder(p).Record(domain.CheckReport{
		Date:         day,
		Available:    true,
		Verdict:      domain.Verdict{Date: day, Weekend: true},
		HolidayCount: 12,
		CheckedAt:    time.Unix(1000, 0),
	})
	if err != nil {
		t.Fatalf("Record error: %v", err)
	}

	out := readFile(t, p)
	for _, want := range []string{
		"dayoff_data_available 1",
		"dayoff_non_working_day 1",
		"dayoff_weekend 1",
		"dayoff_listed_holiday 0",
		"dayoff_holidays_loaded 12",
		"dayoff_last_check_timestamp_seconds 1000",
		`dayoff_check_info{date="1970-01-03",weekday="Saturday"} 1`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in textfile, got:\n%s", want, out)
		}
	}
}

func TestRecord_Unavailable(t *testing.T) {
	p := filepath.Join(t.TempDir(), "dayoff.prom")

	err := NewRecorder(p).Record(domain.CheckReport{
		Date: civil.Date{Year: 1970, Month: time.January, Day: 2},
	})
	if err != nil {
		t.Fatalf("Record error: %v", err)
	}

	out := readFile(t, p)
	if !strings.Contains(out, "dayoff_data_available 0") {
		t.Fatalf("expected data_available=0, got:\n%s", out)
	}
	if strings.Contains(out, "dayoff_non_working_day") {
		t.Fatalf("expected no verdict gauges without data, got:\n%s", out)
	}
}

func TestRecord_MissingDirectory(t *testing.T) {
	p := filepath.Join(t.TempDir(), "missing", "dayoff.prom")

	err := NewRecorder(p).Record(domain.CheckReport{})
	if !domain.IsKind(err, domain.KindUnavailable) {
		t.Fatalf("expected KindUnavailable, got: %v", err)
	}
}
