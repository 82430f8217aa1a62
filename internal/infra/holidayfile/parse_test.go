package holidayfile

import (
	"testing"
	"time"

	"github.com/golang-sql/civil"
)

func TestParseLine(t *testing.T) {
	cases := []struct {
		line string
		ok   bool
		date civil.Date
		name string
	}{
		{"1970-01-01: 元日", true, civil.Date{Year: 1970, Month: time.January, Day: 1}, "元日"},
		{"2024-02-23: 天皇誕生日", true, civil.Date{Year: 2024, Month: time.February, Day: 23}, "天皇誕生日"},
		{"2024-05-06: 休日: 振替", true, civil.Date{Year: 2024, Month: time.May, Day: 6}, "休日: 振替"},
		{"1970-01-01", true, civil.Date{Year: 1970, Month: time.January, Day: 1}, ""},
		{"1970-01-01: x\r", true, civil.Date{Year: 1970, Month: time.January, Day: 1}, "x"},
		{"---", false, civil.Date{}, ""},
		{"", false, civil.Date{}, ""},
		{"# comment", false, civil.Date{}, ""},
		{"1970-01-01:元日", false, civil.Date{}, ""},
		{"1970-02-30: bogus", false, civil.Date{}, ""},
		{"1970/01/01: slash", false, civil.Date{}, ""},
		{"1970-1-1: short", false, civil.Date{}, ""},
	}
	for _, c := range cases {
		h, ok := ParseLine(c.line)
		if ok != c.ok {
			t.Errorf("ParseLine(%q) ok=%v, want %v", c.line, ok, c.ok)
			continue
		}
		if !ok {
			continue
		}
		if h.Date != c.date {
			t.Errorf("ParseLine(%q) date=%s, want %s", c.line, h.Date, c.date)
		}
		if h.Name != c.name {
			t.Errorf("ParseLine(%q) name=%q, want %q", c.line, h.Name, c.name)
		}
	}
}

func TestParse_KeepsOrderAndDuplicates(t *testing.T) {
	set := Parse([]string{
		"---",
		"1970-02-11: 建国記念の日",
		"1970-01-01: 元日",
		"1970-01-01: 元日",
	})

	got := set.Dates()
	if len(got) != 3 {
		t.Fatalf("expected 3 dates, got %d", len(got))
	}
	if got[0].Month != time.February || got[1].Month != time.January {
		t.Fatalf("expected source order, got %v", got)
	}
}
