package clock

import (
	"strings"
	"time"

	"github.com/golang-sql/civil"

	"github.com/aalvaropc/dayoff/internal/domain"
	"github.com/aalvaropc/dayoff/internal/ports"
)

// System reads the wall clock and reduces it to a date in a fixed location.
type System struct {
	now func() time.Time
	loc *time.Location
}

type Option func(*System)

// WithNow overrides the time source (useful for tests).
func WithNow(now func() time.Time) Option {
	return func(s *System) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLocation sets the zone that decides where "today" starts.
func WithLocation(loc *time.Location) Option {
	return func(s *System) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func NewSystem(opts ...Option) *System {
	s := &System{now: time.Now, loc: time.Local}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.Clock = (*System)(nil)

func (s *System) Today() civil.Date {
	return civil.DateOf(s.now().In(s.loc))
}

// Fixed always reports the same date.
type Fixed civil.Date

var _ ports.Clock = Fixed{}

func (f Fixed) Today() civil.Date { return civil.Date(f) }

// LoadLocation resolves a zone name. "" and "Local" mean the process zone.
func LoadLocation(name string) (*time.Location, error) {
	n := strings.TrimSpace(name)
	if n == "" || strings.EqualFold(n, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(n)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "clock.loadlocation",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}
	return loc, nil
}
