package usecase

import (
	"context"

	"github.com/aalvaropc/dayoff/internal/domain"
	"github.com/aalvaropc/dayoff/internal/ports"
)

type ListHolidays struct {
	holidays ports.HolidayLoader
}

func NewListHolidays(hl ports.HolidayLoader) *ListHolidays {
	return &ListHolidays{holidays: hl}
}

// Execute returns the listed holidays in file order; year 0 means all years.
func (uc *ListHolidays) Execute(ctx context.Context, holidaysPath string, year int) ([]domain.Holiday, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	set, err := uc.holidays.Load(holidaysPath)
	if err != nil {
		return nil, err
	}

	if year == 0 {
		return set.Holidays(), nil
	}
	return set.InYear(year), nil
}
