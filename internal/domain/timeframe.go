package domain

import (
	"errors"
	"fmt"
	"time"
)

// Timeframe is a named dashboard period.
type Timeframe string

const (
	TimeframeToday  Timeframe = "today"
	TimeframeWeek   Timeframe = "week"
	TimeframeMonth  Timeframe = "month"
	TimeframeYear   Timeframe = "year"
	TimeframeCustom Timeframe = "custom"
)

// ErrInvalidDate reports a custom-range date that could not be parsed.
var ErrInvalidDate = errors.New("invalid date")

// DateRange is a start-inclusive, end-exclusive pair of calendar dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ResolveDateRange converts a timeframe token into concrete dates relative
// to now. Weeks start on Monday; month and year ranges run to the first day
// of the next period. A custom range uses the caller-supplied dates as-is:
// the end date is treated as the exclusive upper bound, so callers wanting
// an inclusive last day must pass the day after. Unrecognized tokens fall
// back to today.
func ResolveDateRange(timeframe Timeframe, now time.Time, startDate, endDate string) (DateRange, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch timeframe {
	case TimeframeWeek:
		// Weekday is 0 for Sunday, so a Sunday resolves to the next Monday.
		start := today.AddDate(0, 0, -int(today.Weekday())+1)
		return DateRange{Start: start, End: start.AddDate(0, 0, 7)}, nil

	case TimeframeMonth:
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		return DateRange{Start: start, End: start.AddDate(0, 1, 0)}, nil

	case TimeframeYear:
		start := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		return DateRange{Start: start, End: start.AddDate(1, 0, 0)}, nil

	case TimeframeCustom:
		start, err := time.Parse(time.DateOnly, startDate)
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: start date %q", ErrInvalidDate, startDate)
		}

		end, err := time.Parse(time.DateOnly, endDate)
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: end date %q", ErrInvalidDate, endDate)
		}

		return DateRange{Start: start, End: end}, nil

	default:
		// today, and the fallback for anything unrecognized
		return DateRange{Start: today, End: today.AddDate(0, 0, 1)}, nil
	}
}
