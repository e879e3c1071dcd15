package utils

import "time"

// ParseDate parses a YYYY-MM-DD string. An empty string yields the zero time.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseDateOrToday parses a YYYY-MM-DD string, falling back to today's UTC
// date when the string is empty. The dashboard's metric endpoints default
// both bounds to today.
func ParseDateOrToday(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return Today(), nil
	}

	return time.Parse(time.DateOnly, dateStr)
}

// Today returns the current UTC calendar date at midnight.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
