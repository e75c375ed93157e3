// Package daterange turns the console's year/month selectors into the
// date_from/date_to pair the backend filters on.
package daterange

import (
	"fmt"
	"net/url"
	"time"
)

const layout = "2006-01-02"

// Range is an inclusive span of calendar days.
type Range struct {
	From time.Time
	To   time.Time
}

// FromYearMonth builds the range selected by year and month, where 0 means unset.
// Year and month select that month; year alone selects the whole year; month alone
// selects that month of the current year. ok is false when neither is set.
func FromYearMonth(year, month int, now time.Time) (r Range, ok bool, err error) {
	if month < 0 || month > 12 {
		return Range{}, false, fmt.Errorf("month out of range: %d", month)
	}
	if year < 0 {
		return Range{}, false, fmt.Errorf("year out of range: %d", year)
	}
	switch {
	case year > 0 && month > 0:
		return monthRange(year, month), true, nil
	case year > 0:
		return Range{
			From: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
		}, true, nil
	case month > 0:
		return monthRange(now.Year(), month), true, nil
	}
	return Range{}, false, nil
}

func monthRange(year, month int) Range {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	// day 0 of the next month is the last day of this one
	last := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return Range{From: first, To: last}
}

// Apply writes date_from and date_to into q when the selectors pick a range.
func Apply(q url.Values, year, month int, now time.Time) error {
	r, ok, err := FromYearMonth(year, month, now)
	if err != nil || !ok {
		return err
	}
	q.Set("date_from", r.From.Format(layout))
	q.Set("date_to", r.To.Format(layout))
	return nil
}
