// Package filtering narrows already-loaded lists in memory. Every function is a
// single pass over its input; an unset criterion matches everything.
package filtering

import (
	"strings"
	"time"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate reads the ISO timestamps and dates the backend sends.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Contains reports whether field contains term, ignoring case.
// A blank term matches every field.
func Contains(field, term string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(field), strings.ToLower(term))
}

// Equals reports whether got equals want. An empty want matches everything.
func Equals[T ~string](got, want T) bool {
	return want == "" || got == want
}

// InPeriod checks the date in primary, or fallback when primary is empty, against
// year and month (0 means unset). A record without a usable date only matches
// when no period is selected.
func InPeriod(primary, fallback string, year, month int) bool {
	if year == 0 && month == 0 {
		return true
	}
	raw := primary
	if strings.TrimSpace(raw) == "" {
		raw = fallback
	}
	t, ok := ParseDate(raw)
	if !ok {
		return false
	}
	if year != 0 && t.Year() != year {
		return false
	}
	if month != 0 && int(t.Month()) != month {
		return false
	}
	return true
}

// Apply keeps the items that satisfy every predicate. The result is never nil.
func Apply[T any](items []T, preds ...func(T) bool) []T {
	out := make([]T, 0, len(items))
next:
	for _, item := range items {
		for _, pred := range preds {
			if !pred(item) {
				continue next
			}
		}
		out = append(out, item)
	}
	return out
}
