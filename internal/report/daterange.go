package report

import "time"

// DateRange is an inclusive calendar-day window. Bounds are normalized once
// when the range is built (the "Apply" click in the dashboard), not on every
// comparison: From snaps to 00:00:00.000 and To snaps to 23:59:59.999 of
// their respective days. A nil bound leaves that side open.
type DateRange struct {
	from *time.Time
	to   *time.Time
}

// NewDateRange builds a normalized range from optional bounds.
func NewDateRange(from, to *time.Time) DateRange {
	r := DateRange{}
	if from != nil {
		start := startOfDay(*from)
		r.from = &start
	}
	if to != nil {
		end := endOfDay(*to)
		r.to = &end
	}
	return r
}

// Unbounded reports whether both sides are open, in which case filtering is
// the identity.
func (r DateRange) Unbounded() bool {
	return r.from == nil && r.to == nil
}

// Contains reports whether t falls inside the range, bounds inclusive.
func (r DateRange) Contains(t time.Time) bool {
	if r.from != nil && t.Before(*r.from) {
		return false
	}
	if r.to != nil && t.After(*r.to) {
		return false
	}
	return true
}

// FilterByDate returns the records whose timestamp falls inside the range,
// preserving relative order. The input slice is never mutated. An unbounded
// range returns a copy of the input untouched, malformed records included;
// otherwise records without a usable timestamp are dropped.
func FilterByDate[T any](records []T, r DateRange, tsFn func(T) (time.Time, bool)) []T {
	if r.Unbounded() {
		out := make([]T, len(records))
		copy(out, records)
		return out
	}

	out := make([]T, 0, len(records))
	for _, record := range records {
		ts, ok := tsFn(record)
		if !ok {
			continue
		}
		if r.Contains(ts) {
			out = append(out, record)
		}
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, t.Location())
}
