package report

import "time"

// Bucket is one key/value entry of an aggregated series.
type Bucket[K comparable] struct {
	Key   K       `json:"key"`
	Value float64 `json:"value"`
}

// Aggregate groups records by keyFn and folds valueFn into one bucket per
// distinct key. Bucket order is the first-seen order of each key, so callers
// that want a sorted axis sort afterwards. Records for which keyFn reports
// !ok (missing date, broken join reference) are skipped, never turned into
// their own bucket. Empty input yields an empty series.
func Aggregate[T any, K comparable](records []T, keyFn func(T) (K, bool), valueFn func(T) float64) []Bucket[K] {
	index := make(map[K]int, len(records))
	buckets := make([]Bucket[K], 0, len(records))

	for _, record := range records {
		key, ok := keyFn(record)
		if !ok {
			continue
		}
		i, seen := index[key]
		if !seen {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, Bucket[K]{Key: key})
		}
		buckets[i].Value += valueFn(record)
	}

	return buckets
}

// Count is the valueFn for occurrence counting.
func Count[T any](T) float64 { return 1 }

// MonthlySeries folds records dated inside the given year into twelve
// calendar-month buckets. Unlike Aggregate, the full year axis is always
// pre-seeded at zero because the charts render all twelve months even when
// a month saw no activity. Records outside the year or without a usable
// date are skipped.
func MonthlySeries[T any](records []T, year int, dateFn func(T) (time.Time, bool), valueFn func(T) float64) []Bucket[string] {
	buckets := make([]Bucket[string], 12)
	for m := time.January; m <= time.December; m++ {
		buckets[m-1] = Bucket[string]{Key: m.String()}
	}

	for _, record := range records {
		ts, ok := dateFn(record)
		if !ok || ts.Year() != year {
			continue
		}
		buckets[ts.Month()-1].Value += valueFn(record)
	}

	return buckets
}
