package report

import (
	"fmt"
	"time"
)

// DayKey renders the day-bucket key used by the attendance charts.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// HourKey renders the hour-of-day bucket key ("00" through "23") used by the
// occupancy chart.
func HourKey(t time.Time) string {
	return fmt.Sprintf("%02d", t.Hour())
}

// Age is the number of whole years between birth and now.
func Age(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	anniversary := birth.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	return years
}

// AgeBracket maps a birth date to the demographic bracket label shown on the
// age chart.
func AgeBracket(birth, now time.Time) string {
	age := Age(birth, now)
	switch {
	case age < 18:
		return "Under 18"
	case age <= 24:
		return "18-24"
	case age <= 34:
		return "25-34"
	case age <= 44:
		return "35-44"
	case age <= 54:
		return "45-54"
	default:
		return "55+"
	}
}
