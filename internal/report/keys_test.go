package report

import (
	"testing"
	"time"
)

func TestAgeBrackets(t *testing.T) {
	now, _ := time.Parse("2006-01-02", "2024-06-01")

	cases := []struct {
		birth string
		want  string
	}{
		{"2010-01-01", "Under 18"},
		{"2006-06-01", "18-24"}, // turns 18 exactly today
		{"2000-01-01", "18-24"},
		{"1995-05-31", "25-34"},
		{"1985-01-01", "35-44"},
		{"1975-01-01", "45-54"},
		{"1960-01-01", "55+"},
	}

	for _, tc := range cases {
		birth, _ := time.Parse("2006-01-02", tc.birth)
		if got := AgeBracket(birth, now); got != tc.want {
			t.Errorf("AgeBracket(%s) = %s, want %s", tc.birth, got, tc.want)
		}
	}
}

func TestAgeCountsWholeYearsOnly(t *testing.T) {
	now, _ := time.Parse("2006-01-02", "2024-06-01")
	birth, _ := time.Parse("2006-01-02", "2000-06-02")

	if got := Age(birth, now); got != 23 {
		t.Fatalf("expected 23 the day before the birthday, got %d", got)
	}
}

func TestDayAndHourKeys(t *testing.T) {
	ts, _ := time.Parse(time.RFC3339, "2024-02-05T07:45:00Z")

	if got := DayKey(ts); got != "2024-02-05" {
		t.Fatalf("DayKey = %s", got)
	}
	if got := HourKey(ts); got != "07" {
		t.Fatalf("HourKey = %s", got)
	}
}
