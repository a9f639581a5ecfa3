package utils

import (
	"testing"
	"time"
)

func TestSameCalendarDay(t *testing.T) {
	target := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		when time.Time
		want bool
	}{
		{"start of day", time.Date(2024, 3, 10, 0, 0, 1, 0, time.UTC), true},
		{"end of day", time.Date(2024, 3, 10, 23, 59, 59, 0, time.UTC), true},
		{"day before", time.Date(2024, 3, 9, 23, 59, 59, 0, time.UTC), false},
		{"day after", time.Date(2024, 3, 11, 0, 0, 1, 0, time.UTC), false},
		{"same day last month", time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC), false},
		{"same day last year", time.Date(2023, 3, 10, 12, 0, 0, 0, time.UTC), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SameCalendarDay(tc.when, target, time.UTC); got != tc.want {
				t.Errorf("SameCalendarDay(%v, %v) = %v, want %v", tc.when, target, got, tc.want)
			}
		})
	}
}

func TestSameCalendarDayHonorsLocation(t *testing.T) {
	// 23:30 UTC on the 10th is already the 11th one hour east of UTC.
	east := time.FixedZone("east", 3600)
	a := time.Date(2024, 3, 10, 23, 30, 0, 0, time.UTC)
	b := time.Date(2024, 3, 11, 1, 0, 0, 0, east)

	if !SameCalendarDay(a, b, east) {
		t.Error("expected same day in the eastern zone")
	}
	if SameCalendarDay(a, b, time.UTC) {
		t.Error("expected different days in UTC")
	}
}
