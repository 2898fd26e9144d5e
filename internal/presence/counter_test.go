package presence

import (
	"testing"

	"lprtrack/internal/dates"
	"lprtrack/internal/domain"
)

func trip(departure, ret string) domain.Trip {
	return domain.Trip{
		DepartureDate: dates.MustParse(departure),
		ReturnDate:    dates.MustParse(ret),
	}
}

func TestCountDaysAbroad(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		trip domain.Trip
		rule DayRule
		want int
	}{
		{"same-day trip is zero", trip("2024-03-01", "2024-03-01"), DefaultDayRule, 0},
		{"same-day trip is zero under full span", trip("2024-03-01", "2024-03-01"), FullSpanRule, 0},
		{"overnight trip credits both travel days", trip("2024-03-01", "2024-03-02"), DefaultDayRule, 0},
		{"week abroad excluding travel days", trip("2024-03-01", "2024-03-08"), DefaultDayRule, 6},
		{"week abroad counting the full span", trip("2024-03-01", "2024-03-08"), FullSpanRule, 8},
		{"departure day only", trip("2024-03-01", "2024-03-08"), DayRule{IncludeDepartureDay: true}, 7},
		{"return day only", trip("2024-03-01", "2024-03-08"), DayRule{IncludeReturnDay: true}, 7},
		{"reversed trip floors at zero", trip("2024-03-08", "2024-03-01"), DefaultDayRule, 0},
		{"spans leap day", trip("2024-02-27", "2024-03-02"), DefaultDayRule, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CountDaysAbroad(tc.trip, tc.rule); got != tc.want {
				t.Errorf("CountDaysAbroad = %d, want %d", got, tc.want)
			}
			if got := CountDaysAbroad(tc.trip, tc.rule); got < 0 {
				t.Errorf("CountDaysAbroad went negative: %d", got)
			}
		})
	}
}

func TestCountDaysAbroadInWindow(t *testing.T) {
	t.Parallel()

	start := dates.MustParse("2024-01-01")
	end := dates.MustParse("2024-12-31")

	cases := []struct {
		name string
		trip domain.Trip
		want int
	}{
		{"fully inside", trip("2024-03-01", "2024-03-08"), 6},
		{"starts before window", trip("2023-12-01", "2024-01-10"), 8},
		{"ends after window", trip("2024-12-20", "2025-01-10"), 10},
		{"no intersection before", trip("2023-01-01", "2023-02-01"), 0},
		{"no intersection after", trip("2025-02-01", "2025-03-01"), 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CountDaysAbroadInWindow(tc.trip, start, end, DefaultDayRule); got != tc.want {
				t.Errorf("CountDaysAbroadInWindow = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestCountDaysAbroadInWindow_InvertedWindow(t *testing.T) {
	t.Parallel()

	got := CountDaysAbroadInWindow(trip("2024-03-01", "2024-03-08"),
		dates.MustParse("2024-06-01"), dates.MustParse("2024-01-01"), DefaultDayRule)
	if got != 0 {
		t.Errorf("inverted window should count zero days, got %d", got)
	}
}
