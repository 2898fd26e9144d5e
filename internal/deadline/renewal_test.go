package deadline

import (
	"testing"

	"lprtrack/internal/dates"
	"lprtrack/internal/domain"
)

func tenYearProfile(expiration string) domain.Profile {
	return domain.Profile{GreenCardExpirationDate: dates.MustParse(expiration)}
}

func TestGreenCardRenewalFor_ConditionalIsNil(t *testing.T) {
	t.Parallel()

	p := domain.Profile{IsConditionalResident: true, GreenCardExpirationDate: dates.MustParse("2026-01-01")}
	if got := GreenCardRenewalFor(p, dates.MustParse("2024-01-01")); got != nil {
		t.Errorf("conditional cards are not renewed, got %+v", got)
	}
}

func TestGreenCardRenewalFor_WindowStartLeapAdjusted(t *testing.T) {
	t.Parallel()

	got := GreenCardRenewalFor(tenYearProfile("2024-08-29"), dates.MustParse("2024-01-01"))
	if dates.Format(got.WindowStart) != "2024-02-29" {
		t.Errorf("window start = %s, want 2024-02-29", dates.Format(got.WindowStart))
	}

	got = GreenCardRenewalFor(tenYearProfile("2023-08-29"), dates.MustParse("2023-01-01"))
	if dates.Format(got.WindowStart) != "2023-02-28" {
		t.Errorf("window start = %s, want 2023-02-28", dates.Format(got.WindowStart))
	}
}

func TestGreenCardRenewalFor_StatusProgression(t *testing.T) {
	t.Parallel()

	p := tenYearProfile("2024-12-01") // window opens 2024-06-01

	cases := []struct {
		name string
		asOf string
		want RenewalStatus
	}{
		{"before window", "2024-05-31", RenewalValid},
		{"window opens", "2024-06-01", RenewalRecommended},
		{"three months out", "2024-09-01", RenewalRecommended},
		{"two months out exactly", "2024-10-01", RenewalRecommended},
		{"under two months", "2024-10-02", RenewalUrgent},
		{"expiration day", "2024-12-01", RenewalUrgent},
		{"past expiration", "2024-12-02", RenewalExpired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := GreenCardRenewalFor(p, dates.MustParse(tc.asOf))
			if got.CurrentStatus != tc.want {
				t.Errorf("CurrentStatus = %s, want %s", got.CurrentStatus, tc.want)
			}
		})
	}
}

func TestGreenCardRenewalFor_UrgentScenario(t *testing.T) {
	t.Parallel()

	got := GreenCardRenewalFor(tenYearProfile("2024-03-01"), dates.MustParse("2024-01-15"))
	if got.CurrentStatus != RenewalUrgent {
		t.Errorf("CurrentStatus = %s, want %s", got.CurrentStatus, RenewalUrgent)
	}
	if got.MonthsUntilExpiration != 1 {
		t.Errorf("MonthsUntilExpiration = %d, want 1", got.MonthsUntilExpiration)
	}
}
