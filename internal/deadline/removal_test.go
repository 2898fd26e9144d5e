package deadline

import (
	"testing"

	"lprtrack/internal/dates"
	"lprtrack/internal/domain"
)

func conditionalProfile(greenCard string) domain.Profile {
	return domain.Profile{
		IsConditionalResident: true,
		GreenCardDate:         dates.MustParse(greenCard),
	}
}

func TestRemovalOfConditionsFor_NonConditionalIsNil(t *testing.T) {
	t.Parallel()

	p := domain.Profile{GreenCardDate: dates.MustParse("2022-05-01")}
	if got := RemovalOfConditionsFor(p, "", dates.MustParse("2024-05-01")); got != nil {
		t.Errorf("non-conditional resident should get nil, got %+v", got)
	}
}

func TestRemovalOfConditionsFor_Window(t *testing.T) {
	t.Parallel()

	p := conditionalProfile("2022-05-01")
	// Second anniversary 2024-05-01, window opens 90 days before.

	cases := []struct {
		name string
		asOf string
		want RemovalStatus
	}{
		{"well before window", "2023-01-01", RemovalNotYet},
		{"day before window opens", "2024-01-31", RemovalNotYet},
		{"window opens", "2024-02-01", RemovalInWindow},
		{"mid window", "2024-04-01", RemovalInWindow},
		{"anniversary itself", "2024-05-01", RemovalInWindow},
		{"day after anniversary", "2024-05-02", RemovalOverdue},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RemovalOfConditionsFor(p, "", dates.MustParse(tc.asOf))
			if got == nil {
				t.Fatal("expected a result for a conditional resident")
			}
			if got.CurrentStatus != tc.want {
				t.Errorf("CurrentStatus = %s, want %s", got.CurrentStatus, tc.want)
			}
			if dates.Format(got.WindowStart) != "2024-02-01" || dates.Format(got.WindowEnd) != "2024-05-01" {
				t.Errorf("window = [%s, %s], want [2024-02-01, 2024-05-01]",
					dates.Format(got.WindowStart), dates.Format(got.WindowEnd))
			}
		})
	}
}

func TestRemovalOfConditionsFor_Overrides(t *testing.T) {
	t.Parallel()

	p := conditionalProfile("2022-05-01")
	asOf := dates.MustParse("2024-08-01") // past window end

	if got := RemovalOfConditionsFor(p, RemovalFiled, asOf); got.CurrentStatus != RemovalFiled {
		t.Errorf("filed override ignored, got %s", got.CurrentStatus)
	}
	if got := RemovalOfConditionsFor(p, RemovalApproved, asOf); got.CurrentStatus != RemovalApproved {
		t.Errorf("approved override ignored, got %s", got.CurrentStatus)
	}
	if got := RemovalOfConditionsFor(p, "", asOf); got.CurrentStatus != RemovalOverdue {
		t.Errorf("without override status = %s, want %s", got.CurrentStatus, RemovalOverdue)
	}
}

func TestRemovalOfConditionsFor_DayCounts(t *testing.T) {
	t.Parallel()

	p := conditionalProfile("2022-05-01")

	got := RemovalOfConditionsFor(p, "", dates.MustParse("2024-01-01"))
	if got.DaysUntilWindow != 31 {
		t.Errorf("DaysUntilWindow = %d, want 31", got.DaysUntilWindow)
	}

	got = RemovalOfConditionsFor(p, "", dates.MustParse("2024-04-21"))
	if got.DaysUntilDeadline != 10 {
		t.Errorf("DaysUntilDeadline = %d, want 10", got.DaysUntilDeadline)
	}
}
