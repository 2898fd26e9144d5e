package deadline

import (
	"testing"

	"lprtrack/internal/dates"
	"lprtrack/internal/domain"
)

func TestSelectiveServiceFor(t *testing.T) {
	t.Parallel()

	male := func(birth string, registered bool) domain.Profile {
		return domain.Profile{
			Gender:                     domain.GenderMale,
			BirthDate:                  dates.MustParse(birth),
			SelectiveServiceRegistered: registered,
		}
	}

	cases := []struct {
		name    string
		profile domain.Profile
		asOf    string
		want    SelectiveServiceStatus
		wantAge int
	}{
		{"female not applicable", domain.Profile{Gender: domain.GenderFemale, BirthDate: dates.MustParse("2000-06-01")}, "2024-06-01", SelectiveNotApplicable, 24},
		{"day before 18th birthday", male("2006-06-02", false), "2024-06-01", SelectiveNotApplicable, 17},
		{"18th birthday", male("2006-06-01", false), "2024-06-01", SelectiveMustRegister, 18},
		{"registered", male("2000-06-01", true), "2024-06-01", SelectiveRegistered, 24},
		{"day before 26th birthday", male("1998-06-02", false), "2024-06-01", SelectiveMustRegister, 25},
		{"26th birthday ages out", male("1998-06-01", false), "2024-06-01", SelectiveAgedOut, 26},
		{"aged out but registered", male("1990-01-01", true), "2024-06-01", SelectiveRegistered, 34},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SelectiveServiceFor(tc.profile, dates.MustParse(tc.asOf))
			if got.CurrentStatus != tc.want {
				t.Errorf("CurrentStatus = %s, want %s", got.CurrentStatus, tc.want)
			}
			if got.Age != tc.wantAge {
				t.Errorf("Age = %d, want %d", got.Age, tc.wantAge)
			}
		})
	}
}

func TestSelectiveServiceFor_DeadlineIs18thBirthday(t *testing.T) {
	t.Parallel()

	p := domain.Profile{Gender: domain.GenderMale, BirthDate: dates.MustParse("2006-03-15")}
	got := SelectiveServiceFor(p, dates.MustParse("2024-06-01"))
	if dates.Format(got.RegistrationDeadline) != "2024-03-15" {
		t.Errorf("RegistrationDeadline = %s, want 2024-03-15", dates.Format(got.RegistrationDeadline))
	}
}

func TestSelectiveServiceFor_LeapDayBirthday(t *testing.T) {
	t.Parallel()

	// Born Feb 29: the 18th anniversary in a non-leap year is Feb 28.
	p := domain.Profile{Gender: domain.GenderMale, BirthDate: dates.MustParse("2008-02-29")}
	got := SelectiveServiceFor(p, dates.MustParse("2026-02-28"))
	if got.CurrentStatus != SelectiveMustRegister {
		t.Errorf("CurrentStatus = %s, want %s on the observed 18th birthday", got.CurrentStatus, SelectiveMustRegister)
	}
	if dates.Format(got.RegistrationDeadline) != "2026-02-28" {
		t.Errorf("RegistrationDeadline = %s, want 2026-02-28", dates.Format(got.RegistrationDeadline))
	}
}
