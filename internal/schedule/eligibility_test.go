package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccbc-ox/boathouse-api/internal/models"
)

func TestIsCoxEligibleTable(t *testing.T) {
	experiences := []models.CoxExperience{
		models.CoxNovice, models.CoxNoviceShortTerm, models.CoxExperienced, models.CoxSenior,
	}

	cases := []struct {
		flag models.FlagStatus
		want map[models.CoxExperience]bool
	}{
		{models.FlagGreen, map[models.CoxExperience]bool{
			models.CoxNovice: true, models.CoxNoviceShortTerm: true,
			models.CoxExperienced: true, models.CoxSenior: true,
		}},
		{models.FlagLightBlue, map[models.CoxExperience]bool{
			models.CoxNovice: true, models.CoxNoviceShortTerm: false,
			models.CoxExperienced: true, models.CoxSenior: true,
		}},
		{models.FlagDarkBlue, map[models.CoxExperience]bool{
			models.CoxNovice: false, models.CoxNoviceShortTerm: false,
			models.CoxExperienced: true, models.CoxSenior: true,
		}},
		{models.FlagRed, map[models.CoxExperience]bool{
			models.CoxNovice: false, models.CoxNoviceShortTerm: false,
			models.CoxExperienced: false, models.CoxSenior: false,
		}},
		{models.FlagGrey, map[models.CoxExperience]bool{
			models.CoxNovice: true, models.CoxNoviceShortTerm: true,
			models.CoxExperienced: true, models.CoxSenior: true,
		}},
		{models.FlagBlack, map[models.CoxExperience]bool{
			models.CoxNovice: false, models.CoxNoviceShortTerm: false,
			models.CoxExperienced: false, models.CoxSenior: false,
		}},
	}

	for _, tc := range cases {
		for _, exp := range experiences {
			assert.Equal(t, tc.want[exp], IsCoxEligible(exp, tc.flag),
				"experience %q under flag %q", exp, tc.flag)
		}
	}
}

func TestIsCoxEligibleFailsClosed(t *testing.T) {
	assert.False(t, IsCoxEligible("", models.FlagGreen))
	assert.False(t, IsCoxEligible("Olympian", models.FlagGreen))
	assert.False(t, IsCoxEligible("", "purple"))
}

func TestEligibleCoxesStableFilter(t *testing.T) {
	members := []models.Member{
		{ID: "m1", Name: "Alex Finch", CoxExperience: models.CoxSenior},
		{ID: "m2", Name: "Billie Okoro", CoxExperience: models.CoxNoviceShortTerm},
		{ID: "m3", Name: "Casey Wu", CoxExperience: models.CoxExperienced},
		{ID: "m4", Name: "Dana Iqbal"},
	}

	eligible := EligibleCoxes(members, models.FlagLightBlue, monday, "08:00", nil)
	require.Len(t, eligible, 2)
	assert.Equal(t, "m1", eligible[0].ID)
	assert.Equal(t, "m3", eligible[1].ID)
}

func TestEligibleCoxesIntersectsAvailability(t *testing.T) {
	members := []models.Member{
		{ID: "m1", Name: "Alex Finch", CoxExperience: models.CoxSenior},
		{ID: "m3", Name: "Casey Wu", CoxExperience: models.CoxExperienced},
	}
	weekly := map[string]models.WeeklyUnavailability{
		"m1": weekOf(models.Monday, models.TimeRange{Start: "07:00", End: "09:00"}),
	}

	eligible := EligibleCoxes(members, models.FlagGreen, monday, "08:00", weekly)
	require.Len(t, eligible, 1)
	assert.Equal(t, "m3", eligible[0].ID)

	// Member absent from the map is fully available.
	eligible = EligibleCoxes(members, models.FlagGreen, monday, "12:00", weekly)
	require.Len(t, eligible, 2)
}

func TestEligibleCoxesRedFlagEmpty(t *testing.T) {
	members := []models.Member{
		{ID: "m1", Name: "Alex Finch", CoxExperience: models.CoxSenior},
	}
	assert.Empty(t, EligibleCoxes(members, models.FlagRed, monday, "08:00", nil))
}
