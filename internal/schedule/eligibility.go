package schedule

import (
	"time"

	"github.com/ccbc-ox/boathouse-api/internal/models"
)

// IsCoxEligible decides whether a cox with the given experience may steer
// under the current flag. Unknown or missing experience fails closed.
func IsCoxEligible(experience models.CoxExperience, flag models.FlagStatus) bool {
	switch experience {
	case models.CoxNovice, models.CoxNoviceShortTerm, models.CoxExperienced, models.CoxSenior:
	default:
		return false
	}

	switch flag {
	case models.FlagGreen, models.FlagGrey:
		return true
	case models.FlagLightBlue:
		return experience != models.CoxNoviceShortTerm
	case models.FlagDarkBlue:
		return experience == models.CoxExperienced || experience == models.CoxSenior
	case models.FlagRed, models.FlagBlack:
		return false
	default:
		return false
	}
}

// EligibleCoxes filters members to those allowed to cox under the flag and
// free at the session time. The filter is stable: survivors keep their input
// order. A member absent from weekly is treated as fully available.
func EligibleCoxes(members []models.Member, flag models.FlagStatus, date time.Time, timeOfDay string, weekly map[string]models.WeeklyUnavailability) []models.Member {
	eligible := make([]models.Member, 0, len(members))
	for _, member := range members {
		if !IsCoxEligible(member.CoxExperience, flag) {
			continue
		}
		if week, ok := weekly[member.ID]; ok && !IsAvailable(week, date, timeOfDay) {
			continue
		}
		eligible = append(eligible, member)
	}
	return eligible
}
