package schedule

import (
	"strings"
	"time"

	"github.com/ccbc-ox/boathouse-api/internal/models"
)

// CoxOverview summarises one cox's day-level availability across a week.
type CoxOverview struct {
	MemberID     string              `json:"memberId"`
	Name         string              `json:"name"`
	Initials     string              `json:"initials"`
	Availability map[models.Day]bool `json:"availability"`
}

// BuildCoxingOverview derives the week-at-a-glance coxing grid from the slot
// signup rows. A member who appears in any slot on a date counts as available
// for that whole day. This day-level view deliberately ignores the precise
// range checks used for seat eligibility; the two evaluators answer different
// product questions and must not be unified.
func BuildCoxingOverview(members []models.Member, days []models.CoxingDay) []CoxOverview {
	byID := make(map[string]models.Member, len(members))
	for _, member := range members {
		byID[member.ID] = member
	}

	overviews := make(map[string]*CoxOverview)
	order := make([]string, 0)

	for _, day := range days {
		date, err := time.Parse("2006-01-02", day.Date)
		if err != nil {
			continue
		}
		dayKey := models.DayOf(date)

		seen := make(map[string]struct{})
		for _, slot := range models.TimeSlots {
			for _, memberID := range day.Slot(slot) {
				if _, dup := seen[memberID]; dup {
					continue
				}
				seen[memberID] = struct{}{}

				overview, ok := overviews[memberID]
				if !ok {
					member, known := byID[memberID]
					if !known {
						continue
					}
					overview = &CoxOverview{
						MemberID:     memberID,
						Name:         member.Name,
						Initials:     initials(member.Name),
						Availability: emptyWeek(),
					}
					overviews[memberID] = overview
					order = append(order, memberID)
				}
				overview.Availability[dayKey] = true
			}
		}
	}

	result := make([]CoxOverview, 0, len(order))
	for _, memberID := range order {
		result = append(result, *overviews[memberID])
	}
	return result
}

func emptyWeek() map[models.Day]bool {
	week := make(map[models.Day]bool, len(models.DaysOfWeek))
	for _, day := range models.DaysOfWeek {
		week[day] = false
	}
	return week
}

func initials(name string) string {
	parts := strings.Fields(strings.TrimSpace(name))
	if len(parts) >= 2 {
		return strings.ToUpper(parts[0][:1] + parts[len(parts)-1][:1])
	}
	if name == "" {
		return ""
	}
	if len(name) < 2 {
		return strings.ToUpper(name)
	}
	return strings.ToUpper(name[:2])
}
