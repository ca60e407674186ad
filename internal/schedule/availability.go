package schedule

import (
	"time"

	"github.com/ccbc-ox/boathouse-api/internal/models"
)

// IsAvailable reports whether a member with the given weekly unavailability is
// free at a time of day ("HH:MM") on a calendar date. A day with no entries
// means no restriction. The interval check is closed on both ends: a time
// equal to a range's start or end still counts as unavailable, matching the
// validation semantics where ranges may touch without overlapping.
func IsAvailable(week models.WeeklyUnavailability, date time.Time, timeOfDay string) bool {
	ranges := week.Ranges(models.DayOf(date))
	if len(ranges) == 0 {
		return true
	}

	at, err := timeToMinutes(timeOfDay)
	if err != nil {
		// Unparsable lookup time proves no restriction.
		return true
	}

	for _, r := range ranges {
		start, err := timeToMinutes(r.Start)
		if err != nil {
			continue
		}
		end, err := timeToMinutes(r.End)
		if err != nil {
			continue
		}
		if at >= start && at <= end {
			return false
		}
	}
	return true
}

// AvailableRowers splits members into those free and those busy for a session.
// Members with no stored unavailability are free.
func AvailableRowers(members []models.Member, weekly map[string]models.WeeklyUnavailability, date time.Time, timeOfDay string) (available, unavailable []models.Member) {
	for _, member := range members {
		week, ok := weekly[member.ID]
		if !ok || IsAvailable(week, date, timeOfDay) {
			available = append(available, member)
			continue
		}
		unavailable = append(unavailable, member)
	}
	return available, unavailable
}
