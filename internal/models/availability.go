package models

import "time"

// Day is a lower-case day-of-week key used throughout the availability model.
type Day string

const (
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
	Saturday  Day = "saturday"
	Sunday    Day = "sunday"
)

// DaysOfWeek lists the seven days in roster order.
var DaysOfWeek = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// DayLabels maps day keys to display names used in validation messages and exports.
var DayLabels = map[Day]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// DayOf maps a calendar date to its day key.
func DayOf(t time.Time) Day {
	switch t.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// TimeRange is a window within a single day, "HH:MM" 24-hour clock.
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WeeklyUnavailability records, per day of the week, the windows a member
// cannot row. An absent or empty day means no restriction.
type WeeklyUnavailability struct {
	MemberID   string              `json:"memberId,omitempty"`
	MemberName string              `json:"memberName,omitempty"`
	Days       map[Day][]TimeRange `json:"days"`
}

// Ranges returns the day's windows, tolerating a nil map.
func (w WeeklyUnavailability) Ranges(day Day) []TimeRange {
	if w.Days == nil {
		return nil
	}
	return w.Days[day]
}
