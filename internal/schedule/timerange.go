// Package schedule holds the pure scheduling rules: time-range parsing and
// validation, availability evaluation and cox eligibility. Nothing in here
// touches the network; everything is a function of its inputs.
package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ccbc-ox/boathouse-api/internal/models"
)

// MaxRangesPerDay caps how many unavailability windows a member may enter per day.
const MaxRangesPerDay = 3

const minutesPerDay = 24 * 60

// timeToMinutes parses "HH:MM" into minutes since midnight. "24:00" is
// accepted as the exclusive upper bound of a day.
func timeToMinutes(raw string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(raw), ":", 2)
	if len(parts) != 2 || len(parts[0]) == 0 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid time %q", raw)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", raw)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", raw)
	}
	if hours < 0 || hours > 24 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("time %q out of bounds", raw)
	}

	total := hours*60 + minutes
	if total > minutesPerDay {
		return 0, fmt.Errorf("time %q out of bounds", raw)
	}
	return total, nil
}

// minutesToTime formats minutes since midnight as "HH:MM".
func minutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseTimeRanges decodes the textual day encoding, e.g.
// "09:00-10:30, 14:00-15:00". The source is freeform text entered by members,
// so malformed input collapses to an empty slice rather than an error; callers
// that need the failure use parseTimeRangesStrict.
func ParseTimeRanges(raw string) []models.TimeRange {
	ranges, err := parseTimeRangesStrict(raw)
	if err != nil {
		return nil
	}
	return ranges
}

func parseTimeRangesStrict(raw string) ([]models.TimeRange, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}

	parts := strings.Split(trimmed, ",")
	ranges := make([]models.TimeRange, 0, len(parts))
	for _, part := range parts {
		bounds := strings.SplitN(strings.TrimSpace(part), "-", 2)
		if len(bounds) != 2 {
			return nil, fmt.Errorf("invalid range %q", part)
		}
		start := strings.TrimSpace(bounds[0])
		end := strings.TrimSpace(bounds[1])
		if _, err := timeToMinutes(start); err != nil {
			return nil, err
		}
		if _, err := timeToMinutes(end); err != nil {
			return nil, err
		}
		ranges = append(ranges, models.TimeRange{Start: start, End: end})
	}
	return ranges, nil
}

// StringifyTimeRanges is the canonical inverse of ParseTimeRanges. Round-trips
// preserve the (start,end) pairs and their order.
func StringifyTimeRanges(ranges []models.TimeRange) string {
	if len(ranges) == 0 {
		return ""
	}
	parts := make([]string, 0, len(ranges))
	for _, r := range ranges {
		parts = append(parts, r.Start+"-"+r.End)
	}
	return strings.Join(parts, ", ")
}

// rangesOverlap reports whether two windows share any time.
func rangesOverlap(a, b models.TimeRange) bool {
	aStart, err := timeToMinutes(a.Start)
	if err != nil {
		return false
	}
	aEnd, err := timeToMinutes(a.End)
	if err != nil {
		return false
	}
	bStart, err := timeToMinutes(b.Start)
	if err != nil {
		return false
	}
	bEnd, err := timeToMinutes(b.End)
	if err != nil {
		return false
	}
	return aStart < bEnd && bStart < aEnd
}

// validateDayRanges checks one day's windows: bounded count, well-formed times
// within 00:00-24:00, start before end, no overlaps. Returns an empty string
// when the day is valid.
func validateDayRanges(ranges []models.TimeRange) string {
	if len(ranges) > MaxRangesPerDay {
		return fmt.Sprintf("maximum %d time ranges allowed per day", MaxRangesPerDay)
	}

	for _, r := range ranges {
		start, err := timeToMinutes(r.Start)
		if err != nil {
			return fmt.Sprintf("invalid start time: %s", r.Start)
		}
		end, err := timeToMinutes(r.End)
		if err != nil {
			return fmt.Sprintf("invalid end time: %s", r.End)
		}
		if start >= end {
			return fmt.Sprintf("end time must be after start time: %s-%s", r.Start, r.End)
		}
	}

	for i := 0; i < len(ranges); i++ {
		for j := i + 1; j < len(ranges); j++ {
			if rangesOverlap(ranges[i], ranges[j]) {
				return fmt.Sprintf("time ranges overlap: %s-%s and %s-%s",
					ranges[i].Start, ranges[i].End, ranges[j].Start, ranges[j].End)
			}
		}
	}

	return ""
}

// Validation is the outcome of checking a full week of unavailability input.
type Validation struct {
	Valid  bool                  `json:"valid"`
	Errors map[models.Day]string `json:"errors,omitempty"`
}

// ValidateWeek checks all seven days independently so the caller can report
// every problem at once. A week is valid only when every day is.
func ValidateWeek(week models.WeeklyUnavailability) Validation {
	errs := make(map[models.Day]string)
	for _, day := range models.DaysOfWeek {
		if msg := validateDayRanges(week.Ranges(day)); msg != "" {
			errs[day] = msg
		}
	}
	if len(errs) == 0 {
		return Validation{Valid: true}
	}
	return Validation{Valid: false, Errors: errs}
}
