package notion

import (
	"context"

	"github.com/jomei/notionapi"

	"github.com/ccbc-ox/boathouse-api/internal/models"
	"github.com/ccbc-ox/boathouse-api/internal/schedule"
)

// Weekly unavailability is stored as seven free-text columns on the member
// page, one per day, using the "09:00-10:30, 14:00-15:00" encoding.
func unavailableColumn(day models.Day) string {
	return "Unavailable " + models.DayLabels[day]
}

// MemberAvailability reads one member's weekly unavailability off their
// roster page. Freeform text that fails to parse yields an empty day.
func (c *Client) MemberAvailability(ctx context.Context, memberID string) (models.WeeklyUnavailability, error) {
	page, err := c.getPage(ctx, memberID, "availability.get")
	if err != nil {
		return models.WeeklyUnavailability{}, err
	}
	return mapAvailability(*page), nil
}

// AllAvailability reads the weekly unavailability of every member, keyed by
// member ID, for bulk eligibility checks.
func (c *Client) AllAvailability(ctx context.Context) (map[string]models.WeeklyUnavailability, error) {
	pages, err := c.queryAll(ctx, c.cfg.MembersDB, nil, "availability.query")
	if err != nil {
		return nil, err
	}

	byMember := make(map[string]models.WeeklyUnavailability, len(pages))
	for _, page := range pages {
		if _, ok := mapMember(page); !ok {
			continue
		}
		byMember[string(page.ID)] = mapAvailability(page)
	}
	return byMember, nil
}

// UpdateMemberAvailability overwrites all seven day columns at once. Callers
// validate the week first; a partial write would leave the page inconsistent.
func (c *Client) UpdateMemberAvailability(ctx context.Context, memberID string, week models.WeeklyUnavailability) error {
	properties := notionapi.Properties{}
	for _, day := range models.DaysOfWeek {
		properties[unavailableColumn(day)] = richTextProp(schedule.StringifyTimeRanges(week.Ranges(day)))
	}
	_, err := c.updatePage(ctx, memberID, properties, "availability.update")
	return err
}

func mapAvailability(page notionapi.Page) models.WeeklyUnavailability {
	week := models.WeeklyUnavailability{
		MemberID:   string(page.ID),
		MemberName: propText(page.Properties, memberColName),
		Days:       make(map[models.Day][]models.TimeRange, len(models.DaysOfWeek)),
	}
	for _, day := range models.DaysOfWeek {
		week.Days[day] = schedule.ParseTimeRanges(propText(page.Properties, unavailableColumn(day)))
	}
	return week
}
