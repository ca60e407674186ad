package notion

import (
	"context"
	"fmt"

	"github.com/jomei/notionapi"

	"github.com/ccbc-ox/boathouse-api/internal/models"
	"github.com/ccbc-ox/boathouse-api/pkg/errors"
)

const coxingColDate = "Date"

// Column names for the four slots. The database predates the midPM naming
// and still calls that column "Early PM".
var coxingSlotColumns = map[models.TimeSlot]string{
	models.SlotEarlyAM: "Early AM",
	models.SlotMidAM:   "Mid AM",
	models.SlotMidPM:   "Early PM",
	models.SlotLatePM:  "Late PM",
}

// CoxingDays lists per-date coxing sign-ups, optionally limited to an ISO
// date window. Rows without a date are skipped.
func (c *Client) CoxingDays(ctx context.Context, startDate, endDate string) ([]models.CoxingDay, error) {
	var filter notionapi.Filter
	if startDate != "" && endDate != "" {
		onOrAfter, err := parseISODate(startDate)
		if err != nil {
			return nil, err
		}
		onOrBefore, err := parseISODate(endDate)
		if err != nil {
			return nil, err
		}
		filter = notionapi.PropertyFilter{
			Property: coxingColDate,
			Date:     &notionapi.DateFilterCondition{OnOrAfter: onOrAfter, OnOrBefore: onOrBefore},
		}
	}

	pages, err := c.queryAll(ctx, c.cfg.CoxingDB, filter, "coxing.query")
	if err != nil {
		return nil, err
	}

	days := make([]models.CoxingDay, 0, len(pages))
	for _, page := range pages {
		day := mapCoxingDay(page)
		if day.Date == "" {
			continue
		}
		days = append(days, day)
	}
	return days, nil
}

// SlotAction is what UpdateCoxingSlot should do with the member.
type SlotAction string

const (
	SlotAdd    SlotAction = "add"
	SlotRemove SlotAction = "remove"
)

// UpdateCoxingSlot adds or removes a member's sign-up for one slot on one
// date, creating the date row if it does not exist yet. Both operations are
// idempotent.
func (c *Client) UpdateCoxingSlot(ctx context.Context, date string, slot models.TimeSlot, memberID string, action SlotAction) error {
	column, ok := coxingSlotColumns[slot]
	if !ok {
		return errors.Clone(errors.ErrValidation, fmt.Sprintf("unknown time slot %q", slot))
	}
	if action != SlotAdd && action != SlotRemove {
		return errors.Clone(errors.ErrValidation, fmt.Sprintf("unknown action %q", action))
	}

	day, err := c.findCoxingDay(ctx, date)
	if err != nil {
		return err
	}

	if day == nil {
		if action == SlotRemove {
			return nil
		}
		_, err := c.createPage(ctx, c.cfg.CoxingDB, notionapi.Properties{
			coxingColDate: dateProp(date),
			column:        relationProp(memberID),
		}, "coxing.create")
		return err
	}

	current := day.Slot(slot)
	updated := make([]string, 0, len(current)+1)
	for _, id := range current {
		if id != memberID {
			updated = append(updated, id)
		}
	}
	if action == SlotAdd {
		updated = append(updated, memberID)
	}

	_, err = c.updatePage(ctx, day.ID, notionapi.Properties{
		column: relationProp(updated...),
	}, "coxing.update")
	return err
}

func (c *Client) findCoxingDay(ctx context.Context, date string) (*models.CoxingDay, error) {
	equals, err := parseISODate(date)
	if err != nil {
		return nil, err
	}

	pages, err := c.queryAll(ctx, c.cfg.CoxingDB, notionapi.PropertyFilter{
		Property: coxingColDate,
		Date:     &notionapi.DateFilterCondition{Equals: equals},
	}, "coxing.find")
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, nil
	}

	day := mapCoxingDay(pages[0])
	return &day, nil
}

func parseISODate(raw string) (*notionapi.Date, error) {
	parsed, err := parseDay(raw)
	if err != nil {
		return nil, errors.Clone(errors.ErrValidation, fmt.Sprintf("invalid date %q, want YYYY-MM-DD", raw))
	}
	date := notionapi.Date(parsed)
	return &date, nil
}

func mapCoxingDay(page notionapi.Page) models.CoxingDay {
	day := models.CoxingDay{ID: string(page.ID)}

	if start, _ := propDates(page.Properties, coxingColDate); !start.IsZero() {
		day.Date = start.Format("2006-01-02")
	}
	for slot, column := range coxingSlotColumns {
		day.SetSlot(slot, propRelationIDs(page.Properties, column))
	}
	return day
}
