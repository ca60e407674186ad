package notion

import (
	"context"
	"fmt"

	"github.com/jomei/notionapi"

	"github.com/ccbc-ox/boathouse-api/internal/models"
	"github.com/ccbc-ox/boathouse-api/pkg/errors"
)

// Tests database column names. Slots are "Slot 1".."Slot 6", each with an
// outcome status column.
const (
	testColTitle = "OURC Test"
	testColType  = "Test Type"
	testColDate  = "Date"
	testColSlots = "Available Slots"

	testSlotCount = 6
)

func slotColumn(number int) string {
	return fmt.Sprintf("Slot %d", number)
}

func slotOutcomeColumn(number int) string {
	return fmt.Sprintf("Slot %d Outcome", number)
}

// Tests lists the swim and capsize test sessions.
func (c *Client) Tests(ctx context.Context) ([]models.Test, error) {
	pages, err := c.queryAll(ctx, c.cfg.TestsDB, nil, "tests.query")
	if err != nil {
		return nil, err
	}

	tests := make([]models.Test, 0, len(pages))
	for _, page := range pages {
		tests = append(tests, mapTest(page))
	}
	return tests, nil
}

// Test fetches a single test session by page ID.
func (c *Client) Test(ctx context.Context, testID string) (models.Test, error) {
	page, err := c.getPage(ctx, testID, "tests.get")
	if err != nil {
		return models.Test{}, err
	}
	return mapTest(*page), nil
}

// AssignTestSlot books a member into a slot. Double-booking the same member
// into the same slot is a conflict. Booking also sets the outcome to
// "Test Booked" unless a result has already been recorded.
func (c *Client) AssignTestSlot(ctx context.Context, testID string, slotNumber int, memberID string) error {
	if slotNumber < 1 || slotNumber > testSlotCount {
		return errors.Clone(errors.ErrValidation, fmt.Sprintf("slot number must be between 1 and %d", testSlotCount))
	}

	page, err := c.getPage(ctx, testID, "tests.get")
	if err != nil {
		return err
	}

	current := propRelationIDs(page.Properties, slotColumn(slotNumber))
	for _, id := range current {
		if id == memberID {
			return errors.Clone(errors.ErrConflict, "member is already booked into this slot")
		}
	}

	properties := notionapi.Properties{
		slotColumn(slotNumber): relationProp(append(current, memberID)...),
	}
	outcome := propStatus(page.Properties, slotOutcomeColumn(slotNumber))
	if outcome == "" || outcome == string(models.OutcomeNoShow) {
		properties[slotOutcomeColumn(slotNumber)] = statusProp(string(models.OutcomeBooked))
	}

	_, err = c.updatePage(ctx, testID, properties, "tests.assign-slot")
	return err
}

// UpdateTestOutcome records the result for one slot.
func (c *Client) UpdateTestOutcome(ctx context.Context, testID string, slotNumber int, outcome models.TestOutcome) error {
	if slotNumber < 1 || slotNumber > testSlotCount {
		return errors.Clone(errors.ErrValidation, fmt.Sprintf("slot number must be between 1 and %d", testSlotCount))
	}
	_, err := c.updatePage(ctx, testID, notionapi.Properties{
		slotOutcomeColumn(slotNumber): statusProp(string(outcome)),
	}, "tests.outcome")
	return err
}

func mapTest(page notionapi.Page) models.Test {
	props := page.Properties
	date, _ := propDates(props, testColDate)

	test := models.Test{
		ID:    string(page.ID),
		URL:   page.URL,
		Title: propText(props, testColTitle),
		Type:  models.TestType(propSelect(props, testColType)),
		Date:  date,
	}

	for number := 1; number <= testSlotCount; number++ {
		slot := models.TestSlot{
			Number:  number,
			Outcome: models.TestOutcome(propStatus(props, slotOutcomeColumn(number))),
		}
		if ids := propRelationIDs(props, slotColumn(number)); len(ids) > 0 {
			slot.MemberID = ids[0]
		}
		test.Slots = append(test.Slots, slot)
	}
	return test
}
