package notion

import (
	"context"
	"fmt"
	"time"

	"github.com/jomei/notionapi"

	"github.com/ccbc-ox/boathouse-api/internal/models"
	"github.com/ccbc-ox/boathouse-api/pkg/errors"
)

// Outings database column names. Seat columns are named after the seat itself
// (a relation), each paired with a status column.
const (
	outingColName      = "Name"
	outingColTerm      = "Term"
	outingColWeek      = "Week"
	outingColDiv       = "Div"
	outingColType      = "Type"
	outingColShell     = "Shell"
	outingColStatus    = "OutingStatus"
	outingColPublished = "Publish Outing"
	outingColStart     = "StartDateTime"
	outingColEnd       = "EndDateTime"
	outingColDetails   = "SessionDetails"
)

// The status column for a seat. Most seats use "<seat> Status" but a few
// columns predate that convention.
func seatStatusColumn(seat models.Seat) string {
	switch seat {
	case models.SeatCox:
		return "CoxStatus"
	case models.SeatStroke:
		return "StrokeStatus"
	case models.SeatBow:
		return "BowStatus"
	case models.SeatBankRider:
		return "BankRiderStatus"
	case models.SeatSub1, models.SeatSub2, models.SeatSub3, models.SeatSub4:
		return string(seat) + "Status"
	default:
		return string(seat) + " Status"
	}
}

// Outings lists published outings, optionally limited to a start-date window.
func (c *Client) Outings(ctx context.Context, from, to time.Time) ([]models.Outing, error) {
	published := notionapi.PropertyFilter{
		Property: outingColPublished,
		Checkbox: &notionapi.CheckboxFilterCondition{Equals: true},
	}

	var filter notionapi.Filter = published
	if !from.IsZero() && !to.IsZero() {
		onOrAfter := notionapi.Date(from)
		onOrBefore := notionapi.Date(to)
		filter = notionapi.AndCompoundFilter{
			published,
			notionapi.PropertyFilter{
				Property: outingColStart,
				Date:     &notionapi.DateFilterCondition{OnOrAfter: &onOrAfter, OnOrBefore: &onOrBefore},
			},
		}
	}

	pages, err := c.queryAll(ctx, c.cfg.OutingsDB, filter, "outings.query")
	if err != nil {
		return nil, err
	}

	outings := make([]models.Outing, 0, len(pages))
	for _, page := range pages {
		outings = append(outings, mapOuting(page))
	}
	return outings, nil
}

// Outing fetches a single outing by page ID.
func (c *Client) Outing(ctx context.Context, outingID string) (models.Outing, error) {
	page, err := c.getPage(ctx, outingID, "outings.get")
	if err != nil {
		return models.Outing{}, err
	}
	return mapOuting(*page), nil
}

// AssignSeat sets or clears the member relation for one seat. An empty
// memberID empties the seat. Newly filled seats reset to awaiting approval.
func (c *Client) AssignSeat(ctx context.Context, outingID string, seat models.Seat, memberID string) error {
	if !validSeat(seat) {
		return errors.Clone(errors.ErrValidation, fmt.Sprintf("unknown seat %q", seat))
	}

	properties := notionapi.Properties{
		string(seat): relationProp(memberID),
	}
	if memberID != "" {
		properties[seatStatusColumn(seat)] = statusProp(string(models.SeatAwaitingApproval))
	}

	_, err := c.updatePage(ctx, outingID, properties, "outings.assign-seat")
	return err
}

// UpdateSeatStatus records a rower's response for their seat.
func (c *Client) UpdateSeatStatus(ctx context.Context, outingID string, seat models.Seat, status models.SeatStatus) error {
	if !validSeat(seat) {
		return errors.Clone(errors.ErrValidation, fmt.Sprintf("unknown seat %q", seat))
	}
	_, err := c.updatePage(ctx, outingID, notionapi.Properties{
		seatStatusColumn(seat): statusProp(string(status)),
	}, "outings.seat-status")
	return err
}

// UpdateOutingStatus moves an outing through its lifecycle.
func (c *Client) UpdateOutingStatus(ctx context.Context, outingID string, status models.OutingStatus) error {
	_, err := c.updatePage(ctx, outingID, notionapi.Properties{
		outingColStatus: statusProp(string(status)),
	}, "outings.status")
	return err
}

func validSeat(seat models.Seat) bool {
	for _, known := range models.CrewSeats {
		if seat == known {
			return true
		}
	}
	return false
}

func mapOuting(page notionapi.Page) models.Outing {
	props := page.Properties
	start, _ := propDates(props, outingColStart)
	end, _ := propDates(props, outingColEnd)

	outing := models.Outing{
		ID:             string(page.ID),
		Name:           propText(props, outingColName),
		Term:           propSelect(props, outingColTerm),
		Week:           propSelect(props, outingColWeek),
		Div:            propSelect(props, outingColDiv),
		Type:           propSelect(props, outingColType),
		Shell:          propSelect(props, outingColShell),
		Status:         models.OutingStatus(propStatus(props, outingColStatus)),
		Published:      propCheckbox(props, outingColPublished),
		Start:          start,
		End:            end,
		SessionDetails: propText(props, outingColDetails),
		Seats:          make(map[models.Seat]models.SeatAssignment),
	}

	for _, seat := range models.CrewSeats {
		ids := propRelationIDs(props, string(seat))
		status := models.SeatStatus(propStatus(props, seatStatusColumn(seat)))
		if len(ids) == 0 && status == "" {
			continue
		}
		assignment := models.SeatAssignment{Status: status}
		if len(ids) > 0 {
			assignment.MemberID = ids[0]
		}
		outing.Seats[seat] = assignment
	}
	return outing
}
