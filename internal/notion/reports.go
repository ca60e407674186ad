package notion

import (
	"context"

	"github.com/jomei/notionapi"

	"github.com/ccbc-ox/boathouse-api/internal/models"
)

// Report columns on the outings database.
const (
	reportColSummary   = "Outing Summary"
	reportColBoatFeel  = "Boat Feel"
	reportColSuccesses = "Outing Successes"
	reportColNextFocus = "Next Focus"
	reportColFeedback  = "Coach Feedback"
)

// ReportUpdate carries report fields to write. Nil fields are left untouched
// so a crew member and a coach can fill in their parts independently.
type ReportUpdate struct {
	OutingSummary   *string
	BoatFeel        *string
	OutingSuccesses *string
	NextFocus       *string
	CoachFeedback   *string
}

// OutingReport reads the debrief columns off an outing page.
func (c *Client) OutingReport(ctx context.Context, outingID string) (models.OutingReport, error) {
	page, err := c.getPage(ctx, outingID, "outings.report.get")
	if err != nil {
		return models.OutingReport{}, err
	}
	return mapOutingReport(*page), nil
}

// UpdateOutingReport writes the provided report fields to the outing page.
func (c *Client) UpdateOutingReport(ctx context.Context, outingID string, update ReportUpdate) error {
	properties := notionapi.Properties{}
	if update.OutingSummary != nil {
		properties[reportColSummary] = richTextProp(*update.OutingSummary)
	}
	if update.BoatFeel != nil {
		properties[reportColBoatFeel] = richTextProp(*update.BoatFeel)
	}
	if update.OutingSuccesses != nil {
		properties[reportColSuccesses] = richTextProp(*update.OutingSuccesses)
	}
	if update.NextFocus != nil {
		properties[reportColNextFocus] = richTextProp(*update.NextFocus)
	}
	if update.CoachFeedback != nil {
		properties[reportColFeedback] = richTextProp(*update.CoachFeedback)
	}
	if len(properties) == 0 {
		return nil
	}

	_, err := c.updatePage(ctx, outingID, properties, "outings.report.update")
	return err
}

func mapOutingReport(page notionapi.Page) models.OutingReport {
	return models.OutingReport{
		OutingSummary:   propText(page.Properties, reportColSummary),
		BoatFeel:        propText(page.Properties, reportColBoatFeel),
		OutingSuccesses: propText(page.Properties, reportColSuccesses),
		NextFocus:       propText(page.Properties, reportColNextFocus),
		CoachFeedback:   propText(page.Properties, reportColFeedback),
	}
}
