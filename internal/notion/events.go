package notion

import (
	"context"
	"sort"

	"github.com/jomei/notionapi"

	"github.com/ccbc-ox/boathouse-api/internal/models"
)

// Events database column names.
const (
	eventColTitle       = "Event"
	eventColDescription = "Description"
	eventColDate        = "Date"
	eventColMedia       = "Files & media"
)

// Events lists the club calendar in date order. Rows without a date are
// skipped: an undated row is a draft, not a calendar entry.
func (c *Client) Events(ctx context.Context) ([]models.Event, error) {
	pages, err := c.queryAll(ctx, c.cfg.EventsDB, nil, "events.query")
	if err != nil {
		return nil, err
	}

	events := make([]models.Event, 0, len(pages))
	for _, page := range pages {
		if event, ok := mapEvent(page); ok {
			events = append(events, event)
		}
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start)
	})
	return events, nil
}

func mapEvent(page notionapi.Page) (models.Event, bool) {
	start, end := propDates(page.Properties, eventColDate)
	if start.IsZero() {
		return models.Event{}, false
	}
	return models.Event{
		ID:          string(page.ID),
		Title:       propText(page.Properties, eventColTitle),
		Description: propText(page.Properties, eventColDescription),
		Start:       start,
		End:         end,
		ImageURL:    propFileURL(page.Properties, eventColMedia),
	}, true
}
