// Package notion is the data layer over the club's Notion workspace. Each
// database (members, outings, tests, coxing availability) gets its own file of
// query and update methods; property extraction helpers live in properties.go.
package notion

import (
	"context"
	"time"

	"github.com/jomei/notionapi"
	"go.uber.org/zap"

	"github.com/ccbc-ox/boathouse-api/pkg/config"
)

// Observer receives timing for every upstream Notion call.
type Observer interface {
	RecordUpstreamCall(operation string, duration time.Duration, err error)
}

// Client wraps the Notion API client with the club's database IDs, per-call
// logging and an optional metrics observer.
type Client struct {
	api      *notionapi.Client
	cfg      config.NotionConfig
	logger   *zap.Logger
	observer Observer
}

// NewClient constructs a Client from config. A nil logger defaults to no-op.
func NewClient(cfg config.NotionConfig, logger *zap.Logger, observer Observer) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		api:      notionapi.NewClient(notionapi.Token(cfg.Token)),
		cfg:      cfg,
		logger:   logger,
		observer: observer,
	}
}

// observe logs the call duration and forwards it to the metrics observer.
func (c *Client) observe(operation string, start time.Time, err error) {
	elapsed := time.Since(start)
	if c.observer != nil {
		c.observer.RecordUpstreamCall(operation, elapsed, err)
	}
	if err != nil {
		c.logger.Warn("notion call failed",
			zap.String("operation", operation),
			zap.Duration("duration", elapsed),
			zap.Error(err))
		return
	}
	c.logger.Debug("notion call",
		zap.String("operation", operation),
		zap.Duration("duration", elapsed))
}

// queryAll pages through a database query until the cursor is exhausted.
func (c *Client) queryAll(ctx context.Context, databaseID string, filter notionapi.Filter, operation string) ([]notionapi.Page, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	start := time.Now()
	var pages []notionapi.Page
	request := &notionapi.DatabaseQueryRequest{Filter: filter, PageSize: 100}

	for {
		resp, err := c.api.Database.Query(ctx, notionapi.DatabaseID(databaseID), request)
		if err != nil {
			c.observe(operation, start, err)
			return nil, err
		}
		pages = append(pages, resp.Results...)
		if !resp.HasMore {
			break
		}
		request.StartCursor = resp.NextCursor
	}

	c.observe(operation, start, nil)
	return pages, nil
}

// getPage retrieves a single page by ID.
func (c *Client) getPage(ctx context.Context, pageID, operation string) (*notionapi.Page, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	start := time.Now()
	page, err := c.api.Page.Get(ctx, notionapi.PageID(pageID))
	c.observe(operation, start, err)
	return page, err
}

// updatePage patches the given properties on a page.
func (c *Client) updatePage(ctx context.Context, pageID string, properties notionapi.Properties, operation string) (*notionapi.Page, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	start := time.Now()
	page, err := c.api.Page.Update(ctx, notionapi.PageID(pageID), &notionapi.PageUpdateRequest{
		Properties: properties,
	})
	c.observe(operation, start, err)
	return page, err
}

// createPage adds a row to a database.
func (c *Client) createPage(ctx context.Context, databaseID string, properties notionapi.Properties, operation string) (*notionapi.Page, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	start := time.Now()
	page, err := c.api.Page.Create(ctx, &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: notionapi.DatabaseID(databaseID),
		},
		Properties: properties,
	})
	c.observe(operation, start, err)
	return page, err
}

func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.cfg.CallTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.cfg.CallTimeout)
}
