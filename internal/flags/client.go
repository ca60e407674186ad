// Package flags fetches the river safety flag from the OURCs conditions
// service. The payload is a small public JSON document, so the client is a
// plain HTTP GET with a deadline; freshness is handled by the resource cache
// the service layer wraps around it.
package flags

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ccbc-ox/boathouse-api/internal/models"
	"github.com/ccbc-ox/boathouse-api/pkg/config"
	apperrors "github.com/ccbc-ox/boathouse-api/pkg/errors"
)

// Client reads the current flag status.
type Client struct {
	url    string
	http   *http.Client
	logger *zap.Logger
}

// NewClient builds a Client from config. A nil logger defaults to no-op.
func NewClient(cfg config.FlagsConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		url:    cfg.StatusURL,
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// upstream mirrors the conditions service payload. Notices arrive as either
// a single string or a list.
type upstream struct {
	StatusText string          `json:"status_text"`
	SetDate    string          `json:"set_date"`
	Notices    json.RawMessage `json:"notices"`
}

// Current fetches and normalises the flag status.
func (c *Client) Current(ctx context.Context) (models.Flag, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return models.Flag{}, apperrors.Wrap(err, apperrors.ErrInternal.Code, apperrors.ErrInternal.Status, "build flag status request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("flag status fetch failed", zap.String("url", c.url), zap.Error(err))
		return models.Flag{}, apperrors.Wrap(err, apperrors.ErrUpstream.Code, apperrors.ErrUpstream.Status, "fetch flag status")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("flag service returned %d", resp.StatusCode)
		c.logger.Warn("flag status fetch failed", zap.String("url", c.url), zap.Int("status", resp.StatusCode))
		return models.Flag{}, apperrors.Wrap(err, apperrors.ErrUpstream.Code, apperrors.ErrUpstream.Status, "fetch flag status")
	}

	var payload upstream
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.Flag{}, apperrors.Wrap(err, apperrors.ErrUpstream.Code, apperrors.ErrUpstream.Status, "decode flag status")
	}

	flag := models.Flag{
		Status:     models.ParseFlagStatus(payload.StatusText),
		StatusText: payload.StatusText,
		SetDate:    payload.SetDate,
		Notice:     joinNotices(payload.Notices),
	}

	c.logger.Debug("flag status fetched",
		zap.String("status", string(flag.Status)),
		zap.Duration("duration", time.Since(start)))
	return flag, nil
}

func joinNotices(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return single
	}

	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		return strings.Join(many, "; ")
	}
	return ""
}
