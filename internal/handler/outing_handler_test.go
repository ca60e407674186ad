package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccbc-ox/boathouse-api/internal/models"
	"github.com/ccbc-ox/boathouse-api/internal/notion"
	"github.com/ccbc-ox/boathouse-api/internal/service"
	"github.com/ccbc-ox/boathouse-api/pkg/resourcecache"
	"github.com/ccbc-ox/boathouse-api/pkg/response"
)

type outingStoreStub struct {
	outings map[string]models.Outing
}

func (s *outingStoreStub) Outings(ctx context.Context, from, to time.Time) ([]models.Outing, error) {
	list := make([]models.Outing, 0, len(s.outings))
	for _, outing := range s.outings {
		list = append(list, outing)
	}
	return list, nil
}

func (s *outingStoreStub) Outing(ctx context.Context, outingID string) (models.Outing, error) {
	return s.outings[outingID], nil
}

func (s *outingStoreStub) AssignSeat(ctx context.Context, outingID string, seat models.Seat, memberID string) error {
	outing := s.outings[outingID]
	if outing.Seats == nil {
		outing.Seats = map[models.Seat]models.SeatAssignment{}
	}
	outing.Seats[seat] = models.SeatAssignment{MemberID: memberID, Status: models.SeatAwaitingApproval}
	s.outings[outingID] = outing
	return nil
}

func (s *outingStoreStub) UpdateSeatStatus(ctx context.Context, outingID string, seat models.Seat, status models.SeatStatus) error {
	return nil
}

func (s *outingStoreStub) UpdateOutingStatus(ctx context.Context, outingID string, status models.OutingStatus) error {
	return nil
}

func (s *outingStoreStub) OutingReport(ctx context.Context, outingID string) (models.OutingReport, error) {
	return models.OutingReport{}, nil
}

func (s *outingStoreStub) UpdateOutingReport(ctx context.Context, outingID string, update notion.ReportUpdate) error {
	return nil
}

func newOutingHandlerFor(store *outingStoreStub) *OutingHandler {
	fetch := func(ctx context.Context) ([]models.Outing, error) {
		return store.Outings(ctx, time.Time{}, time.Time{})
	}
	cache := resourcecache.NewList("outings", 30*time.Second, fetch,
		func(o models.Outing) string { return o.ID }, resourcecache.Options{})
	return NewOutingHandler(service.NewOutingService(store, cache, nil, nil))
}

func TestOutingHandlerListRejectsBadWindow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newOutingHandlerFor(&outingStoreStub{outings: map[string]models.Outing{}})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/outings?start=next-tuesday", nil)
	c.Request = req

	handler.List(c)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
}

func TestOutingHandlerAssignSeat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := &outingStoreStub{outings: map[string]models.Outing{"o1": {ID: "o1"}}}
	handler := newOutingHandlerFor(store)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(service.AssignSeatRequest{Seat: models.SeatStroke, MemberID: "m1"})
	req, _ := http.NewRequest(http.MethodPut, "/outings/o1/seats", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "o1"}}

	handler.AssignSeat(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "m1", store.outings["o1"].Seats[models.SeatStroke].MemberID)
}

func TestOutingHandlerAssignSeatInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newOutingHandlerFor(&outingStoreStub{outings: map[string]models.Outing{}})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPut, "/outings/o1/seats", bytes.NewReader([]byte(`not-json`)))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "o1"}}

	handler.AssignSeat(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
