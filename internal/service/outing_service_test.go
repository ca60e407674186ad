package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccbc-ox/boathouse-api/internal/models"
	"github.com/ccbc-ox/boathouse-api/internal/notion"
	appErrors "github.com/ccbc-ox/boathouse-api/pkg/errors"
	"github.com/ccbc-ox/boathouse-api/pkg/resourcecache"
)

type mockOutingStore struct {
	outings      map[string]models.Outing
	reports      map[string]models.OutingReport
	listCalls    int
	reportWrites int
	err          error
}

func (m *mockOutingStore) Outings(ctx context.Context, from, to time.Time) ([]models.Outing, error) {
	m.listCalls++
	if m.err != nil {
		return nil, m.err
	}
	list := make([]models.Outing, 0, len(m.outings))
	for _, outing := range m.outings {
		list = append(list, outing)
	}
	return list, nil
}

func (m *mockOutingStore) Outing(ctx context.Context, outingID string) (models.Outing, error) {
	if m.err != nil {
		return models.Outing{}, m.err
	}
	return m.outings[outingID], nil
}

func (m *mockOutingStore) AssignSeat(ctx context.Context, outingID string, seat models.Seat, memberID string) error {
	if m.err != nil {
		return m.err
	}
	outing := m.outings[outingID]
	if outing.Seats == nil {
		outing.Seats = map[models.Seat]models.SeatAssignment{}
	}
	if memberID == "" {
		delete(outing.Seats, seat)
	} else {
		outing.Seats[seat] = models.SeatAssignment{MemberID: memberID, Status: models.SeatAwaitingApproval}
	}
	m.outings[outingID] = outing
	return nil
}

func (m *mockOutingStore) UpdateSeatStatus(ctx context.Context, outingID string, seat models.Seat, status models.SeatStatus) error {
	outing := m.outings[outingID]
	assignment := outing.Seats[seat]
	assignment.Status = status
	outing.Seats[seat] = assignment
	m.outings[outingID] = outing
	return nil
}

func (m *mockOutingStore) UpdateOutingStatus(ctx context.Context, outingID string, status models.OutingStatus) error {
	outing := m.outings[outingID]
	outing.Status = status
	m.outings[outingID] = outing
	return nil
}

func (m *mockOutingStore) OutingReport(ctx context.Context, outingID string) (models.OutingReport, error) {
	if m.err != nil {
		return models.OutingReport{}, m.err
	}
	return m.reports[outingID], nil
}

func (m *mockOutingStore) UpdateOutingReport(ctx context.Context, outingID string, update notion.ReportUpdate) error {
	if m.err != nil {
		return m.err
	}
	m.reportWrites++
	if m.reports == nil {
		m.reports = map[string]models.OutingReport{}
	}
	report := m.reports[outingID]
	if update.OutingSummary != nil {
		report.OutingSummary = *update.OutingSummary
	}
	if update.BoatFeel != nil {
		report.BoatFeel = *update.BoatFeel
	}
	if update.OutingSuccesses != nil {
		report.OutingSuccesses = *update.OutingSuccesses
	}
	if update.NextFocus != nil {
		report.NextFocus = *update.NextFocus
	}
	if update.CoachFeedback != nil {
		report.CoachFeedback = *update.CoachFeedback
	}
	m.reports[outingID] = report
	return nil
}

func newOutingService(store *mockOutingStore) *OutingService {
	fetch := func(ctx context.Context) ([]models.Outing, error) {
		return store.Outings(ctx, time.Time{}, time.Time{})
	}
	cache := resourcecache.NewList("outings", 30*time.Second, fetch,
		func(o models.Outing) string { return o.ID }, resourcecache.Options{})
	return NewOutingService(store, cache, nil, nil)
}

func wednesday(hour int) time.Time {
	return time.Date(2026, time.September, 9, hour, 0, 0, 0, time.UTC)
}

func TestOutingListFiltersWindow(t *testing.T) {
	store := &mockOutingStore{outings: map[string]models.Outing{
		"o1": {ID: "o1", Start: wednesday(7)},
		"o2": {ID: "o2", Start: wednesday(7).AddDate(0, 0, 10)},
	}}
	svc := newOutingService(store)

	outings, err := svc.List(context.Background(), wednesday(0), wednesday(23), false)
	require.NoError(t, err)
	require.Len(t, outings, 1)
	assert.Equal(t, "o1", outings[0].ID)
}

func TestOutingListCached(t *testing.T) {
	store := &mockOutingStore{outings: map[string]models.Outing{"o1": {ID: "o1"}}}
	svc := newOutingService(store)
	ctx := context.Background()

	_, err := svc.List(ctx, time.Time{}, time.Time{}, false)
	require.NoError(t, err)
	_, err = svc.List(ctx, time.Time{}, time.Time{}, false)
	require.NoError(t, err)
	assert.Equal(t, 1, store.listCalls)
}

func TestAssignSeatRoundTrips(t *testing.T) {
	store := &mockOutingStore{outings: map[string]models.Outing{"o1": {ID: "o1"}}}
	svc := newOutingService(store)

	outing, err := svc.AssignSeat(context.Background(), "o1", AssignSeatRequest{Seat: models.SeatCox, MemberID: "m1"})
	require.NoError(t, err)
	assert.Equal(t, "m1", outing.Seats[models.SeatCox].MemberID)
	assert.Equal(t, models.SeatAwaitingApproval, outing.Seats[models.SeatCox].Status)
}

func TestAssignSeatEmptyMemberClearsSeat(t *testing.T) {
	store := &mockOutingStore{outings: map[string]models.Outing{"o1": {
		ID:    "o1",
		Seats: map[models.Seat]models.SeatAssignment{models.SeatCox: {MemberID: "m1"}},
	}}}
	svc := newOutingService(store)

	outing, err := svc.AssignSeat(context.Background(), "o1", AssignSeatRequest{Seat: models.SeatCox})
	require.NoError(t, err)
	_, filled := outing.Seats[models.SeatCox]
	assert.False(t, filled)
}

func TestAssignSeatRequiresSeat(t *testing.T) {
	svc := newOutingService(&mockOutingStore{outings: map[string]models.Outing{}})

	_, err := svc.AssignSeat(context.Background(), "o1", AssignSeatRequest{MemberID: "m1"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestUpdateSeatStatusRejectsUnknownStatus(t *testing.T) {
	svc := newOutingService(&mockOutingStore{outings: map[string]models.Outing{}})

	_, err := svc.UpdateSeatStatus(context.Background(), "o1", UpdateSeatStatusRequest{
		Seat:   models.SeatCox,
		Status: "On Holiday",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestUpdateOutingStatus(t *testing.T) {
	store := &mockOutingStore{outings: map[string]models.Outing{"o1": {ID: "o1", Status: models.OutingProvisional}}}
	svc := newOutingService(store)

	outing, err := svc.UpdateStatus(context.Background(), "o1", UpdateOutingStatusRequest{Status: models.OutingCancelled})
	require.NoError(t, err)
	assert.Equal(t, models.OutingCancelled, outing.Status)
}

func TestUpdateReportKeepsOmittedFields(t *testing.T) {
	store := &mockOutingStore{
		outings: map[string]models.Outing{"o1": {ID: "o1"}},
		reports: map[string]models.OutingReport{"o1": {CoachFeedback: "Keep the catches sharp"}},
	}
	svc := newOutingService(store)

	summary := "Solid steady state"
	report, err := svc.UpdateReport(context.Background(), "o1", UpdateOutingReportRequest{OutingSummary: &summary})
	require.NoError(t, err)
	assert.Equal(t, "Solid steady state", report.OutingSummary)
	assert.Equal(t, "Keep the catches sharp", report.CoachFeedback)
}

func TestUpdateReportRejectsEmptyRequest(t *testing.T) {
	store := &mockOutingStore{outings: map[string]models.Outing{"o1": {ID: "o1"}}}
	svc := newOutingService(store)

	_, err := svc.UpdateReport(context.Background(), "o1", UpdateOutingReportRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Zero(t, store.reportWrites)
}

func TestOutingListFailureKeepsTypedError(t *testing.T) {
	store := &mockOutingStore{err: assert.AnError}
	svc := newOutingService(store)

	_, err := svc.List(context.Background(), time.Time{}, time.Time{}, false)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUpstream.Code, appErrors.FromError(err).Code)
}
