package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccbc-ox/boathouse-api/internal/models"
	appErrors "github.com/ccbc-ox/boathouse-api/pkg/errors"
	"github.com/ccbc-ox/boathouse-api/pkg/resourcecache"
)

type mockTestStore struct {
	tests     map[string]models.Test
	listCalls int
	err       error
}

func (m *mockTestStore) Tests(ctx context.Context) ([]models.Test, error) {
	m.listCalls++
	if m.err != nil {
		return nil, m.err
	}
	list := make([]models.Test, 0, len(m.tests))
	for _, test := range m.tests {
		list = append(list, test)
	}
	return list, nil
}

func (m *mockTestStore) Test(ctx context.Context, testID string) (models.Test, error) {
	if m.err != nil {
		return models.Test{}, m.err
	}
	return m.tests[testID], nil
}

func (m *mockTestStore) AssignTestSlot(ctx context.Context, testID string, slotNumber int, memberID string) error {
	if m.err != nil {
		return m.err
	}
	test := m.tests[testID]
	for _, slot := range test.Slots {
		if slot.MemberID == memberID {
			return appErrors.Clone(appErrors.ErrConflict, "member already booked")
		}
	}
	test.Slots[slotNumber-1].MemberID = memberID
	test.Slots[slotNumber-1].Outcome = models.OutcomeBooked
	m.tests[testID] = test
	return nil
}

func (m *mockTestStore) UpdateTestOutcome(ctx context.Context, testID string, slotNumber int, outcome models.TestOutcome) error {
	test := m.tests[testID]
	test.Slots[slotNumber-1].Outcome = outcome
	m.tests[testID] = test
	return nil
}

func newTestServiceFor(store *mockTestStore) *TestService {
	cache := resourcecache.NewList("tests", time.Minute, store.Tests,
		func(tt models.Test) string { return tt.ID }, resourcecache.Options{})
	return NewTestService(store, cache, nil, nil)
}

func sixSlots() []models.TestSlot {
	slots := make([]models.TestSlot, 6)
	for i := range slots {
		slots[i] = models.TestSlot{Number: i + 1}
	}
	return slots
}

func TestTestListCached(t *testing.T) {
	store := &mockTestStore{tests: map[string]models.Test{"t1": {ID: "t1", Slots: sixSlots()}}}
	svc := newTestServiceFor(store)
	ctx := context.Background()

	_, err := svc.List(ctx, false)
	require.NoError(t, err)
	_, err = svc.List(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 1, store.listCalls)
	assert.True(t, svc.Cached())
}

func TestAssignSlotBooksMember(t *testing.T) {
	store := &mockTestStore{tests: map[string]models.Test{"t1": {ID: "t1", Slots: sixSlots()}}}
	svc := newTestServiceFor(store)

	test, err := svc.AssignSlot(context.Background(), "t1", AssignTestSlotRequest{SlotNumber: 2, MemberID: "m1"})
	require.NoError(t, err)
	assert.Equal(t, "m1", test.Slots[1].MemberID)
	assert.Equal(t, models.OutcomeBooked, test.Slots[1].Outcome)
}

func TestAssignSlotRejectsOutOfRange(t *testing.T) {
	svc := newTestServiceFor(&mockTestStore{tests: map[string]models.Test{}})

	_, err := svc.AssignSlot(context.Background(), "t1", AssignTestSlotRequest{SlotNumber: 7, MemberID: "m1"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAssignSlotDoubleBookingConflicts(t *testing.T) {
	slots := sixSlots()
	slots[0].MemberID = "m1"
	store := &mockTestStore{tests: map[string]models.Test{"t1": {ID: "t1", Slots: slots}}}
	svc := newTestServiceFor(store)

	_, err := svc.AssignSlot(context.Background(), "t1", AssignTestSlotRequest{SlotNumber: 3, MemberID: "m1"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestUpdateOutcomeRecordsResult(t *testing.T) {
	slots := sixSlots()
	slots[0].MemberID = "m1"
	slots[0].Outcome = models.OutcomeBooked
	store := &mockTestStore{tests: map[string]models.Test{"t1": {ID: "t1", Slots: slots}}}
	svc := newTestServiceFor(store)

	test, err := svc.UpdateOutcome(context.Background(), "t1", UpdateTestOutcomeRequest{SlotNumber: 1, Outcome: models.OutcomePassed})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomePassed, test.Slots[0].Outcome)
}

func TestUpdateOutcomeRejectsUnknownValue(t *testing.T) {
	svc := newTestServiceFor(&mockTestStore{tests: map[string]models.Test{}})

	_, err := svc.UpdateOutcome(context.Background(), "t1", UpdateTestOutcomeRequest{SlotNumber: 1, Outcome: "Maybe"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestTestListFailureKeepsTypedError(t *testing.T) {
	svc := newTestServiceFor(&mockTestStore{err: assert.AnError})

	_, err := svc.List(context.Background(), false)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUpstream.Code, appErrors.FromError(err).Code)
}
