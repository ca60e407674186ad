package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccbc-ox/boathouse-api/internal/models"
	"github.com/ccbc-ox/boathouse-api/internal/statecache"
	appErrors "github.com/ccbc-ox/boathouse-api/pkg/errors"
)

type mockAssignmentStore struct {
	states  map[string]*models.AssignmentState
	cleared [][]string
	err     error
}

func (m *mockAssignmentStore) Load(ctx context.Context, outingID string) (*models.AssignmentState, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.states[outingID], nil
}

func (m *mockAssignmentStore) Save(ctx context.Context, outingID string, assignments map[string]string) (*models.AssignmentState, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.states == nil {
		m.states = map[string]*models.AssignmentState{}
	}
	state := &models.AssignmentState{Assignments: assignments, LastUpdated: time.Now()}
	m.states[outingID] = state
	return state, nil
}

func (m *mockAssignmentStore) Clear(ctx context.Context, outingIDs ...string) error {
	if m.err != nil {
		return m.err
	}
	m.cleared = append(m.cleared, outingIDs)
	for _, id := range outingIDs {
		delete(m.states, id)
	}
	return nil
}

func TestAssignmentSaveBroadcastsChange(t *testing.T) {
	store := &mockAssignmentStore{}
	svc := NewAssignmentService(store, nil, nil)

	var seen []statecache.Change
	svc.Subscribe(func(c statecache.Change) { seen = append(seen, c) })

	state, err := svc.Save(context.Background(), "o1", SaveAssignmentsRequest{
		Assignments: map[string]string{"Cox": "m1"},
	})
	require.NoError(t, err)
	require.NotNil(t, state)

	require.Len(t, seen, 1)
	assert.Equal(t, "o1", seen[0].OutingID)
	require.NotNil(t, seen[0].State)
	assert.Equal(t, map[string]string{"Cox": "m1"}, seen[0].State.Assignments)
}

func TestAssignmentClearBroadcastsNilState(t *testing.T) {
	store := &mockAssignmentStore{states: map[string]*models.AssignmentState{
		"o1": {Assignments: map[string]string{"Cox": "m1"}},
	}}
	svc := NewAssignmentService(store, nil, nil)

	var seen []statecache.Change
	svc.Subscribe(func(c statecache.Change) { seen = append(seen, c) })

	require.NoError(t, svc.Clear(context.Background(), "o1"))

	require.Len(t, seen, 1)
	assert.Nil(t, seen[0].State)
	assert.Equal(t, [][]string{{"o1"}}, store.cleared)
}

func TestAssignmentLoadAbsentReturnsNil(t *testing.T) {
	svc := NewAssignmentService(&mockAssignmentStore{}, nil, nil)
	state, err := svc.Load(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestAssignmentSaveStoreFailure(t *testing.T) {
	svc := NewAssignmentService(&mockAssignmentStore{err: assert.AnError}, nil, nil)
	_, err := svc.Save(context.Background(), "o1", SaveAssignmentsRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInternal.Code, appErrors.FromError(err).Code)
}
