package statecache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccbc-ox/boathouse-api/internal/models"
)

func TestNotifierFansOutToAllSubscribers(t *testing.T) {
	n := NewNotifier()

	var first, second []Change
	n.Subscribe(func(c Change) { first = append(first, c) })
	n.Subscribe(func(c Change) { second = append(second, c) })

	change := Change{
		OutingID: "outing-1",
		State: &models.AssignmentState{
			Assignments: map[string]string{"Cox": "m1"},
			LastUpdated: time.Date(2026, time.September, 7, 8, 0, 0, 0, time.UTC),
		},
	}
	require.NoError(t, n.Publish(context.Background(), change))

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, "outing-1", first[0].OutingID)
	assert.Equal(t, change.State, second[0].State)
}

func TestNotifierClearedDraftHasNilState(t *testing.T) {
	n := NewNotifier()

	var got []Change
	n.Subscribe(func(c Change) { got = append(got, c) })

	require.NoError(t, n.Publish(context.Background(), Change{OutingID: "outing-1"}))

	require.Len(t, got, 1)
	assert.Nil(t, got[0].State)
}

func TestNotifierNoSubscribers(t *testing.T) {
	n := NewNotifier()
	assert.NoError(t, n.Publish(context.Background(), Change{OutingID: "outing-1"}))
}

func TestExpiredBoundary(t *testing.T) {
	saved := time.Date(2026, time.September, 7, 8, 0, 0, 0, time.UTC)
	state := &models.AssignmentState{LastUpdated: saved}

	assert.False(t, expired(state, saved.Add(10*time.Minute), DefaultExpiry))
	assert.True(t, expired(state, saved.Add(10*time.Minute+time.Nanosecond), DefaultExpiry))
}
