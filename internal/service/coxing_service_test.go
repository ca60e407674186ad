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
)

type mockCoxingStore struct {
	days    []models.CoxingDay
	updates []UpdateCoxingSlotRequest
	err     error
}

func (m *mockCoxingStore) CoxingDays(ctx context.Context, startDate, endDate string) ([]models.CoxingDay, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.days, nil
}

func (m *mockCoxingStore) UpdateCoxingSlot(ctx context.Context, date string, slot models.TimeSlot, memberID string, action notion.SlotAction) error {
	if m.err != nil {
		return m.err
	}
	m.updates = append(m.updates, UpdateCoxingSlotRequest{
		MemberID: memberID, Date: date, TimeSlot: slot, Action: string(action),
	})
	return nil
}

type stubRoster struct {
	members []models.Member
	err     error
}

func (s *stubRoster) List(ctx context.Context, force bool) ([]models.Member, error) {
	return s.members, s.err
}

type stubFlags struct {
	flag models.Flag
	err  error
}

func (s *stubFlags) Current(ctx context.Context, force bool) (models.Flag, error) {
	return s.flag, s.err
}

type stubWeekly struct {
	weekly map[string]models.WeeklyUnavailability
	err    error
}

func (s *stubWeekly) AllWeekly(ctx context.Context) (map[string]models.WeeklyUnavailability, error) {
	return s.weekly, s.err
}

func newCoxingService(store *mockCoxingStore, roster *stubRoster, flags *stubFlags, weekly *stubWeekly) *CoxingService {
	if roster == nil {
		roster = &stubRoster{}
	}
	if flags == nil {
		flags = &stubFlags{flag: models.Flag{Status: models.FlagGreen}}
	}
	if weekly == nil {
		weekly = &stubWeekly{}
	}
	return NewCoxingService(store, roster, flags, weekly, nil, nil)
}

func TestCoxingUpdateSlotValidates(t *testing.T) {
	store := &mockCoxingStore{}
	svc := newCoxingService(store, nil, nil, nil)

	err := svc.UpdateSlot(context.Background(), UpdateCoxingSlotRequest{
		MemberID: "m1", Date: "09/07/2026", TimeSlot: models.SlotMidAM, Action: "add",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Empty(t, store.updates)

	err = svc.UpdateSlot(context.Background(), UpdateCoxingSlotRequest{
		MemberID: "m1", Date: "2026-09-07", TimeSlot: "lunchtime", Action: "add",
	})
	require.Error(t, err)

	err = svc.UpdateSlot(context.Background(), UpdateCoxingSlotRequest{
		MemberID: "m1", Date: "2026-09-07", TimeSlot: models.SlotMidAM, Action: "add",
	})
	require.NoError(t, err)
	assert.Len(t, store.updates, 1)
}

func TestCoxingEligibleAppliesFlagAndAvailability(t *testing.T) {
	members := []models.Member{
		{ID: "m1", Name: "Ada", CoxExperience: models.CoxSenior},
		{ID: "m2", Name: "Grace", CoxExperience: models.CoxNoviceShortTerm},
		{ID: "m3", Name: "Joan", CoxExperience: models.CoxExperienced},
	}
	weekly := map[string]models.WeeklyUnavailability{
		// Joan is unavailable on Wednesday mornings.
		"m3": {Days: map[models.Day][]models.TimeRange{
			models.Wednesday: {{Start: "06:00", End: "09:00"}},
		}},
	}

	svc := newCoxingService(&mockCoxingStore{},
		&stubRoster{members: members},
		&stubFlags{flag: models.Flag{Status: models.FlagLightBlue}},
		&stubWeekly{weekly: weekly})

	date := time.Date(2026, time.September, 9, 0, 0, 0, 0, time.UTC)
	eligible, flag, err := svc.Eligible(context.Background(), date, "07:00")
	require.NoError(t, err)
	assert.Equal(t, models.FlagLightBlue, flag.Status)

	// Short-term novices are out under light blue; Joan is busy at 07:00.
	require.Len(t, eligible, 1)
	assert.Equal(t, "m1", eligible[0].ID)
}

func TestCoxingOverviewDayGranularity(t *testing.T) {
	members := []models.Member{{ID: "m1", Name: "Ada Lovelace"}}
	days := []models.CoxingDay{{
		ID:      "c1",
		Date:    "2026-09-07",
		EarlyAM: []string{"m1"},
	}}

	svc := newCoxingService(&mockCoxingStore{days: days},
		&stubRoster{members: members}, nil, nil)

	overview, err := svc.Overview(context.Background(), "2026-09-07", "2026-09-13")
	require.NoError(t, err)
	require.Len(t, overview, 1)
	// A single slot sign-up marks the whole day available.
	assert.True(t, overview[0].Availability[models.Monday])
	assert.False(t, overview[0].Availability[models.Tuesday])
}

func TestCoxingDaysUpstreamFailure(t *testing.T) {
	svc := newCoxingService(&mockCoxingStore{err: assert.AnError}, nil, nil, nil)
	_, err := svc.Days(context.Background(), "", "")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUpstream.Code, appErrors.FromError(err).Code)
}
