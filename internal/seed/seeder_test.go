package seed

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoachingCalendar/internal/domain"
	"github.com/m04kA/SMC-CoachingCalendar/internal/integrations/calendarapi"
	"github.com/m04kA/SMC-CoachingCalendar/internal/scheduling"
	"github.com/m04kA/SMC-CoachingCalendar/pkg/types"
)

type fakeClientStore struct {
	upserted map[string]domain.Client
	err      error
}

func (f *fakeClientStore) Upsert(_ context.Context, c domain.Client) error {
	if f.err != nil {
		return f.err
	}
	f.upserted[c.ID] = c
	return nil
}

type fakeCreator struct {
	taken map[string]bool
	err   error
}

func (f *fakeCreator) CreateBooking(_ context.Context, in calendarapi.CreateBookingRequest) (*calendarapi.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	key := in.Date + " " + in.StartTime
	if f.taken[key] {
		return nil, fmt.Errorf("%w: занято", calendarapi.ErrSlotNotAvailable)
	}
	f.taken[key] = true
	return &calendarapi.Booking{ID: "id-" + key}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestClients_AreUniqueAndComplete(t *testing.T) {
	list := Clients()
	require.Len(t, list, 20)

	seen := make(map[string]bool)
	for _, c := range list {
		assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Phone)
	}
}

func TestSampleBookings_AreAdmissible(t *testing.T) {
	byID := make(map[string]domain.Client)
	for _, c := range Clients() {
		byID[c.ID] = c
	}

	var stored []*domain.Booking
	for _, req := range SampleBookings() {
		client, ok := byID[req.ClientID]
		require.True(t, ok, "unknown client %s", req.ClientID)

		kind, err := domain.ParseCallKind(req.CallType)
		require.NoError(t, err)
		date, err := time.Parse(domain.DateFormat, req.Date)
		require.NoError(t, err)
		start, err := types.NewTimeStringFromString(req.StartTime)
		require.NoError(t, err)
		assert.True(t, scheduling.DefaultGrid().Contains(start))

		b, err := domain.NewBooking(client, kind, date, start)
		require.NoError(t, err)
		require.NoError(t, scheduling.AdmitBooking(b, b.Date, stored))

		b.ID = fmt.Sprintf("seed-%d", len(stored))
		stored = append(stored, b)
	}
}

func TestRun(t *testing.T) {
	store := &fakeClientStore{upserted: map[string]domain.Client{}}
	creator := &fakeCreator{taken: map[string]bool{}}
	s := NewSeeder(store, creator, nopLogger{})

	res, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Result{Clients: 20, Created: 3}, res)
	assert.Len(t, store.upserted, 20)

	// Повторный запуск ничего не дублирует
	res, err = s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Result{Clients: 20, Created: 0, Skipped: 3}, res)
}

func TestRun_ClientsOnly(t *testing.T) {
	store := &fakeClientStore{upserted: map[string]domain.Client{}}

	res, err := NewSeeder(store, nil, nopLogger{}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Result{Clients: 20}, res)
}

func TestRun_Errors(t *testing.T) {
	_, err := NewSeeder(&fakeClientStore{err: errors.New("db down")}, nil, nopLogger{}).Run(context.Background())
	assert.Error(t, err)

	store := &fakeClientStore{upserted: map[string]domain.Client{}}
	creator := &fakeCreator{err: calendarapi.ErrClientNotFound}
	_, err = NewSeeder(store, creator, nopLogger{}).Run(context.Background())
	assert.ErrorIs(t, err, calendarapi.ErrClientNotFound)
}
