package get_day_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoachingCalendar/internal/domain"
	"github.com/m04kA/SMC-CoachingCalendar/internal/scheduling"
	"github.com/m04kA/SMC-CoachingCalendar/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (r *fakeBookingRepo) GetForDay(context.Context, time.Time) ([]*domain.Booking, error) {
	return r.bookings, r.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var monday = time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC)

func mustBooking(t *testing.T, id string, kind domain.CallKind, date time.Time, start types.TimeString) *domain.Booking {
	t.Helper()
	b, err := domain.NewBooking(domain.Client{ID: id, Name: "Client " + id}, kind, date, start)
	require.NoError(t, err)
	b.ID = id
	return b
}

func slotAt(t *testing.T, resp *Response, at types.TimeString) Slot {
	t.Helper()
	for _, s := range resp.Slots {
		if s.StartTime == at {
			return s
		}
	}
	t.Fatalf("slot %s not found", at)
	return Slot{}
}

func TestExecute_EmptyDay(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, scheduling.DefaultGrid(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday})
	require.NoError(t, err)

	assert.Len(t, resp.Slots, 27)
	assert.Equal(t, 0, resp.ScheduledCount)
	for _, s := range resp.Slots {
		assert.True(t, s.IsAvailable)
	}
}

func TestExecute_ProjectsDirectAndRecurring(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		mustBooking(t, "once", domain.CallKindOnboarding, monday.AddDate(0, 0, 7), "11:10"),
		mustBooking(t, "weekly", domain.CallKindFollowUp, monday, "15:50"),
	}}
	uc := NewUseCase(repo, scheduling.DefaultGrid(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday.AddDate(0, 0, 7)})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.ScheduledCount)

	onboarding := slotAt(t, resp, "11:10")
	require.NotNil(t, onboarding.Booking)
	assert.Equal(t, "once", onboarding.Booking.ID)
	assert.False(t, onboarding.Booking.IsVirtual)
	assert.False(t, slotAt(t, resp, "11:30").IsAvailable)
	assert.Nil(t, slotAt(t, resp, "11:30").Booking)

	weekly := slotAt(t, resp, "15:50")
	require.NotNil(t, weekly.Booking)
	assert.Equal(t, "weekly-2024-02-05", weekly.Booking.ID)
	assert.Equal(t, "weekly", weekly.Booking.AnchorID)
	assert.True(t, weekly.Booking.IsVirtual)
	assert.True(t, weekly.Booking.IsRecurring)
}

func TestExecute_Errors(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, scheduling.DefaultGrid(), nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	uc = NewUseCase(&fakeBookingRepo{err: errors.New("db down")}, scheduling.DefaultGrid(), nopLogger{})
	_, err = uc.Execute(context.Background(), &Request{Date: monday})
	assert.ErrorIs(t, err, ErrInternal)

	broken := &domain.Booking{ID: "x", CallKind: domain.CallKindOnboarding, Date: monday, StartTime: "bad", EndTime: "11:50"}
	uc = NewUseCase(&fakeBookingRepo{bookings: []*domain.Booking{broken}}, scheduling.DefaultGrid(), nopLogger{})
	_, err = uc.Execute(context.Background(), &Request{Date: monday})
	assert.ErrorIs(t, err, ErrInternal)
}
