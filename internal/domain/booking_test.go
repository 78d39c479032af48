package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoachingCalendar/pkg/types"
)

var testClient = Client{ID: "2", Name: "Shilpa Sharma", Phone: "+91 87654 32109"}

func TestNewBooking_Onboarding(t *testing.T) {
	date := time.Date(2024, 1, 29, 15, 0, 0, 0, time.UTC)

	b, err := NewBooking(testClient, CallKindOnboarding, date, "11:10")
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("11:50"), b.EndTime)
	assert.Equal(t, time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC), b.Date)
	assert.False(t, b.IsRecurring())
	assert.NoError(t, b.Validate())
}

func TestNewBooking_FollowUpAnchorsRecurrence(t *testing.T) {
	date := time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC)

	b, err := NewBooking(testClient, CallKindFollowUp, date, "15:50")
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("16:10"), b.EndTime)
	require.NotNil(t, b.Recurrence)
	assert.Equal(t, date, b.Recurrence.AnchorDate)
	assert.NoError(t, b.Validate())
}

func TestNewBooking_Invalid(t *testing.T) {
	date := time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC)

	_, err := NewBooking(testClient, "workshop", date, "10:30")
	assert.ErrorIs(t, err, ErrInvalidCallKind)

	_, err = NewBooking(testClient, CallKindOnboarding, date, "25:00")
	assert.ErrorIs(t, err, ErrInvalidBooking)

	_, err = NewBooking(testClient, CallKindOnboarding, time.Time{}, "10:30")
	assert.ErrorIs(t, err, ErrInvalidBooking)
}

func TestBooking_Validate(t *testing.T) {
	date := time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC)

	onboardingWithRecurrence := &Booking{
		CallKind:   CallKindOnboarding,
		Date:       date,
		StartTime:  "10:30",
		EndTime:    "11:10",
		Recurrence: &Recurrence{AnchorDate: date},
	}
	assert.ErrorIs(t, onboardingWithRecurrence.Validate(), ErrInvalidBooking)

	wrongEnd := &Booking{
		CallKind:  CallKindOnboarding,
		Date:      date,
		StartTime: "10:30",
		EndTime:   "10:50",
	}
	assert.ErrorIs(t, wrongEnd.Validate(), ErrInvalidBooking)

	anchorAfterDate := &Booking{
		CallKind:   CallKindFollowUp,
		Date:       date,
		StartTime:  "10:30",
		EndTime:    "10:50",
		Recurrence: &Recurrence{AnchorDate: date.AddDate(0, 0, 7)},
	}
	assert.ErrorIs(t, anchorAfterDate.Validate(), ErrInvalidBooking)
}

func TestBooking_Identity(t *testing.T) {
	date := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)

	anchor := &Booking{ID: "abc"}
	assert.Equal(t, "abc", anchor.Identity().Key())
	assert.Equal(t, IdentityAnchor, anchor.Identity().Kind)

	virtual := &Booking{ID: "abc", Occurrence: &Occurrence{AnchorID: "abc", Date: date}}
	assert.Equal(t, "abc-2024-02-05", virtual.Identity().Key())
	assert.True(t, virtual.IsVirtual())
}

func TestBooking_CloneIsDeep(t *testing.T) {
	date := time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC)
	b, err := NewBooking(testClient, CallKindFollowUp, date, "15:50")
	require.NoError(t, err)

	c := b.Clone()
	c.Recurrence.AnchorDate = date.AddDate(0, 0, 7)

	assert.Equal(t, date, b.Recurrence.AnchorDate)
}

func TestParseCallKind(t *testing.T) {
	k, err := ParseCallKind("follow-up")
	require.NoError(t, err)
	assert.Equal(t, CallKindFollowUp, k)
	assert.Equal(t, 20, k.DurationMinutes())
	assert.Equal(t, 40, CallKindOnboarding.DurationMinutes())

	_, err = ParseCallKind("Onboarding")
	assert.ErrorIs(t, err, ErrInvalidCallKind)
}

func TestClient_Matches(t *testing.T) {
	c := Client{ID: "1", Name: "Sriram Krishnan", Phone: "+91 98765 43210"}

	assert.True(t, c.Matches(""))
	assert.True(t, c.Matches("sriram"))
	assert.True(t, c.Matches("KRISH"))
	assert.True(t, c.Matches("98765"))
	assert.False(t, c.Matches("rahul"))
}
