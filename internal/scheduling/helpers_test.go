package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoachingCalendar/internal/domain"
	"github.com/m04kA/SMC-CoachingCalendar/pkg/types"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateFormat, s)
	require.NoError(t, err)
	return d
}

func booking(t *testing.T, id string, kind domain.CallKind, day string, start types.TimeString) *domain.Booking {
	t.Helper()
	b, err := domain.NewBooking(domain.Client{ID: "c-" + id, Name: "Client " + id}, kind, date(t, day), start)
	require.NoError(t, err)
	b.ID = id
	return b
}

func interval(t *testing.T, start, end types.TimeString) Interval {
	t.Helper()
	i, err := NewInterval(start, end)
	require.NoError(t, err)
	return i
}
