package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoachingCalendar/internal/domain"
	"github.com/m04kA/SMC-CoachingCalendar/pkg/types"
)

func TestTimeToMinutes(t *testing.T) {
	m, err := TimeToMinutes("10:30")
	require.NoError(t, err)
	assert.Equal(t, 630, m)

	for _, bad := range []string{"1030", "10:3", "24:00", "10:60", "aa:bb", ""} {
		_, err := TimeToMinutes(bad)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat, bad)
	}
}

func TestMinutesToTime(t *testing.T) {
	s, err := MinutesToTime(65)
	require.NoError(t, err)
	assert.Equal(t, "01:05", s)

	_, err = MinutesToTime(1440)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestCalculateEndTime(t *testing.T) {
	end, err := CalculateEndTime("11:10", domain.CallKindOnboarding)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("11:50"), end)

	end, err = CalculateEndTime("15:50", domain.CallKindFollowUp)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("16:10"), end)

	// Переход через полночь не является ошибкой
	end, err = CalculateEndTime("23:50", domain.CallKindOnboarding)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("24:30"), end)

	_, err = CalculateEndTime("7:00", domain.CallKindFollowUp)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestDurationMinutes(t *testing.T) {
	assert.Equal(t, 40, DurationMinutes(domain.CallKindOnboarding))
	assert.Equal(t, 20, DurationMinutes(domain.CallKindFollowUp))
}
