package scheduling

import (
	"github.com/m04kA/SMC-CoachingCalendar/internal/domain"
	"github.com/m04kA/SMC-CoachingCalendar/pkg/types"
)

// TimeToMinutes переводит "HH:MM" в минуты от полуночи
func TimeToMinutes(hhmm string) (int, error) {
	ts, err := types.NewTimeStringFromString(hhmm)
	if err != nil {
		return 0, err
	}
	return ts.Minutes()
}

// MinutesToTime переводит минуты от полуночи в "HH:MM", minutes в [0, 1439]
func MinutesToTime(minutes int) (string, error) {
	ts, err := types.TimeFromMinutes(minutes)
	if err != nil {
		return "", err
	}
	return ts.String(), nil
}

// DurationMinutes длительность звонка: onboarding 40, follow-up 20
func DurationMinutes(kind domain.CallKind) int {
	return kind.DurationMinutes()
}

// CalculateEndTime время окончания звонка
// Переход через полночь не обрабатывается: 23:50 + 20 даёт "24:10"
func CalculateEndTime(start types.TimeString, kind domain.CallKind) (types.TimeString, error) {
	if err := start.Validate(); err != nil {
		return "", err
	}
	return start.AddMinutes(DurationMinutes(kind))
}
