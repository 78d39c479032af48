package scheduling

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CoachingCalendar/internal/domain"
	"github.com/m04kA/SMC-CoachingCalendar/pkg/types"
)

var (
	// ErrInvalidTimeFormat строка времени не в формате HH:MM или минуты вне [0, 1439]
	ErrInvalidTimeFormat = types.ErrInvalidTimeFormat

	// ErrOverlapConflict новое бронирование пересекается с существующим
	ErrOverlapConflict = errors.New("scheduling: booking overlaps an existing booking")
)

// ConflictError отказ в допуске с указанием конфликтующего бронирования
type ConflictError struct {
	Conflicting *domain.Booking
}

func (e *ConflictError) Error() string {
	if e.Conflicting == nil {
		return ErrOverlapConflict.Error()
	}
	return fmt.Sprintf("%s: %s %s-%s (%s)", ErrOverlapConflict.Error(),
		e.Conflicting.Identity().Key(), e.Conflicting.StartTime, e.Conflicting.EndTime, e.Conflicting.CallKind)
}

func (e *ConflictError) Unwrap() error {
	return ErrOverlapConflict
}
