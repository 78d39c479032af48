package scheduling

import (
	"time"

	"github.com/m04kA/SMC-CoachingCalendar/internal/domain"
)

// AdmitBooking проверяет, можно ли поставить candidate на день date
//
// Возвращает nil, если пересечений нет, или *ConflictError (errors.Is ErrOverlapConflict).
// Если у candidate уже есть ID (редактирование), само бронирование и его
// повторения в проверке не участвуют. Хранилище не изменяется.
func AdmitBooking(candidate *domain.Booking, date time.Time, all []*domain.Booking) error {
	interval, err := IntervalOf(candidate)
	if err != nil {
		return err
	}

	dayBookings := MaterializeDay(date, all)
	if candidate.ID != "" {
		dayBookings = excludeAnchor(dayBookings, candidate.ID)
	}

	conflict, err := FindConflict(interval, dayBookings)
	if err != nil {
		return err
	}
	if conflict != nil {
		return &ConflictError{Conflicting: conflict}
	}
	return nil
}

func excludeAnchor(bookings []*domain.Booking, anchorID string) []*domain.Booking {
	filtered := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Identity().AnchorID == anchorID {
			continue
		}
		filtered = append(filtered, b)
	}
	return filtered
}
