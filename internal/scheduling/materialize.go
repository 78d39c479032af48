package scheduling

import (
	"time"

	"github.com/m04kA/SMC-CoachingCalendar/internal/domain"
)

// MaterializeDay все бронирования, действующие в день date
//
// Для каждого бронирования:
//   - если его дата совпадает с date, оно берётся как есть;
//   - иначе, если это повторяющийся follow-up, берётся его экземпляр на date.
//
// Ветки взаимоисключающие, поэтому в день якоря виртуальный дубль не появляется.
// Повторы одной и той же идентичности во входных данных отбрасываются.
func MaterializeDay(date time.Time, all []*domain.Booking) []*domain.Booking {
	result := make([]*domain.Booking, 0)
	seen := make(map[string]struct{})

	add := func(b *domain.Booking) {
		key := b.Identity().Key()
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		result = append(result, b)
	}

	for _, b := range all {
		if domain.SameDate(b.Date, date) {
			add(b)
		} else if b.IsRecurring() && b.CallKind == domain.CallKindFollowUp {
			for _, instance := range ExpandRecurrence(b, date) {
				add(instance)
			}
		}
	}

	return result
}
