package scheduling

import (
	"github.com/m04kA/SMC-CoachingCalendar/internal/domain"
	"github.com/m04kA/SMC-CoachingCalendar/pkg/types"
)

// Interval полуоткрытый интервал [Start, End) в минутах от полуночи
type Interval struct {
	Start int
	End   int
}

// NewInterval строит интервал из времени начала и окончания
func NewInterval(start, end types.TimeString) (Interval, error) {
	s, err := start.Minutes()
	if err != nil {
		return Interval{}, err
	}
	e, err := end.Minutes()
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: s, End: e}, nil
}

// IntervalOf интервал бронирования
func IntervalOf(b *domain.Booking) (Interval, error) {
	return NewInterval(b.StartTime, b.EndTime)
}

// Contains попадает ли минута m в [Start, End)
func (i Interval) Contains(m int) bool {
	return m >= i.Start && m < i.End
}

// Overlaps пересекаются ли интервалы
// Граничащие интервалы (11:10-11:30 и 11:30-12:10) не пересекаются
func Overlaps(a, b Interval) bool {
	return a.Start < b.End && a.End > b.Start
}

// CheckOverlap пересекается ли candidate хотя бы с одним интервалом из existing
func CheckOverlap(candidate Interval, existing []Interval) bool {
	for _, other := range existing {
		if Overlaps(candidate, other) {
			return true
		}
	}
	return false
}

// FindConflict первое бронирование, пересекающееся с candidate, или nil
// Все бронирования должны относиться к одному дню
func FindConflict(candidate Interval, bookings []*domain.Booking) (*domain.Booking, error) {
	for _, b := range bookings {
		other, err := IntervalOf(b)
		if err != nil {
			return nil, err
		}
		if Overlaps(candidate, other) {
			return b, nil
		}
	}
	return nil, nil
}
