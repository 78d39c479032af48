package domain

import "github.com/m04kA/SMC-CoachingCalendar/pkg/types"

// DaySlotView состояние слота сетки на конкретный день
type DaySlotView struct {
	Time        types.TimeString
	Booking     *Booking // бронирование, начинающееся ровно в этот слот
	IsAvailable bool     // слот не попадает внутрь [start, end) ни одного бронирования
}

// IsBound начинается ли в этом слоте бронирование
func (s DaySlotView) IsBound() bool {
	return s.Booking != nil
}
