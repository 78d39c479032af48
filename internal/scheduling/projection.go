package scheduling

import (
	"time"

	"github.com/m04kA/SMC-CoachingCalendar/internal/domain"
)

// ProjectDay состояние каждого слота сетки на день date, в порядке сетки
//
// Занятость считается по всем бронированиям дня: onboarding на 40 минут
// занимает свой слот и следующий, хотя во втором слоте бронирование не начинается.
func ProjectDay(grid SlotGrid, date time.Time, all []*domain.Booking) ([]domain.DaySlotView, error) {
	dayBookings := MaterializeDay(date, all)

	intervals := make([]Interval, len(dayBookings))
	for i, b := range dayBookings {
		interval, err := IntervalOf(b)
		if err != nil {
			return nil, err
		}
		intervals[i] = interval
	}

	slots := grid.Slots()
	views := make([]domain.DaySlotView, len(slots))

	for i, slot := range slots {
		slotMinutes, err := slot.Minutes()
		if err != nil {
			return nil, err
		}

		view := domain.DaySlotView{Time: slot, IsAvailable: true}
		for j, b := range dayBookings {
			if view.Booking == nil && intervals[j].Start == slotMinutes {
				view.Booking = b
			}
			if intervals[j].Contains(slotMinutes) {
				view.IsAvailable = false
			}
		}
		views[i] = view
	}

	return views, nil
}

// ScheduledCount количество слотов, в которых начинается бронирование
func ScheduledCount(views []domain.DaySlotView) int {
	count := 0
	for _, v := range views {
		if v.IsBound() {
			count++
		}
	}
	return count
}
