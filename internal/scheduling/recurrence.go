package scheduling

import (
	"time"

	"github.com/m04kA/SMC-CoachingCalendar/internal/domain"
)

// ExpandRecurrence виртуальный экземпляр еженедельного бронирования на дату target
//
// Возвращает не более одного экземпляра. Экземпляра нет, если бронирование
// не повторяется, день недели не совпадает с днём недели якоря или target раньше якоря.
// На дату самого якоря экземпляр тоже создаётся, отсекать его должен вызывающий код.
func ExpandRecurrence(b *domain.Booking, target time.Time) []*domain.Booking {
	if b.Recurrence == nil || b.Recurrence.AnchorDate.IsZero() {
		return nil
	}

	anchor := domain.DateOnly(b.Recurrence.AnchorDate)
	day := domain.DateOnly(target)

	if anchor.Weekday() != day.Weekday() {
		return nil
	}
	if day.Before(anchor) {
		return nil
	}

	instance := b.Clone()
	instance.Date = day
	instance.Occurrence = &domain.Occurrence{AnchorID: b.ID, Date: day}

	// Время окончания пересчитываем, а не берём из якоря
	if end, err := CalculateEndTime(b.StartTime, b.CallKind); err == nil {
		instance.EndTime = end
	}

	return []*domain.Booking{instance}
}
