package get_day_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CoachingCalendar/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetForDay возвращает бронирования на дату и повторяющиеся бронирования того же дня недели
	GetForDay(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
