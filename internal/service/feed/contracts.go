package feed

import (
	"context"

	"github.com/m04kA/SMC-CoachingCalendar/internal/domain"
)

// BookingRepository источник полного набора бронирований
type BookingRepository interface {
	GetAll(ctx context.Context) ([]*domain.Booking, error)
}

// SubscriberMetrics учёт активных подписчиков
type SubscriberMetrics interface {
	SetFeedSubscribers(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
