package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CoachingCalendar/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetForDay(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// ClientRepository интерфейс справочника клиентов
type ClientRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Client, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// AdmissionMetrics учёт решений о допуске бронирований
type AdmissionMetrics interface {
	ObserveAdmission(callType string, accepted bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
