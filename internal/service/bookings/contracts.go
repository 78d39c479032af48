package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CoachingCalendar/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetAll(ctx context.Context) ([]*domain.Booking, error)
	GetForDay(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}

// ClientRepository интерфейс справочника клиентов
type ClientRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Client, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
