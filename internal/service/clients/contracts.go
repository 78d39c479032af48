package clients

import (
	"context"

	"github.com/m04kA/SMC-CoachingCalendar/internal/domain"
)

// ClientRepository интерфейс справочника клиентов
type ClientRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	Search(ctx context.Context, q string, limit int) ([]domain.Client, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
