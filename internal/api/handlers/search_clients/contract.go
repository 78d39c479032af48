package search_clients

import (
	"context"

	"github.com/m04kA/SMC-CoachingCalendar/internal/service/clients/models"
)

type ClientService interface {
	Search(ctx context.Context, q string) (*models.ClientListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
