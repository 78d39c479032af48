package get_client

import (
	"context"

	"github.com/m04kA/SMC-CoachingCalendar/internal/service/clients/models"
)

type ClientService interface {
	GetByID(ctx context.Context, id string) (*models.ClientResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
