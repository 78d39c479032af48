package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-CoachingCalendar/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) (domain.CallKind, error) {
	// Без клиента или времени заявка не принимается
	if req.ClientID == "" || req.StartTime.IsZero() {
		return "", ErrMissingSelection
	}

	if req.Date.IsZero() {
		return "", fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return "", fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	kind, err := domain.ParseCallKind(req.CallType)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCallType, err)
	}

	return kind, nil
}
