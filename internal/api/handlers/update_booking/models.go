package update_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CoachingCalendar/internal/domain"
	"github.com/m04kA/SMC-CoachingCalendar/internal/service/bookings/models"
	"github.com/m04kA/SMC-CoachingCalendar/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid start time")
)

// UpdateBookingRequest HTTP request model, все поля необязательны
type UpdateBookingRequest struct {
	ClientID  *string `json:"clientId,omitempty"`
	CallType  *string `json:"callType,omitempty"`
	Date      *string `json:"date,omitempty"`
	StartTime *string `json:"startTime,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateBookingRequest) ToServiceRequest() (*models.UpdateBookingRequest, error) {
	req := &models.UpdateBookingRequest{
		ClientID: r.ClientID,
		CallType: r.CallType,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
		}
		req.Date = &date
	}

	if r.StartTime != nil {
		start, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
		}
		req.StartTime = &start
	}

	return req, nil
}
