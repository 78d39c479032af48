package create_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CoachingCalendar/internal/domain"
	"github.com/m04kA/SMC-CoachingCalendar/internal/scheduling"
	createBooking "github.com/m04kA/SMC-CoachingCalendar/internal/usecase/create_booking"
	"github.com/m04kA/SMC-CoachingCalendar/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid start time")
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ClientID  string `json:"clientId"`
	CallType  string `json:"callType"`  // "onboarding" | "follow-up"
	Date      string `json:"date"`      // "2024-01-29"
	StartTime string `json:"startTime"` // "11:10"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                 string  `json:"id"`
	ClientID           string  `json:"clientId"`
	ClientName         string  `json:"clientName"`
	ClientPhone        string  `json:"clientPhone"`
	CallType           string  `json:"callType"`
	Date               string  `json:"date"`
	StartTime          string  `json:"startTime"`
	EndTime            string  `json:"endTime"`
	IsRecurring        bool    `json:"isRecurring"`
	RecurringStartDate *string `json:"recurringStartDate,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// ConflictResponse ответ 409 с занятым звонком
type ConflictResponse struct {
	Error    string               `json:"error"`
	Conflict *ConflictingBooking `json:"conflict,omitempty"`
}

// ConflictingBooking звонок, с которым пересекается заявка
type ConflictingBooking struct {
	ID         string `json:"id"`
	ClientName string `json:"clientName"`
	CallType   string `json:"callType"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Пустое время не считается ошибкой формата: его отклонит use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	var startTime types.TimeString
	if r.StartTime != "" {
		startTime, err = types.NewTimeStringFromString(r.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
		}
	}

	return &createBooking.Request{
		ClientID:  r.ClientID,
		CallType:  r.CallType,
		Date:      date,
		StartTime: startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	out := &BookingResponse{
		ID:          resp.ID,
		ClientID:    resp.ClientID,
		ClientName:  resp.ClientName,
		ClientPhone: resp.ClientPhone,
		CallType:    resp.CallType,
		Date:        resp.Date.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		EndTime:     resp.EndTime.String(),
		IsRecurring: resp.IsRecurring,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
	if resp.RecurringStartDate != nil {
		anchor := resp.RecurringStartDate.Format(domain.DateFormat)
		out.RecurringStartDate = &anchor
	}
	return out
}

func fromConflict(msg string, err error) *ConflictResponse {
	resp := &ConflictResponse{Error: msg}

	var conflict *scheduling.ConflictError
	if errors.As(err, &conflict) && conflict.Conflicting != nil {
		b := conflict.Conflicting
		resp.Conflict = &ConflictingBooking{
			ID:         b.Identity().Key(),
			ClientName: b.Client.Name,
			CallType:   string(b.CallKind),
			StartTime:  b.StartTime.String(),
			EndTime:    b.EndTime.String(),
		}
	}
	return resp
}
