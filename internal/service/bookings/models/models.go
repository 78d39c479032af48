package models

import (
	"time"

	"github.com/m04kA/SMC-CoachingCalendar/internal/domain"
	"github.com/m04kA/SMC-CoachingCalendar/pkg/types"
)

// Request модели

// UpdateBookingRequest частичное изменение бронирования
// nil означает "не менять"
type UpdateBookingRequest struct {
	ClientID  *string
	CallType  *string
	Date      *time.Time
	StartTime *types.TimeString
}

// IsEmpty нет ни одного изменяемого поля
func (r *UpdateBookingRequest) IsEmpty() bool {
	return r.ClientID == nil && r.CallType == nil && r.Date == nil && r.StartTime == nil
}

// Response модели

// BookingResponse хранимое бронирование
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

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:          b.ID,
		ClientID:    b.Client.ID,
		ClientName:  b.Client.Name,
		ClientPhone: b.Client.Phone,
		CallType:    string(b.CallKind),
		Date:        b.Date.Format(domain.DateFormat),
		StartTime:   b.StartTime.String(),
		EndTime:     b.EndTime.String(),
		IsRecurring: b.IsRecurring(),
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   b.UpdatedAt.Format(time.RFC3339),
	}
	if b.Recurrence != nil {
		anchor := b.Recurrence.AnchorDate.Format(domain.DateFormat)
		resp.RecurringStartDate = &anchor
	}
	return resp
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	items := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = FromDomainBooking(b)
	}
	return &BookingListResponse{
		Bookings: items,
		Total:    len(items),
	}
}
