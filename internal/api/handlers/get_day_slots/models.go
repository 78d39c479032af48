package get_day_slots

import (
	"github.com/m04kA/SMC-CoachingCalendar/internal/domain"
	getDaySlots "github.com/m04kA/SMC-CoachingCalendar/internal/usecase/get_day_slots"
)

// DaySlotsResponse HTTP response model
type DaySlotsResponse struct {
	Date           string         `json:"date"`
	ScheduledCount int            `json:"scheduledCount"`
	Slots          []SlotResponse `json:"slots"`
}

// SlotResponse слот сетки
type SlotResponse struct {
	Time        string           `json:"time"`
	IsAvailable bool             `json:"isAvailable"`
	Booking     *BookingResponse `json:"booking,omitempty"`
}

// BookingResponse звонок, начинающийся в слоте
type BookingResponse struct {
	ID          string `json:"id"`
	AnchorID    string `json:"anchorId"`
	IsVirtual   bool   `json:"isVirtual"`
	ClientID    string `json:"clientId"`
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`
	CallType    string `json:"callType"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsRecurring bool   `json:"isRecurring"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySlots.Response) *DaySlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{
			Time:        s.StartTime.String(),
			IsAvailable: s.IsAvailable,
		}
		if s.Booking != nil {
			b := s.Booking
			slots[i].Booking = &BookingResponse{
				ID:          b.ID,
				AnchorID:    b.AnchorID,
				IsVirtual:   b.IsVirtual,
				ClientID:    b.ClientID,
				ClientName:  b.ClientName,
				ClientPhone: b.ClientPhone,
				CallType:    b.CallType,
				StartTime:   b.StartTime.String(),
				EndTime:     b.EndTime.String(),
				IsRecurring: b.IsRecurring,
			}
		}
	}

	return &DaySlotsResponse{
		Date:           resp.Date.Format(domain.DateFormat),
		ScheduledCount: resp.ScheduledCount,
		Slots:          slots,
	}
}
