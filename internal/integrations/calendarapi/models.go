package calendarapi

// CreateBookingRequest тело POST /api/v1/bookings
type CreateBookingRequest struct {
	ClientID  string `json:"clientId"`
	CallType  string `json:"callType"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
}

// Booking созданное бронирование
type Booking struct {
	ID          string `json:"id"`
	ClientID    string `json:"clientId"`
	ClientName  string `json:"clientName"`
	CallType    string `json:"callType"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsRecurring bool   `json:"isRecurring"`
}

// ErrorResponse модель ошибки сервиса
type ErrorResponse struct {
	Error string `json:"error"`
}
