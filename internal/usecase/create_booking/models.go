package create_booking

import (
	"time"

	"github.com/m04kA/SMC-CoachingCalendar/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ClientID  string           // ID клиента из справочника
	CallType  string           // "onboarding" или "follow-up"
	Date      time.Time        // Дата звонка (без времени)
	StartTime types.TimeString // Время начала слота (например, "11:10")
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          string
	ClientID    string
	ClientName  string
	ClientPhone string
	CallType    string
	Date        time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString

	IsRecurring        bool
	RecurringStartDate *time.Time // только для follow-up

	CreatedAt time.Time
	UpdatedAt time.Time
}
