package get_day_slots

import (
	"time"

	"github.com/m04kA/SMC-CoachingCalendar/pkg/types"
)

// Request модель запроса на получение сетки дня
type Request struct {
	Date time.Time // Дата (без времени)
}

// Response модель ответа с состоянием всех слотов дня
type Response struct {
	Date           time.Time
	Slots          []Slot
	ScheduledCount int // количество звонков, начинающихся в этот день
}

// Slot модель слота сетки
type Slot struct {
	StartTime   types.TimeString
	IsAvailable bool
	Booking     *Booking // nil, если в этом слоте звонок не начинается
}

// Booking звонок, начинающийся в слоте
type Booking struct {
	ID          string // для повторов: "<id исходного>-YYYY-MM-DD"
	AnchorID    string
	IsVirtual   bool
	ClientID    string
	ClientName  string
	ClientPhone string
	CallType    string
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsRecurring bool
}
