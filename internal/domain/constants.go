package domain

// Длительности звонков в минутах
const (
	OnboardingDurationMinutes = 40
	FollowUpDurationMinutes   = 20
)

// Сетка слотов: [10:30, 19:30) с шагом 20 минут
const (
	GridStartTime   = "10:30"
	GridEndTime     = "19:30"
	GridStepMinutes = 20
)

// Ограничения на входные данные
const (
	MaxClientSearchQueryLength = 100
	MaxClientSearchResults     = 50
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
