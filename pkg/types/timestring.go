package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const (
	minutesInHour = 60
	minutesInDay  = 24 * minutesInHour
	timeLayout    = "15:04"
)

// ErrInvalidTimeFormat возвращается, когда строка не соответствует формату HH:MM
var ErrInvalidTimeFormat = errors.New("invalid time string format")

// TimeString время суток в формате "HH:MM" (без даты и часового пояса)
//
// Значения, полученные арифметикой (AddMinutes), не заворачиваются через полночь:
// 23:50 + 20 минут даёт "24:10". Такие значения не проходят Validate,
// но корректно сравниваются и переводятся в минуты.
type TimeString string

// NewTimeStringFromString парсит строку строго в формате HH:MM (00:00 - 23:59)
func NewTimeStringFromString(s string) (TimeString, error) {
	hours, minutes, err := splitClock(s)
	if err != nil {
		return "", err
	}
	if hours > 23 {
		return "", fmt.Errorf("%w: hours out of range in %q", ErrInvalidTimeFormat, s)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", hours, minutes)), nil
}

// NewTimeString берёт часы и минуты из time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// TimeFromMinutes переводит минуты от начала суток в TimeString
// Допустимый диапазон: [0, 1439]
func TimeFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= minutesInDay {
		return "", fmt.Errorf("%w: minutes %d out of range [0, %d]", ErrInvalidTimeFormat, minutes, minutesInDay-1)
	}
	return formatMinutes(minutes), nil
}

// Minutes возвращает количество минут от начала суток
func (t TimeString) Minutes() (int, error) {
	hours, minutes, err := splitClock(string(t))
	if err != nil {
		return 0, err
	}
	return hours*minutesInHour + minutes, nil
}

// AddMinutes прибавляет n минут без перехода через полночь
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total += n
	if total < 0 {
		return "", fmt.Errorf("%w: negative result for %s%+d", ErrInvalidTimeFormat, t, n)
	}
	return formatMinutes(total), nil
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// IsZero проверяет, что время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет строгий формат HH:MM
func (t TimeString) Validate() error {
	_, err := NewTimeStringFromString(string(t))
	return err
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.cmp(other) < 0
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.cmp(other) > 0
}

// Equal сравнивает время по минутам
func (t TimeString) Equal(other TimeString) bool {
	return t.cmp(other) == 0
}

func (t TimeString) cmp(other TimeString) int {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	if errA != nil || errB != nil {
		// Некорректные значения сравниваем как строки
		switch {
		case t < other:
			return -1
		case t > other:
			return 1
		default:
			return 0
		}
	}
	return a - b
}

// Scan реализует sql.Scanner
// Postgres отдаёт колонку TIME как "HH:MM:SS", секунды отбрасываются
func (t *TimeString) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeFormat, value)
	}

	if len(raw) > 5 {
		raw = raw[:5]
	}
	if _, _, err := splitClock(raw); err != nil {
		return err
	}
	*t = TimeString(raw)
	return nil
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

func formatMinutes(total int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", total/minutesInHour, total%minutesInHour))
}

// splitClock разбирает "HH:MM", часы не ограничены сверху (для вычисленного конца)
func splitClock(s string) (int, int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
	}

	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	minutes := int(s[3]-'0')*10 + int(s[4]-'0')
	if minutes > 59 {
		return 0, 0, fmt.Errorf("%w: minutes out of range in %q", ErrInvalidTimeFormat, s)
	}
	return hours, minutes, nil
}
