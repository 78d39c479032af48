package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CoachingCalendar/pkg/types"
)

var (
	// ErrInvalidCallKind неизвестный тип звонка
	ErrInvalidCallKind = errors.New("domain: invalid call kind")

	// ErrInvalidBooking нарушен инвариант бронирования
	ErrInvalidBooking = errors.New("domain: invalid booking")
)

// CallKind тип звонка
type CallKind string

const (
	// CallKindOnboarding разовый звонок на 40 минут
	CallKindOnboarding CallKind = "onboarding"
	// CallKindFollowUp звонок на 20 минут, повторяется еженедельно
	CallKindFollowUp CallKind = "follow-up"
)

// ParseCallKind разбирает тип звонка из строки
func ParseCallKind(s string) (CallKind, error) {
	switch CallKind(s) {
	case CallKindOnboarding, CallKindFollowUp:
		return CallKind(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidCallKind, s)
	}
}

// DurationMinutes полная длительность звонка
func (k CallKind) DurationMinutes() int {
	switch k {
	case CallKindOnboarding:
		return OnboardingDurationMinutes
	case CallKindFollowUp:
		return FollowUpDurationMinutes
	default:
		return 0
	}
}

// IsRecurring повторяется ли звонок еженедельно
func (k CallKind) IsRecurring() bool {
	return k == CallKindFollowUp
}

// Recurrence правило еженедельного повторения
// Повторы идут в тот же день недели, что и AnchorDate, начиная с AnchorDate включительно
type Recurrence struct {
	AnchorDate time.Time
}

// Occurrence ссылка виртуального экземпляра на исходное бронирование
type Occurrence struct {
	AnchorID string
	Date     time.Time
}

// Booking бронирование звонка
//
// Хранимые бронирования имеют Occurrence == nil.
// Виртуальные экземпляры повторяющихся бронирований вычисляются на лету
// и никогда не сохраняются, у них заполнен Occurrence.
type Booking struct {
	ID        string
	Client    Client // денормализованные данные клиента на момент бронирования
	CallKind  CallKind
	Date      time.Time // только дата, UTC полночь
	StartTime types.TimeString
	EndTime   types.TimeString

	Recurrence *Recurrence // только для follow-up
	Occurrence *Occurrence // только для виртуальных экземпляров

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBooking создаёт бронирование с вычисленным временем окончания
// Follow-up получает правило повторения с якорем на дату бронирования,
// onboarding правила повторения не имеет
func NewBooking(client Client, kind CallKind, date time.Time, start types.TimeString) (*Booking, error) {
	if _, err := ParseCallKind(string(kind)); err != nil {
		return nil, err
	}
	if err := start.Validate(); err != nil {
		return nil, fmt.Errorf("%w: start time: %v", ErrInvalidBooking, err)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidBooking)
	}

	end, err := start.AddMinutes(kind.DurationMinutes())
	if err != nil {
		return nil, fmt.Errorf("%w: end time: %v", ErrInvalidBooking, err)
	}

	day := DateOnly(date)
	b := &Booking{
		Client:    client,
		CallKind:  kind,
		Date:      day,
		StartTime: start,
		EndTime:   end,
	}
	if kind.IsRecurring() {
		b.Recurrence = &Recurrence{AnchorDate: day}
	}
	return b, nil
}

// IsRecurring повторяется ли бронирование
func (b *Booking) IsRecurring() bool {
	return b.Recurrence != nil
}

// IsVirtual является ли бронирование вычисленным экземпляром повторения
func (b *Booking) IsVirtual() bool {
	return b.Occurrence != nil
}

// Identity идентичность бронирования для дедупликации и отображения
func (b *Booking) Identity() Identity {
	if b.Occurrence != nil {
		return VirtualOccurrenceIdentity(b.Occurrence.AnchorID, b.Occurrence.Date)
	}
	return AnchorIdentity(b.ID)
}

// Validate проверяет инварианты хранимого бронирования
func (b *Booking) Validate() error {
	if _, err := ParseCallKind(string(b.CallKind)); err != nil {
		return err
	}
	if err := b.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidBooking, err)
	}

	expectedEnd, err := b.StartTime.AddMinutes(b.CallKind.DurationMinutes())
	if err != nil {
		return fmt.Errorf("%w: end time: %v", ErrInvalidBooking, err)
	}
	if !b.EndTime.Equal(expectedEnd) {
		return fmt.Errorf("%w: end time %s does not match %s + %d minutes",
			ErrInvalidBooking, b.EndTime, b.StartTime, b.CallKind.DurationMinutes())
	}

	if b.CallKind.IsRecurring() != b.IsRecurring() {
		return fmt.Errorf("%w: recurrence is allowed only for follow-up calls", ErrInvalidBooking)
	}
	if b.Recurrence != nil && DateOnly(b.Recurrence.AnchorDate).After(DateOnly(b.Date)) {
		return fmt.Errorf("%w: recurrence anchor is after booking date", ErrInvalidBooking)
	}
	return nil
}

// Clone копия бронирования (указатели на правила тоже копируются)
func (b *Booking) Clone() *Booking {
	c := *b
	if b.Recurrence != nil {
		r := *b.Recurrence
		c.Recurrence = &r
	}
	if b.Occurrence != nil {
		o := *b.Occurrence
		c.Occurrence = &o
	}
	return &c
}

// DateOnly отбрасывает время, возвращает полночь UTC той же календарной даты
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDate сравнивает календарные даты
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
