package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("client not found")

	// ErrInvalidCallType возвращается при неизвестном типе звонка
	ErrInvalidCallType = errors.New("invalid call type")

	// ErrInvalidTimeSlot возвращается, когда время не совпадает со слотом сетки
	ErrInvalidTimeSlot = errors.New("invalid time slot")

	// ErrSlotNotAvailable возвращается, когда новое время пересекается с другим звонком
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
