package create_booking

import "errors"

var (
	// ErrMissingSelection возвращается, когда не выбран клиент или время
	ErrMissingSelection = errors.New("create_booking: client and start time must be selected")

	// ErrClientNotFound возвращается, когда клиент не найден в справочнике
	ErrClientNotFound = errors.New("create_booking: client not found")

	// ErrInvalidCallType возвращается при неизвестном типе звонка
	ErrInvalidCallType = errors.New("create_booking: invalid call type")

	// ErrInvalidTimeSlot возвращается, когда время начала не совпадает ни с одним слотом сетки
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда звонок пересекается с уже назначенным
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
