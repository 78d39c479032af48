package calendarapi

import "errors"

var (
	// ErrSlotNotAvailable время пересекается с уже назначенным звонком
	ErrSlotNotAvailable = errors.New("calendarapi: slot is not available")

	// ErrClientNotFound клиента нет в справочнике
	ErrClientNotFound = errors.New("calendarapi: client not found")

	// ErrRejected сервис отклонил запрос как некорректный
	ErrRejected = errors.New("calendarapi: request rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("calendarapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("calendarapi client: invalid response")
)
