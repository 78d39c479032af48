package feed

import "errors"

var (
	// ErrHubClosed возвращается при подписке на остановленную ленту
	ErrHubClosed = errors.New("feed: hub closed")

	// ErrLoadSnapshot возвращается, когда не удалось прочитать бронирования
	ErrLoadSnapshot = errors.New("feed: failed to load snapshot")
)
