package stream_bookings

import (
	"context"

	"github.com/m04kA/SMC-CoachingCalendar/internal/service/feed"
)

type BookingFeed interface {
	Subscribe(ctx context.Context) (<-chan feed.Snapshot, func(), error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
