package stream_bookings

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CoachingCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-CoachingCalendar/internal/service/feed"
)

const (
	msgStreamingUnsupported = "потоковая передача не поддерживается"
	msgFeedUnavailable      = "лента бронирований недоступна"

	eventBookings = "bookings"

	defaultHeartbeat = 25 * time.Second
)

type Handler struct {
	feed      BookingFeed
	logger    Logger
	heartbeat time.Duration
}

func NewHandler(feed BookingFeed, logger Logger) *Handler {
	return &Handler{
		feed:      feed,
		logger:    logger,
		heartbeat: defaultHeartbeat,
	}
}

// Handle GET /api/v1/bookings/stream
// Server-Sent Events: каждое событие содержит полный набор бронирований
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		h.logger.Error("GET /bookings/stream - ResponseWriter does not support flushing")
		handlers.RespondError(w, http.StatusInternalServerError, msgStreamingUnsupported)
		return
	}

	ctx := r.Context()
	snapshots, cancel, err := h.feed.Subscribe(ctx)
	if err != nil {
		if errors.Is(err, feed.ErrHubClosed) {
			h.logger.Warn("GET /bookings/stream - Feed closed")
		} else {
			h.logger.Error("GET /bookings/stream - Failed to subscribe: %v", err)
		}
		handlers.RespondError(w, http.StatusServiceUnavailable, msgFeedUnavailable)
		return
	}
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.logger.Info("GET /bookings/stream - Client disconnected")
			return

		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()

		case snapshot, ok := <-snapshots:
			if !ok {
				h.logger.Info("GET /bookings/stream - Feed closed, ending stream")
				return
			}
			if err := writeEvent(w, snapshot); err != nil {
				h.logger.Warn("GET /bookings/stream - Failed to write event: %v", err)
				return
			}
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, s feed.Snapshot) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	_, err = fmt.Fprintf(w, "id: %d\nevent: %s\ndata: %s\n\n", s.Version, eventBookings, data)
	return err
}
