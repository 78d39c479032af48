package feed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-CoachingCalendar/internal/service/bookings/models"
)

// Snapshot полный набор хранимых бронирований на момент At
// Version растёт монотонно, подписчик может отбрасывать повторы
type Snapshot struct {
	Version  uint64                    `json:"version"`
	At       time.Time                 `json:"at"`
	Bookings []*models.BookingResponse `json:"bookings"`
}

// Hub раздаёт подписчикам актуальный снимок бронирований
//
// Каждый подписчик получает канал с буфером на один снимок.
// Медленный подписчик не блокирует остальных: непрочитанный снимок
// заменяется более свежим.
type Hub struct {
	repo    BookingRepository
	metrics SubscriberMetrics
	logger  Logger
	now     func() time.Time

	mu      sync.Mutex
	subs    map[uint64]chan Snapshot
	nextID  uint64
	latest  *Snapshot
	version uint64
	closed  bool
}

// NewHub создает ленту бронирований
func NewHub(repo BookingRepository, metrics SubscriberMetrics, logger Logger) *Hub {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Hub{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
		subs:    make(map[uint64]chan Snapshot),
	}
}

// Subscribe регистрирует подписчика
// Первым в канал приходит текущий снимок. cancel идемпотентен и закрывает канал.
func (h *Hub) Subscribe(ctx context.Context) (<-chan Snapshot, func(), error) {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil, nil, ErrHubClosed
	}
	hasSnapshot := h.latest != nil
	h.mu.Unlock()

	if !hasSnapshot {
		if err := h.Refresh(ctx); err != nil {
			return nil, nil, err
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, nil, ErrHubClosed
	}

	id := h.nextID
	h.nextID++

	ch := make(chan Snapshot, 1)
	ch <- *h.latest
	h.subs[id] = ch
	h.metrics.SetFeedSubscribers(len(h.subs))

	h.logger.Info("Feed: subscriber %d joined, total=%d", id, len(h.subs))

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if _, ok := h.subs[id]; !ok {
				return
			}
			delete(h.subs, id)
			close(ch)
			h.metrics.SetFeedSubscribers(len(h.subs))
			h.logger.Info("Feed: subscriber %d left, total=%d", id, len(h.subs))
		})
	}

	return ch, cancel, nil
}

// Refresh перечитывает бронирования и рассылает новый снимок
func (h *Hub) Refresh(ctx context.Context) error {
	bookings, err := h.repo.GetAll(ctx)
	if err != nil {
		h.logger.Error("Feed: failed to load bookings: %v", err)
		return fmt.Errorf("%w: %v", ErrLoadSnapshot, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return ErrHubClosed
	}

	h.version++
	snapshot := Snapshot{
		Version:  h.version,
		At:       h.now().UTC(),
		Bookings: models.FromDomainBookingList(bookings).Bookings,
	}
	h.latest = &snapshot

	for _, ch := range h.subs {
		publish(ch, snapshot)
	}
	return nil
}

// OnChange обработчик уведомления об изменении бронирования
func (h *Hub) OnChange(ctx context.Context, bookingID string) {
	if bookingID == "" {
		h.logger.Warn("Feed: connection re-established, refreshing snapshot")
	}
	if err := h.Refresh(ctx); err != nil {
		h.logger.Warn("Feed: refresh after change %q failed: %v", bookingID, err)
	}
}

// Subscribers число активных подписчиков
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Close отключает всех подписчиков
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for id, ch := range h.subs {
		close(ch)
		delete(h.subs, id)
	}
	h.metrics.SetFeedSubscribers(0)
}

// publish кладёт снимок в канал, вытесняя непрочитанный
// Вызывается под h.mu, писатель в канал только один
func publish(ch chan Snapshot, s Snapshot) {
	select {
	case ch <- s:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	ch <- s
}

type noopMetrics struct{}

func (noopMetrics) SetFeedSubscribers(int) {}
