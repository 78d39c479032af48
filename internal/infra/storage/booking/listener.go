package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Интервал проверки соединения при отсутствии уведомлений
const listenerPingInterval = 90 * time.Second

// ChangeListener слушает канал Postgres NOTIFY, в который триггер
// на таблице bookings публикует id изменённого бронирования
type ChangeListener struct {
	listener *pq.Listener
	channel  string
	logger   Logger
}

// NewChangeListener открывает отдельное соединение и подписывается на channel
func NewChangeListener(dsn, channel string, minReconnect, maxReconnect time.Duration, logger Logger) (*ChangeListener, error) {
	l := pq.NewListener(dsn, minReconnect, maxReconnect, func(ev pq.ListenerEventType, err error) {
		switch ev {
		case pq.ListenerEventConnectionAttemptFailed:
			logger.Warn("ChangeListener: connection attempt failed: %v", err)
		case pq.ListenerEventDisconnected:
			logger.Warn("ChangeListener: disconnected: %v", err)
		case pq.ListenerEventReconnected:
			logger.Info("ChangeListener: reconnected")
		}
	})

	if err := l.Listen(channel); err != nil {
		_ = l.Close()
		return nil, fmt.Errorf("%w: channel=%s: %v", ErrListen, channel, err)
	}

	return &ChangeListener{
		listener: l,
		channel:  channel,
		logger:   logger,
	}, nil
}

// Run вызывает onChange на каждое уведомление до отмены ctx
// После переподключения onChange вызывается с пустым id: уведомления за время
// разрыва потеряны и подписчикам нужен полный пересчёт
func (c *ChangeListener) Run(ctx context.Context, onChange func(ctx context.Context, bookingID string)) {
	c.logger.Info("ChangeListener: listening on channel %s", c.channel)

	ticker := time.NewTicker(listenerPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case n := <-c.listener.Notify:
			if n == nil {
				onChange(ctx, "")
				continue
			}
			onChange(ctx, n.Extra)

		case <-ticker.C:
			if err := c.listener.Ping(); err != nil {
				c.logger.Warn("ChangeListener: ping failed: %v", err)
			}
		}
	}
}

// Close закрывает соединение
func (c *ChangeListener) Close() error {
	return c.listener.Close()
}
