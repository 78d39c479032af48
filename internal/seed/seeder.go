package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CoachingCalendar/internal/domain"
	"github.com/m04kA/SMC-CoachingCalendar/internal/integrations/calendarapi"
)

// ClientStore запись в справочник клиентов
type ClientStore interface {
	Upsert(ctx context.Context, c domain.Client) error
}

// BookingCreator создание бронирования через API
type BookingCreator interface {
	CreateBooking(ctx context.Context, in calendarapi.CreateBookingRequest) (*calendarapi.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Result итог заполнения
type Result struct {
	Clients int
	Created int
	Skipped int
}

// Seeder заполняет базу демо-данными
// Повторный запуск безопасен: клиенты обновляются, занятые слоты пропускаются
type Seeder struct {
	clients  ClientStore
	bookings BookingCreator
	logger   Logger
}

func NewSeeder(clients ClientStore, bookings BookingCreator, logger Logger) *Seeder {
	return &Seeder{
		clients:  clients,
		bookings: bookings,
		logger:   logger,
	}
}

// SeedClients записывает справочник клиентов
func (s *Seeder) SeedClients(ctx context.Context) (int, error) {
	list := Clients()
	for _, c := range list {
		if err := s.clients.Upsert(ctx, c); err != nil {
			return 0, fmt.Errorf("seed client id=%s: %w", c.ID, err)
		}
	}
	s.logger.Info("Seed: upserted %d clients", len(list))
	return len(list), nil
}

// SeedBookings создаёт демо-бронирования через API
// Бронирование, пересекающееся с существующим, пропускается
func (s *Seeder) SeedBookings(ctx context.Context) (created, skipped int, err error) {
	for _, req := range SampleBookings() {
		booking, err := s.bookings.CreateBooking(ctx, req)
		if err != nil {
			if errors.Is(err, calendarapi.ErrSlotNotAvailable) {
				s.logger.Warn("Seed: skipping %s %s %s: %v", req.CallType, req.Date, req.StartTime, err)
				skipped++
				continue
			}
			return created, skipped, fmt.Errorf("seed booking %s %s: %w", req.Date, req.StartTime, err)
		}
		s.logger.Info("Seed: created booking id=%s", booking.ID)
		created++
	}
	return created, skipped, nil
}

// Run заполняет клиентов, затем бронирования (если передан BookingCreator)
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	var res Result

	n, err := s.SeedClients(ctx)
	if err != nil {
		return res, err
	}
	res.Clients = n

	if s.bookings == nil {
		return res, nil
	}

	res.Created, res.Skipped, err = s.SeedBookings(ctx)
	return res, err
}
