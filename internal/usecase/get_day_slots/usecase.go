package get_day_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CoachingCalendar/internal/domain"
	"github.com/m04kA/SMC-CoachingCalendar/internal/scheduling"
)

// UseCase use case для получения сетки слотов на день
type UseCase struct {
	bookingRepo BookingRepository
	grid        scheduling.SlotGrid
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, grid scheduling.SlotGrid, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		grid:        grid,
		logger:      logger,
	}
}

// Execute выполняет use case получения сетки дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetDaySlots: validation failed: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	date := domain.DateOnly(req.Date)

	// 2. Получаем бронирования, которые могут действовать в этот день
	bookings, err := uc.bookingRepo.GetForDay(ctx, date)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 3. Раскладываем бронирования по сетке
	views, err := scheduling.ProjectDay(uc.grid, date, bookings)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to project day: %v", err)
		return nil, fmt.Errorf("%w: failed to project day: %v", ErrInternal, err)
	}

	slots := make([]Slot, len(views))
	for i, v := range views {
		slots[i] = Slot{
			StartTime:   v.Time,
			IsAvailable: v.IsAvailable,
			Booking:     toBooking(v.Booking),
		}
	}

	scheduled := scheduling.ScheduledCount(views)
	uc.logger.Info("GetDaySlots: date=%s, %d slots, %d calls scheduled",
		date.Format(domain.DateFormat), len(slots), scheduled)

	return &Response{
		Date:           date,
		Slots:          slots,
		ScheduledCount: scheduled,
	}, nil
}

func toBooking(b *domain.Booking) *Booking {
	if b == nil {
		return nil
	}
	identity := b.Identity()
	return &Booking{
		ID:          identity.Key(),
		AnchorID:    identity.AnchorID,
		IsVirtual:   b.IsVirtual(),
		ClientID:    b.Client.ID,
		ClientName:  b.Client.Name,
		ClientPhone: b.Client.Phone,
		CallType:    string(b.CallKind),
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		IsRecurring: b.IsRecurring(),
	}
}
