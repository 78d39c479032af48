package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CoachingCalendar/internal/domain"
	clientRepo "github.com/m04kA/SMC-CoachingCalendar/internal/infra/storage/client"
	"github.com/m04kA/SMC-CoachingCalendar/internal/scheduling"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	clientRepo  ClientRepository
	txManager   TransactionManager
	grid        scheduling.SlotGrid
	metrics     AdmissionMetrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	clientRepo ClientRepository,
	txManager TransactionManager,
	grid scheduling.SlotGrid,
	metrics AdmissionMetrics,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &UseCase{
		bookingRepo: bookingRepo,
		clientRepo:  clientRepo,
		txManager:   txManager,
		grid:        grid,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка пересечений и запись выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%s, callType=%s, date=%s, time=%s",
		req.ClientID, req.CallType, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	kind, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Время начала должно совпадать со слотом сетки
	if !uc.grid.Contains(req.StartTime) {
		uc.logger.Warn("CreateBooking: start time %s is not on the slot grid", req.StartTime)
		return nil, fmt.Errorf("%w: %s", ErrInvalidTimeSlot, req.StartTime)
	}

	// 3. Получаем клиента из справочника (имя и телефон денормализуются в бронирование)
	client, err := uc.clientRepo.GetByID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			uc.logger.Warn("CreateBooking: client id=%s not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("CreateBooking: failed to get client id=%s: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	// 4. Собираем кандидата: время окончания и правило повторения вычисляются здесь
	candidate, err := domain.NewBooking(*client, kind, req.Date, req.StartTime)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid booking: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var result *domain.Booking

	// 5. Проверяем пересечения и сохраняем в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Бронирования дня (включая повторяющиеся) с блокировкой
		bookings, err := uc.bookingRepo.GetForDay(txCtx, candidate.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.2. Допуск: пересечение с любым звонком дня означает отказ
		if err := scheduling.AdmitBooking(candidate, candidate.Date, bookings); err != nil {
			if errors.Is(err, scheduling.ErrOverlapConflict) {
				uc.logger.Warn("CreateBooking: slot not available: %v", err)
				uc.metrics.ObserveAdmission(string(kind), false)
				return fmt.Errorf("%w: %w", ErrSlotNotAvailable, err)
			}
			uc.logger.Error("CreateBooking: admission failed: %v", err)
			return fmt.Errorf("%w: admission failed: %v", ErrInternal, err)
		}

		// 5.3. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, candidate)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.metrics.ObserveAdmission(string(kind), true)
	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	return toResponse(result), nil
}

func toResponse(b *domain.Booking) *Response {
	resp := &Response{
		ID:          b.ID,
		ClientID:    b.Client.ID,
		ClientName:  b.Client.Name,
		ClientPhone: b.Client.Phone,
		CallType:    string(b.CallKind),
		Date:        b.Date,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		IsRecurring: b.IsRecurring(),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
	if b.Recurrence != nil {
		anchor := b.Recurrence.AnchorDate
		resp.RecurringStartDate = &anchor
	}
	return resp
}

type noopMetrics struct{}

func (noopMetrics) ObserveAdmission(string, bool) {}
