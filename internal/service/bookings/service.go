package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoachingCalendar/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CoachingCalendar/internal/infra/storage/booking"
	clientRepo "github.com/m04kA/SMC-CoachingCalendar/internal/infra/storage/client"
	"github.com/m04kA/SMC-CoachingCalendar/internal/scheduling"
	"github.com/m04kA/SMC-CoachingCalendar/internal/service/bookings/models"
)

// Service сервис для работы с хранимыми бронированиями
type Service struct {
	bookingRepo BookingRepository
	clientRepo  ClientRepository
	txManager   TransactionManager
	grid        scheduling.SlotGrid
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	clientRepo ClientRepository,
	txManager TransactionManager,
	grid scheduling.SlotGrid,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		clientRepo:  clientRepo,
		txManager:   txManager,
		grid:        grid,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	if _, err := uuid.Parse(id); err != nil {
		s.logger.Warn("GetByID: malformed booking id=%s", id)
		return nil, ErrBookingNotFound
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// List получает полный набор хранимых бронирований
// Повторы follow-up не разворачиваются, для этого есть сетка дня
func (s *Service) List(ctx context.Context) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching all bookings")

	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Update изменяет бронирование
// Время окончания и правило повторения пересчитываются, новое время
// проверяется на пересечения со всеми звонками дня, кроме самого бронирования
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Update: updating booking id=%s", id)

	if _, err := uuid.Parse(id); err != nil {
		s.logger.Warn("Update: malformed booking id=%s", id)
		return nil, ErrBookingNotFound
	}
	if req.IsEmpty() {
		s.logger.Warn("Update: nothing to update for booking id=%s", id)
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	var result *domain.Booking

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем текущее бронирование (с блокировкой строки)
		existing, err := s.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("Update: booking id=%s not found", id)
				return ErrBookingNotFound
			}
			s.logger.Error("Update: repository error for booking id=%s: %v", id, err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		// 2. Собираем новое состояние
		updated, err := s.applyChanges(txCtx, existing, req)
		if err != nil {
			return err
		}

		// 3. Проверяем пересечения на новую дату
		dayBookings, err := s.bookingRepo.GetForDay(txCtx, updated.Date)
		if err != nil {
			s.logger.Error("Update: failed to get bookings for %s: %v", updated.Date.Format(domain.DateFormat), err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		if err := scheduling.AdmitBooking(updated, updated.Date, dayBookings); err != nil {
			if errors.Is(err, scheduling.ErrOverlapConflict) {
				s.logger.Warn("Update: booking id=%s conflicts: %v", id, err)
				return fmt.Errorf("%w: %w", ErrSlotNotAvailable, err)
			}
			s.logger.Error("Update: admission failed for booking id=%s: %v", id, err)
			return fmt.Errorf("%w: Update - admission failed: %v", ErrInternal, err)
		}

		// 4. Сохраняем
		saved, err := s.bookingRepo.Update(txCtx, updated)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("Update: failed to save booking id=%s: %v", id, err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		result = saved
		return nil
	})

	if err != nil {
		if isServiceError(err) {
			return nil, err
		}
		s.logger.Error("Update: transaction failed for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated booking id=%s", id)
	return models.FromDomainBooking(result), nil
}

// Delete удаляет бронирование
// Для повторяющегося follow-up удаляются и все его будущие повторы
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting booking id=%s", id)

	if _, err := uuid.Parse(id); err != nil {
		s.logger.Warn("Delete: malformed booking id=%s", id)
		return ErrBookingNotFound
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%s", id)
	return nil
}

// applyChanges строит новое состояние бронирования из текущего и запроса
func (s *Service) applyChanges(ctx context.Context, existing *domain.Booking, req *models.UpdateBookingRequest) (*domain.Booking, error) {
	client := existing.Client
	if req.ClientID != nil && *req.ClientID != existing.Client.ID {
		c, err := s.clientRepo.GetByID(ctx, *req.ClientID)
		if err != nil {
			if errors.Is(err, clientRepo.ErrClientNotFound) {
				s.logger.Warn("Update: client id=%s not found", *req.ClientID)
				return nil, ErrClientNotFound
			}
			s.logger.Error("Update: failed to get client id=%s: %v", *req.ClientID, err)
			return nil, fmt.Errorf("%w: Update - client repository error: %v", ErrInternal, err)
		}
		client = *c
	}

	kind := existing.CallKind
	if req.CallType != nil {
		parsed, err := domain.ParseCallKind(*req.CallType)
		if err != nil {
			s.logger.Warn("Update: invalid call type %q", *req.CallType)
			return nil, fmt.Errorf("%w: %v", ErrInvalidCallType, err)
		}
		kind = parsed
	}

	date := existing.Date
	if req.Date != nil {
		if req.Date.IsZero() {
			return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
		}
		date = *req.Date
	}

	start := existing.StartTime
	if req.StartTime != nil {
		if err := req.StartTime.Validate(); err != nil {
			return nil, fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
		}
		if !s.grid.Contains(*req.StartTime) {
			s.logger.Warn("Update: start time %s is not on the slot grid", *req.StartTime)
			return nil, fmt.Errorf("%w: %s", ErrInvalidTimeSlot, *req.StartTime)
		}
		start = *req.StartTime
	}

	// Якорь повторения переносится на новую дату, как при создании
	updated, err := domain.NewBooking(client, kind, date, start)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	return updated, nil
}

func isServiceError(err error) bool {
	for _, target := range []error{
		ErrBookingNotFound,
		ErrClientNotFound,
		ErrInvalidCallType,
		ErrInvalidTimeSlot,
		ErrSlotNotAvailable,
		ErrInvalidInput,
		ErrInternal,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
