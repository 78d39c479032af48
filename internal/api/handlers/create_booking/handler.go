package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CoachingCalendar/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-CoachingCalendar/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты звонка, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM"
	msgMissingSelection   = "выберите клиента и время звонка"
	msgClientNotFound     = "клиент не найден"
	msgInvalidCallType    = "некорректный тип звонка, ожидается onboarding или follow-up"
	msgInvalidTimeSlot    = "время начала не совпадает ни с одним слотом"
	msgSlotNotAvailable   = "выбранное время пересекается с другим звонком"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: client_id=%s, date=%s, time=%s: %v",
				req.ClientID, req.Date, req.StartTime, err)
			handlers.RespondJSON(w, http.StatusConflict, fromConflict(msgSlotNotAvailable, err))

		case errors.Is(err, createBooking.ErrMissingSelection):
			h.logger.Warn("POST /bookings - Missing client or time")
			handlers.RespondBadRequest(w, msgMissingSelection)

		case errors.Is(err, createBooking.ErrClientNotFound):
			h.logger.Warn("POST /bookings - Client not found: client_id=%s", req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createBooking.ErrInvalidCallType):
			h.logger.Warn("POST /bookings - Invalid call type: %q", req.CallType)
			handlers.RespondBadRequest(w, msgInvalidCallType)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: %s", req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: client_id=%s, error=%v", req.ClientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, client_id=%s",
		result.ID, result.ClientID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
