package search_clients

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CoachingCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-CoachingCalendar/internal/service/clients"
)

const (
	msgInvalidQuery = "слишком длинный поисковый запрос"
)

type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients?q=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	result, err := h.service.Search(r.Context(), q)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrInvalidInput):
			h.logger.Warn("GET /clients - Invalid query: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /clients - Failed to search clients: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
