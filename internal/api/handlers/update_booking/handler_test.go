package update_booking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoachingCalendar/internal/service/bookings"
	"github.com/m04kA/SMC-CoachingCalendar/internal/service/bookings/models"
	"github.com/m04kA/SMC-CoachingCalendar/pkg/types"
)

type fakeService struct {
	err     error
	lastID  string
	lastReq *models.UpdateBookingRequest
}

func (f *fakeService) Update(_ context.Context, id string, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	f.lastID = id
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingResponse{ID: id}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func patch(h *Handler, id, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/bookings/{bookingId}", h.Handle).Methods(http.MethodPatch)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+id, strings.NewReader(body)))
	return rec
}

func TestHandle_PartialUpdate(t *testing.T) {
	svc := &fakeService{}

	rec := patch(NewHandler(svc, nopLogger{}), "b-1", `{"date":"2024-01-30","startTime":"14:30"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "b-1", svc.lastID)
	require.NotNil(t, svc.lastReq)
	assert.Nil(t, svc.lastReq.ClientID)
	assert.Nil(t, svc.lastReq.CallType)
	require.NotNil(t, svc.lastReq.Date)
	assert.Equal(t, time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC), *svc.lastReq.Date)
	require.NotNil(t, svc.lastReq.StartTime)
	assert.Equal(t, types.TimeString("14:30"), *svc.lastReq.StartTime)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
	}{
		{"bad body", `[]`, nil, http.StatusBadRequest},
		{"bad date", `{"date":"tomorrow"}`, nil, http.StatusBadRequest},
		{"bad time", `{"startTime":"25:00"}`, nil, http.StatusBadRequest},
		{"not found", `{"startTime":"11:30"}`, bookings.ErrBookingNotFound, http.StatusNotFound},
		{"conflict", `{"startTime":"11:30"}`, bookings.ErrSlotNotAvailable, http.StatusConflict},
		{"client not found", `{"clientId":"99"}`, bookings.ErrClientNotFound, http.StatusNotFound},
		{"bad call type", `{"callType":"demo"}`, bookings.ErrInvalidCallType, http.StatusBadRequest},
		{"off grid", `{"startTime":"11:35"}`, bookings.ErrInvalidTimeSlot, http.StatusBadRequest},
		{"empty patch", `{}`, bookings.ErrInvalidInput, http.StatusBadRequest},
		{"internal", `{"startTime":"11:30"}`, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := patch(NewHandler(&fakeService{err: tt.svcErr}, nopLogger{}), "b-1", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
