package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoachingCalendar/internal/domain"
	"github.com/m04kA/SMC-CoachingCalendar/internal/scheduling"
	createBooking "github.com/m04kA/SMC-CoachingCalendar/internal/usecase/create_booking"
	"github.com/m04kA/SMC-CoachingCalendar/pkg/types"
)

type fakeUseCase struct {
	resp    *createBooking.Response
	err     error
	lastReq *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.lastReq = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	anchor := time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:                 "b-1",
		ClientID:           "2",
		ClientName:         "Shilpa Sharma",
		ClientPhone:        "+91 87654 32109",
		CallType:           "follow-up",
		Date:               anchor,
		StartTime:          "15:50",
		EndTime:            "16:10",
		IsRecurring:        true,
		RecurringStartDate: &anchor,
		CreatedAt:          anchor,
		UpdatedAt:          anchor,
	}}
	h := NewHandler(uc, nopLogger{})

	rec := post(h, `{"clientId":"2","callType":"follow-up","date":"2024-01-29","startTime":"15:50"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body BookingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "b-1", body.ID)
	assert.Equal(t, "16:10", body.EndTime)
	require.NotNil(t, body.RecurringStartDate)
	assert.Equal(t, "2024-01-29", *body.RecurringStartDate)

	require.NotNil(t, uc.lastReq)
	assert.Equal(t, types.TimeString("15:50"), uc.lastReq.StartTime)
	assert.Equal(t, anchor, uc.lastReq.Date)
}

func TestHandle_Conflict(t *testing.T) {
	existing, err := domain.NewBooking(
		domain.Client{ID: "1", Name: "Sriram Krishnan"},
		domain.CallKindOnboarding,
		time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC),
		"11:10",
	)
	require.NoError(t, err)
	existing.ID = "b-7"

	conflict := &scheduling.ConflictError{Conflicting: existing}
	uc := &fakeUseCase{err: fmt.Errorf("%w: %w", createBooking.ErrSlotNotAvailable, conflict)}
	h := NewHandler(uc, nopLogger{})

	rec := post(h, `{"clientId":"2","callType":"follow-up","date":"2024-01-29","startTime":"11:30"}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	var body ConflictResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, msgSlotNotAvailable, body.Error)
	require.NotNil(t, body.Conflict)
	assert.Equal(t, "b-7", body.Conflict.ID)
	assert.Equal(t, "11:10", body.Conflict.StartTime)
	assert.Equal(t, "11:50", body.Conflict.EndTime)
}

func TestHandle_Errors(t *testing.T) {
	valid := `{"clientId":"1","callType":"onboarding","date":"2024-01-29","startTime":"11:10"}`

	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
		wantMsg    string
	}{
		{"malformed body", `{"clientId":`, nil, http.StatusBadRequest, msgInvalidRequestBody},
		{"bad date", `{"clientId":"1","callType":"onboarding","date":"29.01.2024","startTime":"11:10"}`, nil, http.StatusBadRequest, msgInvalidDate},
		{"bad time", `{"clientId":"1","callType":"onboarding","date":"2024-01-29","startTime":"11-10"}`, nil, http.StatusBadRequest, msgInvalidTime},
		{"missing selection", valid, createBooking.ErrMissingSelection, http.StatusBadRequest, msgMissingSelection},
		{"client not found", valid, createBooking.ErrClientNotFound, http.StatusNotFound, msgClientNotFound},
		{"bad call type", valid, createBooking.ErrInvalidCallType, http.StatusBadRequest, msgInvalidCallType},
		{"off grid", valid, createBooking.ErrInvalidTimeSlot, http.StatusBadRequest, msgInvalidTimeSlot},
		{"internal", valid, errors.New("boom"), http.StatusInternalServerError, "внутренняя ошибка сервера"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.ucErr}, nopLogger{})

			rec := post(h, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body map[string]string
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.wantMsg, body["error"])
		})
	}
}

func TestHandle_EmptyStartTimeReachesUseCase(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrMissingSelection}
	h := NewHandler(uc, nopLogger{})

	rec := post(h, `{"clientId":"1","callType":"onboarding","date":"2024-01-29","startTime":""}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, uc.lastReq)
	assert.True(t, uc.lastReq.StartTime.IsZero())
}
