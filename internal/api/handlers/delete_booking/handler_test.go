package delete_booking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CoachingCalendar/internal/service/bookings"
)

type fakeService struct {
	err    error
	lastID string
}

func (f *fakeService) Delete(_ context.Context, id string) error {
	f.lastID = id
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"deleted", nil, http.StatusNoContent},
		{"not found", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			router := mux.NewRouter()
			router.HandleFunc("/api/v1/bookings/{bookingId}", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodDelete)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/bookings/b-9", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "b-9", svc.lastID)
		})
	}
}
