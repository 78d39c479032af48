package get_client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoachingCalendar/internal/service/clients"
	"github.com/m04kA/SMC-CoachingCalendar/internal/service/clients/models"
)

type fakeService struct {
	resp   *models.ClientResponse
	err    error
	lastID string
}

func (f *fakeService) GetByID(_ context.Context, id string) (*models.ClientResponse, error) {
	f.lastID = id
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *fakeService) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/clients/{clientId}", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/clients/3", nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{resp: &models.ClientResponse{ID: "3", Name: "Rahul Gupta", Phone: "+91 76543 21098"}}

	rec := serve(svc)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3", svc.lastID)
	var body models.ClientResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Rahul Gupta", body.Name)
}

func TestHandle_NotFound(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: clients.ErrClientNotFound}).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: errors.New("boom")}).Code)
}
