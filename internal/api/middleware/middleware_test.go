package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoachingCalendar/pkg/metrics"
)

type recordingLogger struct {
	infos, warns int
}

func (l *recordingLogger) Info(string, ...interface{})  { l.infos++ }
func (l *recordingLogger) Warn(string, ...interface{})  { l.warns++ }
func (l *recordingLogger) Error(string, ...interface{}) {}

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusCreated)
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := metrics.NewWithRegistry("test", prometheus.NewRegistry())
	router := mux.NewRouter()
	router.Use(MetricsMiddleware(m))
	router.HandleFunc("/api/v1/bookings/{bookingId}", okHandler).Methods(http.MethodGet)

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+id, nil))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(
		m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/bookings/{bookingId}", "201")))
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "req-42", seen)
	assert.Equal(t, "req-42", rec.Header().Get(RequestIDHeader))
}

func TestAccessLog_KeepsFlusher(t *testing.T) {
	logger := &recordingLogger{}
	var flushable bool
	h := AccessLog(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, flushable = w.(http.Flusher)
		w.(http.Flusher).Flush()
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings/stream", nil))

	assert.True(t, flushable)
	assert.True(t, rec.Flushed)
	assert.Equal(t, 1, logger.infos)
}

func TestMemoryLimiter(t *testing.T) {
	l := NewMemoryLimiter(1, 2)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, _ := l.Allow(ctx, "10.0.0.1")
	assert.False(t, ok)

	// Другой клиент считается отдельно
	ok, _ = l.Allow(ctx, "10.0.0.2")
	assert.True(t, ok)
}

type stubLimiter struct {
	allowed bool
	err     error
	keys    []string
}

func (s *stubLimiter) Allow(_ context.Context, key string) (bool, error) {
	s.keys = append(s.keys, key)
	return s.allowed, s.err
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name       string
		limiter    *stubLimiter
		wantStatus int
		wantWarns  int
	}{
		{"allowed", &stubLimiter{allowed: true}, http.StatusCreated, 0},
		{"rejected", &stubLimiter{allowed: false}, http.StatusTooManyRequests, 1},
		{"limiter down fails open", &stubLimiter{err: errors.New("redis: connection refused")}, http.StatusCreated, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := metrics.NewWithRegistry("test", prometheus.NewRegistry())
			logger := &recordingLogger{}
			router := mux.NewRouter()
			router.Use(RateLimit(tt.limiter, m, logger))
			router.HandleFunc("/api/v1/bookings", okHandler).Methods(http.MethodPost)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", nil)
			req.RemoteAddr = "192.0.2.10:51234"
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantWarns, logger.warns)
			assert.Equal(t, []string{"192.0.2.10"}, tt.limiter.keys)
			if tt.wantStatus == http.StatusTooManyRequests {
				assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRateLimited.WithLabelValues("/api/v1/bookings")))
			}
		})
	}
}

func TestClientKey(t *testing.T) {
	tests := []struct {
		name       string
		forwarded  string
		remoteAddr string
		want       string
	}{
		{"remote addr", "", "192.0.2.1:1234", "192.0.2.1"},
		{"forwarded chain", "203.0.113.5, 10.0.0.1", "10.0.0.1:80", "203.0.113.5"},
		{"no port", "", "192.0.2.7", "192.0.2.7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			assert.Equal(t, tt.want, clientKey(r))
		})
	}
}

// fakeScripter считает вызовы скрипта по ключу, как INCR
type fakeScripter struct {
	counts map[string]int64
	err    error
	ttl    interface{}
}

func (f *fakeScripter) run(ctx context.Context, keys []string, args ...interface{}) *redis.Cmd {
	cmd := redis.NewCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	f.counts[keys[0]]++
	if len(args) > 0 {
		f.ttl = args[0]
	}
	cmd.SetVal(f.counts[keys[0]])
	return cmd
}

func (f *fakeScripter) Eval(ctx context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return f.run(ctx, keys, args...)
}

func (f *fakeScripter) EvalSha(ctx context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return f.run(ctx, keys, args...)
}

func (f *fakeScripter) EvalRO(ctx context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return f.run(ctx, keys, args...)
}

func (f *fakeScripter) EvalShaRO(ctx context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return f.run(ctx, keys, args...)
}

func (f *fakeScripter) ScriptExists(ctx context.Context, _ ...string) *redis.BoolSliceCmd {
	return redis.NewBoolSliceCmd(ctx)
}

func (f *fakeScripter) ScriptLoad(ctx context.Context, _ string) *redis.StringCmd {
	return redis.NewStringCmd(ctx)
}

func TestRedisLimiter(t *testing.T) {
	rdb := &fakeScripter{counts: map[string]int64{}}
	l := NewRedisLimiter(rdb, 2, time.Minute, "bookings")
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "192.0.2.1")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := l.Allow(ctx, "192.0.2.1")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, int64(3), rdb.counts["bookings:192.0.2.1"])
	assert.Equal(t, int64(60000), rdb.ttl)
}

func TestRedisLimiter_Error(t *testing.T) {
	l := NewRedisLimiter(&fakeScripter{counts: map[string]int64{}, err: errors.New("connection refused")}, 2, time.Minute, "")

	_, err := l.Allow(context.Background(), "192.0.2.1")
	assert.Error(t, err)
}
