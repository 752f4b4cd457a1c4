package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"rentpay/config"
	otelMocks "rentpay/infras/otel/mocks"
	cacheMocks "rentpay/shared/cache/mocks"
	"rentpay/transport/http/middleware"
	"rentpay/transport/http/response"
)

func limitedRouter(t *testing.T, cfg *config.Config) (http.Handler, *cacheMocks.MockRedisCache) {
	t.Helper()

	redisCache := cacheMocks.NewMockRedisCache(gomock.NewController(t))
	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, redisCache)

	ok := func(writer http.ResponseWriter, _ *http.Request) {
		response.WithMessage(writer, http.StatusOK, "OK")
	}

	router := chi.NewRouter()
	router.Use(app.Tracing)
	router.Use(app.RateLimit())
	router.Get("/v1/bookings/{id}", ok)
	router.Post("/v1/bookings/{id}/payments", ok)

	return router, redisCache
}

func limiterConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 10
	cfg.App.RateLimiter.MaxWrites = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func request(method, path string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	req.Header.Set("User-Agent", "wallet/1.0")

	return req
}

func TestRateLimit_FirstRequest(t *testing.T) {
	router, redisCache := limitedRouter(t, limiterConfig())

	key := "limiter:read:203.0.113.9:wallet/1.0"
	redisCache.EXPECT().Incr(gomock.Any(), key, 60).Return(int64(1), nil)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request(http.MethodGet, "/v1/bookings/b-1"))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "10", recorder.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "9", recorder.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimit_WritesUseTheirOwnBucket(t *testing.T) {
	router, redisCache := limitedRouter(t, limiterConfig())

	key := "limiter:write:203.0.113.9:wallet/1.0"
	redisCache.EXPECT().Incr(gomock.Any(), key, 60).Return(int64(3), nil)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request(http.MethodPost, "/v1/bookings/b-1/payments"))

	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.Equal(t, "60", recorder.Header().Get("Retry-After"))
}

func TestRateLimit_LastAllowedWrite(t *testing.T) {
	router, redisCache := limitedRouter(t, limiterConfig())

	redisCache.EXPECT().Incr(gomock.Any(), "limiter:write:203.0.113.9:wallet/1.0", 60).Return(int64(2), nil)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request(http.MethodPost, "/v1/bookings/b-1/payments"))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "2", recorder.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", recorder.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimit_CacheOutageAllows(t *testing.T) {
	router, redisCache := limitedRouter(t, limiterConfig())

	redisCache.EXPECT().Incr(gomock.Any(), gomock.Any(), 60).Return(int64(0), errors.New("connection refused"))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request(http.MethodPost, "/v1/bookings/b-1/payments"))

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	cfg := limiterConfig()
	cfg.App.RateLimiter.Enable = false

	router, _ := limitedRouter(t, cfg)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request(http.MethodGet, "/v1/bookings/b-1"))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, recorder.Header().Get("X-RateLimit-Limit"))
}
