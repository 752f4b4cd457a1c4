package listing_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"rentpay/config"
	"rentpay/infras/listing"
	"rentpay/infras/otel/mocks"
	cacheMocks "rentpay/shared/cache/mocks"
	"rentpay/shared/failure"
)

func newClient(t *testing.T, baseURL string, mockCache *cacheMocks.MockRedisCache) listing.Client {
	t.Helper()

	cfg := &config.Config{}
	cfg.External.Listing.BaseURL = baseURL
	cfg.External.Listing.Timeout = time.Second
	cfg.External.Listing.CacheTTLSecond = 60

	return listing.New(cfg, mockCache, mocks.NewOtel())
}

func TestClient_GetProperty(t *testing.T) {
	property := listing.Property{
		ID:                 "prop-1",
		HostID:             "host-1",
		HostAddress:        "0x00000000000000000000000000000000000000aa",
		PricePerNight:      10000,
		CleaningFee:        2000,
		CancellationPolicy: "moderate",
		MaxGuests:          4,
		Active:             true,
	}

	t.Run("fetches and caches on miss", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/properties/prop-1", r.URL.Path)
			_ = json.NewEncoder(w).Encode(property)
		}))
		defer server.Close()

		saved := make(chan struct{})

		mockCache.EXPECT().Get(gomock.Any(), "listing:property:prop-1", gomock.Any()).Return(errors.New("miss"))
		mockCache.EXPECT().Save(gomock.Any(), "listing:property:prop-1", property, 60).
			DoAndReturn(func(context.Context, string, any, int) error {
				close(saved)

				return nil
			})

		got, err := newClient(t, server.URL, mockCache).GetProperty(context.Background(), "prop-1")
		require.NoError(t, err)
		assert.Equal(t, property, got)

		select {
		case <-saved:
		case <-time.After(time.Second):
			t.Fatal("property was not cached")
		}
	})

	t.Run("served from cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		mockCache.EXPECT().Get(gomock.Any(), "listing:property:prop-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*listing.Property) = property

				return nil
			})

		got, err := newClient(t, "http://127.0.0.1:0", mockCache).GetProperty(context.Background(), "prop-1")
		require.NoError(t, err)
		assert.Equal(t, property, got)
	})

	t.Run("unknown property", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		var calls atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))

		_, err := newClient(t, server.URL, mockCache).GetProperty(context.Background(), "prop-1")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestClient_CheckAvailability(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}

		assert.Equal(t, "/v1/properties/prop-1/availability", r.URL.Path)
		assert.Equal(t, "2026-07-01", r.URL.Query().Get("check_in"))
		assert.Equal(t, "2026-07-04", r.URL.Query().Get("check_out"))

		_, _ = w.Write([]byte(`{"available":true}`))
	}))
	defer server.Close()

	ctrl := gomock.NewController(t)
	client := newClient(t, server.URL, cacheMocks.NewMockRedisCache(ctrl))

	checkIn := time.Date(2026, 7, 1, 15, 0, 0, 0, time.UTC)

	available, err := client.CheckAvailability(context.Background(), "prop-1", checkIn, checkIn.AddDate(0, 0, 3))
	require.NoError(t, err)
	assert.True(t, available)
	assert.Equal(t, int32(2), calls.Load())
}
