// Package listing reads property snapshots and availability from the listing service.
package listing

//go:generate go run go.uber.org/mock/mockgen -source=./listing.go -destination=./mocks/listing_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/rs/zerolog/log"

	"rentpay/config"
	"rentpay/infras/otel"
	"rentpay/shared"
	"rentpay/shared/cache"
	"rentpay/shared/constant"
	"rentpay/shared/failure"
)

const (
	cacheGetProperty = "listing:property"

	maxTries = 3
)

// Property is the part of a listing that booking and escrow depend on.
// Amounts are in minor units.
type Property struct {
	ID                 string `json:"id"`
	HostID             string `json:"host_id"`
	HostAddress        string `json:"host_address"`
	PricePerNight      int64  `json:"price_per_night"`
	CleaningFee        int64  `json:"cleaning_fee"`
	PetFee             int64  `json:"pet_fee"`
	PlatformFeeBps     int64  `json:"platform_fee_basis_points"`
	WeeklyDiscountBps  int64  `json:"weekly_discount_basis_points"`
	MonthlyDiscountBps int64  `json:"monthly_discount_basis_points"`
	MinStayNights      int    `json:"min_stay_nights"`
	MaxStayNights      int    `json:"max_stay_nights"`
	BookingAdvanceDays int    `json:"booking_advance_days"`
	MaxGuests          int    `json:"max_guests"`
	PetsAllowed        bool   `json:"pets_allowed"`
	CancellationPolicy string `json:"cancellation_policy"`
	Active             bool   `json:"active"`
}

type availabilityResponse struct {
	Available bool `json:"available"`
}

type Client interface {
	GetProperty(ctx context.Context, propertyID string) (Property, error)
	CheckAvailability(ctx context.Context, propertyID string, checkIn, checkOut time.Time) (bool, error)
}

type clientImpl struct {
	cfg   *config.Config
	http  *http.Client
	cache cache.RedisCache
	otel  otel.Otel
}

func New(cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Client {
	return &clientImpl{
		cfg:   cfg,
		http:  &http.Client{Timeout: cfg.External.Listing.Timeout},
		cache: cache,
		otel:  otel,
	}
}

func (c *clientImpl) GetProperty(ctx context.Context, propertyID string) (res Property, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".listing.GetProperty")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKey(cacheGetProperty, propertyID)

	if err = c.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for property")

		return res, nil
	}

	endpoint := fmt.Sprintf("%s/v1/properties/%s", strings.TrimRight(c.cfg.External.Listing.BaseURL, "/"), url.PathEscape(propertyID))

	if err = c.getJSON(ctx, endpoint, &res); err != nil {
		return res, err
	}

	go func() {
		ctx := context.WithoutCancel(ctx)

		if err := c.cache.Save(ctx, cacheKey, res, c.cfg.External.Listing.CacheTTLSecond); err != nil {
			log.Error().Err(err).Msg("failed to save property to cache")
		}
	}()

	return res, nil
}

// CheckAvailability is never cached: a stale "available" would let two stays overlap.
func (c *clientImpl) CheckAvailability(ctx context.Context, propertyID string, checkIn, checkOut time.Time) (available bool, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".listing.CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(&err)

	query := url.Values{}
	query.Set("check_in", checkIn.Format(constant.DayFormat))
	query.Set("check_out", checkOut.Format(constant.DayFormat))

	endpoint := fmt.Sprintf("%s/v1/properties/%s/availability?%s",
		strings.TrimRight(c.cfg.External.Listing.BaseURL, "/"), url.PathEscape(propertyID), query.Encode())

	var res availabilityResponse
	if err = c.getJSON(ctx, endpoint, &res); err != nil {
		return false, err
	}

	return res.Available, nil
}

// getJSON retries transport errors and 5xx responses; 4xx responses are final.
func (c *clientImpl) getJSON(ctx context.Context, endpoint string, out any) error {
	body, err := backoff.Retry(ctx, func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, backoff.Permanent(fmt.Errorf("failed to create listing request: %w", err))
		}

		req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

		if c.cfg.App.APIKey != "" {
			req.Header.Set(constant.RequestHeaderAPIKey, c.cfg.App.APIKey)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to call listing service: %w", err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read listing response: %w", err)
		}

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return nil, backoff.Permanent(failure.NotFound("property not found"))
		case resp.StatusCode >= http.StatusInternalServerError:
			return nil, fmt.Errorf("listing service returned %d", resp.StatusCode)
		case resp.StatusCode != http.StatusOK:
			return nil, backoff.Permanent(fmt.Errorf("listing service returned %d: %s", resp.StatusCode, body))
		}

		return body, nil
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(maxTries))
	if err != nil {
		var fail *failure.Failure
		if !errors.As(err, &fail) {
			log.Error().Err(err).Str("endpoint", endpoint).Msg("listing request failed")
		}

		return err
	}

	if err = json.Unmarshal(body, out); err != nil {
		log.Error().Err(err).Str("endpoint", endpoint).Msg("failed to decode listing response")

		return fmt.Errorf("failed to decode listing response: %w", err)
	}

	return nil
}
