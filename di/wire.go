//go:build wireinject
// +build wireinject

package di

import (
	"rentpay/config"
	"rentpay/infras/jwt"
	"rentpay/infras/kafka"
	"rentpay/infras/listing"
	"rentpay/infras/otel"
	"rentpay/infras/postgres"
	"rentpay/infras/redis"
	"rentpay/infras/s3"
	"rentpay/infras/settlement"
	"rentpay/internal/events"
	"rentpay/permissions"
	"rentpay/shared/cache"
	"rentpay/shared/keylock"
	"rentpay/transport/http"
	"rentpay/transport/http/middleware"
	"rentpay/transport/http/router"

	"github.com/google/wire"

	bookingRepository "rentpay/internal/domains/booking/repository"
	bookingService "rentpay/internal/domains/booking/service"
	escrowRepository "rentpay/internal/domains/escrow/repository"
	escrowService "rentpay/internal/domains/escrow/service"
	reservationService "rentpay/internal/domains/reservation/service"
	transferRepository "rentpay/internal/domains/transfer/repository"
	transferService "rentpay/internal/domains/transfer/service"
	adminHandler "rentpay/internal/handlers/admin"
	bookingHandler "rentpay/internal/handlers/booking"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	settlement.New,
	listing.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	keylock.New,
	events.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var transferDomain = wire.NewSet(
	transferRepository.New,
	transferService.NewPoller,
	transferService.New,
)

var escrowDomain = wire.NewSet(
	escrowRepository.New,
	escrowService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	transferDomain,
	escrowDomain,
	reservationService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	adminHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
