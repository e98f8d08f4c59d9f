//go:build wireinject
// +build wireinject

package di

import (
	"balai/config"
	"balai/infras/jwt"
	"balai/infras/kafka"
	"balai/infras/otel"
	"balai/infras/postgres"
	"balai/infras/redis"
	"balai/infras/s3"
	"balai/internal/events"
	"balai/shared/cache"
	"balai/transport/http"
	"balai/transport/http/middleware"
	"balai/transport/http/router"

	authService "balai/internal/domains/auth/service"
	catalogRepository "balai/internal/domains/catalog/repository"
	catalogService "balai/internal/domains/catalog/service"
	guestRepository "balai/internal/domains/guest/repository"
	guestService "balai/internal/domains/guest/service"
	invoiceRepository "balai/internal/domains/invoice/repository"
	invoiceService "balai/internal/domains/invoice/service"
	reportRepository "balai/internal/domains/report/repository"
	reportService "balai/internal/domains/report/service"
	reservationRepository "balai/internal/domains/reservation/repository"
	reservationService "balai/internal/domains/reservation/service"
	roomRepository "balai/internal/domains/room/repository"
	roomService "balai/internal/domains/room/service"
	roomTypeRepository "balai/internal/domains/roomtype/repository"
	roomTypeService "balai/internal/domains/roomtype/service"
	staffRepository "balai/internal/domains/staff/repository"
	staffService "balai/internal/domains/staff/service"
	stayRepository "balai/internal/domains/stay/repository"
	stayService "balai/internal/domains/stay/service"

	authHandler "balai/internal/handlers/auth"
	catalogHandler "balai/internal/handlers/catalog"
	guestHandler "balai/internal/handlers/guest"
	invoiceHandler "balai/internal/handlers/invoice"
	reportHandler "balai/internal/handlers/report"
	reservationHandler "balai/internal/handlers/reservation"
	roomHandler "balai/internal/handlers/room"
	roomTypeHandler "balai/internal/handlers/roomtype"
	staffHandler "balai/internal/handlers/staff"
	stayHandler "balai/internal/handlers/stay"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.ProvideApp,
	middleware.ProvideAuth,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	events.NewPublisher,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var roomTypeDomain = wire.NewSet(
	roomTypeRepository.New,
	roomTypeService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var stayDomain = wire.NewSet(
	stayRepository.New,
	stayService.New,
)

var invoiceDomain = wire.NewSet(
	invoiceRepository.New,
	invoiceService.New,
)

var staffDomain = wire.NewSet(
	staffRepository.New,
	staffService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var reportDomain = wire.NewSet(
	reportRepository.New,
	reportService.New,
)

var domains = wire.NewSet(
	guestDomain,
	roomTypeDomain,
	roomDomain,
	catalogDomain,
	reservationDomain,
	stayDomain,
	invoiceDomain,
	staffDomain,
	authDomain,
	reportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	guestHandler.New,
	roomTypeHandler.New,
	roomHandler.New,
	catalogHandler.New,
	reservationHandler.New,
	stayHandler.New,
	invoiceHandler.New,
	staffHandler.New,
	reportHandler.New,
	router.ProvideRouter,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.ProvideHTTP,
	)

	return &http.HTTP{}
}
