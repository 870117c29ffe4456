//go:build wireinject
// +build wireinject

package di

import (
	"spa/config"
	"spa/infras/jwt"
	"spa/infras/kafka"
	"spa/infras/otel"
	"spa/infras/postgres"
	"spa/infras/redis"
	"spa/infras/square"
	"spa/internal/scheduler"
	"spa/shared/cache"
	"spa/shared/locker"
	"spa/transport/http"
	"spa/transport/http/middleware"
	"spa/transport/http/router"
	"spa/transport/http/state"

	appointmentService "spa/internal/domains/appointment/service"
	assignmentEngine "spa/internal/domains/assignment/engine"
	assignmentRepository "spa/internal/domains/assignment/repository"
	assignmentService "spa/internal/domains/assignment/service"
	roomService "spa/internal/domains/room/service"

	assignmentHandler "spa/internal/handlers/assignment"
	healthHandler "spa/internal/handlers/health"
	roomHandler "spa/internal/handlers/room"
	webhookHandler "spa/internal/handlers/webhook"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(postgres.Transactor), new(*postgres.Connection)),
	otel.New,
	redis.New,
	kafka.New,
	square.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	locker.New,
)

var roomDomain = wire.NewSet(
	roomService.New,
)

var appointmentDomain = wire.NewSet(
	appointmentService.New,
)

var assignmentDomain = wire.NewSet(
	assignmentRepository.New,
	wire.Bind(new(assignmentEngine.Store), new(assignmentRepository.Assignment)),
	assignmentEngine.New,
	assignmentService.New,
)

var domains = wire.NewSet(
	roomDomain,
	appointmentDomain,
	assignmentDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	roomHandler.New,
	assignmentHandler.New,
	webhookHandler.New,
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
		state.New,
		scheduler.New,
		http.New,
	)

	return &http.HTTP{}
}
