package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"spa/config"
	"spa/infras/kafka"
	"spa/infras/otel"
	"spa/infras/postgres"
	appointment "spa/internal/domains/appointment/service"
	"spa/internal/domains/assignment/engine"
	"spa/internal/domains/assignment/model/dto"
	"spa/internal/domains/assignment/repository"
	"spa/shared"
	"spa/shared/cache"
	"spa/shared/constant"
	gDto "spa/shared/dto"
	"spa/shared/failure"
	"spa/shared/locker"
	"spa/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	lockKeyDay          = "assignment:day"
	cacheGetAssignments = "assignment:gets"
)

type Assignment interface {
	Day(ctx context.Context, date string, refresh bool) (dto.DayResponse, error)
	Recompute(ctx context.Context, date string) error
	Pin(ctx context.Context, req dto.SetRoomRequest) (dto.DayResponse, error)
	Unpin(ctx context.Context, bookingID string) (dto.DayResponse, error)
	Get(ctx context.Context, bookingID string) (dto.AssignmentResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAssignmentsResponse, error)
}

type serviceImpl struct {
	repo         repository.Assignment
	engine       engine.Engine
	appointments appointment.Appointment
	tx           postgres.Transactor
	locker       locker.Locker
	cache        cache.RedisCache
	kafka        kafka.Client
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	repo repository.Assignment,
	engine engine.Engine,
	appointments appointment.Appointment,
	tx postgres.Transactor,
	locker locker.Locker,
	cache cache.RedisCache,
	kafka kafka.Client,
	cfg *config.Config,
	otel otel.Otel,
) Assignment {
	return &serviceImpl{
		repo:         repo,
		engine:       engine,
		appointments: appointments,
		tx:           tx,
		locker:       locker,
		cache:        cache,
		kafka:        kafka,
		cfg:          cfg,
		otel:         otel,
	}
}

// Day assigns rooms to the date's appointments and returns the board.
func (s *serviceImpl) Day(ctx context.Context, date string, refresh bool) (res dto.DayResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Day")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, _, err = timezone.DayBounds(date); err != nil {
		return res, failure.InvalidDateParam
	}

	day, err := s.appointments.GetDay(ctx, date, refresh)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("failed to get appointments")

		return res, fmt.Errorf("failed to get appointments: %w", err)
	}

	var results []engine.AssignedAppointment

	err = s.withinDay(ctx, date, func(ctx context.Context) (err error) {
		results, err = s.engine.AssignRooms(ctx, day.Appointments, date)

		return err //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("failed to assign rooms")

		return res, fmt.Errorf("failed to assign rooms: %w", err)
	}

	res.FromResults(date, day.Therapists, results)

	return res, nil
}

// Recompute refreshes the date's appointments from the provider and reassigns rooms.
func (s *serviceImpl) Recompute(ctx context.Context, date string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Recompute")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.Day(ctx, date, true); err != nil {
		return err
	}

	return nil
}

// Pin sets a manual room, drops the date's Auto layer and reassigns the day.
func (s *serviceImpl) Pin(ctx context.Context, req dto.SetRoomRequest) (res dto.DayResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Pin")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	operator := operatorFromContext(ctx)

	day, err := s.appointments.GetDay(ctx, req.Date, false)
	if err != nil {
		log.Error().Err(err).Str("date", req.Date).Msg("failed to get appointments")

		return res, fmt.Errorf("failed to get appointments: %w", err)
	}

	var results []engine.AssignedAppointment

	err = s.withinDay(ctx, req.Date, func(ctx context.Context) (err error) {
		if err = s.repo.SetManualAssignment(ctx, req.BookingID, req.Date, req.Room, operator); err != nil {
			return err //nolint:wrapcheck
		}

		if err = s.repo.DeleteAutoAssignments(ctx, req.Date); err != nil {
			return err //nolint:wrapcheck
		}

		results, err = s.engine.AssignRooms(ctx, day.Appointments, req.Date)

		return err //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Str("bookingID", req.BookingID).Msg("failed to pin room")

		return res, fmt.Errorf("failed to pin room: %w", err)
	}

	s.publish(ctx, dto.ActionPinned, req.BookingID, req.Date, req.Room.String(), operator)

	res.FromResults(req.Date, day.Therapists, results)

	return res, nil
}

// Unpin removes a manual room and reassigns the pin's date.
func (s *serviceImpl) Unpin(ctx context.Context, bookingID string) (res dto.DayResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Unpin")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	record, found, err := s.repo.GetAssignment(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get assignment")

		return res, fmt.Errorf("failed to get assignment: %w", err)
	}

	if !found {
		return res, failure.NotFound("assignment not found") //nolint:wrapcheck
	}

	if !record.Manual() {
		return res, failure.Conflict("assignment is not a manual pin") //nolint:wrapcheck
	}

	day, err := s.appointments.GetDay(ctx, record.Date, false)
	if err != nil {
		log.Error().Err(err).Str("date", record.Date).Msg("failed to get appointments")

		return res, fmt.Errorf("failed to get appointments: %w", err)
	}

	var results []engine.AssignedAppointment

	err = s.withinDay(ctx, record.Date, func(ctx context.Context) (err error) {
		if err = s.repo.DeleteAssignment(ctx, bookingID); err != nil {
			return err //nolint:wrapcheck
		}

		if err = s.repo.DeleteAutoAssignments(ctx, record.Date); err != nil {
			return err //nolint:wrapcheck
		}

		results, err = s.engine.AssignRooms(ctx, day.Appointments, record.Date)

		return err //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to unpin room")

		return res, fmt.Errorf("failed to unpin room: %w", err)
	}

	s.publish(ctx, dto.ActionUnpinned, bookingID, record.Date, record.Room.String(), operatorFromContext(ctx))

	res.FromResults(record.Date, day.Therapists, results)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, bookingID string) (res dto.AssignmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	record, found, err := s.repo.GetAssignment(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get assignment")

		return res, fmt.Errorf("failed to get assignment: %w", err)
	}

	if !found {
		return res, failure.NotFound("assignment not found") //nolint:wrapcheck
	}

	res.FromModel(record)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAssignmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	dto.NormalizeQuery(&req)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAssignments, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		scope.AddEvent("Assignments served from cache")

		return res, nil
	}

	if !errors.Is(err, cache.Nil) {
		log.Warn().Err(err).Str("key", cacheKey).Msg("failed to read assignments cache")
	}

	res = dto.GetAssignmentsResponse{}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count assignments")

		return res, fmt.Errorf("failed to count assignments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get assignments")

		return res, fmt.Errorf("failed to get assignments: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("failed to cache assignments")
	}

	return res, nil
}

// withinDay serialises work on one date and runs it in a single transaction. Cached listings are
// dropped once the transaction commits.
func (s *serviceImpl) withinDay(ctx context.Context, date string, fn func(ctx context.Context) error) error {
	err := s.locker.WithLock(ctx, shared.BuildCacheKey(lockKeyDay, date), func(ctx context.Context) error {
		return s.tx.WithinTransaction(ctx, fn) //nolint:wrapcheck
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAssignments)

	return nil
}

// publish is best effort: the change is already committed.
func (s *serviceImpl) publish(ctx context.Context, action, bookingID, date, room, operator string) {
	event := dto.ChangedEvent{
		ID:         uuid.NewString(),
		Action:     action,
		BookingID:  bookingID,
		Date:       date,
		Room:       room,
		Operator:   operator,
		OccurredAt: timezone.Format(timezone.Now(), constant.DateFormat),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topic, kafka.Message{Key: bookingID, Value: event}); err != nil {
			log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to publish assignment change")
		}
	}()
}

func operatorFromContext(ctx context.Context) string {
	if operator, ok := ctx.Value(constant.ContextKeyOperator).(string); ok && operator != constant.Empty {
		return operator
	}

	return constant.DefaultOperator
}
