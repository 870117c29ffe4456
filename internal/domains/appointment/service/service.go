package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"
	"spa/config"
	"spa/infras/otel"
	"spa/infras/square"
	"spa/internal/domains/appointment/model"
	"spa/internal/domains/appointment/model/dto"
	roomModel "spa/internal/domains/room/model"
	"spa/shared"
	"spa/shared/cache"
	"spa/shared/constant"
	"spa/shared/failure"
	"spa/shared/timezone"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetDay         = "appointment:day"
	cacheGetServiceName = "appointment:service"

	serviceSeparator  = ", "
	customerIDPrefix  = 8
	customerLabelHead = "Customer "
)

type Appointment interface {
	GetDay(ctx context.Context, date string, refresh bool) (dto.DayAppointments, error)
	InvalidateDay(ctx context.Context, date string)
	ProviderStatus(ctx context.Context) dto.ProviderStatusResponse
}

type serviceImpl struct {
	provider square.Client
	cache    cache.RedisCache
	cfg      *config.Config
	otel     otel.Otel
	filter   model.TherapistFilter
}

func New(provider square.Client, cache cache.RedisCache, cfg *config.Config, otel otel.Otel) Appointment {
	return &serviceImpl{
		provider: provider,
		cache:    cache,
		cfg:      cfg,
		otel:     otel,
		filter:   model.NewTherapistFilter(cfg.Provider.AllowedTherapists),
	}
}

// GetDay returns the day's bookable appointments sorted by start then id, and the therapist roster.
func (s *serviceImpl) GetDay(ctx context.Context, date string, refresh bool) (res dto.DayAppointments, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetDay")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelDateAttributeKey, date)

	start, end, err := timezone.DayBounds(date)
	if err != nil {
		return res, failure.InvalidDateParam
	}

	if !s.provider.Configured() {
		return res, failure.ProviderNotConfigured
	}

	cacheKey := shared.BuildCacheKey(cacheGetDay, date)

	if !refresh {
		if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
			log.Info().Str("cacheKey", cacheKey).Msg("cache hit for appointments")

			return res, nil
		}
	}

	bookings, err := s.provider.ListBookings(ctx, start, end)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("failed to list bookings")

		return res, fmt.Errorf("failed to list bookings: %w", err)
	}

	members, err := s.provider.ListTeamMembers(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to list team members, therapist names fall back to ids")

		members = nil
	}

	resolver := newResolver(s, members)

	res.Date = date
	res.Appointments = []model.Appointment{}

	for _, booking := range bookings {
		appointment, ok := s.normalize(ctx, resolver, booking)
		if !ok {
			continue
		}

		if !s.filter.Allows(appointment.Therapist) {
			log.Debug().Str("bookingID", booking.ID).Str("therapist", appointment.Therapist).Msg("therapist not in allow-list, booking skipped")

			continue
		}

		res.Appointments = append(res.Appointments, appointment)
	}

	model.SortAppointments(res.Appointments)
	res.Therapists = s.therapists(res.Appointments, members)

	log.Info().
		Str("date", date).
		Int("bookings", len(bookings)).
		Int("appointments", len(res.Appointments)).
		Msg("normalised provider bookings")

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save appointments to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) InvalidateDay(ctx context.Context, date string) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".InvalidateDay")
	defer scope.End()

	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetDay, date)); err != nil {
		log.Error().Err(err).Str("date", date).Msg("failed to delete appointments from cache")
	}
}

func (s *serviceImpl) ProviderStatus(ctx context.Context) (res dto.ProviderStatusResponse) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ProviderStatus")
	defer scope.End()

	res.Environment = s.provider.Environment()
	res.ProviderConfigured = s.provider.Configured()

	if !res.ProviderConfigured {
		res.Message = "Booking provider credentials are not configured"

		return res
	}

	if err := s.provider.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("booking provider health check failed")

		res.Message = err.Error()

		return res
	}

	res.ProviderHealthy = true
	res.Message = "Connected to booking provider"

	return res
}

func (s *serviceImpl) normalize(ctx context.Context, resolver *resolver, booking square.Booking) (res model.Appointment, ok bool) {
	if model.Dropped(booking.Status) {
		return res, false
	}

	if len(booking.AppointmentSegments) == 0 || booking.StartAt == constant.Empty {
		log.Debug().Str("bookingID", booking.ID).Msg("booking without segments or start time skipped")

		return res, false
	}

	start, err := time.Parse(time.RFC3339, booking.StartAt)
	if err != nil {
		log.Warn().Err(err).Str("bookingID", booking.ID).Msg("booking with unparsable start time skipped")

		return res, false
	}

	minutes := 0
	for _, segment := range booking.AppointmentSegments {
		minutes += segment.DurationMinutes
	}

	if minutes <= 0 {
		log.Warn().Str("bookingID", booking.ID).Int("minutes", minutes).Msg("booking with non-positive duration rejected")

		return res, false
	}

	res.ID = booking.ID
	res.Start = timezone.ToAppTime(start)
	res.End = res.Start.Add(time.Duration(minutes) * time.Minute)
	res.Therapist = resolver.therapist(booking.AppointmentSegments[0].TeamMemberID)
	res.Customer = resolver.customer(ctx, booking)
	res.Service = resolver.services(ctx, booking.AppointmentSegments)
	res.Kind = s.kind(booking.AppointmentSegments, res.Service)

	return res, true
}

func (s *serviceImpl) kind(segments []square.Segment, service string) roomModel.Kind {
	if id := s.cfg.Provider.CoupleServiceID; id != constant.Empty {
		for _, segment := range segments {
			if segment.ServiceVariationID == id {
				return roomModel.KindCouple
			}
		}
	}

	pattern := strings.ToLower(strings.TrimSpace(s.cfg.Provider.CouplePattern))
	if pattern != constant.Empty && strings.Contains(strings.ToLower(service), pattern) {
		return roomModel.KindCouple
	}

	return roomModel.KindSingle
}

// therapists merges booking and team member names, applies the allow-list and always lists allowed names.
func (s *serviceImpl) therapists(appointments []model.Appointment, members []square.TeamMember) []string {
	seen := map[string]bool{}
	res := []string{}

	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == constant.Empty || seen[model.NormalizeName(name)] {
			return
		}

		seen[model.NormalizeName(name)] = true
		res = append(res, name)
	}

	for _, appointment := range appointments {
		if appointment.Therapist != model.UnknownTherapist {
			add(appointment.Therapist)
		}
	}

	for _, member := range members {
		if s.filter.Allows(member.Name()) {
			add(member.Name())
		}
	}

	if s.filter.Enabled() {
		for _, name := range s.filter.Names() {
			matched := slices.ContainsFunc(res, func(existing string) bool {
				return model.NewTherapistFilter([]string{name}).Allows(existing)
			})

			if !matched {
				add(name)
			}
		}
	}

	slices.Sort(res)

	return res
}

// resolver memoises provider lookups for one GetDay call. Service names are also cached in Redis.
type resolver struct {
	svc       *serviceImpl
	members   map[string]string
	customers map[string]string
	catalog   map[string]string
}

func newResolver(svc *serviceImpl, members []square.TeamMember) *resolver {
	r := &resolver{
		svc:       svc,
		members:   map[string]string{},
		customers: map[string]string{},
		catalog:   map[string]string{},
	}

	for _, member := range members {
		r.members[member.ID] = member.Name()
	}

	return r
}

func (r *resolver) therapist(teamMemberID string) string {
	if teamMemberID == constant.Empty {
		return model.UnknownTherapist
	}

	if name, ok := r.members[teamMemberID]; ok {
		return name
	}

	return teamMemberID
}

func (r *resolver) customer(ctx context.Context, booking square.Booking) string {
	id := booking.CustomerID

	if id != constant.Empty {
		name, ok := r.customers[id]
		if !ok {
			customer, err := r.svc.provider.RetrieveCustomer(ctx, id)
			if err != nil {
				log.Warn().Err(err).Str("customerID", id).Msg("failed to retrieve customer")
			}

			name = customer.DisplayName()
			r.customers[id] = name
		}

		if name != constant.Empty {
			return name
		}
	}

	if note := strings.TrimSpace(booking.CustomerNote); note != constant.Empty {
		return note
	}

	if id != constant.Empty {
		return customerLabelHead + id[:min(len(id), customerIDPrefix)]
	}

	return model.UnknownCustomer
}

func (r *resolver) services(ctx context.Context, segments []square.Segment) string {
	names := []string{}

	for _, segment := range segments {
		if segment.ServiceVariationID == constant.Empty {
			continue
		}

		if name := r.service(ctx, segment.ServiceVariationID); name != constant.Empty {
			names = append(names, name)
		}
	}

	if len(names) == 0 {
		return model.UnknownService
	}

	return strings.Join(names, serviceSeparator)
}

func (r *resolver) service(ctx context.Context, variationID string) string {
	if name, ok := r.catalog[variationID]; ok {
		return name
	}

	cacheKey := shared.BuildCacheKey(cacheGetServiceName, variationID)

	var name string
	if err := r.svc.cache.Get(ctx, cacheKey, &name); err == nil {
		r.catalog[variationID] = name

		return name
	}

	object, err := r.svc.provider.RetrieveCatalogObject(ctx, variationID)
	if err != nil {
		log.Warn().Err(err).Str("serviceVariationID", variationID).Msg("failed to retrieve catalog object")
		r.catalog[variationID] = constant.Empty

		return constant.Empty
	}

	name = object.ServiceName()
	r.catalog[variationID] = name

	if name != constant.Empty {
		go func() {
			c := context.WithoutCancel(ctx)

			if err := r.svc.cache.Save(c, cacheKey, name, r.svc.cfg.Cache.TTL); err != nil {
				log.Error().Err(err).Msg("failed to save service name to cache")
			}
		}()
	}

	return name
}
