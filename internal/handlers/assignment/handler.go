package assignment

import (
	"net/http"
	"spa/infras/otel"
	"spa/internal/domains/assignment/model"
	"spa/internal/domains/assignment/model/dto"
	"spa/internal/domains/assignment/service"
	"spa/shared"
	"spa/shared/constant"
	gDto "spa/shared/dto"
	"spa/shared/failure"
	"spa/shared/validator"
	"spa/transport/http/middleware"
	"spa/transport/http/response"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Assignment
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Assignment, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/days/{date}", handler.GetDay)

	router.Route("/assignments", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAssignments)
		routerGroup.Get("/{id}", handler.GetAssignmentByID)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(handler.middleware.Authenticate)

			protected.Put("/", handler.SetRoom)
			protected.Delete("/{id}", handler.ClearRoom)
		})
	})
}

// GetDay assigns rooms to a day's appointments.
// @Summary Get the day board
// @Description Fetches the date's appointments, runs the room assignment and returns every event with its room.
// @Tags Assignment
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param refresh query boolean false "Bypass the appointment cache"
// @Success 200 {object} dto.DayResponse
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/days/{date} [get]
func (handler *Handler) GetDay(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDay")
	defer scope.End()

	date := chi.URLParam(r, constant.RequestParamDate)
	if err := validator.ValidateVar(date, "required,day"); err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.InvalidDateParam)

		return
	}

	refresh := shared.ConvertStringToBool(r.URL.Query().Get(constant.RequestParamRefresh), false)

	day, err := handler.service.Day(ctx, date, refresh)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("date", date).Msg("failed to get day")

		response.WithError(w, err)

		return
	}

	scope.SetAttribute(constant.OtelDateAttributeKey, date)
	scope.AddEvent("Day assigned successfully")

	response.WithJSON(w, http.StatusOK, day)
}

// SetRoom pins a booking to a room.
// @Summary Set a manual room
// @Description Pins the booking to the room, drops the date's automatic assignments and returns the recomputed day.
// @Tags Assignment
// @Accept json
// @Produce json
// @Param request body dto.SetRoomRequest true "Set Room Request"
// @Success 200 {object} dto.DayResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/assignments [put]
// @Security ApiKeyAuth
// @Security BearerAuth
func (handler *Handler) SetRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetRoom")
	defer scope.End()

	req := dto.SetRoomRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	day, err := handler.service.Pin(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingID", req.BookingID).Msg("failed to set room")

		response.WithError(w, err)

		return
	}

	operator, _ := ctx.Value(constant.ContextKeyOperator).(string)
	scope.AddEvent("Room " + req.Room.String() + " pinned by " + operator)

	response.WithJSON(w, http.StatusOK, day)
}

// ClearRoom removes a manual pin.
// @Summary Clear a manual room
// @Description Removes the booking's pin and returns the recomputed day.
// @Tags Assignment
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.DayResponse
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/assignments/{id} [delete]
// @Security ApiKeyAuth
// @Security BearerAuth
func (handler *Handler) ClearRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ClearRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	day, err := handler.service.Unpin(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingID", id).Msg("failed to clear room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Pin cleared")

	response.WithJSON(w, http.StatusOK, day)
}

// GetAssignments lists persisted assignments.
// @Summary Get assignments
// @Tags Assignment
// @Produce json
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Param date_from query string false "Earliest date (YYYY-MM-DD)"
// @Param date_to query string false "Latest date (YYYY-MM-DD)"
// @Param assigned_by query string false "auto or manual"
// @Param room query string false "Comma separated rooms"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Param sort_by query string false "Sort column"
// @Param sort_dir query string false "ASC or DESC"
// @Success 200 {object} dto.GetAssignmentsResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/assignments [get]
func (handler *Handler) GetAssignments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAssignments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()
	filter := dto.AssignmentFilter{
		Date:       query.Get(model.FieldDate),
		DateFrom:   query.Get(constant.RequestParamFrom),
		DateTo:     query.Get(constant.RequestParamTo),
		AssignedBy: query.Get(model.FieldAssignedBy),
	}

	for _, room := range strings.Split(query.Get(model.FieldRoom), ",") {
		if room = strings.TrimSpace(room); room != constant.Empty {
			filter.Rooms = append(filter.Rooms, room)
		}
	}

	if err := validator.ValidateStruct(&filter); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	assignments, err := handler.service.GetAll(ctx, queryParams, filter.ToFilterGroup())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get assignments")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, assignments)
}

// GetAssignmentByID returns the persisted assignment of a booking.
// @Summary Get an assignment
// @Tags Assignment
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.AssignmentResponse
// @Failure 404 {object} response.Error
// @Router /v1/assignments/{id} [get]
func (handler *Handler) GetAssignmentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAssignmentByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	assignment, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingID", id).Msg("failed to get assignment")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, assignment)
}
