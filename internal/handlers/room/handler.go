package room

import (
	"net/http"
	"spa/infras/otel"
	"spa/internal/domains/room/service"
	"spa/shared/constant"
	"spa/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/all", handler.GetAllRooms)
	})
}

// GetRooms returns the priority ladder for a booking type.
// @Summary Get the room ladder
// @Description Rooms in the order the engine tries them for the given booking type.
// @Tags Room
// @Produce json
// @Param type query string false "single (default) or couple"
// @Success 200 {object} dto.GetRoomsResponse
// @Failure 400 {object} response.Error
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	rooms, err := handler.service.GetLadder(ctx, r.URL.Query().Get(constant.RequestParamType))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room ladder")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetAllRooms lists every room the engine knows about.
// @Summary Get all rooms
// @Tags Room
// @Produce json
// @Success 200 {object} dto.GetRoomsResponse
// @Router /v1/rooms/all [get]
func (handler *Handler) GetAllRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAllRooms")
	defer scope.End()

	rooms, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}
