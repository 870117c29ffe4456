package health

import (
	"net/http"
	"spa/config"
	"spa/infras/otel"
	"spa/internal/domains/appointment/service"
	"spa/shared/constant"
	"spa/transport/http/response"
	"spa/transport/http/state"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	appointments service.Appointment
	state        *state.State
	cfg          *config.Config
	otel         otel.Otel
}

func New(appointments service.Appointment, state *state.State, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		appointments: appointments,
		state:        state,
		cfg:          cfg,
		otel:         otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
	router.Get("/status", handler.Status)
}

// Health reports whether the server accepts traffic.
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} response.Health
// @Failure 503 {object} response.Message
// @Router /v1/health [get]
func (handler *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	switch handler.state.Get() {
	case state.ServerStateReady:
		response.WithHealth(w, handler.cfg.Server.Env)
	case state.ServerStateInGracePeriod, state.ServerStateInCleanupPeriod:
		response.WithPreparingShutdown(w)
	default:
		response.WithUnhealthy(w)
	}
}

// Status reports the booking provider connection.
// @Summary Provider status
// @Tags Health
// @Produce json
// @Success 200 {object} dto.ProviderStatusResponse
// @Router /v1/status [get]
func (handler *Handler) Status(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Status")
	defer scope.End()

	status := handler.appointments.ProviderStatus(ctx)
	scope.SetAttribute("provider.healthy", status.ProviderHealthy)

	response.WithJSON(w, http.StatusOK, status)
}
