package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"spa/config"
	"spa/infras/otel"
	"spa/infras/square"
	"spa/internal/domains/assignment/model/dto"
	"spa/internal/domains/assignment/service"
	"spa/shared/constant"
	"spa/shared/failure"
	"spa/shared/timezone"
	"spa/transport/http/response"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const maxPayloadBytes = 1 << 20

type Handler struct {
	assignments service.Assignment
	cfg         *config.Config
	otel        otel.Otel
}

func New(assignments service.Assignment, cfg *config.Config, otel otel.Otel) Handler {
	if cfg.Provider.WebhookSecret == constant.Empty {
		log.Warn().Msg("PROVIDER_WEBHOOK_SECRET is not set, webhook signatures are not verified")
	}

	return Handler{
		assignments: assignments,
		cfg:         cfg,
		otel:        otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/webhooks/provider", handler.Provider)
}

// Provider reassigns the days touched by a booking notification.
// @Summary Booking provider webhook
// @Description Verifies X-Square-Signature, then recomputes the booking's day and, after a reschedule, the day it left.
// @Tags Webhook
// @Accept json
// @Produce json
// @Param X-Square-Signature header string false "Hex HMAC-SHA256 of the body"
// @Success 200 {object} dto.RecomputeResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/webhooks/provider [post]
func (handler *Handler) Provider(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ProviderWebhook")
	defer scope.End()

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPayloadBytes))
	if err != nil {
		err = failure.BadRequestFromString("unreadable webhook payload")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	secret := handler.cfg.Provider.WebhookSecret
	if secret != constant.Empty && !square.VerifySignature(secret, payload, r.Header.Get(constant.RequestHeaderProviderSignature)) {
		scope.TraceError(failure.InvalidSignature)
		log.Warn().Str("remoteAddr", r.RemoteAddr).Msg("Rejected webhook with invalid signature")

		response.WithError(w, failure.InvalidSignature)

		return
	}

	event := square.WebhookEvent{}
	if err = json.Unmarshal(payload, &event); err != nil {
		err = failure.BadRequestFromString("malformed webhook payload")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	scope.SetAttributes(map[string]any{
		"webhook.type":     event.Type,
		"webhook.event_id": event.EventID,
	})

	if !event.IsBooking() {
		log.Debug().Str("type", event.Type).Msg("Ignored webhook event")

		response.WithMessage(w, http.StatusOK, "event ignored")

		return
	}

	booking := event.Data.Object.Booking

	startAt, err := time.Parse(time.RFC3339, booking.StartAt)
	if booking.ID == constant.Empty || err != nil {
		err = failure.BadRequestFromString("booking event without id or start_at")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res := dto.RecomputeResponse{
		BookingID: booking.ID,
		Dates:     handler.dates(ctx, booking.ID, timezone.Format(startAt, constant.DayFormat)),
	}

	for _, date := range res.Dates {
		if err = handler.assignments.Recompute(ctx, date); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("bookingID", booking.ID).Str("date", date).Msg("failed to recompute day from webhook")

			response.WithError(w, err)

			return
		}
	}

	log.Info().Str("type", event.Type).Str("bookingID", booking.ID).Strs("dates", res.Dates).Msg("Processed booking webhook")

	response.WithJSON(w, http.StatusOK, res)
}

// dates adds the day the booking was assigned on before, when a reschedule moved it.
func (handler *Handler) dates(ctx context.Context, bookingID, date string) []string {
	dates := []string{date}

	previous, err := handler.assignments.Get(ctx, bookingID)

	switch {
	case err == nil && previous.Date != constant.Empty && previous.Date != date:
		dates = append(dates, previous.Date)
	case err != nil && failure.GetCode(err) != http.StatusNotFound:
		log.Warn().Err(err).Str("bookingID", bookingID).Msg("Previous assignment unavailable, recomputing the new day only")
	}

	return dates
}
