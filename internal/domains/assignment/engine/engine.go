package engine

//go:generate go run go.uber.org/mock/mockgen -source=./engine.go -destination=../mocks/engine_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"
	"spa/infras/otel"
	apModel "spa/internal/domains/appointment/model"
	"spa/internal/domains/assignment/model"
	roomModel "spa/internal/domains/room/model"
	"spa/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
)

// Store is the persistence the engine reads pins from and writes the Auto layer to.
type Store interface {
	GetManualAssignments(ctx context.Context, date string) (map[string]model.RoomAssignment, error)
	GetAutoAssignments(ctx context.Context, date string) ([]model.RoomAssignment, error)
	GetAssignment(ctx context.Context, bookingID string) (model.RoomAssignment, bool, error)
	UpsertAutoAssignment(ctx context.Context, bookingID, date string, room roomModel.ID, reason string) error
	DeleteAssignment(ctx context.Context, bookingID string) error
}

// AssignedAppointment is an appointment annotated with its room decision.
type AssignedAppointment struct {
	apModel.Appointment
	Room       roomModel.ID
	Reason     string
	AssignedBy model.AssignedBy

	demoted     bool
	releasedPin bool
	invalidPin  bool
}

func (a *AssignedAppointment) Manual() bool {
	return a.AssignedBy == model.AssignedByManual
}

type Engine interface {
	AssignRooms(ctx context.Context, appointments []apModel.Appointment, date string) ([]AssignedAppointment, error)
}

type engineImpl struct {
	store Store
	otel  otel.Otel
}

func New(store Store, otel otel.Otel) Engine {
	return &engineImpl{
		store: store,
		otel:  otel,
	}
}

// AssignRooms applies the date's manual pins, fills the rest greedily by priority ladder, resolves overlaps
// and brings the persisted Auto layer in line with the outcome. Callers serialise calls per date and run
// each call inside one transaction.
func (e *engineImpl) AssignRooms(ctx context.Context, appointments []apModel.Appointment, date string) (res []AssignedAppointment, err error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelEngineScopeName, constant.OtelEngineScopeName+".AssignRooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelDateAttributeKey, date)

	sorted := slices.Clone(appointments)
	apModel.SortAppointments(sorted)

	pins, err := e.store.GetManualAssignments(ctx, date)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("failed to load manual assignments")

		return nil, fmt.Errorf("failed to load manual assignments: %w", err)
	}

	res = make([]AssignedAppointment, len(sorted))
	tracker := NewTracker()

	for i, appointment := range sorted {
		if !appointment.Kind.Valid() {
			log.Warn().Str("bookingID", appointment.ID).Str("kind", string(appointment.Kind)).Msg("unknown appointment kind, treated as single")

			appointment.Kind = roomModel.KindSingle
		}

		res[i] = AssignedAppointment{Appointment: appointment, Room: roomModel.Unassigned, AssignedBy: model.AssignedByAuto}
	}

	applyPins(res, pins, tracker)
	fill(res, tracker)
	resolveConflicts(res)

	if err = e.persist(ctx, res, date); err != nil {
		return nil, err
	}

	return res, nil
}

// applyPins marks every pinned room busy before any automatic decision is made.
func applyPins(res []AssignedAppointment, pins map[string]model.RoomAssignment, tracker *Tracker) {
	for i := range res {
		pin, ok := pins[res[i].ID]
		if !ok {
			continue
		}

		if !pin.Room.Valid() {
			log.Warn().Str("bookingID", pin.BookingID).Str("room", pin.Room.String()).Msg("manual assignment with unknown room replaced by an auto assignment")

			res[i].invalidPin = true

			continue
		}

		res[i].Room = pin.Room
		res[i].AssignedBy = model.AssignedByManual

		if pin.Room == roomModel.Unassigned {
			res[i].Reason = ReasonManualUnassigned
			if pin.Reason.Valid && pin.Reason.String != constant.Empty {
				res[i].Reason = pin.Reason.String
			}

			continue
		}

		tracker.MarkBusy(pin.Room, res[i].End)
	}
}

// fill walks unpinned appointments in start order and takes the first free room of the ladder.
func fill(res []AssignedAppointment, tracker *Tracker) {
	for i := range res {
		if res[i].Manual() {
			continue
		}

		room := firstFree(res[i].Kind, res[i].Start, tracker)
		if room == roomModel.Unassigned {
			res[i].Reason = capacityReason(res[i].Kind, tracker)

			continue
		}

		res[i].Room = room
		tracker.MarkBusy(room, res[i].End)
	}
}

func firstFree(kind roomModel.Kind, at time.Time, tracker *Tracker) roomModel.ID {
	for _, room := range roomModel.Priority(kind) {
		if room == roomModel.Merged02D {
			if tracker.CanMergeFree(at) {
				return room
			}

			continue
		}

		if tracker.IsFree(room, at) {
			return room
		}
	}

	return roomModel.Unassigned
}

// persist writes the Auto layer. Unchanged records are left alone so a repeated call writes nothing.
func (e *engineImpl) persist(ctx context.Context, res []AssignedAppointment, date string) error {
	existing, err := e.store.GetAutoAssignments(ctx, date)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("failed to load auto assignments")

		return fmt.Errorf("failed to load auto assignments: %w", err)
	}

	autos := make(map[string]model.RoomAssignment, len(existing))
	for _, record := range existing {
		autos[record.BookingID] = record
	}

	handled := make(map[string]bool, len(res))

	for i := range res {
		assigned := &res[i]
		handled[assigned.ID] = true

		_, hasAuto := autos[assigned.ID]

		if assigned.demoted {
			if !assigned.releasedPin && !hasAuto {
				continue
			}

			if err := e.store.DeleteAssignment(ctx, assigned.ID); err != nil {
				return fmt.Errorf("failed to delete demoted assignment: %w", err)
			}

			continue
		}

		if assigned.Manual() {
			continue
		}

		if record := autos[assigned.ID]; hasAuto && record.Room == assigned.Room && record.Reason.String == assigned.Reason {
			continue
		}

		if !hasAuto && !assigned.invalidPin {
			record, found, err := e.store.GetAssignment(ctx, assigned.ID)
			if err != nil {
				return fmt.Errorf("failed to get assignment: %w", err)
			}

			if found && record.Manual() {
				log.Warn().Str("bookingID", assigned.ID).Str("pinnedDate", record.Date).Str("date", date).Msg("booking pinned on another date, auto assignment not stored")

				continue
			}
		}

		if err := e.store.UpsertAutoAssignment(ctx, assigned.ID, date, assigned.Room, assigned.Reason); err != nil {
			return fmt.Errorf("failed to upsert auto assignment: %w", err)
		}
	}

	for _, record := range existing {
		if handled[record.BookingID] {
			continue
		}

		if err := e.store.DeleteAssignment(ctx, record.BookingID); err != nil {
			return fmt.Errorf("failed to delete stale assignment: %w", err)
		}
	}

	return nil
}
