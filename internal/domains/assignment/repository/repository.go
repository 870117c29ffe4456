package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks -mock_names=Assignment=MockRepository

import (
	"context"
	"fmt"
	"spa/infras/otel"
	"spa/infras/postgres"
	"spa/internal/domains/assignment/model"
	roomModel "spa/internal/domains/room/model"
	"spa/shared"
	"spa/shared/constant"
	gDto "spa/shared/dto"
	gModel "spa/shared/model"
	gRepo "spa/shared/repository"
	"spa/shared/timezone"

	"github.com/rs/zerolog/log"
)

// Assignment is the durable store of room decisions. Every method joins the transaction carried by ctx.
type Assignment interface {
	Get(ctx context.Context, filter gDto.FilterGroup) (model.RoomAssignment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.RoomAssignment, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetAssignment(ctx context.Context, bookingID string) (model.RoomAssignment, bool, error)
	GetManualAssignments(ctx context.Context, date string) (map[string]model.RoomAssignment, error)
	GetAutoAssignments(ctx context.Context, date string) ([]model.RoomAssignment, error)
	UpsertAutoAssignment(ctx context.Context, bookingID, date string, room roomModel.ID, reason string) error
	SetManualAssignment(ctx context.Context, bookingID, date string, room roomModel.ID, operator string) error
	DeleteAssignment(ctx context.Context, bookingID string) error
	DeleteAutoAssignments(ctx context.Context, date string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.RoomAssignment]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Assignment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RoomAssignment](model.EntityName, model.TableName, model.FieldBookingID, db, otel),
		otel:       otel,
	}
}

func (r *repositoryImpl) GetAssignment(ctx context.Context, bookingID string) (res model.RoomAssignment, found bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAssignment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = r.Get(ctx, shared.FilterByID(bookingID, model.FieldBookingID, model.TableName))
	if err != nil {
		return res, false, fmt.Errorf("failed to get assignment: %w", err)
	}

	return res, res.BookingID != constant.Empty, nil
}

func (r *repositoryImpl) GetManualAssignments(ctx context.Context, date string) (res map[string]model.RoomAssignment, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetManualAssignments")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	records, err := r.GetAll(ctx, gDto.QueryParams{}, byDate(date, model.AssignedByManual))
	if err != nil {
		return nil, fmt.Errorf("failed to get manual assignments: %w", err)
	}

	res = make(map[string]model.RoomAssignment, len(records))
	for _, record := range records {
		res[record.BookingID] = record
	}

	return res, nil
}

func (r *repositoryImpl) GetAutoAssignments(ctx context.Context, date string) (res []model.RoomAssignment, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAutoAssignments")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = r.GetAll(ctx, gDto.QueryParams{}, byDate(date, model.AssignedByAuto))
	if err != nil {
		return nil, fmt.Errorf("failed to get auto assignments: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) UpsertAutoAssignment(ctx context.Context, bookingID, date string, room roomModel.ID, reason string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".UpsertAutoAssignment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	record := newRecord(bookingID, date, room, model.AssignedByAuto, constant.Empty)
	record.Reason = model.NewReason(reason)

	if err = r.upsert(ctx, record); err != nil {
		return fmt.Errorf("failed to upsert auto assignment: %w", err)
	}

	return nil
}

func (r *repositoryImpl) SetManualAssignment(ctx context.Context, bookingID, date string, room roomModel.ID, operator string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".SetManualAssignment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.upsert(ctx, newRecord(bookingID, date, room, model.AssignedByManual, operator)); err != nil {
		return fmt.Errorf("failed to set manual assignment: %w", err)
	}

	log.Info().Str("bookingID", bookingID).Str("date", date).Str("room", room.String()).Str("operator", operator).Msg("manual assignment set")

	return nil
}

func (r *repositoryImpl) DeleteAssignment(ctx context.Context, bookingID string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".DeleteAssignment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.Delete(ctx, shared.FilterByID(bookingID, model.FieldBookingID, model.TableName)); err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}

	return nil
}

// DeleteAutoAssignments drops the whole Auto layer of the date.
func (r *repositoryImpl) DeleteAutoAssignments(ctx context.Context, date string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".DeleteAutoAssignments")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.Delete(ctx, byDate(date, model.AssignedByAuto)); err != nil {
		return fmt.Errorf("failed to delete auto assignments: %w", err)
	}

	return nil
}

func (r *repositoryImpl) upsert(ctx context.Context, record model.RoomAssignment) error {
	return r.Upsert( //nolint:wrapcheck
		ctx,
		record,
		model.FieldBookingID,
		model.FieldDate,
		model.FieldRoom,
		model.FieldAssignedBy,
		model.FieldReason,
		model.FieldUpdatedAt,
		model.FieldUpdatedBy,
	)
}

func newRecord(bookingID, date string, room roomModel.ID, assignedBy model.AssignedBy, operator string) model.RoomAssignment {
	if operator == constant.Empty {
		operator = string(assignedBy)
	}

	now := timezone.Now()

	return model.RoomAssignment{
		BookingID:  bookingID,
		Date:       date,
		Room:       room,
		AssignedBy: assignedBy,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
			UpdatedBy: operator,
		},
	}
}

func byDate(date string, assignedBy model.AssignedBy) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldDate, Value: date, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldAssignedBy, Value: string(assignedBy), Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}
