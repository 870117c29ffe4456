package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"spa/infras/otel"
	"spa/internal/domains/room/model"
	"spa/internal/domains/room/model/dto"
	"spa/shared/constant"
	"spa/shared/failure"
)

type Room interface {
	GetLadder(ctx context.Context, kind string) (dto.GetRoomsResponse, error)
	GetAll(ctx context.Context) (dto.GetRoomsResponse, error)
}

type serviceImpl struct {
	otel otel.Otel
}

func New(otel otel.Otel) Room {
	return &serviceImpl{
		otel: otel,
	}
}

// GetLadder returns the rooms tried for the kind, in priority order. An empty kind means single.
func (s *serviceImpl) GetLadder(ctx context.Context, kind string) (res dto.GetRoomsResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetLadder")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	roomKind := model.KindSingle
	if kind != constant.Empty {
		roomKind = model.Kind(kind)
	}

	if !roomKind.Valid() {
		return res, failure.BadRequestFromString("type must be one of single couple") //nolint:wrapcheck
	}

	res.FromLadder(roomKind, model.Priority(roomKind))

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetRoomsResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()

	res.FromModels(model.AllRooms())

	return res, nil
}
