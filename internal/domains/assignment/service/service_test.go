package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"spa/config"
	"spa/infras/kafka"
	kafkaMocks "spa/infras/kafka/mocks"
	"spa/infras/otel/mocks"
	postgresMocks "spa/infras/postgres/mocks"
	appointmentMocks "spa/internal/domains/appointment/mocks"
	apModel "spa/internal/domains/appointment/model"
	apDto "spa/internal/domains/appointment/model/dto"
	assignmentMocks "spa/internal/domains/assignment/mocks"
	"spa/internal/domains/assignment/engine"
	"spa/internal/domains/assignment/model"
	"spa/internal/domains/assignment/model/dto"
	"spa/internal/domains/assignment/service"
	roomModel "spa/internal/domains/room/model"
	"spa/shared/cache"
	"spa/shared/constant"
	gDto "spa/shared/dto"
	"spa/shared/failure"
	lockerMocks "spa/shared/locker/mocks"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testDate = "2025-03-01"

type fixture struct {
	repo         *assignmentMocks.MockRepository
	engine       *assignmentMocks.MockEngine
	appointments *appointmentMocks.MockAppointment
	tx           *postgresMocks.MockTransactor
	locker       *lockerMocks.MockLocker
	kafka        *kafkaMocks.MockClient
	redis        *miniredis.Miniredis
	svc          service.Assignment
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Kafka.Topic = "assignment.changed"
	cfg.Cache.TTL = 60

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	f := fixture{
		repo:         assignmentMocks.NewMockRepository(ctrl),
		engine:       assignmentMocks.NewMockEngine(ctrl),
		appointments: appointmentMocks.NewMockAppointment(ctrl),
		tx:           postgresMocks.NewMockTransactor(ctrl),
		locker:       lockerMocks.NewMockLocker(ctrl),
		kafka:        kafkaMocks.NewMockClient(ctrl),
		redis:        mr,
	}

	ot := mocks.NewOtel()
	f.svc = service.New(f.repo, f.engine, f.appointments, f.tx, f.locker, cache.NewRedisCache(client, ot), f.kafka, cfg, ot)

	return f
}

// expectLockedTransaction runs the callback through both the lock and the transaction.
func (f fixture) expectLockedTransaction(key string) {
	f.locker.EXPECT().WithLock(gomock.Any(), key, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, fn func(context.Context) error) error {
			return fn(ctx)
		})
	f.tx.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func (f fixture) expectEvent(t *testing.T, action, bookingID string) <-chan struct{} {
	done := make(chan struct{})

	f.kafka.EXPECT().SendMessages(gomock.Any(), "assignment.changed", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			defer close(done)

			require.Len(t, messages, 1)
			assert.Equal(t, bookingID, messages[0].Key)

			event, ok := messages[0].Value.(dto.ChangedEvent)
			require.True(t, ok)
			assert.Equal(t, action, event.Action)
			assert.Equal(t, "front-desk", event.Operator)
			assert.NotEmpty(t, event.ID)

			return nil
		})

	return done
}

func wait(t *testing.T, done <-chan struct{}) {
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("event was not published")
	}
}

func dayOf(appointments ...apModel.Appointment) apDto.DayAppointments {
	return apDto.DayAppointments{Date: testDate, Therapists: []string{"Mia"}, Appointments: appointments}
}

var (
	start = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	first = apModel.Appointment{ID: "bk-1", Kind: roomModel.KindSingle, Start: start, End: start.Add(time.Hour), Therapist: "Mia"}
)

func TestAssignmentService_Day(t *testing.T) {
	f := newFixture(t)

	f.appointments.EXPECT().GetDay(gomock.Any(), testDate, true).Return(dayOf(first), nil)
	f.expectLockedTransaction("assignment:day:2025-03-01")
	f.engine.EXPECT().AssignRooms(gomock.Any(), []apModel.Appointment{first}, testDate).Return([]engine.AssignedAppointment{
		{Appointment: first, Room: roomModel.Room1, AssignedBy: model.AssignedByAuto},
	}, nil)

	res, err := f.svc.Day(context.Background(), testDate, true)
	require.NoError(t, err)

	assert.Equal(t, testDate, res.Date)
	assert.Equal(t, []string{"Mia"}, res.Therapists)
	require.Len(t, res.Events, 1)

	event := res.Events[0]
	assert.Equal(t, "bk-1", event.BookingID)
	assert.Equal(t, "1", event.Room)
	assert.Equal(t, "single", event.Type)
	assert.Equal(t, "auto", event.AssignedBy)
	assert.Equal(t, "2025-03-01T10:00:00Z", event.StartAt)
	assert.Equal(t, "2025-03-01T11:00:00Z", event.EndAt)
	assert.Nil(t, event.Reason)
}

func TestAssignmentService_Day_Errors(t *testing.T) {
	t.Run("invalid date", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Day(context.Background(), "2025-13-01", false)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("provider not configured", func(t *testing.T) {
		f := newFixture(t)
		f.appointments.EXPECT().GetDay(gomock.Any(), testDate, false).Return(apDto.DayAppointments{}, failure.ProviderNotConfigured)

		_, err := f.svc.Day(context.Background(), testDate, false)
		assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))
	})

	t.Run("lock busy", func(t *testing.T) {
		f := newFixture(t)
		f.appointments.EXPECT().GetDay(gomock.Any(), testDate, false).Return(dayOf(first), nil)
		f.locker.EXPECT().WithLock(gomock.Any(), gomock.Any(), gomock.Any()).Return(failure.Conflict("busy"))

		_, err := f.svc.Day(context.Background(), testDate, false)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("engine failure", func(t *testing.T) {
		f := newFixture(t)
		f.appointments.EXPECT().GetDay(gomock.Any(), testDate, false).Return(dayOf(first), nil)
		f.expectLockedTransaction("assignment:day:2025-03-01")
		f.engine.EXPECT().AssignRooms(gomock.Any(), gomock.Any(), testDate).Return(nil, errors.New("db down"))

		_, err := f.svc.Day(context.Background(), testDate, false)
		assert.ErrorContains(t, err, "failed to assign rooms")
	})
}

func TestAssignmentService_Recompute(t *testing.T) {
	f := newFixture(t)

	f.appointments.EXPECT().GetDay(gomock.Any(), testDate, true).Return(dayOf(), nil)
	f.expectLockedTransaction("assignment:day:2025-03-01")
	f.engine.EXPECT().AssignRooms(gomock.Any(), gomock.Any(), testDate).Return(nil, nil)

	assert.NoError(t, f.svc.Recompute(context.Background(), testDate))
}

func TestAssignmentService_Pin(t *testing.T) {
	f := newFixture(t)
	ctx := context.WithValue(context.Background(), constant.ContextKeyOperator, "front-desk")

	req := dto.SetRoomRequest{BookingID: "bk-1", Room: roomModel.Room5, Date: testDate}

	f.appointments.EXPECT().GetDay(gomock.Any(), testDate, false).Return(dayOf(first), nil)
	f.expectLockedTransaction("assignment:day:2025-03-01")

	gomock.InOrder(
		f.repo.EXPECT().SetManualAssignment(gomock.Any(), "bk-1", testDate, roomModel.Room5, "front-desk").Return(nil),
		f.repo.EXPECT().DeleteAutoAssignments(gomock.Any(), testDate).Return(nil),
		f.engine.EXPECT().AssignRooms(gomock.Any(), gomock.Any(), testDate).Return([]engine.AssignedAppointment{
			{Appointment: first, Room: roomModel.Room5, AssignedBy: model.AssignedByManual},
		}, nil),
	)

	done := f.expectEvent(t, dto.ActionPinned, "bk-1")

	require.NoError(t, f.redis.Set("assignment:gets:1:10", "{}"))

	res, err := f.svc.Pin(ctx, req)
	require.NoError(t, err)

	assert.False(t, f.redis.Exists("assignment:gets:1:10"), "listings are invalidated after a commit")

	require.Len(t, res.Events, 1)
	assert.Equal(t, "5", res.Events[0].Room)
	assert.Equal(t, "manual", res.Events[0].AssignedBy)

	wait(t, done)
}

func TestAssignmentService_Pin_RollsBackOnFailure(t *testing.T) {
	f := newFixture(t)

	f.appointments.EXPECT().GetDay(gomock.Any(), testDate, false).Return(dayOf(first), nil)
	f.expectLockedTransaction("assignment:day:2025-03-01")
	f.repo.EXPECT().SetManualAssignment(gomock.Any(), "bk-1", testDate, roomModel.Unassigned, constant.DefaultOperator).Return(nil)
	f.repo.EXPECT().DeleteAutoAssignments(gomock.Any(), testDate).Return(errors.New("deadlock"))

	require.NoError(t, f.redis.Set("assignment:gets:1:10", "{}"))

	_, err := f.svc.Pin(context.Background(), dto.SetRoomRequest{BookingID: "bk-1", Room: roomModel.Unassigned, Date: testDate})
	assert.ErrorContains(t, err, "failed to pin room")
	assert.True(t, f.redis.Exists("assignment:gets:1:10"))
}

func TestAssignmentService_Unpin(t *testing.T) {
	t.Run("manual pin", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.WithValue(context.Background(), constant.ContextKeyOperator, "front-desk")

		f.repo.EXPECT().GetAssignment(gomock.Any(), "bk-1").
			Return(model.RoomAssignment{BookingID: "bk-1", Date: testDate, Room: roomModel.Room3, AssignedBy: model.AssignedByManual}, true, nil)
		f.appointments.EXPECT().GetDay(gomock.Any(), testDate, false).Return(dayOf(first), nil)
		f.expectLockedTransaction("assignment:day:2025-03-01")
		f.repo.EXPECT().DeleteAssignment(gomock.Any(), "bk-1").Return(nil)
		f.repo.EXPECT().DeleteAutoAssignments(gomock.Any(), testDate).Return(nil)
		f.engine.EXPECT().AssignRooms(gomock.Any(), gomock.Any(), testDate).Return([]engine.AssignedAppointment{
			{Appointment: first, Room: roomModel.Room1, AssignedBy: model.AssignedByAuto},
		}, nil)

		done := f.expectEvent(t, dto.ActionUnpinned, "bk-1")

		res, err := f.svc.Unpin(ctx, "bk-1")
		require.NoError(t, err)
		assert.Equal(t, "1", res.Events[0].Room)

		wait(t, done)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetAssignment(gomock.Any(), "bk-9").Return(model.RoomAssignment{}, false, nil)

		_, err := f.svc.Unpin(context.Background(), "bk-9")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("auto record", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetAssignment(gomock.Any(), "bk-1").
			Return(model.RoomAssignment{BookingID: "bk-1", Date: testDate, AssignedBy: model.AssignedByAuto}, true, nil)

		_, err := f.svc.Unpin(context.Background(), "bk-1")
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestAssignmentService_Get(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetAssignment(gomock.Any(), "bk-1").Return(model.RoomAssignment{
		BookingID:  "bk-1",
		Date:       testDate,
		Room:       roomModel.Unassigned,
		AssignedBy: model.AssignedByAuto,
		Reason:     model.NewReason("No room available"),
	}, true, nil)

	res, err := f.svc.Get(context.Background(), "bk-1")
	require.NoError(t, err)

	assert.Equal(t, "UNASSIGNED", res.Room)
	require.NotNil(t, res.Reason)
	assert.Equal(t, "No room available", *res.Reason)

	f.repo.EXPECT().GetAssignment(gomock.Any(), "bk-2").Return(model.RoomAssignment{}, false, nil)

	_, err = f.svc.Get(context.Background(), "bk-2")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestAssignmentService_GetAll(t *testing.T) {
	f := newFixture(t)

	filter := dto.AssignmentFilter{Date: testDate}.ToFilterGroup()

	f.repo.EXPECT().Count(gomock.Any(), filter).Return(12, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), gDto.QueryParams{Page: 2, Limit: 10, SortBy: "updated_at", SortDir: "DESC"}, filter).
		Return([]model.RoomAssignment{{BookingID: "bk-11"}, {BookingID: "bk-12"}}, nil)

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 2, Limit: 10, SortBy: "password"}, filter)
	require.NoError(t, err)

	assert.Equal(t, 12, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.Assignments, 2)

	cached, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 2, Limit: 10}, filter)
	require.NoError(t, err)
	assert.Equal(t, res, cached)

	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("db down"))

	_, err = f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, filter)
	assert.ErrorContains(t, err, "failed to count assignments")
}
