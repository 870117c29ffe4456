package dto_test

import (
	"testing"
	"time"

	"spa/internal/domains/assignment/engine"
	"spa/internal/domains/assignment/model"
	"spa/internal/domains/assignment/model/dto"
	apModel "spa/internal/domains/appointment/model"
	roomModel "spa/internal/domains/room/model"
	gDto "spa/shared/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignmentFilter_ToFilterGroup(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.AssignmentFilter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "no filters",
			filter:    dto.AssignmentFilter{},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
		{
			name:      "single date and origin",
			filter:    dto.AssignmentFilter{Date: "2025-03-01", AssignedBy: "manual"},
			wantWhere: "(room_assignments.date = :date AND room_assignments.assigned_by = :assigned_by)",
			wantArgs:  map[string]any{"date": "2025-03-01", "assigned_by": "manual"},
		},
		{
			name:      "range with rooms",
			filter:    dto.AssignmentFilter{DateFrom: "2025-03-01", DateTo: "2025-03-07", Rooms: []string{"5", "6"}},
			wantWhere: "(room_assignments.date >= :date_from AND room_assignments.date <= :date_to AND room_assignments.room IN (:room_0, :room_1))",
			wantArgs:  map[string]any{"date_from": "2025-03-01", "date_to": "2025-03-07", "room_0": "5", "room_1": "6"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group := tt.filter.ToFilterGroup()
			where, args := group.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestNormalizeQuery(t *testing.T) {
	params := gDto.QueryParams{SortBy: "password"}
	dto.NormalizeQuery(&params)

	assert.Equal(t, "updated_at", params.SortBy)
	assert.Equal(t, "DESC", params.SortDir)

	params = gDto.QueryParams{SortBy: model.FieldRoom, SortDir: "ASC"}
	dto.NormalizeQuery(&params)

	assert.Equal(t, model.FieldRoom, params.SortBy)
	assert.Equal(t, "ASC", params.SortDir)
}

func TestDayResponse_FromResults(t *testing.T) {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	results := []engine.AssignedAppointment{
		{
			Appointment: apModel.Appointment{ID: "bk-1", Kind: roomModel.KindSingle, Start: start, End: start.Add(time.Hour), Therapist: "Sophia"},
			Room:        "1",
			AssignedBy:  model.AssignedByAuto,
		},
		{
			Appointment: apModel.Appointment{ID: "bk-2", Kind: roomModel.KindCouple, Start: start, End: start.Add(time.Hour)},
			Room:        roomModel.Unassigned,
			Reason:      "No double room available.",
			AssignedBy:  model.AssignedByAuto,
		},
	}

	var res dto.DayResponse
	res.FromResults("2025-03-01", nil, results)

	assert.Equal(t, []string{}, res.Therapists)
	require.Len(t, res.Events, 2)

	assert.Nil(t, res.Events[0].Reason)
	assert.Equal(t, "single", res.Events[0].Type)
	assert.Equal(t, "auto", res.Events[0].AssignedBy)

	require.NotNil(t, res.Events[1].Reason)
	assert.Equal(t, "No double room available.", *res.Events[1].Reason)
	assert.Equal(t, "UNASSIGNED", res.Events[1].Room)
	assert.Equal(t, "couple", res.Events[1].Type)
}

func TestAssignmentResponse_FromModel(t *testing.T) {
	var res dto.AssignmentResponse
	res.FromModel(model.RoomAssignment{
		BookingID:  "bk-1",
		Date:       "2025-03-01",
		Room:       "02D",
		AssignedBy: model.AssignedByManual,
	})

	assert.Equal(t, "02D", res.Room)
	assert.Equal(t, "manual", res.AssignedBy)
	assert.Nil(t, res.Reason)
}
