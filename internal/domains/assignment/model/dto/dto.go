package dto

import (
	"slices"
	"spa/internal/domains/assignment/engine"
	"spa/internal/domains/assignment/model"
	roomModel "spa/internal/domains/room/model"
	"spa/shared"
	"spa/shared/constant"
	gDto "spa/shared/dto"
	"spa/shared/timezone"
)

// SortableFields are the columns GetAssignments may order by.
var SortableFields = []string{
	model.FieldBookingID,
	model.FieldDate,
	model.FieldRoom,
	model.FieldAssignedBy,
	model.FieldCreatedAt,
	model.FieldUpdatedAt,
}

type SetRoomRequest struct {
	BookingID string       `json:"booking_id" validate:"required,max=255"`
	Room      roomModel.ID `json:"room"       validate:"required,spa"`
	Date      string       `json:"date"       validate:"required,day"`
}

// RecomputeResponse lists the days reassigned after a provider notification.
type RecomputeResponse struct {
	BookingID string   `json:"booking_id"`
	Dates     []string `json:"dates"`
}

type AssignmentFilter struct {
	Date       string   `validate:"omitempty,day"`
	DateFrom   string   `validate:"omitempty,day"`
	DateTo     string   `validate:"omitempty,day"`
	AssignedBy string   `validate:"omitempty,oneof=auto manual"`
	Rooms      []string `validate:"dive,required"`
}

// ToFilterGroup ANDs every non-empty field. Several rooms match any of them.
func (f AssignmentFilter) ToFilterGroup() gDto.FilterGroup {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	add := func(argName, field, operator string, value any) {
		filter.Filters = append(filter.Filters, gDto.Filter{
			ArgName:  argName,
			Field:    field,
			Value:    value,
			Operator: operator,
			Table:    model.TableName,
		})
	}

	if f.Date != constant.Empty {
		add(model.FieldDate, model.FieldDate, gDto.FilterOperatorEq, f.Date)
	}

	if f.DateFrom != constant.Empty {
		add("date_from", model.FieldDate, gDto.FilterOperatorGreaterEq, f.DateFrom)
	}

	if f.DateTo != constant.Empty {
		add("date_to", model.FieldDate, gDto.FilterOperatorLessEq, f.DateTo)
	}

	if f.AssignedBy != constant.Empty {
		add(model.FieldAssignedBy, model.FieldAssignedBy, gDto.FilterOperatorEq, f.AssignedBy)
	}

	if len(f.Rooms) > 0 {
		add(model.FieldRoom, model.FieldRoom, gDto.FilterOperatorIn, f.Rooms)
	}

	return filter
}

// NormalizeQuery drops a sort column that is not whitelisted.
func NormalizeQuery(params *gDto.QueryParams) {
	if !slices.Contains(SortableFields, params.SortBy) {
		params.SortBy = constant.DefaultValueSortBy
	}

	if params.SortDir == constant.Empty {
		params.SortDir = constant.DefaultValueSortDir
	}
}

type AssignmentResponse struct {
	BookingID  string  `json:"booking_id"`
	Date       string  `json:"date"`
	Room       string  `json:"room"`
	AssignedBy string  `json:"assigned_by"`
	Reason     *string `json:"reason"`
	gDto.Metadata
}

func (r *AssignmentResponse) FromModel(model model.RoomAssignment) {
	r.BookingID = model.BookingID
	r.Date = model.Date
	r.Room = model.Room.String()
	r.AssignedBy = string(model.AssignedBy)
	r.Reason = nil

	if model.Reason.Valid {
		reason := model.Reason.String
		r.Reason = &reason
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetAssignmentsResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetAssignmentsResponse) FromModels(models []model.RoomAssignment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Assignments = make([]AssignmentResponse, len(models))
	for i, mod := range models {
		r.Assignments[i].FromModel(mod)
	}
}

// EventResponse is one appointment of the day board.
type EventResponse struct {
	BookingID  string  `json:"booking_id"`
	Therapist  string  `json:"therapist"`
	StartAt    string  `json:"start_at"`
	EndAt      string  `json:"end_at"`
	Customer   string  `json:"customer"`
	Service    string  `json:"service"`
	Type       string  `json:"type"`
	Room       string  `json:"room"`
	Reason     *string `json:"reason"`
	AssignedBy string  `json:"assigned_by"`
}

func (r *EventResponse) FromResult(result engine.AssignedAppointment) {
	r.BookingID = result.ID
	r.Therapist = result.Therapist
	r.StartAt = timezone.Format(result.Start, constant.DateFormat)
	r.EndAt = timezone.Format(result.End, constant.DateFormat)
	r.Customer = result.Customer
	r.Service = result.Service
	r.Type = string(result.Kind)
	r.Room = result.Room.String()
	r.AssignedBy = string(result.AssignedBy)
	r.Reason = nil

	if result.Reason != constant.Empty {
		reason := result.Reason
		r.Reason = &reason
	}
}

type DayResponse struct {
	Date       string          `json:"date"`
	Therapists []string        `json:"therapists"`
	Events     []EventResponse `json:"events"`
}

func (r *DayResponse) FromResults(date string, therapists []string, results []engine.AssignedAppointment) {
	r.Date = date
	r.Therapists = therapists

	if r.Therapists == nil {
		r.Therapists = []string{}
	}

	r.Events = make([]EventResponse, len(results))
	for i, result := range results {
		r.Events[i].FromResult(result)
	}
}

// ChangedEvent is published whenever an operator changes a pin.
type ChangedEvent struct {
	ID         string `json:"id"`
	Action     string `json:"action"`
	BookingID  string `json:"booking_id"`
	Date       string `json:"date"`
	Room       string `json:"room"`
	Operator   string `json:"operator"`
	OccurredAt string `json:"occurred_at"`
}

const (
	ActionPinned   = "pinned"
	ActionUnpinned = "unpinned"
)
