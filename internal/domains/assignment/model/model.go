package model

import (
	"database/sql"
	roomModel "spa/internal/domains/room/model"
	"spa/shared/model"
)

const (
	TableName  = "room_assignments"
	EntityName = "assignment"

	FieldBookingID  = "booking_id"
	FieldDate       = "date"
	FieldRoom       = "room"
	FieldAssignedBy = "assigned_by"
	FieldReason     = "reason"
	FieldCreatedAt  = "created_at"
	FieldUpdatedAt  = "updated_at"
	FieldUpdatedBy  = "updated_by"
)

// AssignedBy records who decided the room.
type AssignedBy string

const (
	AssignedByAuto   AssignedBy = "auto"
	AssignedByManual AssignedBy = "manual"
)

func (a AssignedBy) Valid() bool {
	return a == AssignedByAuto || a == AssignedByManual
}

// RoomAssignment is the persisted room decision for one booking on one date.
type RoomAssignment struct {
	BookingID  string         `db:"booking_id"`
	Date       string         `db:"date"`
	Room       roomModel.ID   `db:"room"`
	AssignedBy AssignedBy     `db:"assigned_by"`
	Reason     sql.NullString `db:"reason"`
	model.Metadata
}

func (r RoomAssignment) Manual() bool {
	return r.AssignedBy == AssignedByManual
}

// NewReason wraps a reason so an empty one is stored as NULL.
func NewReason(reason string) sql.NullString {
	return sql.NullString{String: reason, Valid: reason != ""}
}
