package model

import (
	"errors"
	"slices"
	"spa/config"
	"strings"
)

const EntityName = "room"

// ID names a room. Physical rooms are "0".."6"; "02D" is rooms 0 and 2 used together.
type ID string

const (
	Room0      ID = "0"
	Room1      ID = "1"
	Room2      ID = "2"
	Room3      ID = "3"
	Room4      ID = "4"
	Room5      ID = "5"
	Room6      ID = "6"
	Merged02D  ID = "02D"
	Unassigned ID = "UNASSIGNED"
)

var ErrUnknownRoom = errors.New("unknown room")

// PhysicalRooms is the fixed physical inventory in ascending order.
var PhysicalRooms = []ID{Room0, Room1, Room2, Room3, Room4, Room5, Room6}

// SinglePriority is the order in which rooms are tried for single appointments.
var SinglePriority = []ID{Room1, Room3, Room4, Room2, Room0, Room6, Room5}

// CouplePriority is the order in which rooms are tried for couple appointments.
var CouplePriority = []ID{Room5, Room6, Merged02D}

// Kind is the appointment kind driving room eligibility.
type Kind string

const (
	KindSingle Kind = "single"
	KindCouple Kind = "couple"
)

// ParseKind maps any value other than "couple" (case-insensitive) to KindSingle.
func ParseKind(value string) Kind {
	if strings.EqualFold(strings.TrimSpace(value), string(KindCouple)) {
		return KindCouple
	}

	return KindSingle
}

func (k Kind) Valid() bool {
	return k == KindSingle || k == KindCouple
}

// Priority returns a copy of the ladder for the kind.
func Priority(kind Kind) []ID {
	if kind == KindCouple {
		return slices.Clone(CouplePriority)
	}

	return slices.Clone(SinglePriority)
}

// Physical expands a room into the physical rooms it occupies. UNASSIGNED and unknown values occupy none.
func (r ID) Physical() []ID {
	switch r {
	case Merged02D:
		return []ID{Room0, Room2}
	case Room0, Room1, Room2, Room3, Room4, Room5, Room6:
		return []ID{r}
	default:
		return nil
	}
}

func (r ID) IsPhysical() bool {
	return slices.Contains(PhysicalRooms, r)
}

// Valid reports whether r is a physical room, the merged room or UNASSIGNED.
func (r ID) Valid() bool {
	return r.IsPhysical() || r == Merged02D || r == Unassigned
}

// Validate backs the "spa" validator tag.
func (r ID) Validate(_ *config.Config) error {
	if !r.Valid() {
		return ErrUnknownRoom
	}

	return nil
}

func (r ID) String() string {
	return string(r)
}

// AllRooms lists every value an operator may pin: the physical rooms, the merged room and UNASSIGNED.
func AllRooms() []ID {
	return append(slices.Clone(PhysicalRooms), Merged02D, Unassigned)
}
