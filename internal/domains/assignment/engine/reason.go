package engine

import (
	"fmt"
	roomModel "spa/internal/domains/room/model"
	"spa/shared/constant"
	"spa/shared/timezone"
	"strings"
)

const (
	reasonNoDoubleRoom   = "No double room available"
	reasonNoRoom         = "No room available"
	reasonManualConflict = "Conflict with manager-assigned booking %s"
	reasonAutoConflict   = "Conflict with auto-assigned booking %s"

	ReasonManualUnassigned = "manually set to UNASSIGNED"
)

// capacityReason lists when each room of the ladder frees up, e.g.
// "No double room available. Room 5 busy until 11:00; Room 6 busy until 11:00; Room 02D busy until 11:30".
func capacityReason(kind roomModel.Kind, tracker *Tracker) string {
	head := reasonNoRoom
	if kind == roomModel.KindCouple {
		head = reasonNoDoubleRoom
	}

	busy := []string{}
	for _, room := range roomModel.Priority(kind) {
		busy = append(busy, fmt.Sprintf("Room %s busy until %s", room, timezone.Format(tracker.FreeAt(room), constant.ClockFormat)))
	}

	return head + ". " + strings.Join(busy, "; ")
}

func conflictReason(winner *AssignedAppointment) string {
	if winner.Manual() {
		return fmt.Sprintf(reasonManualConflict, winner.ID)
	}

	return fmt.Sprintf(reasonAutoConflict, winner.ID)
}
