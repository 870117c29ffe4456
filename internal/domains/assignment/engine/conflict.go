package engine

import (
	"spa/internal/domains/assignment/model"
	roomModel "spa/internal/domains/room/model"

	"github.com/rs/zerolog/log"
)

// resolveConflicts demotes the losing side of every overlapping pair sharing a physical room.
// res must already be in start order; Manual beats Auto and ties keep the earlier appointment.
func resolveConflicts(res []AssignedAppointment) {
	for _, physical := range roomModel.PhysicalRooms {
		group := []*AssignedAppointment{}

		for i := range res {
			if res[i].Room == roomModel.Unassigned {
				continue
			}

			for _, r := range res[i].Room.Physical() {
				if r == physical {
					group = append(group, &res[i])
				}
			}
		}

		for i := range group {
			for j := i + 1; j < len(group); j++ {
				a, b := group[i], group[j]
				if a.demoted || b.demoted || !a.Overlaps(b.Appointment) {
					continue
				}

				winner, loser := a, b
				if b.Manual() && !a.Manual() {
					winner, loser = b, a
				}

				if winner.Manual() && loser.Manual() {
					log.Warn().
						Str("room", physical.String()).
						Str("kept", winner.ID).
						Str("demoted", loser.ID).
						Msg("manual assignments collide, later pin released")
				}

				demote(loser, winner)
			}
		}
	}
}

func demote(loser, winner *AssignedAppointment) {
	loser.Reason = conflictReason(winner)
	loser.Room = roomModel.Unassigned
	loser.releasedPin = loser.Manual()
	loser.AssignedBy = model.AssignedByAuto
	loser.demoted = true
}
