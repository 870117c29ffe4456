package engine

import (
	roomModel "spa/internal/domains/room/model"
	"time"
)

// Tracker holds, per physical room, the instant it becomes free again. It lives for one pass.
type Tracker struct {
	freeAt map[roomModel.ID]time.Time
}

func NewTracker() *Tracker {
	freeAt := make(map[roomModel.ID]time.Time, len(roomModel.PhysicalRooms))
	for _, room := range roomModel.PhysicalRooms {
		freeAt[room] = time.Time{}
	}

	return &Tracker{freeAt: freeAt}
}

// IsFree reports whether every physical room behind room is free at the instant.
func (t *Tracker) IsFree(room roomModel.ID, at time.Time) bool {
	physical := room.Physical()
	if len(physical) == 0 {
		return false
	}

	for _, r := range physical {
		if t.freeAt[r].After(at) {
			return false
		}
	}

	return true
}

func (t *Tracker) CanMergeFree(at time.Time) bool {
	return t.IsFree(roomModel.Room0, at) && t.IsFree(roomModel.Room2, at)
}

// MarkBusy raises the free-at instant of every physical room behind room. It never shortens a window.
func (t *Tracker) MarkBusy(room roomModel.ID, until time.Time) {
	for _, r := range room.Physical() {
		if until.After(t.freeAt[r]) {
			t.freeAt[r] = until
		}
	}
}

// FreeAt is the latest free-at instant among the physical rooms behind room.
func (t *Tracker) FreeAt(room roomModel.ID) time.Time {
	var res time.Time

	for _, r := range room.Physical() {
		if t.freeAt[r].After(res) {
			res = t.freeAt[r]
		}
	}

	return res
}
