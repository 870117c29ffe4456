package dto

import (
	"spa/internal/domains/room/model"
)

type RoomResponse struct {
	ID       string   `json:"id"`
	Merged   bool     `json:"merged"`
	Physical []string `json:"physical"`
	Priority int      `json:"priority,omitempty"`
}

func (r *RoomResponse) FromModel(room model.ID, priority int) {
	r.ID = room.String()
	r.Merged = room == model.Merged02D
	r.Priority = priority

	r.Physical = []string{}
	for _, physical := range room.Physical() {
		r.Physical = append(r.Physical, physical.String())
	}
}

type GetRoomsResponse struct {
	Type  string         `json:"type,omitempty"`
	Rooms []RoomResponse `json:"rooms"`
}

// FromLadder keeps ladder order; Priority is the 1-based rank within it.
func (r *GetRoomsResponse) FromLadder(kind model.Kind, ladder []model.ID) {
	r.Type = string(kind)

	r.Rooms = make([]RoomResponse, len(ladder))
	for i, room := range ladder {
		r.Rooms[i].FromModel(room, i+1)
	}
}

func (r *GetRoomsResponse) FromModels(rooms []model.ID) {
	r.Rooms = make([]RoomResponse, len(rooms))
	for i, room := range rooms {
		r.Rooms[i].FromModel(room, 0)
	}
}
