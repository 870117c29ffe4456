package room_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	otelMocks "spa/infras/otel/mocks"
	"spa/internal/domains/room/mocks"
	"spa/internal/domains/room/model/dto"
	"spa/internal/handlers/room"
	"spa/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupRouter(t *testing.T) (*mocks.MockRoom, http.Handler) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockRoom(ctrl)

	handler := room.New(svc, otelMocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func TestHandler_GetRooms(t *testing.T) {
	svc, router := setupRouter(t)

	svc.EXPECT().GetLadder(gomock.Any(), "couple").Return(dto.GetRoomsResponse{
		Type:  "couple",
		Rooms: []dto.RoomResponse{{ID: "5", Physical: []string{"5"}, Priority: 1}},
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms?type=couple", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data dto.GetRoomsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "couple", body.Data.Type)
	assert.Equal(t, "5", body.Data.Rooms[0].ID)
}

func TestHandler_GetRooms_InvalidType(t *testing.T) {
	svc, router := setupRouter(t)

	svc.EXPECT().GetLadder(gomock.Any(), "trio").Return(dto.GetRoomsResponse{}, failure.BadRequestFromString("type must be one of single couple"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms?type=trio", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "type must be one of")
}

func TestHandler_GetAllRooms(t *testing.T) {
	svc, router := setupRouter(t)

	svc.EXPECT().GetAll(gomock.Any()).Return(dto.GetRoomsResponse{
		Rooms: []dto.RoomResponse{{ID: "02D", Merged: true, Physical: []string{"0", "2"}}},
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms/all", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"merged":true`)
}
