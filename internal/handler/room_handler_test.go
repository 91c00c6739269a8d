package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"steamparty/backend/internal/hub"
	"steamparty/backend/internal/room"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// asUser stands in for the auth middleware.
func asUser(steamID, name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("steamID", steamID)
		c.Set("username", name)
		c.Set("avatar", "https://avatars.example.com/"+steamID+".jpg")
		c.Next()
	}
}

func roomRouter(h *RoomHandler, steamID, name string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(asUser(steamID, name))
	r.POST("/rooms", h.CreateRoom)
	r.POST("/rooms/:number/join", h.JoinRoom)
	r.POST("/rooms/:number/leave", h.LeaveRoom)
	return r
}

func TestCreateRoomJoinsCallerAsFirstMember(t *testing.T) {
	h := NewRoomHandler(room.NewRegistry(1), hub.NewHub(), zap.NewNop())
	r := roomRouter(h, "76561198000000001", "Alice")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/rooms", nil))
	require.Equal(t, http.StatusCreated, w.Code)

	var resp RoomResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, room.ValidNumber(resp.RoomNumber))
	require.Len(t, resp.Members, 1)
	assert.Equal(t, "Alice", resp.Members[0].Name)
	assert.True(t, h.Registry.Exists(resp.RoomNumber))
}

func TestJoinRoomBroadcastsMemberList(t *testing.T) {
	registry := room.NewRegistry(1)
	eventHub := hub.NewHub()
	h := NewRoomHandler(registry, eventHub, zap.NewNop())

	number := registry.NewRoomNumber()
	registry.Join(number, room.Member{SteamID: "76561198000000001", Name: "Alice"})

	listener := make(hub.Client, 1)
	eventHub.Subscribe(number, listener)

	r := roomRouter(h, "76561198000000002", "Bob")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/rooms/"+number+"/join", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp RoomResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Members, 2)
	assert.Equal(t, "Bob", resp.Members[1].Name)

	var ev hub.Event
	require.NoError(t, json.Unmarshal(<-listener, &ev))
	assert.Equal(t, hub.EventMemberList, ev.Type)
}

func TestJoinRoomRejectsMalformedNumber(t *testing.T) {
	h := NewRoomHandler(room.NewRegistry(1), hub.NewHub(), zap.NewNop())
	r := roomRouter(h, "76561198000000001", "Alice")

	for _, number := range []string{"1234", "123456", "12a45"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/rooms/"+number+"/join", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, number)
	}
}

func TestLeaveRoomNotifiesRemainingMembers(t *testing.T) {
	registry := room.NewRegistry(1)
	eventHub := hub.NewHub()
	h := NewRoomHandler(registry, eventHub, zap.NewNop())

	number := registry.NewRoomNumber()
	registry.Join(number, room.Member{SteamID: "76561198000000001", Name: "Alice"})
	registry.Join(number, room.Member{SteamID: "76561198000000002", Name: "Bob"})

	listener := make(hub.Client, 1)
	eventHub.Subscribe(number, listener)

	r := roomRouter(h, "76561198000000001", "Alice")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/rooms/"+number+"/leave", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var ev hub.Event
	require.NoError(t, json.Unmarshal(<-listener, &ev))
	assert.Equal(t, hub.EventMemberList, ev.Type)

	members, ok := registry.Members(number)
	require.True(t, ok)
	require.Len(t, members, 1)
	assert.Equal(t, "Bob", members[0].Name)
}

func TestLeaveLastMemberDeletesRoom(t *testing.T) {
	registry := room.NewRegistry(1)
	h := NewRoomHandler(registry, hub.NewHub(), zap.NewNop())

	number := registry.NewRoomNumber()
	registry.Join(number, room.Member{SteamID: "76561198000000001", Name: "Alice"})

	r := roomRouter(h, "76561198000000001", "Alice")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/rooms/"+number+"/leave", nil))
	require.Equal(t, http.StatusOK, w.Code)

	assert.False(t, registry.Exists(number))
}
