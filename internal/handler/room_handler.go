package handler

import (
	"io"
	"net/http"

	"steamparty/backend/internal/hub"
	"steamparty/backend/internal/room"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// region --- DTOs ---

type RoomResponse struct {
	RoomNumber string        `json:"room_number"`
	Members    []room.Member `json:"members"`
}

// endregion

// RoomHandler serves room lifecycle and the per-room event stream.
type RoomHandler struct {
	Registry *room.Registry
	Hub      *hub.Hub
	Log      *zap.Logger
}

// NewRoomHandler wires the handler.
func NewRoomHandler(registry *room.Registry, h *hub.Hub, log *zap.Logger) *RoomHandler {
	return &RoomHandler{Registry: registry, Hub: h, Log: log}
}

// CreateRoom godoc
// @Summary      Create a room
// @Description  Creates a room with a fresh number and joins the caller as its first member.
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  RoomResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	me := identity(c)
	number := h.Registry.NewRoomNumber()
	members := h.Registry.Join(number, me)

	h.Log.Info("room created", zap.String("room", number), zap.String("steam_id", me.SteamID))
	c.JSON(http.StatusCreated, RoomResponse{RoomNumber: number, Members: members})
}

// JoinRoom godoc
// @Summary      Join a room
// @Description  Joins an existing room by number. Joining twice is a no-op.
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        number path string true "Room number"
// @Success      200  {object}  RoomResponse
// @Failure      400  {object}  ErrorResponse "Malformed room number"
// @Failure      401  {object}  ErrorResponse
// @Router       /rooms/{number}/join [post]
func (h *RoomHandler) JoinRoom(c *gin.Context) {
	number, ok := h.roomNumber(c)
	if !ok {
		return
	}

	me := identity(c)
	members := h.Registry.Join(number, me)
	h.Hub.Broadcast(number, hub.Event{Type: hub.EventMemberList, Payload: members})

	c.JSON(http.StatusOK, RoomResponse{RoomNumber: number, Members: members})
}

// LeaveRoom godoc
// @Summary      Leave a room
// @Description  Removes the caller from the room; the room is deleted once the last member leaves.
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        number path string true "Room number"
// @Success      200 {object} map[string]string "{"message": "Left room"}"
// @Failure      400 {object} ErrorResponse "Malformed room number"
// @Router       /rooms/{number}/leave [post]
func (h *RoomHandler) LeaveRoom(c *gin.Context) {
	number, ok := h.roomNumber(c)
	if !ok {
		return
	}

	me := identity(c)
	members, alive := h.Registry.Leave(number, me.SteamID)
	if alive {
		h.Hub.Broadcast(number, hub.Event{Type: hub.EventMemberList, Payload: members})
	}

	c.JSON(http.StatusOK, gin.H{"message": "Left room"})
}

// StreamEvents godoc
// @Summary      Subscribe to room events
// @Description  Opens a server-sent event stream carrying memberList, finalList and refreshList events for the room.
// @Tags         rooms
// @Produce      text/event-stream
// @Security     BearerAuth
// @Param        number path string true "Room number"
// @Failure      400 {object} ErrorResponse "Malformed room number"
// @Failure      404 {object} ErrorResponse "Room not found"
// @Router       /rooms/{number}/events [get]
func (h *RoomHandler) StreamEvents(c *gin.Context) {
	number, ok := h.roomNumber(c)
	if !ok {
		return
	}
	if !h.Registry.Exists(number) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return
	}

	client := make(hub.Client, 8)
	h.Hub.Subscribe(number, client)
	defer h.Hub.Unsubscribe(number, client)

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		select {
		case msg, open := <-client:
			if !open {
				return false
			}
			c.SSEvent("message", string(msg))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// roomNumber validates the path parameter. Malformed numbers are logged and
// rejected without reaching any room state.
func (h *RoomHandler) roomNumber(c *gin.Context) (string, bool) {
	number := c.Param("number")
	if !room.ValidNumber(number) {
		h.Log.Warn("malformed room number dropped", zap.String("room", number))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed room number"})
		return "", false
	}
	return number, true
}
