package handler

import (
	"net/http"

	"steamparty/backend/internal/hub"
	"steamparty/backend/internal/ingest"
	"steamparty/backend/internal/match"
	"steamparty/backend/internal/room"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// region --- DTOs ---

type GenerateInput struct {
	Filter match.FilterInput `json:"filter"`
}

type FinalListResponse struct {
	RoomMembers []room.Member `json:"roomMembers"`
	*match.Result
}

// endregion

// ListHandler runs the sync-then-match pipeline for a room.
type ListHandler struct {
	Syncer   *ingest.Syncer
	Engine   *match.Engine
	Registry *room.Registry
	Hub      *hub.Hub
	Log      *zap.Logger
}

// NewListHandler wires the handler.
func NewListHandler(syncer *ingest.Syncer, engine *match.Engine, registry *room.Registry, h *hub.Hub, log *zap.Logger) *ListHandler {
	return &ListHandler{Syncer: syncer, Engine: engine, Registry: registry, Hub: h, Log: log}
}

// Generate godoc
// @Summary      Generate the room's shared-game list
// @Description  Syncs the caller's library, computes the shared/unshared partition for the whole room under the posted filter, broadcasts it to the room and returns it.
// @Tags         list
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        number path string        true  "Room number"
// @Param        input  body GenerateInput false "Filter"
// @Success      200 {object} FinalListResponse
// @Failure      400 {object} ErrorResponse "Malformed room number"
// @Failure      404 {object} ErrorResponse "Room not found"
// @Failure      502 {object} ErrorResponse "Library fetch failed"
// @Router       /rooms/{number}/generate [post]
func (h *ListHandler) Generate(c *gin.Context) {
	number := c.Param("number")
	if !room.ValidNumber(number) {
		h.Log.Warn("malformed room number dropped", zap.String("room", number))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed room number"})
		return
	}

	members, ok := h.Registry.Members(number)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return
	}

	var input GenerateInput
	if err := c.ShouldBindJSON(&input); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	me := identity(c)
	if _, err := h.Syncer.Sync(c.Request.Context(), me.SteamID); err != nil {
		// The cache still holds whatever previous syncs collected; a dead
		// upstream degrades the list, it doesn't kill the request.
		h.Log.Warn("library sync failed, serving cached data",
			zap.String("steam_id", me.SteamID),
			zap.Error(err),
		)
	}

	memberIDs := make([]string, len(members))
	for i, m := range members {
		memberIDs[i] = m.SteamID
	}

	result, err := h.Engine.Generate(memberIDs, input.Filter.ToFilter())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate list"})
		return
	}

	payload := FinalListResponse{RoomMembers: members, Result: result}
	h.Hub.Broadcast(number, hub.Event{Type: hub.EventFinalList, Payload: payload})

	c.JSON(http.StatusOK, payload)
}
