package handler

import (
	"net/http"
	"strconv"

	"steamparty/backend/internal/models"
	"steamparty/backend/internal/store"

	"github.com/gin-gonic/gin"
)

// GamesHandler exposes a read-only view of the enriched game cache, mostly
// useful for checking what the ingestion side has collected.
type GamesHandler struct {
	Games *store.GameStore
}

// NewGamesHandler wires the handler.
func NewGamesHandler(games *store.GameStore) *GamesHandler {
	return &GamesHandler{Games: games}
}

// GetGames godoc
// @Summary      Browse the game cache
// @Description  Retrieves a paginated list of cached game records, most recently refreshed first.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        page  query int false "Page number" default(1)
// @Param        limit query int false "Items per page" default(10)
// @Success      200 {object} PaginatedResponse[models.Game]
// @Router       /games [get]
func (h *GamesHandler) GetGames(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100 // Max limit
	}

	offset := (page - 1) * limit
	games, total, err := h.Games.List(offset, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve games"})
		return
	}
	if games == nil {
		games = []models.Game{}
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(games, total, page, limit))
}
