package handler

import (
	"github.com/gin-gonic/gin"

	"steamparty/backend/internal/room"
)

// ErrorResponse defines the structure for a generic error message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// identity pulls the authenticated member out of the gin context. The auth
// middleware guarantees steamID is set on protected routes.
func identity(c *gin.Context) room.Member {
	m := room.Member{}
	if v, ok := c.Get("steamID"); ok {
		m.SteamID = v.(string)
	}
	if v, ok := c.Get("username"); ok {
		m.Name = v.(string)
	}
	if v, ok := c.Get("avatar"); ok {
		m.Avatar = v.(string)
	}
	return m
}
