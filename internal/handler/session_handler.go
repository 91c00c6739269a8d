package handler

import (
	"net/http"
	"regexp"

	"steamparty/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type SessionInput struct {
	SteamID  string `json:"steam_id" binding:"required"`
	Username string `json:"username" binding:"required"`
	Avatar   string `json:"avatar"`
}

type SessionResponse struct {
	Token string `json:"token"`
}

// endregion

var steamIDPattern = regexp.MustCompile(`^\d{5,20}$`)

// CreateSession godoc
// @Summary      Start a session
// @Description  Issues a token for the given Steam identity. The Steam OAuth handshake happens upstream of this service; this endpoint only mints the session.
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        input body SessionInput true "Steam identity"
// @Success      201  {object}  SessionResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /session [post]
func CreateSession(c *gin.Context) {
	var input SessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !steamIDPattern.MatchString(input.SteamID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Steam ID"})
		return
	}

	token, err := jwt.GenerateToken(input.SteamID, input.Username, input.Avatar)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.JSON(http.StatusCreated, SessionResponse{Token: token})
}
