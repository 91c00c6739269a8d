package jwt

import (
	"time"

	"steamparty/backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken creates a new JWT carrying a user's Steam identity. There is
// no password behind it; the token only pins down who the session claims to
// be so the room and sync endpoints know which library to pull.
func GenerateToken(steamID, username, avatar string) (string, error) {
	claims := jwt.MapClaims{
		"sub":    steamID,
		"name":   username,
		"avatar": avatar,
		"exp":    time.Now().Add(time.Hour * 24 * 7).Unix(), // Token expires in 7 days
		"iat":    time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}
