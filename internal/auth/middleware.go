package auth

import (
	"fmt"
	"net/http"
	"strings"

	"steamparty/backend/internal/config"

	"github.com/gin-gonic/gin"
	gojwt "github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware requires a valid bearer token and sets the caller's Steam
// identity (steamID, username, avatar) on the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing token"})
			return
		}
		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware inspects for a token and sets the identity if
// present and valid, but does not fail if the token is missing or invalid.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseBearer(c.GetHeader("Authorization")); ok {
			setIdentity(c, claims)
		}
		c.Next()
	}
}

func parseBearer(authHeader string) (gojwt.MapClaims, bool) {
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	token, err := gojwt.Parse(parts[1], func(token *gojwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*gojwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(gojwt.MapClaims)
	if !ok {
		return nil, false
	}
	if _, ok := claims["sub"].(string); !ok {
		return nil, false
	}
	return claims, true
}

func setIdentity(c *gin.Context, claims gojwt.MapClaims) {
	c.Set("steamID", claims["sub"].(string))
	if name, ok := claims["name"].(string); ok {
		c.Set("username", name)
	}
	if avatar, ok := claims["avatar"].(string); ok {
		c.Set("avatar", avatar)
	}
}
