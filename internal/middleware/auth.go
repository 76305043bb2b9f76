package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/vidtube/vidtube_backend/internal/utils"
)

// extractAccessToken pulls the access token from the accessToken cookie or,
// failing that, from a Bearer Authorization header.
func extractAccessToken(c *gin.Context, cookieName string) string {
	if token, err := c.Cookie(cookieName); err == nil && token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
		return parts[1]
	}
	return ""
}

// setAuthenticatedUser stores the user ID in the request context and enriches
// the request-scoped logger with it.
func setAuthenticatedUser(c *gin.Context, userID string) {
	logger := GetLoggerFromCtx(c.Request.Context())

	ctxWithUser := context.WithValue(c.Request.Context(), userIDKey, userID)
	enrichedLogger := logger.With(slog.String("user_id", userID))
	ctxWithLoggerAndUser := context.WithValue(ctxWithUser, loggerCtxKey, enrichedLogger)

	c.Request = c.Request.WithContext(ctxWithLoggerAndUser)
}

// AuthMiddleware creates a Gin middleware handler that requires a valid access
// token, from the accessToken cookie or a Bearer header.
func AuthMiddleware(accessTokenSecret string, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString := extractAccessToken(c, cookieName)
		if tokenString == "" {
			logger.Warn("Access token missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": http.StatusUnauthorized, "data": nil, "message": "Access token required"})
			return
		}

		claims, err := utils.ParseAndValidateJWT(tokenString, accessTokenSecret)
		if err != nil {
			logger.Warn("Invalid access token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": http.StatusUnauthorized, "data": nil, "message": msg})
			return
		}

		if claims.Subject == "" {
			logger.Error("User ID (subject) missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": http.StatusUnauthorized, "data": nil, "message": "Invalid token claims"})
			return
		}

		setAuthenticatedUser(c, claims.Subject)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the user ID when a valid access token is
// present but lets anonymous requests through untouched. Used by endpoints
// whose response is viewer-relative, like the channel profile.
func OptionalAuthMiddleware(accessTokenSecret string, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractAccessToken(c, cookieName)
		if tokenString != "" {
			if claims, err := utils.ParseAndValidateJWT(tokenString, accessTokenSecret); err == nil && claims.Subject != "" {
				setAuthenticatedUser(c, claims.Subject)
			}
		}
		c.Next()
	}
}
