package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bahikhata/internal/domain"
	authsvc "bahikhata/internal/service/auth"
)

type ctxKey string

const ownerCtxKey ctxKey = "storeOwner"

// authMiddleware resolves the bearer token to a store owner and stashes it in
// the request context. Every failure surfaces as 401; the token is never
// logged.
func authMiddleware(svc AuthService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		owner, err := svc.Resolve(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, authsvc.ErrInvalidSession) {
				logger.Printf("auth middleware: resolve session: %v", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), ownerCtxKey, owner)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

func ownerFrom(c *gin.Context) *domain.StoreOwner {
	owner, _ := c.Request.Context().Value(ownerCtxKey).(*domain.StoreOwner)
	return owner
}
