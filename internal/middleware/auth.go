package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/config"
	"github.com/Netzalist-GmbH-Co-KG/virtualmuseum-sub001/internal/modules/serializer"
)

// APIKeyAuth returns a middleware that authenticates requests against the
// configured installation key. Clients send it either as an x-api-key
// header or as a bearer token.
func APIKeyAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("x-api-key")
		if key == "" {
			auth := c.GetHeader("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				key = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(cfg.Auth.ApiKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}
		c.Next()
	}
}
