package middleware

import (
	"net/http"
	"strings"

	"backoffice/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const requestCtxKey = "request_ctx"

// Auth validates the operator's bearer JWT and stores the request context for
// handlers. Unauthenticated requests never reach a handler.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		const prefix = "Bearer "
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, prefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		raw := strings.TrimSpace(header[len(prefix):])
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		parsed, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !parsed.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		rc := domain.RequestContext{}
		if claims, ok := parsed.Claims.(jwt.MapClaims); ok {
			if v, ok := claims["user_id"].(float64); ok {
				rc.UserID = domain.ID(v)
			}
			if v, ok := claims["role"].(string); ok {
				rc.Role = v
			}
		}
		c.Set(requestCtxKey, rc)
		c.Next()
	}
}

// GetRequestContext returns the authenticated operator info, zero when the
// route skipped auth.
func GetRequestContext(c *gin.Context) domain.RequestContext {
	if c == nil {
		return domain.RequestContext{}
	}
	if v, ok := c.Get(requestCtxKey); ok {
		if rc, ok := v.(domain.RequestContext); ok {
			return rc
		}
	}
	return domain.RequestContext{}
}
