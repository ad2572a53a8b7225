package middleware

import (
	"log"
	"net/http"
	"strings"

	"salamatlab/pkg"
	"salamatlab/pkg/auth"

	"github.com/gin-gonic/gin"
)

const (
	HeaderUserID     = "X-User-ID"
	contextUserIDKey = "user_id"
	bearerPrefix     = "Bearer "
)

// Identity resolves the calling user. With a JWT secret configured the user
// id comes from a Bearer token; otherwise the X-User-ID header is trusted.
func Identity(jwtSecret string) gin.HandlerFunc {
	secret := []byte(jwtSecret)
	return func(c *gin.Context) {
		var userID string
		if len(secret) > 0 {
			header := c.GetHeader("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				abortUnauthorized(c, "missing bearer token")
				return
			}
			claims, err := auth.ParseToken(secret, strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
			if err != nil {
				log.Printf("[auth][middleware] token rejected path=%s err=%v", c.FullPath(), err)
				abortUnauthorized(c, "invalid token")
				return
			}
			userID = claims.UserID
		} else {
			userID = strings.TrimSpace(c.GetHeader(HeaderUserID))
			if userID == "" {
				abortUnauthorized(c, "missing "+HeaderUserID+" header")
				return
			}
		}

		c.Set(contextUserIDKey, userID)
		c.Next()
	}
}

// UserID returns the id stored by Identity, or "" outside it.
func UserID(c *gin.Context) string {
	return c.GetString(contextUserIDKey)
}

func abortUnauthorized(c *gin.Context, msg string) {
	appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", msg, http.StatusUnauthorized)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
