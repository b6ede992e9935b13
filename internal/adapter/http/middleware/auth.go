package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/core/ports"
	"taskboard/pkg/apierrors"
)

// RequireSession rejects requests while no user is signed in.
func RequireSession(auth ports.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !auth.Current().Authenticated {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthenticated, GetLang(c)),
			)
			return
		}
		c.Next()
	}
}
