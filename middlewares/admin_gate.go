package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/astrenrest/storefront/utils"
)

// AdminGate unlocks the content-editing surface with a single shared
// secret compared for exact match. This is a casual access gate, not a
// security boundary.
func AdminGate(password string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-Admin-Password") != password {
			utils.RespondError(c, http.StatusForbidden, errors.New("incorrect password"))
			c.Abort()
			return
		}
		c.Next()
	}
}
