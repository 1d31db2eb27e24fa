package middleware

import (
	"net/http"

	"go-people/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Identity copies the caller's employee id from the X-Employee-ID header
// into the gin context. The header is supplied by the fronting gateway and
// trusted as-is; this service does not authenticate.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		employeeID := c.GetHeader("X-Employee-ID")
		if employeeID == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Caller identity is missing", nil)
			c.Abort()
			return
		}

		if _, err := uuid.Parse(employeeID); err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Caller identity is malformed", nil)
			c.Abort()
			return
		}

		c.Set("employee_id", employeeID)
		c.Next()
	}
}
