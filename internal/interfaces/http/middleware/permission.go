package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymstack/internal/application/authz"
	"gymstack/internal/domain/permission"
	"gymstack/internal/shared/constants"
	"gymstack/internal/shared/utils"
)

// RequirePermission gates a route on a single permission. Fine-grained checks
// still run inside the use cases; this rejects obviously unauthorized calls
// before any work happens.
func RequirePermission(permissions authz.PermissionService, action permission.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := permission.Role(c.GetString(constants.ContextKeyUserRole))
		if err := permissions.Require(role, action); err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireGod restricts a route group to the platform operator role.
func RequireGod() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := permission.Role(c.GetString(constants.ContextKeyUserRole))
		if role != permission.RoleGod {
			utils.ErrorResponse(c, http.StatusForbidden, "platform operator access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
