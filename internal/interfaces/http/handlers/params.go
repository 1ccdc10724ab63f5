package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"gymstack/internal/domain/permission"
	"gymstack/internal/shared/constants"
	"gymstack/internal/shared/errors"
)

// actorRole reads the authenticated caller's role from the request context.
// The auth middleware guarantees it is set on protected routes.
func actorRole(c *gin.Context) permission.Role {
	return permission.Role(c.GetString(constants.ContextKeyUserRole))
}

func actorOrgID(c *gin.Context) uint {
	return c.GetUint(constants.ContextKeyOrgID)
}

func actorUserID(c *gin.Context) uint {
	return c.GetUint(constants.ContextKeyUserID)
}

func parseQueryUint(raw, name string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + name + " parameter")
	}
	return uint(id), nil
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + name + " parameter")
	}
	return uint(id), nil
}
