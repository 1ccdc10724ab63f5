// Package authz answers "may this role perform this action" questions for the
// rest of the application layer.
package authz

import (
	"fmt"

	"gymstack/internal/domain/permission"
	"gymstack/internal/shared/errors"
	"gymstack/internal/shared/logger"
)

// Enforcer is the policy engine the service consults. *casbin.Enforcer
// satisfies it.
type Enforcer interface {
	Enforce(rvals ...interface{}) (bool, error)
}

// PermissionService checks whether a role may perform an action. Checks are
// deterministic and have no side effects; the underlying policy set is frozen
// at startup.
type PermissionService interface {
	// Can reports whether role is allowed to perform action. Unknown roles
	// are always denied.
	Can(role permission.Role, action permission.Permission) bool

	// Require returns nil when role is allowed to perform action, and a
	// forbidden error naming the role otherwise.
	Require(role permission.Role, action permission.Permission) error
}

type permissionService struct {
	enforcer Enforcer
	logger   logger.Interface
}

// NewPermissionService creates a PermissionService backed by the given policy
// enforcer.
func NewPermissionService(enforcer Enforcer, log logger.Interface) PermissionService {
	return &permissionService{
		enforcer: enforcer,
		logger:   log.Named("authz"),
	}
}

func (s *permissionService) Can(role permission.Role, action permission.Permission) bool {
	if !role.IsValid() {
		return false
	}
	allowed, err := s.enforcer.Enforce(role.String(), action.String())
	if err != nil {
		s.logger.Errorw("permission check failed",
			"role", role.String(),
			"action", action.String(),
			"error", err,
		)
		return false
	}
	return allowed
}

func (s *permissionService) Require(role permission.Role, action permission.Permission) error {
	if s.Can(role, action) {
		return nil
	}
	label := role.DisplayLabel()
	if label == "" {
		return errors.NewForbiddenError("permission denied",
			fmt.Sprintf("action %s requires a valid role", action))
	}
	return errors.NewForbiddenError(
		fmt.Sprintf("%s is not allowed to perform %s", label, action))
}
