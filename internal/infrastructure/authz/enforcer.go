// Package authz builds the process-wide casbin enforcer from the static
// role-to-permission table. The policy set is loaded once at startup and never
// mutated afterwards; there is no storage adapter on purpose.
package authz

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"gymstack/internal/domain/permission"
)

const rbacModel = `
[request_definition]
r = sub, obj

[policy_definition]
p = sub, obj

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj
`

// NewEnforcer creates a casbin enforcer preloaded with one policy rule per
// (role, permission) pair from the static table.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to build authorization model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create enforcer: %w", err)
	}

	var rules [][]string
	for _, role := range permission.AllRoles {
		for _, p := range permission.PermissionsForRole(role) {
			rules = append(rules, []string{role.String(), p.String()})
		}
	}
	if _, err := enforcer.AddPolicies(rules); err != nil {
		return nil, fmt.Errorf("failed to load policies: %w", err)
	}

	return enforcer, nil
}

// MustNewEnforcer is NewEnforcer that panics on error, for wiring at startup.
func MustNewEnforcer() *casbin.Enforcer {
	enforcer, err := NewEnforcer()
	if err != nil {
		panic(err)
	}
	return enforcer
}
