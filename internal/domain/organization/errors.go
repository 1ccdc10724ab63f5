package organization

import "errors"

var (
	// ErrOrganizationNotFound is returned when an organization is not found
	ErrOrganizationNotFound = errors.New("organization not found")

	// ErrDuplicateSlug is returned when the slug is already taken
	ErrDuplicateSlug = errors.New("organization slug already exists")

	// ErrOrganizationInactive is returned when an operation requires an active organization
	ErrOrganizationInactive = errors.New("organization is inactive")
)
