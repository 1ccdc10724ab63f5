package member

import "errors"

var (
	// ErrMemberNotFound is returned when a member is not found
	ErrMemberNotFound = errors.New("member not found")

	// ErrMemberHasOpenMembership is returned when deletion is attempted while
	// an active or pending membership exists
	ErrMemberHasOpenMembership = errors.New("member has an active or pending membership")
)
