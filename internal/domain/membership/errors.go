package membership

import (
	"errors"
	"fmt"
)

var (
	// ErrMembershipNotFound is returned when a membership is not found
	ErrMembershipNotFound = errors.New("membership not found")

	// ErrDuplicateOpenMembership is returned when the member already has an
	// active or pending membership
	ErrDuplicateOpenMembership = errors.New("member already has an active or pending membership")

	// ErrMembershipNotDeleted is returned when restore is attempted on a
	// membership that is not soft-deleted
	ErrMembershipNotDeleted = errors.New("membership is not deleted")
)

// ErrInvalidStatusTransition returns an error for invalid status transitions
func ErrInvalidStatusTransition(from, to Status) error {
	return fmt.Errorf("invalid membership status transition from %s to %s", from, to)
}
