package attendance

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, a *Attendance) error
	// ExistsInWindow reports whether the member has a check-in within [start, end).
	ExistsInWindow(ctx context.Context, memberID, organizationID uint, start, end time.Time) (bool, error)
	ListByOrganization(ctx context.Context, organizationID uint, offset, limit int) ([]*Attendance, int64, error)
	ListByMember(ctx context.Context, memberID, organizationID uint, offset, limit int) ([]*Attendance, int64, error)
}
