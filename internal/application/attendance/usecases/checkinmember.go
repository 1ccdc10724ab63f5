package usecases

import (
	"context"
	"errors"
	"time"

	"gymstack/internal/application/attendance/dto"
	"gymstack/internal/application/authz"
	"gymstack/internal/domain/attendance"
	"gymstack/internal/domain/member"
	"gymstack/internal/domain/permission"
	"gymstack/internal/shared/biztime"
	apperrors "gymstack/internal/shared/errors"
	"gymstack/internal/shared/logger"
)

// CheckInMemberCommand records a member check-in. One check-in per member per
// business-timezone calendar day; a second one the same day is rejected.
type CheckInMemberCommand struct {
	ActorRole      permission.Role
	ActorUserID    uint
	OrganizationID uint
	MemberID       uint
	CheckedInAt    time.Time // zero means now
}

type CheckInMemberUseCase struct {
	attendances attendance.Repository
	members     member.Repository
	permissions authz.PermissionService
	logger      logger.Interface
}

func NewCheckInMemberUseCase(
	attendances attendance.Repository,
	members member.Repository,
	permissions authz.PermissionService,
	logger logger.Interface,
) *CheckInMemberUseCase {
	return &CheckInMemberUseCase{
		attendances: attendances,
		members:     members,
		permissions: permissions,
		logger:      logger,
	}
}

func (uc *CheckInMemberUseCase) Execute(ctx context.Context, cmd CheckInMemberCommand) (*dto.AttendanceDTO, error) {
	if err := uc.permissions.Require(cmd.ActorRole, permission.AttendanceCreate); err != nil {
		return nil, err
	}

	m, err := uc.members.GetByID(ctx, cmd.MemberID, cmd.OrganizationID)
	if err != nil {
		if errors.Is(err, member.ErrMemberNotFound) {
			return nil, apperrors.NewNotFoundError("member not found")
		}
		return nil, err
	}
	if !m.IsActive() {
		return nil, apperrors.NewConflictError("member has no active membership")
	}

	checkedInAt := cmd.CheckedInAt
	if checkedInAt.IsZero() {
		checkedInAt = time.Now()
	}

	dayStart, dayEnd := biztime.DayBounds(checkedInAt)
	exists, err := uc.attendances.ExistsInWindow(ctx, cmd.MemberID, cmd.OrganizationID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflictError(attendance.ErrAlreadyCheckedIn.Error())
	}

	record, err := attendance.NewAttendance(cmd.OrganizationID, cmd.MemberID, cmd.ActorUserID, checkedInAt)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.attendances.Create(ctx, record); err != nil {
		return nil, err
	}

	uc.logger.Infow("member checked in",
		"organization_id", cmd.OrganizationID,
		"member_id", cmd.MemberID,
	)
	return dto.ToAttendanceDTO(record), nil
}
