package usecases

import (
	"context"

	"gymstack/internal/application/attendance/dto"
	"gymstack/internal/application/authz"
	"gymstack/internal/domain/attendance"
	"gymstack/internal/domain/permission"
	"gymstack/internal/shared/utils"
)

// ListAttendanceQuery lists check-ins for a tenant, optionally narrowed to a
// single member.
type ListAttendanceQuery struct {
	ActorRole      permission.Role
	OrganizationID uint
	MemberID       uint // 0 lists the whole organization
	Pagination     utils.Pagination
}

type ListAttendanceResult struct {
	Records []*dto.AttendanceDTO `json:"records"`
	Total   int64                `json:"total"`
}

type ListAttendanceUseCase struct {
	attendances attendance.Repository
	permissions authz.PermissionService
}

func NewListAttendanceUseCase(attendances attendance.Repository, permissions authz.PermissionService) *ListAttendanceUseCase {
	return &ListAttendanceUseCase{attendances: attendances, permissions: permissions}
}

func (uc *ListAttendanceUseCase) Execute(ctx context.Context, query ListAttendanceQuery) (*ListAttendanceResult, error) {
	if err := uc.permissions.Require(query.ActorRole, permission.AttendanceRead); err != nil {
		return nil, err
	}

	p := utils.ValidatePagination(query.Pagination.Page, query.Pagination.PageSize)

	var (
		records []*attendance.Attendance
		total   int64
		err     error
	)
	if query.MemberID != 0 {
		records, total, err = uc.attendances.ListByMember(ctx, query.MemberID, query.OrganizationID, p.Offset(), p.PageSize)
	} else {
		records, total, err = uc.attendances.ListByOrganization(ctx, query.OrganizationID, p.Offset(), p.PageSize)
	}
	if err != nil {
		return nil, err
	}
	return &ListAttendanceResult{Records: dto.ToAttendanceDTOList(records), Total: total}, nil
}
