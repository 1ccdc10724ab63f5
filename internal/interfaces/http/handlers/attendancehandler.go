package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"gymstack/internal/application/attendance/usecases"
	"gymstack/internal/shared/logger"
	"gymstack/internal/shared/utils"
)

type AttendanceHandler struct {
	checkInMemberUC  *usecases.CheckInMemberUseCase
	listAttendanceUC *usecases.ListAttendanceUseCase
	logger           logger.Interface
}

func NewAttendanceHandler(
	checkInMemberUC *usecases.CheckInMemberUseCase,
	listAttendanceUC *usecases.ListAttendanceUseCase,
) *AttendanceHandler {
	return &AttendanceHandler{
		checkInMemberUC:  checkInMemberUC,
		listAttendanceUC: listAttendanceUC,
		logger:           logger.NewLogger(),
	}
}

type CheckInRequest struct {
	MemberID    uint       `json:"member_id" binding:"required"`
	CheckedInAt *time.Time `json:"checked_in_at"`
}

func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for check-in", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CheckInMemberCommand{
		ActorRole:      actorRole(c),
		ActorUserID:    actorUserID(c),
		OrganizationID: actorOrgID(c),
		MemberID:       req.MemberID,
	}
	if req.CheckedInAt != nil {
		cmd.CheckedInAt = *req.CheckedInAt
	}

	result, err := h.checkInMemberUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Member checked in successfully")
}

// ListAttendance lists check-in records for the organization, optionally
// filtered by member via the member_id query parameter.
func (h *AttendanceHandler) ListAttendance(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := usecases.ListAttendanceQuery{
		ActorRole:      actorRole(c),
		OrganizationID: actorOrgID(c),
		Pagination:     pagination,
	}
	if raw := c.Query("member_id"); raw != "" {
		memberID, err := parseQueryUint(raw, "member_id")
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		query.MemberID = memberID
	}

	result, err := h.listAttendanceUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Records, result.Total, pagination.Page, pagination.PageSize)
}
