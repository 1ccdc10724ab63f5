package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gymstack/internal/application/membership/usecases"
	"gymstack/internal/shared/logger"
	"gymstack/internal/shared/utils"
)

type MembershipHandler struct {
	createMembershipUC  *usecases.CreateMembershipUseCase
	cancelMembershipUC  *usecases.CancelMembershipUseCase
	deleteMembershipUC  *usecases.DeleteMembershipUseCase
	restoreMembershipUC *usecases.RestoreMembershipUseCase
	listMembershipsUC   *usecases.ListMembershipsUseCase
	logger              logger.Interface
}

func NewMembershipHandler(
	createMembershipUC *usecases.CreateMembershipUseCase,
	cancelMembershipUC *usecases.CancelMembershipUseCase,
	deleteMembershipUC *usecases.DeleteMembershipUseCase,
	restoreMembershipUC *usecases.RestoreMembershipUseCase,
	listMembershipsUC *usecases.ListMembershipsUseCase,
) *MembershipHandler {
	return &MembershipHandler{
		createMembershipUC:  createMembershipUC,
		cancelMembershipUC:  cancelMembershipUC,
		deleteMembershipUC:  deleteMembershipUC,
		restoreMembershipUC: restoreMembershipUC,
		listMembershipsUC:   listMembershipsUC,
		logger:              logger.NewLogger(),
	}
}

type CreateMembershipRequest struct {
	MemberID         uint       `json:"member_id" binding:"required"`
	PlanID           uint       `json:"plan_id" binding:"required"`
	PricePaid        *uint64    `json:"price_paid"`
	StartDate        *time.Time `json:"start_date"`
	EndDate          *time.Time `json:"end_date"`
	StartImmediately bool       `json:"start_immediately"`
}

func (h *MembershipHandler) CreateMembership(c *gin.Context) {
	var req CreateMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create membership", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateMembershipCommand{
		ActorRole:        actorRole(c),
		OrganizationID:   actorOrgID(c),
		MemberID:         req.MemberID,
		PlanID:           req.PlanID,
		PricePaid:        req.PricePaid,
		StartImmediately: req.StartImmediately,
	}
	if req.StartDate != nil {
		cmd.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		cmd.EndDate = *req.EndDate
	}

	result, err := h.createMembershipUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Membership created successfully")
}

func (h *MembershipHandler) CancelMembership(c *gin.Context) {
	membershipID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CancelMembershipCommand{
		ActorRole:      actorRole(c),
		OrganizationID: actorOrgID(c),
		MembershipID:   membershipID,
	}

	result, err := h.cancelMembershipUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Membership cancelled successfully", result)
}

func (h *MembershipHandler) DeleteMembership(c *gin.Context) {
	membershipID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteMembershipCommand{
		ActorRole:      actorRole(c),
		OrganizationID: actorOrgID(c),
		MembershipID:   membershipID,
	}

	if err := h.deleteMembershipUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Membership deleted successfully", nil)
}

func (h *MembershipHandler) RestoreMembership(c *gin.Context) {
	membershipID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.RestoreMembershipCommand{
		ActorRole:      actorRole(c),
		OrganizationID: actorOrgID(c),
		MembershipID:   membershipID,
	}

	result, err := h.restoreMembershipUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Membership restored successfully", result)
}

// ListMemberships lists memberships for the organization, optionally filtered
// by member via the member_id query parameter.
func (h *MembershipHandler) ListMemberships(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := usecases.ListMembershipsQuery{
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

	result, err := h.listMembershipsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Memberships, result.Total, pagination.Page, pagination.PageSize)
}
