package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymstack/internal/application/member/usecases"
	"gymstack/internal/shared/logger"
	"gymstack/internal/shared/utils"
)

type MemberHandler struct {
	createMemberUC *usecases.CreateMemberUseCase
	getMemberUC    *usecases.GetMemberUseCase
	listMembersUC  *usecases.ListMembersUseCase
	updateMemberUC *usecases.UpdateMemberUseCase
	deleteMemberUC *usecases.DeleteMemberUseCase
	logger         logger.Interface
}

func NewMemberHandler(
	createMemberUC *usecases.CreateMemberUseCase,
	getMemberUC *usecases.GetMemberUseCase,
	listMembersUC *usecases.ListMembersUseCase,
	updateMemberUC *usecases.UpdateMemberUseCase,
	deleteMemberUC *usecases.DeleteMemberUseCase,
) *MemberHandler {
	return &MemberHandler{
		createMemberUC: createMemberUC,
		getMemberUC:    getMemberUC,
		listMembersUC:  listMembersUC,
		updateMemberUC: updateMemberUC,
		deleteMemberUC: deleteMemberUC,
		logger:         logger.NewLogger(),
	}
}

type CreateMemberRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone"`
}

type UpdateMemberRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create member", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateMemberCommand{
		ActorRole:      actorRole(c),
		OrganizationID: actorOrgID(c),
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
	}

	result, err := h.createMemberUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Member created successfully")
}

func (h *MemberHandler) GetMember(c *gin.Context) {
	memberID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetMemberQuery{
		ActorRole:      actorRole(c),
		OrganizationID: actorOrgID(c),
		MemberID:       memberID,
	}

	result, err := h.getMemberUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *MemberHandler) ListMembers(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := usecases.ListMembersQuery{
		ActorRole:      actorRole(c),
		OrganizationID: actorOrgID(c),
		Pagination:     pagination,
	}

	result, err := h.listMembersUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Members, result.Total, pagination.Page, pagination.PageSize)
}

func (h *MemberHandler) UpdateMember(c *gin.Context) {
	memberID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update member",
			"member_id", memberID,
			"error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateMemberCommand{
		ActorRole:      actorRole(c),
		OrganizationID: actorOrgID(c),
		MemberID:       memberID,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Notes:          req.Notes,
	}

	result, err := h.updateMemberUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Member updated successfully", result)
}

func (h *MemberHandler) DeleteMember(c *gin.Context) {
	memberID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteMemberCommand{
		ActorRole:      actorRole(c),
		OrganizationID: actorOrgID(c),
		MemberID:       memberID,
	}

	if err := h.deleteMemberUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Member deleted successfully", nil)
}
