package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymstack/internal/application/staff/usecases"
	"gymstack/internal/domain/permission"
	"gymstack/internal/shared/logger"
	"gymstack/internal/shared/utils"
)

type StaffHandler struct {
	createStaffUC     *usecases.CreateStaffUseCase
	listStaffUC       *usecases.ListStaffUseCase
	updateStaffRoleUC *usecases.UpdateStaffRoleUseCase
	logger            logger.Interface
}

func NewStaffHandler(
	createStaffUC *usecases.CreateStaffUseCase,
	listStaffUC *usecases.ListStaffUseCase,
	updateStaffRoleUC *usecases.UpdateStaffRoleUseCase,
) *StaffHandler {
	return &StaffHandler{
		createStaffUC:     createStaffUC,
		listStaffUC:       listStaffUC,
		updateStaffRoleUC: updateStaffRoleUC,
		logger:            logger.NewLogger(),
	}
}

type CreateStaffRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
}

type UpdateStaffRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create staff", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateStaffCommand{
		ActorRole:      actorRole(c),
		OrganizationID: actorOrgID(c),
		Email:          req.Email,
		Name:           req.Name,
		Password:       req.Password,
		Role:           permission.Role(req.Role),
	}

	result, err := h.createStaffUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Staff account created successfully")
}

func (h *StaffHandler) ListStaff(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := usecases.ListStaffQuery{
		ActorRole:      actorRole(c),
		OrganizationID: actorOrgID(c),
		Pagination:     pagination,
	}

	result, err := h.listStaffUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Staff, result.Total, pagination.Page, pagination.PageSize)
}

func (h *StaffHandler) UpdateStaffRole(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateStaffRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update staff role",
			"user_id", userID,
			"error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateStaffRoleCommand{
		ActorRole:      actorRole(c),
		OrganizationID: actorOrgID(c),
		UserID:         userID,
		Role:           permission.Role(req.Role),
	}

	result, err := h.updateStaffRoleUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Staff role updated successfully", result)
}
