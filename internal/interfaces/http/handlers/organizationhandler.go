package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymstack/internal/application/organization/usecases"
	"gymstack/internal/shared/logger"
	"gymstack/internal/shared/utils"
)

type OrganizationHandler struct {
	createOrganizationUC *usecases.CreateOrganizationUseCase
	getOrganizationUC    *usecases.GetOrganizationUseCase
	listOrganizationsUC  *usecases.ListOrganizationsUseCase
	updateSettingsUC     *usecases.UpdateOrganizationSettingsUseCase
	upgradePlanUC        *usecases.UpgradeOrganizationPlanUseCase
	deleteOrganizationUC *usecases.DeleteOrganizationUseCase
	logger               logger.Interface
}

func NewOrganizationHandler(
	createOrganizationUC *usecases.CreateOrganizationUseCase,
	getOrganizationUC *usecases.GetOrganizationUseCase,
	listOrganizationsUC *usecases.ListOrganizationsUseCase,
	updateSettingsUC *usecases.UpdateOrganizationSettingsUseCase,
	upgradePlanUC *usecases.UpgradeOrganizationPlanUseCase,
	deleteOrganizationUC *usecases.DeleteOrganizationUseCase,
) *OrganizationHandler {
	return &OrganizationHandler{
		createOrganizationUC: createOrganizationUC,
		getOrganizationUC:    getOrganizationUC,
		listOrganizationsUC:  listOrganizationsUC,
		updateSettingsUC:     updateSettingsUC,
		upgradePlanUC:        upgradePlanUC,
		deleteOrganizationUC: deleteOrganizationUC,
		logger:               logger.NewLogger(),
	}
}

type CreateOrganizationRequest struct {
	Name          string `json:"name" binding:"required"`
	Slug          string `json:"slug"`
	PlanSlug      string `json:"plan_slug"`
	OwnerUserID   uint   `json:"owner_user_id"`
	OwnerEmail    string `json:"owner_email"`
	OwnerName     string `json:"owner_name"`
	OwnerPassword string `json:"owner_password"`
}

type UpdateOrganizationSettingsRequest struct {
	Name     string         `json:"name"`
	ImageURL *string        `json:"image_url"`
	Config   map[string]any `json:"config"`
}

type UpgradeOrganizationPlanRequest struct {
	PlanSlug  string `json:"plan_slug" binding:"required"`
	PricePaid uint64 `json:"price_paid"`
}

func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var req CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create organization", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateOrganizationCommand{
		ActorRole:     actorRole(c),
		Name:          req.Name,
		Slug:          req.Slug,
		PlanSlug:      req.PlanSlug,
		OwnerUserID:   req.OwnerUserID,
		OwnerEmail:    req.OwnerEmail,
		OwnerName:     req.OwnerName,
		OwnerPassword: req.OwnerPassword,
	}

	result, err := h.createOrganizationUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Organization created successfully")
}

// GetOrganization returns the caller's own organization with its plan limits.
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	query := usecases.GetOrganizationQuery{
		ActorRole:      actorRole(c),
		OrganizationID: actorOrgID(c),
	}

	result, err := h.getOrganizationUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := usecases.ListOrganizationsQuery{
		ActorRole:  actorRole(c),
		Pagination: pagination,
	}

	result, err := h.listOrganizationsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Organizations, result.Total, pagination.Page, pagination.PageSize)
}

func (h *OrganizationHandler) UpdateSettings(c *gin.Context) {
	var req UpdateOrganizationSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update organization settings", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateOrganizationSettingsCommand{
		ActorRole:      actorRole(c),
		OrganizationID: actorOrgID(c),
		Name:           req.Name,
		ImageURL:       req.ImageURL,
		Config:         req.Config,
	}

	result, err := h.updateSettingsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Organization updated successfully", result)
}

// UpgradePlan switches an organization to a new billing plan. Admin-only,
// takes the target organization from the path.
func (h *OrganizationHandler) UpgradePlan(c *gin.Context) {
	organizationID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpgradeOrganizationPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for upgrade plan",
			"organization_id", organizationID,
			"error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpgradeOrganizationPlanCommand{
		ActorRole:      actorRole(c),
		OrganizationID: organizationID,
		PlanSlug:       req.PlanSlug,
		PricePaid:      req.PricePaid,
	}

	result, err := h.upgradePlanUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Organization plan upgraded successfully", result)
}

func (h *OrganizationHandler) DeleteOrganization(c *gin.Context) {
	organizationID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteOrganizationCommand{
		ActorRole:      actorRole(c),
		OrganizationID: organizationID,
	}

	if err := h.deleteOrganizationUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Organization deleted successfully", nil)
}
