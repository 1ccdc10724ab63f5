package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymstack/internal/application/plan/usecases"
	"gymstack/internal/shared/logger"
	"gymstack/internal/shared/utils"
)

type PlanHandler struct {
	createPlanUC *usecases.CreatePlanUseCase
	updatePlanUC *usecases.UpdatePlanUseCase
	listPlansUC  *usecases.ListPlansUseCase
	deletePlanUC *usecases.DeletePlanUseCase
	logger       logger.Interface
}

func NewPlanHandler(
	createPlanUC *usecases.CreatePlanUseCase,
	updatePlanUC *usecases.UpdatePlanUseCase,
	listPlansUC *usecases.ListPlansUseCase,
	deletePlanUC *usecases.DeletePlanUseCase,
) *PlanHandler {
	return &PlanHandler{
		createPlanUC: createPlanUC,
		updatePlanUC: updatePlanUC,
		listPlansUC:  listPlansUC,
		deletePlanUC: deletePlanUC,
		logger:       logger.NewLogger(),
	}
}

type CreatePlanRequest struct {
	Name         string `json:"name" binding:"required"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	Price        uint64 `json:"price"`
	Currency     string `json:"currency"`
	DurationDays int    `json:"duration_days" binding:"required,min=1"`
}

type UpdatePlanRequest struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        *uint64 `json:"price"`
	DurationDays *int    `json:"duration_days"`
	Archive      bool    `json:"archive"`
}

func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create plan", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreatePlanCommand{
		ActorRole:      actorRole(c),
		OrganizationID: actorOrgID(c),
		Name:           req.Name,
		Slug:           req.Slug,
		Description:    req.Description,
		Price:          req.Price,
		Currency:       req.Currency,
		DurationDays:   req.DurationDays,
	}

	result, err := h.createPlanUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Plan created successfully")
}

func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update plan",
			"plan_id", planID,
			"error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdatePlanCommand{
		ActorRole:      actorRole(c),
		OrganizationID: actorOrgID(c),
		PlanID:         planID,
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		DurationDays:   req.DurationDays,
		Archive:        req.Archive,
	}

	result, err := h.updatePlanUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan updated successfully", result)
}

func (h *PlanHandler) ListPlans(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := usecases.ListPlansQuery{
		ActorRole:      actorRole(c),
		OrganizationID: actorOrgID(c),
		Pagination:     pagination,
	}

	result, err := h.listPlansUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Plans, result.Total, pagination.Page, pagination.PageSize)
}

func (h *PlanHandler) DeletePlan(c *gin.Context) {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeletePlanCommand{
		ActorRole:      actorRole(c),
		OrganizationID: actorOrgID(c),
		PlanID:         planID,
	}

	if err := h.deletePlanUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan deleted successfully", nil)
}
