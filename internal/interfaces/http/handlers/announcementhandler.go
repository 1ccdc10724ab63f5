package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymstack/internal/application/announcement/usecases"
	"gymstack/internal/shared/logger"
	"gymstack/internal/shared/utils"
)

type AnnouncementHandler struct {
	createAnnouncementUC *usecases.CreateAnnouncementUseCase
	listAnnouncementsUC  *usecases.ListAnnouncementsUseCase
	deleteAnnouncementUC *usecases.DeleteAnnouncementUseCase
	logger               logger.Interface
}

func NewAnnouncementHandler(
	createAnnouncementUC *usecases.CreateAnnouncementUseCase,
	listAnnouncementsUC *usecases.ListAnnouncementsUseCase,
	deleteAnnouncementUC *usecases.DeleteAnnouncementUseCase,
) *AnnouncementHandler {
	return &AnnouncementHandler{
		createAnnouncementUC: createAnnouncementUC,
		listAnnouncementsUC:  listAnnouncementsUC,
		deleteAnnouncementUC: deleteAnnouncementUC,
		logger:               logger.NewLogger(),
	}
}

type CreateAnnouncementRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
}

func (h *AnnouncementHandler) CreateAnnouncement(c *gin.Context) {
	var req CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create announcement", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateAnnouncementCommand{
		ActorRole:      actorRole(c),
		ActorUserID:    actorUserID(c),
		OrganizationID: actorOrgID(c),
		Title:          req.Title,
		Body:           req.Body,
	}

	result, err := h.createAnnouncementUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Announcement published successfully")
}

func (h *AnnouncementHandler) ListAnnouncements(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := usecases.ListAnnouncementsQuery{
		ActorRole:      actorRole(c),
		OrganizationID: actorOrgID(c),
		Pagination:     pagination,
	}

	result, err := h.listAnnouncementsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Announcements, result.Total, pagination.Page, pagination.PageSize)
}

func (h *AnnouncementHandler) DeleteAnnouncement(c *gin.Context) {
	announcementID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteAnnouncementCommand{
		ActorRole:      actorRole(c),
		OrganizationID: actorOrgID(c),
		AnnouncementID: announcementID,
	}

	if err := h.deleteAnnouncementUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Announcement deleted successfully", nil)
}
