package handlers

import (
	"net/http"

	"workzo_backend/internal/middleware"
	"workzo_backend/internal/models"
	"workzo_backend/internal/services"
	"workzo_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobStatusHandler struct {
	*BaseHandler
	jobStatusService services.JobStatusService
}

func NewJobStatusHandler(base *BaseHandler, jobStatusService services.JobStatusService) *JobStatusHandler {
	return &JobStatusHandler{
		BaseHandler:      base,
		jobStatusService: jobStatusService,
	}
}

func (h *JobStatusHandler) RegisterRoutes(r *gin.RouterGroup) {
	jobStatus := r.Group("/job-status")
	jobStatus.Use(middleware.AuthMiddleware())
	{
		jobStatus.GET("", h.ListMine)
		jobStatus.POST("/:appId", h.EnsureCreated)
		jobStatus.PATCH("/:id/complete", middleware.RoleMiddleware(models.UserRoleEmployer), h.Complete)
	}
}

func (h *JobStatusHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	statuses, err := h.jobStatusService.ListForUser(h.GetDB(c), userID, middleware.GetUserRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, statuses)
}

func (h *JobStatusHandler) EnsureCreated(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	status, err := h.jobStatusService.EnsureCreated(h.GetDB(c), c.Param("appId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

func (h *JobStatusHandler) Complete(c *gin.Context) {
	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	// Rating is optional; completion without a body is legal.
	var req dto.CompleteJobRequest
	if c.Request.ContentLength > 0 && !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.jobStatusService.Complete(h.GetDB(c), c.Param("id"), employerID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Job completed and review saved"})
}
