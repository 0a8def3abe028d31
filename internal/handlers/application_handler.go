package handlers

import (
	"net/http"

	"workzo_backend/internal/middleware"
	"workzo_backend/internal/models"
	"workzo_backend/internal/services"
	"workzo_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	applications := r.Group("/applications")
	applications.Use(middleware.AuthMiddleware())
	{
		applications.POST("/:jobId", middleware.RoleMiddleware(models.UserRoleWorker), h.Apply)
		applications.GET("/my", middleware.RoleMiddleware(models.UserRoleWorker), h.MyApplications)
		applications.GET("/job/:jobId", middleware.RoleMiddleware(models.UserRoleEmployer), h.JobApplications)
		applications.PATCH("/accept/:id", middleware.RoleMiddleware(models.UserRoleEmployer), h.Accept)
		applications.PATCH("/reject/:id", middleware.RoleMiddleware(models.UserRoleEmployer), h.Reject)
	}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	workerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	application, err := h.applicationService.Apply(h.GetDB(c), c.Param("jobId"), workerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	workerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	applications, err := h.applicationService.ListByWorker(h.GetDB(c), workerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}

func (h *ApplicationHandler) JobApplications(c *gin.Context) {
	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	applications, err := h.applicationService.ListByJob(h.GetDB(c), c.Param("jobId"), employerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}

func (h *ApplicationHandler) Accept(c *gin.Context) {
	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.applicationService.Accept(h.GetDB(c), c.Param("id"), employerID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Application accepted"})
}

func (h *ApplicationHandler) Reject(c *gin.Context) {
	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.applicationService.Reject(h.GetDB(c), c.Param("id"), employerID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Application rejected"})
}
