package handlers

import (
	"net/http"

	"workzo_backend/internal/middleware"
	"workzo_backend/internal/models"
	"workzo_backend/internal/services"
	"workzo_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   base,
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) RegisterRoutes(r *gin.RouterGroup) {
	reviews := r.Group("/reviews")
	{
		reviews.POST("", middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleEmployer), h.Submit)
		// Worker reviews are public.
		reviews.GET("/:workerId", h.ListForWorker)
	}
}

func (h *ReviewHandler) Submit(c *gin.Context) {
	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.reviewService.Submit(h.GetDB(c), employerID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Review submitted & rating updated"})
}

func (h *ReviewHandler) ListForWorker(c *gin.Context) {
	reviews, err := h.reviewService.ListForWorker(h.GetDB(c), c.Param("workerId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}
