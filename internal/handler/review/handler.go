package review

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kenemosam/saluni/internal/middleware"
	"github.com/kenemosam/saluni/internal/model"
	reviewsvc "github.com/kenemosam/saluni/internal/service/review"
	apperrors "github.com/kenemosam/saluni/pkg/errors"
	"github.com/kenemosam/saluni/pkg/httputil"
)

type Handler struct {
	service *reviewsvc.Service
}

func NewHandler(service *reviewsvc.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, auth *middleware.AuthMiddleware) {
	r.GET("/salons/:id/reviews", h.ListBySalon)

	protected := r.Group("", auth.Authenticate())
	protected.POST("/bookings/:id/review", h.Create)
	protected.GET("/bookings/:id/review", h.GetByBooking)
}

func (h *Handler) Create(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid booking ID", err))
		return
	}

	var req model.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.Validation(err.Error(), err))
		return
	}

	claims := middleware.ClaimsFromContext(c)
	review, err := h.service.CreateReview(c.Request.Context(), claims, bookingID, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, review)
}

func (h *Handler) GetByBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid booking ID", err))
		return
	}

	review, err := h.service.GetByBooking(c.Request.Context(), bookingID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, review)
}

func (h *Handler) ListBySalon(c *gin.Context) {
	salonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid salon ID", err))
		return
	}

	reviews, err := h.service.ListBySalon(c.Request.Context(), salonID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, reviews)
}
