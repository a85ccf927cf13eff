package payment

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kenemosam/saluni/internal/middleware"
	"github.com/kenemosam/saluni/internal/model"
	paymentsvc "github.com/kenemosam/saluni/internal/service/payment"
	apperrors "github.com/kenemosam/saluni/pkg/errors"
	"github.com/kenemosam/saluni/pkg/httputil"
)

type Handler struct {
	service *paymentsvc.Service
}

func NewHandler(service *paymentsvc.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, auth *middleware.AuthMiddleware) {
	protected := r.Group("", auth.Authenticate())
	protected.POST("/bookings/:id/payment", h.Create)
	protected.GET("/bookings/:id/payment", h.GetByBooking)
	protected.PUT("/payments/:id/status", h.UpdateStatus)
}

func (h *Handler) Create(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid booking ID", err))
		return
	}

	var req model.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.Validation(err.Error(), err))
		return
	}

	claims := middleware.ClaimsFromContext(c)
	payment, err := h.service.CreatePayment(c.Request.Context(), claims, bookingID, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, payment)
}

func (h *Handler) GetByBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid booking ID", err))
		return
	}

	payment, err := h.service.GetByBooking(c.Request.Context(), bookingID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, payment)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid payment ID", err))
		return
	}

	var req model.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.Validation(err.Error(), err))
		return
	}

	payment, err := h.service.UpdateStatus(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, payment)
}
