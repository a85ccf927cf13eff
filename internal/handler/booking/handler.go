package booking

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kenemosam/saluni/internal/middleware"
	"github.com/kenemosam/saluni/internal/model"
	bookingsvc "github.com/kenemosam/saluni/internal/service/booking"
	apperrors "github.com/kenemosam/saluni/pkg/errors"
	"github.com/kenemosam/saluni/pkg/httputil"
	"github.com/kenemosam/saluni/pkg/metrics"
)

type Handler struct {
	service *bookingsvc.Service
	metrics *metrics.Metrics
}

func NewHandler(service *bookingsvc.Service, m *metrics.Metrics) *Handler {
	return &Handler{service: service, metrics: m}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, auth *middleware.AuthMiddleware) {
	r.GET("/stylists/:id/availability", h.StylistAvailability)

	protected := r.Group("", auth.Authenticate())
	protected.POST("/bookings", h.Create)
	protected.GET("/bookings", h.List)
	protected.GET("/bookings/:id", h.Get)
	protected.POST("/bookings/:id/transition", h.Transition)
	protected.POST("/bookings/:id/cancel", h.Cancel)
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.Validation(err.Error(), err))
		return
	}

	claims := middleware.ClaimsFromContext(c)
	booking, err := h.service.CreateBooking(c.Request.Context(), claims, &req)
	if err != nil {
		if apperrors.IsConflict(err) {
			h.metrics.BookingConflicts.Inc()
		}
		httputil.RespondWithError(c, err)
		return
	}

	h.metrics.BookingsCreated.Inc()
	httputil.RespondWithCreated(c, booking)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid booking ID", err))
		return
	}

	claims := middleware.ClaimsFromContext(c)
	booking, err := h.service.GetBooking(c.Request.Context(), claims, id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, booking)
}

func (h *Handler) List(c *gin.Context) {
	filters := &model.BookingFilters{
		Status: model.BookingStatus(c.Query("status")),
	}

	if v := c.Query("salon_id"); v != "" {
		salonID, err := uuid.Parse(v)
		if err != nil {
			httputil.RespondWithError(c, apperrors.Validation("invalid salon ID", err))
			return
		}
		filters.SalonID = salonID
	}
	if v := c.Query("stylist_id"); v != "" {
		stylistID, err := uuid.Parse(v)
		if err != nil {
			httputil.RespondWithError(c, apperrors.Validation("invalid stylist ID", err))
			return
		}
		filters.StylistID = stylistID
	}
	if v := c.Query("start_date"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			httputil.RespondWithError(c, apperrors.Validation("invalid start date", err))
			return
		}
		filters.StartDate = t
	}
	if v := c.Query("end_date"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			httputil.RespondWithError(c, apperrors.Validation("invalid end date", err))
			return
		}
		filters.EndDate = t
	}

	claims := middleware.ClaimsFromContext(c)
	bookings, err := h.service.ListBookings(c.Request.Context(), claims, filters)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, bookings)
}

func (h *Handler) Transition(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid booking ID", err))
		return
	}

	var req model.TransitionBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.Validation(err.Error(), err))
		return
	}

	claims := middleware.ClaimsFromContext(c)
	booking, err := h.service.GetBooking(c.Request.Context(), claims, id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	from := booking.Status

	booking, err = h.service.Transition(c.Request.Context(), claims, id, req.Status)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	h.metrics.BookingTransition.WithLabelValues(string(from), string(req.Status)).Inc()
	httputil.RespondWithSuccess(c, booking)
}

func (h *Handler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid booking ID", err))
		return
	}

	claims := middleware.ClaimsFromContext(c)
	booking, err := h.service.Cancel(c.Request.Context(), claims, id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, booking)
}

// StylistAvailability serves the free windows for a stylist on a date
func (h *Handler) StylistAvailability(c *gin.Context) {
	stylistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid stylist ID", err))
		return
	}

	date := time.Now()
	if v := c.Query("date"); v != "" {
		date, err = time.Parse("2006-01-02", v)
		if err != nil {
			httputil.RespondWithError(c, apperrors.Validation("invalid date, expected YYYY-MM-DD", err))
			return
		}
	}

	slots, err := h.service.GetStylistAvailability(c.Request.Context(), stylistID, date)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, slots)
}
