package catalog

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kenemosam/saluni/internal/middleware"
	"github.com/kenemosam/saluni/internal/model"
	catalogsvc "github.com/kenemosam/saluni/internal/service/catalog"
	apperrors "github.com/kenemosam/saluni/pkg/errors"
	"github.com/kenemosam/saluni/pkg/httputil"
)

type Handler struct {
	service *catalogsvc.Service
}

func NewHandler(service *catalogsvc.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, auth *middleware.AuthMiddleware) {
	r.GET("/salons/:id/services", h.ListServices)
	r.GET("/salons/:id/stylists", h.ListStylists)
	r.GET("/stylists/:id/slots", h.ListSlots)

	staff := r.Group("", auth.Authenticate(),
		auth.RequireRole(model.RoleOwner, model.RoleBarber, model.RoleHairdresser, model.RoleAdmin))
	staff.POST("/salons/:id/services", h.CreateService)
	staff.PUT("/services/:id", h.UpdateService)
	staff.DELETE("/services/:id", h.DeleteService)
	staff.POST("/salons/:id/stylists", h.CreateStylist)
	staff.PUT("/stylists/:id", h.UpdateStylist)
	staff.DELETE("/stylists/:id", h.DeleteStylist)
	staff.POST("/stylists/:id/slots", h.CreateSlot)
	staff.DELETE("/slots/:id", h.DeleteSlot)
}

func (h *Handler) CreateService(c *gin.Context) {
	salonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid salon ID", err))
		return
	}

	var req model.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.Validation(err.Error(), err))
		return
	}

	svc, err := h.service.CreateService(c.Request.Context(), salonID, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, svc)
}

func (h *Handler) UpdateService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid service ID", err))
		return
	}

	var req model.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.Validation(err.Error(), err))
		return
	}

	svc, err := h.service.UpdateService(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, svc)
}

func (h *Handler) DeleteService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid service ID", err))
		return
	}

	if err := h.service.DeleteService(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, gin.H{"deleted": id})
}

func (h *Handler) ListServices(c *gin.Context) {
	salonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid salon ID", err))
		return
	}

	activeOnly := c.Query("include_inactive") != "true"
	services, err := h.service.ListServices(c.Request.Context(), salonID, activeOnly)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, services)
}

func (h *Handler) CreateStylist(c *gin.Context) {
	salonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid salon ID", err))
		return
	}

	var req model.CreateStylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.Validation(err.Error(), err))
		return
	}

	stylist, err := h.service.CreateStylist(c.Request.Context(), salonID, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, stylist)
}

func (h *Handler) UpdateStylist(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid stylist ID", err))
		return
	}

	var req model.UpdateStylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.Validation(err.Error(), err))
		return
	}

	stylist, err := h.service.UpdateStylist(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, stylist)
}

func (h *Handler) DeleteStylist(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid stylist ID", err))
		return
	}

	if err := h.service.DeleteStylist(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, gin.H{"deleted": id})
}

func (h *Handler) ListStylists(c *gin.Context) {
	salonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid salon ID", err))
		return
	}

	activeOnly := c.Query("include_inactive") != "true"
	stylists, err := h.service.ListStylists(c.Request.Context(), salonID, activeOnly)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, stylists)
}

func (h *Handler) CreateSlot(c *gin.Context) {
	stylistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid stylist ID", err))
		return
	}

	var req model.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.Validation(err.Error(), err))
		return
	}

	slot, err := h.service.CreateSlot(c.Request.Context(), stylistID, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, slot)
}

func (h *Handler) DeleteSlot(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid slot ID", err))
		return
	}

	if err := h.service.DeleteSlot(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, gin.H{"deleted": id})
}

// ListSlots returns a stylist's slots over the requested window, which
// defaults to the next seven days
func (h *Handler) ListSlots(c *gin.Context) {
	stylistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid stylist ID", err))
		return
	}

	from := time.Now()
	to := from.Add(7 * 24 * time.Hour)
	if v := c.Query("from"); v != "" {
		from, err = time.Parse(time.RFC3339, v)
		if err != nil {
			httputil.RespondWithError(c, apperrors.Validation("invalid from timestamp", err))
			return
		}
	}
	if v := c.Query("to"); v != "" {
		to, err = time.Parse(time.RFC3339, v)
		if err != nil {
			httputil.RespondWithError(c, apperrors.Validation("invalid to timestamp", err))
			return
		}
	}

	slots, err := h.service.ListSlots(c.Request.Context(), stylistID, from, to)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, slots)
}
