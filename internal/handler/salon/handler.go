package salon

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kenemosam/saluni/internal/middleware"
	"github.com/kenemosam/saluni/internal/model"
	salonsvc "github.com/kenemosam/saluni/internal/service/salon"
	apperrors "github.com/kenemosam/saluni/pkg/errors"
	"github.com/kenemosam/saluni/pkg/httputil"
)

type Handler struct {
	service *salonsvc.Service
}

func NewHandler(service *salonsvc.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, auth *middleware.AuthMiddleware, cache *middleware.ResponseCache) {
	r.GET("/salons", cache.Cache(), h.ListListings)
	r.GET("/salons/:id", h.Get)
	r.GET("/salons/:id/rating", h.Rating)

	protected := r.Group("", auth.Authenticate())
	protected.POST("/salons", h.Register)
	protected.PUT("/salons/:id/profile", h.CompleteProfile)
	protected.DELETE("/salons/:id", h.Delete)
}

func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.Validation(err.Error(), err))
		return
	}

	claims := middleware.ClaimsFromContext(c)
	salon, err := h.service.Register(c.Request.Context(), claims, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, salon)
}

func (h *Handler) CompleteProfile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid salon ID", err))
		return
	}

	var req model.UpdateSalonProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.Validation(err.Error(), err))
		return
	}

	claims := middleware.ClaimsFromContext(c)
	salon, err := h.service.CompleteProfile(c.Request.Context(), claims, id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, salon)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid salon ID", err))
		return
	}

	salon, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, salon)
}

// ListListings serves the reduced public listing shape, filterable by
// category, region and free-text search, paged with ?page and ?page_size
func (h *Handler) ListListings(c *gin.Context) {
	filters := &model.SalonFilters{
		Category: model.SalonCategory(c.Query("category")),
		Region:   c.Query("region"),
		Search:   c.Query("search"),
	}

	var page model.Pagination
	if err := c.ShouldBindQuery(&page); err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid pagination parameters", err))
		return
	}

	listings, total, err := h.service.ListListings(c.Request.Context(), filters, &page)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithPagination(c, listings, page.Page, page.PageSize, total)
}

func (h *Handler) Rating(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid salon ID", err))
		return
	}

	rating, err := h.service.Rating(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, rating)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid salon ID", err))
		return
	}

	claims := middleware.ClaimsFromContext(c)
	if err := h.service.Delete(c.Request.Context(), claims, id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, gin.H{"deleted": id})
}
