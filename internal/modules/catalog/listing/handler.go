package listing

import (
	"github.com/emeraldgate/core/internal/middleware"
	"github.com/emeraldgate/core/internal/models"
	"github.com/emeraldgate/core/internal/pkg/pagination"
	"github.com/emeraldgate/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// Handler handles listing catalog HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts listing routes. Public routes serve only approved
// listings; the admin group is behind role gating.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	listings := rg.Group("/listings")

	listings.GET("", h.list)
	listings.GET("/:id", h.getByID)

	authed := listings.Group("", authMW)
	authed.GET("/mine", h.mine)
	authed.POST("", h.create)

	admin := listings.Group("", adminMW)
	admin.GET("/admin", h.adminList)
	admin.PUT("/:id", h.update)
	admin.PATCH("/:id", h.update)
	admin.PATCH("/:id/status", h.setStatus)
	admin.DELETE("/:id", h.delete)
}

// list GET /listings
func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)

	var lq ListQuery
	if err := c.ShouldBindQuery(&lq); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	listings, pag, err := h.svc.List(q, lq)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, toResponses(listings), pag)
}

// getByID GET /listings/:id
func (h *Handler) getByID(c *gin.Context) {
	l, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if l == nil || !visibleTo(c, l) {
		response.NotFoundMsg(c, "listing not found")
		return
	}
	response.OK(c, toResponse(l))
}

// mine GET /listings/mine  [auth]
func (h *Handler) mine(c *gin.Context) {
	q := pagination.FromContext(c)

	listings, pag, err := h.svc.ListMine(middleware.CurrentUserID(c), q)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, toResponses(listings), pag)
}

// adminList GET /listings/admin  [admin]
func (h *Handler) adminList(c *gin.Context) {
	q := pagination.FromContext(c)

	var aq AdminListQuery
	if err := c.ShouldBindQuery(&aq); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	listings, pag, err := h.svc.ListAll(q, aq)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, toResponses(listings), pag)
}

// create POST /listings  [auth]
func (h *Handler) create(c *gin.Context) {
	var dto CreateListingDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	l, err := h.svc.Create(middleware.CurrentUserID(c), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, toResponse(l))
}

// update PUT /listings/:id  [admin]
func (h *Handler) update(c *gin.Context) {
	var dto UpdateListingDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	l, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if l == nil {
		response.NotFoundMsg(c, "listing not found")
		return
	}
	response.OK(c, toResponse(l))
}

// setStatus PATCH /listings/:id/status  [admin]
func (h *Handler) setStatus(c *gin.Context) {
	var dto StatusDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	l, err := h.svc.SetStatus(c.Param("id"), dto.Status)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if l == nil {
		response.NotFoundMsg(c, "listing not found")
		return
	}
	response.OK(c, toResponse(l))
}

// delete DELETE /listings/:id  [admin]
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

func toResponses(listings []models.ListingModel) []listingResponse {
	items := make([]listingResponse, len(listings))
	for i := range listings {
		items[i] = toResponse(&listings[i])
	}
	return items
}

// visibleTo reports whether a listing should be served to this request:
// approved listings are public, the rest only show to their owner. The
// back office reads unapproved listings through /listings/admin instead.
func visibleTo(c *gin.Context, l *models.ListingModel) bool {
	if l.Status == models.ListingApproved {
		return true
	}
	return middleware.IsAuthenticated(c) && middleware.CurrentUserID(c) == l.UserID
}
