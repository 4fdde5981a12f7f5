package post

import (
	"errors"

	"github.com/emeraldgate/core/internal/middleware"
	"github.com/emeraldgate/core/internal/modules/content/blocks"
	"github.com/emeraldgate/core/internal/pkg/pagination"
	"github.com/emeraldgate/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// Handler handles blog post HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts post routes onto the given router group. Writes and
// draft visibility are reserved for the back office.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminMW gin.HandlerFunc) {
	posts := rg.Group("/posts")

	posts.GET("", h.list)
	posts.GET("/:identifier", h.getByIdentifier)

	admin := posts.Group("", adminMW)
	admin.POST("", h.create)
	admin.PUT("/:id", h.update)
	admin.PATCH("/:id", h.update)
	admin.PATCH("/:id/publish", h.publish)
	admin.DELETE("/:id", h.delete)

	admin.POST("/:id/blocks", h.appendBlock)
	admin.PATCH("/:id/blocks/move", h.moveBlock)
	admin.PATCH("/:id/blocks/:blockId", h.updateBlock)
	admin.DELETE("/:id/blocks/:blockId", h.removeBlock)
}

// list GET /posts
func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)

	var lq ListQuery
	if err := c.ShouldBindQuery(&lq); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	posts, pag, err := h.svc.List(q, lq, middleware.IsAdmin(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}

	items := make([]postResponse, len(posts))
	for i := range posts {
		items[i] = toResponse(&posts[i])
	}
	response.Paged(c, items, pag)
}

// getByIdentifier GET /posts/:identifier
func (h *Handler) getByIdentifier(c *gin.Context) {
	post, err := h.svc.GetByIdentifier(c.Param("identifier"), middleware.IsAdmin(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if post == nil {
		response.NotFoundMsg(c, "post not found")
		return
	}
	response.OK(c, toResponse(post))
}

// create POST /posts  [auth]
func (h *Handler) create(c *gin.Context) {
	var dto CreatePostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.svc.Create(&dto)
	if err != nil {
		if errors.Is(err, ErrSlugExists) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, toResponse(post))
}

// update PUT /posts/:id  [auth]
func (h *Handler) update(c *gin.Context) {
	var dto UpdatePostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		if errors.Is(err, ErrSlugExists) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if post == nil {
		response.NotFoundMsg(c, "post not found")
		return
	}
	response.OK(c, toResponse(post))
}

// publish PATCH /posts/:id/publish  [auth]
func (h *Handler) publish(c *gin.Context) {
	var dto PublishDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.svc.SetPublished(c.Param("id"), *dto.IsPublished)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if post == nil {
		response.NotFoundMsg(c, "post not found")
		return
	}
	response.OK(c, toResponse(post))
}

// appendBlock POST /posts/:id/blocks  [auth]
func (h *Handler) appendBlock(c *gin.Context) {
	var dto AppendBlockDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.svc.AppendBlock(c.Param("id"), dto.Type)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if post == nil {
		response.NotFoundMsg(c, "post not found")
		return
	}
	response.OK(c, toResponse(post))
}

// updateBlock PATCH /posts/:id/blocks/:blockId  [auth]
func (h *Handler) updateBlock(c *gin.Context) {
	var dto UpdateBlockDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.svc.UpdateBlock(c.Param("id"), c.Param("blockId"), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if post == nil {
		response.NotFoundMsg(c, "post not found")
		return
	}
	response.OK(c, toResponse(post))
}

// moveBlock PATCH /posts/:id/blocks/move  [auth]
func (h *Handler) moveBlock(c *gin.Context) {
	var dto MoveBlockDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.svc.MoveBlock(c.Param("id"), *dto.Index, blocks.Direction(dto.Direction))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if post == nil {
		response.NotFoundMsg(c, "post not found")
		return
	}
	response.OK(c, toResponse(post))
}

// removeBlock DELETE /posts/:id/blocks/:blockId  [auth]
func (h *Handler) removeBlock(c *gin.Context) {
	post, err := h.svc.RemoveBlock(c.Param("id"), c.Param("blockId"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if post == nil {
		response.NotFoundMsg(c, "post not found")
		return
	}
	response.OK(c, toResponse(post))
}

// delete DELETE /posts/:id  [auth]
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
