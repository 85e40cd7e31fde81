package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/foodgram/internal/dto"
	"github.com/BruksfildServices01/foodgram/internal/httperr"
	"github.com/BruksfildServices01/foodgram/internal/httpresp"
	"github.com/BruksfildServices01/foodgram/internal/models"
)

type TagHandler struct {
	db *gorm.DB
}

func NewTagHandler(db *gorm.DB) *TagHandler {
	return &TagHandler{db: db}
}

type CreateTagRequest struct {
	Name string `json:"name" binding:"required,max=32"`
	Slug string `json:"slug" binding:"required,max=32"`
}

type UpdateTagRequest struct {
	Name *string `json:"name,omitempty" binding:"omitempty,min=1,max=32"`
	Slug *string `json:"slug,omitempty" binding:"omitempty,min=1,max=32"`
}

func (h *TagHandler) List(c *gin.Context) {
	var tags []models.Tag
	if err := h.db.WithContext(c.Request.Context()).Order("id ASC").Find(&tags).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	out := make([]dto.TagDTO, 0, len(tags))
	for i := range tags {
		out = append(out, dto.Tag(&tags[i]))
	}
	httpresp.List(c, out)
}

func (h *TagHandler) Get(c *gin.Context) {
	tag, ok := h.load(c)
	if !ok {
		return
	}
	httpresp.OK(c, dto.Tag(tag))
}

func (h *TagHandler) Create(c *gin.Context) {
	var req CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	tag := models.Tag{
		Name: strings.TrimSpace(req.Name),
		Slug: strings.ToLower(strings.TrimSpace(req.Slug)),
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&tag).Error; err != nil {
		h.fail(c, err)
		return
	}
	httpresp.Created(c, dto.Tag(&tag))
}

func (h *TagHandler) Update(c *gin.Context) {
	tag, ok := h.load(c)
	if !ok {
		return
	}

	var req UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	if req.Name != nil {
		tag.Name = strings.TrimSpace(*req.Name)
	}
	if req.Slug != nil {
		tag.Slug = strings.ToLower(strings.TrimSpace(*req.Slug))
	}

	if err := h.db.WithContext(c.Request.Context()).Save(tag).Error; err != nil {
		h.fail(c, err)
		return
	}
	httpresp.OK(c, dto.Tag(tag))
}

func (h *TagHandler) Delete(c *gin.Context) {
	tag, ok := h.load(c)
	if !ok {
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Delete(tag).Error; err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

func (h *TagHandler) load(c *gin.Context) (*models.Tag, bool) {
	id, ok := pathID(c, "id")
	if !ok {
		return nil, false
	}

	var tag models.Tag
	if err := h.db.WithContext(c.Request.Context()).First(&tag, id).Error; err != nil {
		if httperr.IsRecordNotFound(err) {
			httperr.NotFoundJSON(c, "tag_not_found", "Tag not found.")
			return nil, false
		}
		httperr.Respond(c, err)
		return nil, false
	}
	return &tag, true
}

func (h *TagHandler) fail(c *gin.Context, err error) {
	if httperr.IsUniqueViolation(err) {
		httperr.BadRequest(c, "tag_exists", "A tag with this slug already exists.")
		return
	}
	httperr.Respond(c, err)
}
