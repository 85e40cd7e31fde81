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

type IngredientHandler struct {
	db *gorm.DB
}

func NewIngredientHandler(db *gorm.DB) *IngredientHandler {
	return &IngredientHandler{db: db}
}

// --------- Requests ---------

type CreateIngredientRequest struct {
	Name            string `json:"name" binding:"required,max=100"`
	MeasurementUnit string `json:"measurement_unit" binding:"required,max=30"`
}

type UpdateIngredientRequest struct {
	Name            *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	MeasurementUnit *string `json:"measurement_unit,omitempty" binding:"omitempty,min=1,max=30"`
}

// --------- Handlers ---------

// List is unpaginated. `name` keeps ingredients whose name starts with it,
// ignoring case.
func (h *IngredientHandler) List(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context())

	if name := strings.ToLower(strings.TrimSpace(c.Query("name"))); name != "" {
		q = q.Where("LOWER(name) LIKE ? ESCAPE '\\'", escapeLike(name)+"%")
	}

	var ingredients []models.Ingredient
	if err := q.Order("name ASC").Order("id ASC").Find(&ingredients).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	out := make([]dto.IngredientDTO, 0, len(ingredients))
	for i := range ingredients {
		out = append(out, dto.Ingredient(&ingredients[i]))
	}
	httpresp.List(c, out)
}

func (h *IngredientHandler) Get(c *gin.Context) {
	ing, ok := h.load(c)
	if !ok {
		return
	}
	httpresp.OK(c, dto.Ingredient(ing))
}

func (h *IngredientHandler) Create(c *gin.Context) {
	var req CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	ing := models.Ingredient{
		Name:            strings.TrimSpace(req.Name),
		MeasurementUnit: strings.TrimSpace(req.MeasurementUnit),
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&ing).Error; err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, dto.Ingredient(&ing))
}

func (h *IngredientHandler) Update(c *gin.Context) {
	ing, ok := h.load(c)
	if !ok {
		return
	}

	var req UpdateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	if req.Name != nil {
		ing.Name = strings.TrimSpace(*req.Name)
	}
	if req.MeasurementUnit != nil {
		ing.MeasurementUnit = strings.TrimSpace(*req.MeasurementUnit)
	}

	if err := h.db.WithContext(c.Request.Context()).Save(ing).Error; err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.Ingredient(ing))
}

func (h *IngredientHandler) Delete(c *gin.Context) {
	ing, ok := h.load(c)
	if !ok {
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Delete(ing).Error; err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

func (h *IngredientHandler) load(c *gin.Context) (*models.Ingredient, bool) {
	id, ok := pathID(c, "id")
	if !ok {
		return nil, false
	}

	var ing models.Ingredient
	if err := h.db.WithContext(c.Request.Context()).First(&ing, id).Error; err != nil {
		if httperr.IsRecordNotFound(err) {
			httperr.NotFoundJSON(c, "ingredient_not_found", "Ingredient not found.")
			return nil, false
		}
		httperr.Respond(c, err)
		return nil, false
	}
	return &ing, true
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
