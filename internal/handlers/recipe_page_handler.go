package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/foodgram/internal/dto"
	"github.com/BruksfildServices01/foodgram/internal/httperr"
	"github.com/BruksfildServices01/foodgram/internal/middleware"
	ucRecipe "github.com/BruksfildServices01/foodgram/internal/usecase/recipe"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the HTML pages served next to the API.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

// RecipePageHandler serves the public recipe page short links redirect to.
type RecipePageHandler struct {
	get   *ucRecipe.GetRecipe
	media dto.MediaURL
}

func NewRecipePageHandler(get *ucRecipe.GetRecipe, media dto.MediaURL) *RecipePageHandler {
	return &RecipePageHandler{get: get, media: media}
}

func (h *RecipePageHandler) Show(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	d, err := h.get.Execute(c.Request.Context(), middleware.CurrentRequester(c), id)
	if err != nil {
		if httperr.IsKind(err, httperr.KindNotFound) {
			c.String(http.StatusNotFound, "Recipe not found.")
			return
		}
		httperr.Respond(c, err)
		return
	}

	rec := dto.Recipe(*d, h.media)
	c.HTML(http.StatusOK, "recipe.html", gin.H{
		"Recipe": rec,
		// rendered by goldmark with raw HTML disabled
		"Body": template.HTML(rec.TextHTML),
	})
}
