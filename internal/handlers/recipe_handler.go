package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/foodgram/internal/config"
	domain "github.com/BruksfildServices01/foodgram/internal/domain/recipe"
	"github.com/BruksfildServices01/foodgram/internal/dto"
	"github.com/BruksfildServices01/foodgram/internal/httperr"
	"github.com/BruksfildServices01/foodgram/internal/httpresp"
	"github.com/BruksfildServices01/foodgram/internal/middleware"
	ucRecipe "github.com/BruksfildServices01/foodgram/internal/usecase/recipe"
)

// ======================================================
// HANDLER
// ======================================================

type RecipeHandler struct {
	cfg   *config.Config
	media dto.MediaURL

	create       *ucRecipe.CreateRecipe
	update       *ucRecipe.UpdateRecipe
	remove       *ucRecipe.DeleteRecipe
	get          *ucRecipe.GetRecipe
	list         *ucRecipe.ListRecipes
	favorites    *ucRecipe.MarkRecipe
	cart         *ucRecipe.MarkRecipe
	shoppingList *ucRecipe.DownloadShoppingList
	share        *ucRecipe.ShareRecipe
}

// RecipeUseCases groups the use cases the recipe endpoints call.
type RecipeUseCases struct {
	Create       *ucRecipe.CreateRecipe
	Update       *ucRecipe.UpdateRecipe
	Delete       *ucRecipe.DeleteRecipe
	Get          *ucRecipe.GetRecipe
	List         *ucRecipe.ListRecipes
	Favorites    *ucRecipe.MarkRecipe
	Cart         *ucRecipe.MarkRecipe
	ShoppingList *ucRecipe.DownloadShoppingList
	Share        *ucRecipe.ShareRecipe
}

func NewRecipeHandler(
	cfg *config.Config,
	media dto.MediaURL,
	uc RecipeUseCases,
) *RecipeHandler {
	return &RecipeHandler{
		cfg:          cfg,
		media:        media,
		create:       uc.Create,
		update:       uc.Update,
		remove:       uc.Delete,
		get:          uc.Get,
		list:         uc.List,
		favorites:    uc.Favorites,
		cart:         uc.Cart,
		shoppingList: uc.ShoppingList,
		share:        uc.Share,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateRecipeRequest struct {
	Ingredients []domain.IngredientInput `json:"ingredients"`
	Tags        []uint                   `json:"tags"`
	Image       string                   `json:"image"`
	Name        string                   `json:"name"`
	Text        string                   `json:"text"`
	CookingTime int                      `json:"cooking_time"`
}

type UpdateRecipeRequest struct {
	Ingredients *[]domain.IngredientInput `json:"ingredients,omitempty"`
	Tags        *[]uint                   `json:"tags,omitempty"`
	Image       *string                   `json:"image,omitempty"`
	Name        *string                   `json:"name,omitempty"`
	Text        *string                   `json:"text,omitempty"`
	CookingTime *int                      `json:"cooking_time,omitempty"`
}

// ======================================================
// CRUD
// ======================================================

func (h *RecipeHandler) List(c *gin.Context) {
	requester := middleware.CurrentRequester(c)
	page := httpresp.ParsePage(c, h.cfg.PageSize)
	filter := domain.ParseListFilter(c.Request.URL.Query(), requester)

	details, total, err := h.list.Execute(
		c.Request.Context(),
		requester,
		filter,
		page.Offset(),
		page.Limit,
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Paginated(c, h.cfg.PublicURL, page, total, dto.Recipes(details, h.media))
}

func (h *RecipeHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	d, err := h.get.Execute(c.Request.Context(), middleware.CurrentRequester(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.Recipe(*d, h.media))
}

func (h *RecipeHandler) Create(c *gin.Context) {
	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	d, err := h.create.Execute(c.Request.Context(), ucRecipe.CreateRecipeInput{
		Requester:   middleware.CurrentRequester(c),
		Name:        req.Name,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		Image:       req.Image,
		TagIDs:      req.Tags,
		Ingredients: req.Ingredients,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, dto.Recipe(*d, h.media))
}

func (h *RecipeHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	d, err := h.update.Execute(c.Request.Context(), ucRecipe.UpdateRecipeInput{
		Requester:   middleware.CurrentRequester(c),
		RecipeID:    id,
		Name:        req.Name,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		Image:       req.Image,
		TagIDs:      req.Tags,
		Ingredients: req.Ingredients,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.Recipe(*d, h.media))
}

func (h *RecipeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), middleware.CurrentRequester(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

// ======================================================
// FAVORITES / SHOPPING CART
// ======================================================

func (h *RecipeHandler) addMark(c *gin.Context, uc *ucRecipe.MarkRecipe) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	rec, err := uc.Add(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, dto.RecipeShort(rec, h.media))
}

func (h *RecipeHandler) removeMark(c *gin.Context, uc *ucRecipe.MarkRecipe) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := uc.Remove(c.Request.Context(), currentUserID(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

func (h *RecipeHandler) Favorite(c *gin.Context)       { h.addMark(c, h.favorites) }
func (h *RecipeHandler) Unfavorite(c *gin.Context)     { h.removeMark(c, h.favorites) }
func (h *RecipeHandler) AddToCart(c *gin.Context)      { h.addMark(c, h.cart) }
func (h *RecipeHandler) RemoveFromCart(c *gin.Context) { h.removeMark(c, h.cart) }

func (h *RecipeHandler) DownloadShoppingCart(c *gin.Context) {
	text, err := h.shoppingList.Execute(c.Request.Context(), currentUserID(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, domain.ShoppingListFilename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}

// ======================================================
// SHORT LINKS
// ======================================================

func (h *RecipeHandler) GetLink(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	code, err := h.share.Link(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.ShortLinkDTO{ShortLink: h.cfg.AbsoluteURL("/api/recipes/redirect/" + code)})
}

func (h *RecipeHandler) Redirect(c *gin.Context) {
	id, err := h.share.Resolve(c.Request.Context(), c.Param("code"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Redirect(http.StatusFound, h.cfg.AbsoluteURL(fmt.Sprintf("/recipes/%d/", id)))
}
