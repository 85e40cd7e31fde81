package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/foodgram/internal/auth"
	"github.com/BruksfildServices01/foodgram/internal/cache"
	"github.com/BruksfildServices01/foodgram/internal/config"
	recipeDomain "github.com/BruksfildServices01/foodgram/internal/domain/recipe"
	"github.com/BruksfildServices01/foodgram/internal/handlers"
	"github.com/BruksfildServices01/foodgram/internal/imaging"
	infraRepo "github.com/BruksfildServices01/foodgram/internal/infra/repository"
	"github.com/BruksfildServices01/foodgram/internal/middleware"
	"github.com/BruksfildServices01/foodgram/internal/permissions"
	"github.com/BruksfildServices01/foodgram/internal/shortlink"
	"github.com/BruksfildServices01/foodgram/internal/storage"
	ucRecipe "github.com/BruksfildServices01/foodgram/internal/usecase/recipe"
	ucUser "github.com/BruksfildServices01/foodgram/internal/usecase/user"
)

// Dependencies are the long-lived resources the routes are built on.
type Dependencies struct {
	DB     *gorm.DB
	Config *config.Config
	Cache  cache.Store
	Images storage.ImageStore
}

func RegisterRoutes(r *gin.Engine, deps Dependencies) {
	cfg := deps.Config

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.JWTTTL, deps.Cache)

	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	r.Use(middleware.AuthMiddleware(tokens))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	recipeRepo := infraRepo.NewRecipeGormRepository(deps.DB)
	userRepo := infraRepo.NewUserGormRepository(deps.DB)

	uploader := storage.NewUploader(imaging.NewProcessor(cfg.ImageMaxSide), deps.Images)
	links := shortlink.New(deps.Cache, cfg.ShortLinkTTL)
	media := handlers.MediaURL(cfg, uploader)

	if local, ok := deps.Images.(*storage.LocalStore); ok {
		r.Static(cfg.MediaURL, local.Dir())
	}

	// ======================================================
	// USE CASES
	// ======================================================
	getRecipeUC := ucRecipe.NewGetRecipe(recipeRepo)

	recipeUCs := handlers.RecipeUseCases{
		Create:       ucRecipe.NewCreateRecipe(recipeRepo, uploader),
		Update:       ucRecipe.NewUpdateRecipe(recipeRepo, uploader),
		Delete:       ucRecipe.NewDeleteRecipe(recipeRepo, uploader),
		Get:          getRecipeUC,
		List:         ucRecipe.NewListRecipes(recipeRepo),
		Favorites:    ucRecipe.NewMarkRecipe(recipeRepo, recipeDomain.MarkFavorite),
		Cart:         ucRecipe.NewMarkRecipe(recipeRepo, recipeDomain.MarkShoppingCart),
		ShoppingList: ucRecipe.NewDownloadShoppingList(recipeRepo),
		Share:        ucRecipe.NewShareRecipe(recipeRepo, links),
	}

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(ucUser.NewLogin(userRepo, tokens), tokens)

	userHandler := handlers.NewUserHandler(
		cfg,
		media,
		ucUser.NewRegister(userRepo, cfg.CheckEmailDomain),
		ucUser.NewProfiles(userRepo),
		ucUser.NewUpdateProfile(userRepo, cfg.CheckEmailDomain),
		ucUser.NewAvatar(userRepo, uploader),
		ucUser.NewSetPassword(userRepo),
		ucUser.NewSubscriptions(userRepo),
	)

	recipeHandler := handlers.NewRecipeHandler(cfg, media, recipeUCs)
	recipePageHandler := handlers.NewRecipePageHandler(getRecipeUC, media)

	tagHandler := handlers.NewTagHandler(deps.DB)
	ingredientHandler := handlers.NewIngredientHandler(deps.DB)

	// ======================================================
	// WEB (HTML)
	// ======================================================
	r.SetHTMLTemplate(handlers.Templates())
	r.GET("/recipes/:id/", recipePageHandler.Show)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// API (JSON)
	// ======================================================
	authed := middleware.RequireAuth()
	adminOrReadOnly := middleware.Allow(permissions.AdminOrReadOnly)
	authorOrReadOnly := middleware.Allow(permissions.AuthorOrReadOnly)

	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/token/login", authHandler.Login)
		api.POST("/auth/token/logout", authed, authHandler.Logout)

		// ------------------------------
		// USERS
		// ------------------------------
		users := api.Group("/users")
		{
			users.GET("", userHandler.List)
			users.POST("", userHandler.Register)

			users.GET("/me", authed, userHandler.Me)
			users.PATCH("/me", authed, userHandler.UpdateMe)
			users.PUT("/me/avatar", authed, userHandler.SetAvatar)
			users.DELETE("/me/avatar", authed, userHandler.DeleteAvatar)
			users.POST("/set_password", authed, userHandler.SetPassword)
			users.GET("/subscriptions", authed, userHandler.Subscriptions)

			users.GET("/:id", userHandler.Get)
			users.POST("/:id/subscribe", authed, userHandler.Subscribe)
			users.DELETE("/:id/subscribe", authed, userHandler.Unsubscribe)
		}

		// ------------------------------
		// CATALOG
		// ------------------------------
		tags := api.Group("/tags", adminOrReadOnly)
		{
			tags.GET("", tagHandler.List)
			tags.POST("", tagHandler.Create)
			tags.GET("/:id", tagHandler.Get)
			tags.PATCH("/:id", tagHandler.Update)
			tags.DELETE("/:id", tagHandler.Delete)
		}

		ingredients := api.Group("/ingredients", adminOrReadOnly)
		{
			ingredients.GET("", ingredientHandler.List)
			ingredients.POST("", ingredientHandler.Create)
			ingredients.GET("/:id", ingredientHandler.Get)
			ingredients.PATCH("/:id", ingredientHandler.Update)
			ingredients.DELETE("/:id", ingredientHandler.Delete)
		}

		// ------------------------------
		// RECIPES
		// ------------------------------
		recipes := api.Group("/recipes")
		{
			recipes.GET("", recipeHandler.List)
			recipes.POST("", authorOrReadOnly, recipeHandler.Create)
			recipes.GET("/download_shopping_cart", authed, recipeHandler.DownloadShoppingCart)
			recipes.GET("/redirect/:code", recipeHandler.Redirect)

			recipes.GET("/:id", recipeHandler.Get)
			recipes.PATCH("/:id", authorOrReadOnly, recipeHandler.Update)
			recipes.DELETE("/:id", authorOrReadOnly, recipeHandler.Delete)
			recipes.GET("/:id/get-link", recipeHandler.GetLink)

			recipes.POST("/:id/favorite", authed, recipeHandler.Favorite)
			recipes.DELETE("/:id/favorite", authed, recipeHandler.Unfavorite)
			recipes.POST("/:id/shopping_cart", authed, recipeHandler.AddToCart)
			recipes.DELETE("/:id/shopping_cart", authed, recipeHandler.RemoveFromCart)
		}
	}
}
