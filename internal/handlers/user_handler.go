package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/foodgram/internal/config"
	domain "github.com/BruksfildServices01/foodgram/internal/domain/user"
	"github.com/BruksfildServices01/foodgram/internal/dto"
	"github.com/BruksfildServices01/foodgram/internal/httperr"
	"github.com/BruksfildServices01/foodgram/internal/httpresp"
	"github.com/BruksfildServices01/foodgram/internal/middleware"
	ucUser "github.com/BruksfildServices01/foodgram/internal/usecase/user"
)

// ======================================================
// HANDLER
// ======================================================

type UserHandler struct {
	cfg   *config.Config
	media dto.MediaURL

	register      *ucUser.Register
	profiles      *ucUser.Profiles
	updateProfile *ucUser.UpdateProfile
	avatar        *ucUser.Avatar
	setPassword   *ucUser.SetPassword
	subscriptions *ucUser.Subscriptions
}

func NewUserHandler(
	cfg *config.Config,
	media dto.MediaURL,
	register *ucUser.Register,
	profiles *ucUser.Profiles,
	updateProfile *ucUser.UpdateProfile,
	avatar *ucUser.Avatar,
	setPassword *ucUser.SetPassword,
	subscriptions *ucUser.Subscriptions,
) *UserHandler {
	return &UserHandler{
		cfg:           cfg,
		media:         media,
		register:      register,
		profiles:      profiles,
		updateProfile: updateProfile,
		avatar:        avatar,
		setPassword:   setPassword,
		subscriptions: subscriptions,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type RegisterRequest struct {
	Email     string `json:"email" binding:"required"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password" binding:"required"`
}

type RegisteredUser struct {
	Email     string `json:"email"`
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type UpdateMeRequest struct {
	Email     *string `json:"email,omitempty"`
	Username  *string `json:"username,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

type AvatarRequest struct {
	Avatar string `json:"avatar" binding:"required"`
}

type SetPasswordRequest struct {
	NewPassword     string `json:"new_password" binding:"required"`
	CurrentPassword string `json:"current_password" binding:"required"`
}

// ======================================================
// ACCOUNTS
// ======================================================

func (h *UserHandler) List(c *gin.Context) {
	page := httpresp.ParsePage(c, h.cfg.PageSize)

	profiles, total, err := h.profiles.List(
		c.Request.Context(),
		middleware.CurrentRequester(c),
		page.Offset(),
		page.Limit,
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	out := make([]dto.UserDTO, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, dto.User(p.User, p.Subscribed, h.media))
	}
	httpresp.Paginated(c, h.cfg.PublicURL, page, total, out)
}

func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	u, err := h.register.Execute(c.Request.Context(), ucUser.RegisterInput{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, RegisteredUser{
		Email:     u.Email,
		ID:        u.ID,
		Username:  u.UsernameOrEmpty(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
	})
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	p, err := h.profiles.Get(c.Request.Context(), middleware.CurrentRequester(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.User(p.User, p.Subscribed, h.media))
}

func (h *UserHandler) Me(c *gin.Context) {
	userID := currentUserID(c)

	p, err := h.profiles.Get(c.Request.Context(), middleware.CurrentRequester(c), userID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.User(p.User, false, h.media))
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	u, err := h.updateProfile.Execute(c.Request.Context(), ucUser.UpdateProfileInput{
		UserID:    currentUserID(c),
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.User(u, false, h.media))
}

// ======================================================
// AVATAR / PASSWORD
// ======================================================

func (h *UserHandler) SetAvatar(c *gin.Context) {
	var req AvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	u, err := h.avatar.Set(c.Request.Context(), currentUserID(c), req.Avatar)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.AvatarDTO{Avatar: h.media(*u.Avatar)})
}

func (h *UserHandler) DeleteAvatar(c *gin.Context) {
	if err := h.avatar.Delete(c.Request.Context(), currentUserID(c)); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

func (h *UserHandler) SetPassword(c *gin.Context) {
	var req SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	if err := h.setPassword.Execute(
		c.Request.Context(),
		currentUserID(c),
		req.CurrentPassword,
		req.NewPassword,
	); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

// ======================================================
// SUBSCRIPTIONS
// ======================================================

func (h *UserHandler) follows(subs []domain.Subscription) []dto.FollowDTO {
	out := make([]dto.FollowDTO, 0, len(subs))
	for _, s := range subs {
		out = append(out, dto.Follow(s.Author, s.Recipes, s.RecipesCount, h.media))
	}
	return out
}

func (h *UserHandler) Subscriptions(c *gin.Context) {
	page := httpresp.ParsePage(c, h.cfg.PageSize)

	subs, total, err := h.subscriptions.List(
		c.Request.Context(),
		currentUserID(c),
		page.Offset(),
		page.Limit,
		domain.ParseRecipesLimit(c.Query("recipes_limit")),
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Paginated(c, h.cfg.PublicURL, page, total, h.follows(subs))
}

func (h *UserHandler) Subscribe(c *gin.Context) {
	authorID, ok := pathID(c, "id")
	if !ok {
		return
	}

	sub, err := h.subscriptions.Subscribe(
		c.Request.Context(),
		currentUserID(c),
		authorID,
		domain.ParseRecipesLimit(c.Query("recipes_limit")),
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, h.follows([]domain.Subscription{*sub})[0])
}

func (h *UserHandler) Unsubscribe(c *gin.Context) {
	authorID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.subscriptions.Unsubscribe(c.Request.Context(), currentUserID(c), authorID); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}
