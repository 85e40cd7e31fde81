package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/foodgram/internal/auth"
	"github.com/BruksfildServices01/foodgram/internal/httperr"
	"github.com/BruksfildServices01/foodgram/internal/httpresp"
	"github.com/BruksfildServices01/foodgram/internal/middleware"
	ucUser "github.com/BruksfildServices01/foodgram/internal/usecase/user"
)

type AuthHandler struct {
	login  *ucUser.Login
	tokens *auth.Tokens
}

func NewAuthHandler(login *ucUser.Login, tokens *auth.Tokens) *AuthHandler {
	return &AuthHandler{login: login, tokens: tokens}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AuthToken string `json:"auth_token"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	token, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, TokenResponse{AuthToken: token})
}

// Logout revokes the token the request was made with.
func (h *AuthHandler) Logout(c *gin.Context) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		httperr.UnauthorizedJSON(c, "not_authenticated", "Authentication credentials were not provided.")
		return
	}

	if err := h.tokens.Revoke(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.NoContent(c)
}
