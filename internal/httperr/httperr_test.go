package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	Respond(c, err)
	return w
}

func TestRespond_StatusByKind(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{Validation("weak_password", "too short"), http.StatusBadRequest},
		{Conflict("already_subscribed", "dup"), http.StatusBadRequest},
		{Unauthorized("invalid_token", "bad"), http.StatusUnauthorized},
		{Forbidden("not_recipe_author", "no"), http.StatusForbidden},
		{NotFound("not_subscribed", "none"), http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, respond(tt.err).Code)
		})
	}
}

func TestRespond_Body(t *testing.T) {
	w := respond(fmt.Errorf("wrapped: %w", NotFound("recipe_not_found", "Recipe not found.")))
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "recipe_not_found", body["error_code"])
	assert.Equal(t, "Recipe not found.", body["message"])
}

func TestIsBusinessAndIsKind(t *testing.T) {
	err := fmt.Errorf("ctx: %w", Validation("invalid_email", ""))

	assert.True(t, IsBusiness(err, "invalid_email"))
	assert.False(t, IsBusiness(err, "email_taken"))
	assert.True(t, IsKind(err, KindValidation))
	assert.False(t, IsKind(errors.New("plain"), KindValidation))
}

func TestBusinessError_Error(t *testing.T) {
	assert.Equal(t, "invalid_email", Validation("invalid_email", "").Error())
	assert.Equal(t, "email_taken: Email already registered.", Conflict("email_taken", "Email already registered.").Error())
}
