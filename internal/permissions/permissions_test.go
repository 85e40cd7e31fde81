package permissions

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/foodgram/internal/models"
)

var (
	anon  = Anonymous()
	user  = Requester{UserID: 1, Role: models.RoleUser}
	admin = Requester{UserID: 2, Role: models.RoleAdmin}
)

func TestAdminOrReadOnly(t *testing.T) {
	tests := []struct {
		name   string
		method string
		who    Requester
		want   bool
	}{
		{"anonymous read", http.MethodGet, anon, true},
		{"user read", http.MethodGet, user, true},
		{"anonymous write", http.MethodPost, anon, false},
		{"user write", http.MethodPatch, user, false},
		{"admin write", http.MethodDelete, admin, true},
		{"role without identity", http.MethodPost, Requester{Role: models.RoleAdmin}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AdminOrReadOnly(tt.method, tt.who))
		})
	}
}

func TestAuthorOrReadOnly(t *testing.T) {
	assert.True(t, AuthorOrReadOnly(http.MethodGet, anon))
	assert.False(t, AuthorOrReadOnly(http.MethodPost, anon))
	assert.True(t, AuthorOrReadOnly(http.MethodPost, user))
}

func TestAuthorOrReadOnlyObject(t *testing.T) {
	assert.True(t, AuthorOrReadOnlyObject(http.MethodGet, anon, 1))
	assert.True(t, AuthorOrReadOnlyObject(http.MethodPatch, user, user.UserID))
	assert.False(t, AuthorOrReadOnlyObject(http.MethodPatch, user, 99))
	assert.False(t, AuthorOrReadOnlyObject(http.MethodDelete, admin, user.UserID))
	assert.False(t, AuthorOrReadOnlyObject(http.MethodDelete, anon, 0))
}

func TestIsSafeMethod(t *testing.T) {
	for _, m := range []string{http.MethodGet, http.MethodHead, http.MethodOptions} {
		assert.True(t, IsSafeMethod(m), m)
	}
	for _, m := range []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		assert.False(t, IsSafeMethod(m), m)
	}
}
