package recipe

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/foodgram/internal/models"
	"github.com/BruksfildServices01/foodgram/internal/permissions"
)

func TestParseListFilter_Tags(t *testing.T) {
	q := url.Values{"tags": {"breakfast", "lunch", "breakfast", "dinner,lunch"}}

	f := ParseListFilter(q, permissions.Anonymous())

	assert.Equal(t, []string{"breakfast", "lunch", "dinner"}, f.TagSlugs)
}

func TestParseListFilter_Author(t *testing.T) {
	f := ParseListFilter(url.Values{"author": {"7"}}, permissions.Anonymous())
	require.NotNil(t, f.AuthorID)
	assert.Equal(t, uint(7), *f.AuthorID)

	f = ParseListFilter(url.Values{"author": {"me"}}, permissions.Anonymous())
	assert.Nil(t, f.AuthorID)
}

func TestParseListFilter_MarksIgnoredForAnonymous(t *testing.T) {
	q := url.Values{"is_favorited": {"1"}, "is_in_shopping_cart": {"true"}}

	f := ParseListFilter(q, permissions.Anonymous())

	assert.Nil(t, f.FavoritedBy)
	assert.Nil(t, f.InCartOf)
}

func TestParseListFilter_MarksForAuthenticated(t *testing.T) {
	r := permissions.Requester{UserID: 3, Role: models.RoleUser}

	f := ParseListFilter(url.Values{"is_favorited": {"1"}, "is_in_shopping_cart": {"0"}}, r)

	require.NotNil(t, f.FavoritedBy)
	assert.Equal(t, uint(3), *f.FavoritedBy)
	assert.Nil(t, f.InCartOf)
}
