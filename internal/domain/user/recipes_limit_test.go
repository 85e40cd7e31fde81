package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRecipesLimit(t *testing.T) {
	assert.Equal(t, 3, ParseRecipesLimit("3"))
	assert.Equal(t, 0, ParseRecipesLimit("0"))
	assert.Equal(t, -1, ParseRecipesLimit(""))
	assert.Equal(t, -1, ParseRecipesLimit("abc"))
	assert.Equal(t, -1, ParseRecipesLimit("-2"))
}
