package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUsernameValid(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"chef_anna", true},
		{"anna.k+cook@home-1", true},
		{"Иван", true},
		{"josé_42", true},
		{"повар.анна", true},
		{"Иван Петров", false},
		{"", false},
		{"with space", false},
		{"semi;colon", false},
		{"slash/name", false},
		{strings.Repeat("a", 150), true},
		{strings.Repeat("a", 151), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUsernameValid(tt.input))
		})
	}
}

func TestIsEmailValid(t *testing.T) {
	assert.True(t, IsEmailValid("cook@example.com"))
	assert.False(t, IsEmailValid("not-an-email"))
	assert.False(t, IsEmailValid("Anna <cook@example.com>"))
	assert.False(t, IsEmailValid(""))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "cook@example.com", NormalizeEmail("  Cook@Example.COM "))
}

func TestIsPasswordValid(t *testing.T) {
	assert.False(t, IsPasswordValid("short"))
	assert.True(t, IsPasswordValid("longenough"))
}
