package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTML(t *testing.T) {
	out := ToHTML("1. Whisk **eggs**\n2. Fry")
	assert.Contains(t, out, "<ol>")
	assert.Contains(t, out, "<strong>eggs</strong>")

	assert.Equal(t, "", ToHTML(""))
	assert.NotContains(t, ToHTML("<script>alert(1)</script>"), "<script>")
}
