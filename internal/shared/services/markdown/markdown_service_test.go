package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLSanitized(t *testing.T) {
	svc := NewService()

	t.Run("renders basic markdown", func(t *testing.T) {
		out, err := svc.ToHTMLSanitized("# Hours\n\nOpen **daily** from 6am.")
		require.NoError(t, err)
		assert.Contains(t, out, "<h1")
		assert.Contains(t, out, "<strong>daily</strong>")
	})

	t.Run("strips script tags", func(t *testing.T) {
		out, err := svc.ToHTMLSanitized("hello <script>alert('x')</script> world")
		require.NoError(t, err)
		assert.NotContains(t, out, "<script>")
		assert.NotContains(t, out, "alert")
		assert.Contains(t, out, "hello")
	})

	t.Run("strips event handler attributes", func(t *testing.T) {
		out, err := svc.ToHTMLSanitized(`<a href="https://example.com" onclick="steal()">link</a>`)
		require.NoError(t, err)
		assert.NotContains(t, out, "onclick")
		assert.Contains(t, out, "example.com")
	})

	t.Run("renders GFM tables", func(t *testing.T) {
		out, err := svc.ToHTMLSanitized("| Plan | Price |\n| --- | --- |\n| Monthly | $49 |")
		require.NoError(t, err)
		assert.Contains(t, out, "<table>")
		assert.Contains(t, out, "Monthly")
	})
}

func TestSanitize(t *testing.T) {
	svc := NewService()

	out := svc.Sanitize(`<p>safe</p><iframe src="https://evil.test"></iframe>`)
	assert.Equal(t, "<p>safe</p>", out)
}
