package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	raw := "---\ntitle: Hello\ntags:\n  - go\n  - rust\nextra:\n  nested: true\n---\n\nFirst paragraph.\n"

	fields, body, err := Default().Parse([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, "Hello", fields["title"])
	assert.Equal(t, []any{"go", "rust"}, fields["tags"])
	assert.Equal(t, map[string]any{"nested": true}, fields["extra"])
	assert.IsType(t, map[string]any{}, fields["extra"])
	assert.Contains(t, string(body), "First paragraph.")
	assert.NotContains(t, string(body), "title:")
}

func TestParseWithoutHeader(t *testing.T) {
	raw := "Just a body.\n\nWith two paragraphs."

	fields, body, err := Default().Parse([]byte(raw))
	require.NoError(t, err)

	assert.Empty(t, fields)
	assert.NotNil(t, fields)
	assert.Contains(t, string(body), "Just a body.")
	assert.Contains(t, string(body), "With two paragraphs.")
}

func TestParseMalformed(t *testing.T) {
	raw := "---\ntitle: [unclosed\n---\nbody"

	_, _, err := Default().Parse([]byte(raw))
	assert.Error(t, err)
}

func TestParseDeeplyNested(t *testing.T) {
	raw := "---\nseries:\n  name: Go\n  parts:\n    - order: 1\n---\nbody"

	fields, _, err := Default().Parse([]byte(raw))
	require.NoError(t, err)

	series, ok := fields["series"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Go", series["name"])

	parts, ok := series["parts"].([]any)
	require.True(t, ok)
	assert.Equal(t, []any{map[string]any{"order": 1}}, parts)
}
