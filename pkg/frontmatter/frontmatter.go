// Package frontmatter splits a content document into its metadata header and
// body. Only "---" delimited YAML headers are recognized.
package frontmatter

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// Fields holds the declared front matter fields of a document.
type Fields map[string]any

// Parser separates a raw document into front matter fields and body text.
type Parser interface {
	Parse(raw []byte) (Fields, []byte, error)
}

// YAML is the default [Parser].
type YAML struct{}

var yamlFormat = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

func (YAML) Parse(raw []byte) (Fields, []byte, error) {
	// Nested mappings take the type of the target, so only the top level is
	// converted to Fields.
	var fields map[string]any

	body, err := frontmatter.Parse(bytes.NewReader(raw), &fields, yamlFormat)
	if err != nil {
		return nil, nil, fmt.Errorf("parse front matter: %w", err)
	}

	// An empty header decodes into a nil map.
	if fields == nil {
		return Fields{}, body, nil
	}

	return Fields(fields), body, nil
}

// Default returns the parser used when none is configured.
func Default() Parser {
	return YAML{}
}
