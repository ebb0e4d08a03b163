package feeds

import (
	"strings"

	"github.com/samber/lo"
	"go.hacdias.com/quill/core"
)

// Config describes the site a feed is generated for.
type Config struct {
	Title       string
	Description string
	SiteURL     string
	AuthorName  string
	AuthorEmail string

	// SelfURL is the absolute URL the generated document is published at.
	// When empty, the default location for the format under SiteURL is used.
	SelfURL string
}

func DefaultConfig() Config {
	return Config{
		Title:       "Quill",
		Description: "Latest posts",
		SiteURL:     "http://localhost:3000",
		AuthorName:  "Quill",
	}
}

// Merge returns a copy of override where every empty field is taken from c.
func (c Config) Merge(override Config) Config {
	merged := Config{}
	merged.Title, _ = lo.Coalesce(override.Title, c.Title)
	merged.Description, _ = lo.Coalesce(override.Description, c.Description)
	merged.SiteURL, _ = lo.Coalesce(override.SiteURL, c.SiteURL)
	merged.AuthorName, _ = lo.Coalesce(override.AuthorName, c.AuthorName)
	merged.AuthorEmail, _ = lo.Coalesce(override.AuthorEmail, c.AuthorEmail)
	merged.SelfURL, _ = lo.Coalesce(override.SelfURL, c.SelfURL)
	return merged
}

func (c Config) siteURL() string {
	return strings.TrimRight(c.SiteURL, "/")
}

// PostURL is the canonical URL of the post with the given slug.
func (c Config) PostURL(slug string) string {
	return c.siteURL() + "/post/" + slug
}

func (c Config) selfURL(defaultPath string) string {
	if c.SelfURL != "" {
		return c.SelfURL
	}
	return c.siteURL() + defaultPath
}

// managingEditor formats the author as "email (name)", either part optional.
func (c Config) managingEditor() string {
	editor := c.AuthorEmail
	if c.AuthorName != "" {
		editor += " (" + c.AuthorName + ")"
	}
	return strings.TrimSpace(editor)
}

// FromSite returns the default configuration overridden by the non-empty
// fields of site.
func FromSite(site core.SiteConfig) Config {
	return DefaultConfig().Merge(Config{
		Title:       site.Title,
		Description: site.Description,
		SiteURL:     site.BaseURL,
		AuthorName:  site.Author.Name,
		AuthorEmail: site.Author.Email,
	})
}
