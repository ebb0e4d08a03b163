package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.hacdias.com/quill/core"
	"go.hacdias.com/quill/feeds"
)

const (
	schemaContext  = "https://schema.org"
	defaultSection = "Technology"
	language       = "en-US"
	isoDate        = "2006-01-02T15:04:05.000Z07:00"
)

type PostPage struct {
	*core.Post

	URL            string   `json:"url"`
	FormattedDate  string   `json:"formattedDate"`
	Section        string   `json:"section"`
	StructuredData []string `json:"structuredData"`
}

type thing struct {
	Type string `json:"@type"`
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
	ID   string `json:"@id,omitempty"`
}

type blogPosting struct {
	Context          string `json:"@context"`
	Type             string `json:"@type"`
	Headline         string `json:"headline"`
	Description      string `json:"description"`
	URL              string `json:"url"`
	DatePublished    string `json:"datePublished"`
	DateModified     string `json:"dateModified"`
	Author           *thing `json:"author,omitempty"`
	Publisher        *thing `json:"publisher,omitempty"`
	MainEntityOfPage thing  `json:"mainEntityOfPage"`
	Keywords         string `json:"keywords"`
	ArticleSection   string `json:"articleSection"`
	WordCount        int    `json:"wordCount"`
	TimeRequired     string `json:"timeRequired"`
	InLanguage       string `json:"inLanguage"`
}

type breadcrumbList struct {
	Context         string           `json:"@context"`
	Type            string           `json:"@type"`
	ItemListElement []breadcrumbItem `json:"itemListElement"`
}

type breadcrumbItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

// Section is the first tag of the post, or "Technology" for untagged posts.
func Section(p *core.Post) string {
	if len(p.Tags) == 0 || p.Tags[0] == "" {
		return defaultSection
	}
	return p.Tags[0]
}

// NewPostPage builds the page data of p, including its JSON-LD documents: a
// BlogPosting followed by a BreadcrumbList.
func NewPostPage(p *core.Post, site feeds.Config) (*PostPage, error) {
	page := &PostPage{
		Post:          p,
		URL:           site.PostURL(p.Slug),
		FormattedDate: FormatDate(p.Date),
		Section:       Section(p),
	}

	for _, doc := range []any{blogPostingOf(page, site), breadcrumbsOf(page, site)} {
		data, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("could not marshal structured data of %s: %w", p.Slug, err)
		}
		page.StructuredData = append(page.StructuredData, string(data))
	}

	return page, nil
}

func blogPostingOf(page *PostPage, site feeds.Config) blogPosting {
	published := page.Date.UTC().Format(isoDate)

	var author *thing
	if site.AuthorName != "" {
		author = &thing{Type: "Person", Name: site.AuthorName, URL: strings.TrimRight(site.SiteURL, "/")}
	}

	return blogPosting{
		Context:          schemaContext,
		Type:             "BlogPosting",
		Headline:         page.Title,
		Description:      page.Excerpt,
		URL:              page.URL,
		DatePublished:    published,
		DateModified:     published,
		Author:           author,
		Publisher:        author,
		MainEntityOfPage: thing{Type: "WebPage", ID: page.URL},
		Keywords:         strings.Join(page.Tags, ", "),
		ArticleSection:   page.Section,
		WordCount:        page.WordCount,
		TimeRequired:     strings.Replace(page.ReadTime, " read", "", 1),
		InLanguage:       language,
	}
}

func breadcrumbsOf(page *PostPage, site feeds.Config) breadcrumbList {
	return breadcrumbList{
		Context: schemaContext,
		Type:    "BreadcrumbList",
		ItemListElement: []breadcrumbItem{
			{Type: "ListItem", Position: 1, Name: "Blog", Item: strings.TrimRight(site.SiteURL, "/")},
			{Type: "ListItem", Position: 2, Name: page.Title, Item: page.URL},
		},
	}
}
