package render

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.hacdias.com/quill/core"
	"go.hacdias.com/quill/feeds"
)

var testSite = feeds.Config{
	Title:      "Blog",
	SiteURL:    "https://blog.example.com/",
	AuthorName: "Jane",
}

func testPosts() []*core.Post {
	return []*core.Post{
		{
			Slug:      "rust",
			Title:     "Rust",
			Date:      time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
			Tags:      []string{"rust", "systems"},
			Excerpt:   "About Rust.",
			ReadTime:  "3 min read",
			WordCount: 450,
		},
		{
			Slug:     "go",
			Title:    "Go",
			Date:     time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
			Tags:     []string{"go", "systems"},
			Excerpt:  "About Go.",
			ReadTime: "1 min read",
		},
		{
			Slug:     "untagged",
			Title:    "Untagged",
			Date:     time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC),
			Tags:     []string{},
			ReadTime: "1 min read",
		},
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		title    string
		input    time.Time
		expected string
	}{
		{"Single Digit Day", time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC), "Jan 9, 2024"},
		{"Two Digit Day", time.Date(2025, 3, 14, 23, 59, 0, 0, time.UTC), "Mar 14, 2025"},
		{"Other Zone", time.Date(2025, 12, 31, 22, 0, 0, 0, time.FixedZone("X", -5*60*60)), "Jan 1, 2026"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatDate(tt.input), "failed for title: %s", tt.title)
	}
}

func TestHome(t *testing.T) {
	home := Home(testPosts(), []string{"go", "rust", "systems"})

	require.Len(t, home.Posts, 3)
	assert.Equal(t, ListItem{
		Slug:     "rust",
		Title:    "Rust",
		Excerpt:  "About Rust.",
		Date:     "Mar 14, 2025",
		ReadTime: "3 min read",
		Tags:     []string{"rust", "systems"},
	}, home.Posts[0])
	assert.Equal(t, []string{"go", "rust", "systems"}, home.Tags)
	assert.Empty(t, home.SelectedTag)
}

func TestHomeFilter(t *testing.T) {
	home := Home(testPosts(), []string{"go", "rust", "systems"})

	systems := home.Filter("systems")
	assert.Equal(t, "systems", systems.SelectedTag)
	require.Len(t, systems.Posts, 2)
	assert.Equal(t, "rust", systems.Posts[0].Slug)
	assert.Equal(t, "go", systems.Posts[1].Slug)

	goPosts := systems.Filter("go")
	require.Len(t, goPosts.Posts, 1)
	assert.Equal(t, "go", goPosts.Posts[0].Slug)

	cleared := goPosts.Filter("go")
	assert.Empty(t, cleared.SelectedTag)
	assert.Len(t, cleared.Posts, 3)

	assert.Len(t, systems.Filter("").Posts, 3)
	assert.Empty(t, home.Filter("python").Posts)
}

func TestSection(t *testing.T) {
	posts := testPosts()
	assert.Equal(t, "rust", Section(posts[0]))
	assert.Equal(t, "Technology", Section(posts[2]))
}

func TestNewPostPage(t *testing.T) {
	page, err := NewPostPage(testPosts()[0], testSite)
	require.NoError(t, err)

	assert.Equal(t, "https://blog.example.com/post/rust", page.URL)
	assert.Equal(t, "Mar 14, 2025", page.FormattedDate)
	assert.Equal(t, "Rust", page.Title)
	require.Len(t, page.StructuredData, 2)

	var posting map[string]any
	require.NoError(t, json.Unmarshal([]byte(page.StructuredData[0]), &posting))
	assert.Equal(t, "https://schema.org", posting["@context"])
	assert.Equal(t, "BlogPosting", posting["@type"])
	assert.Equal(t, "Rust", posting["headline"])
	assert.Equal(t, "About Rust.", posting["description"])
	assert.Equal(t, "https://blog.example.com/post/rust", posting["url"])
	assert.Equal(t, "2025-03-14T09:26:53.000Z", posting["datePublished"])
	assert.Equal(t, "rust, systems", posting["keywords"])
	assert.Equal(t, "rust", posting["articleSection"])
	assert.EqualValues(t, 450, posting["wordCount"])
	assert.Equal(t, "3 min", posting["timeRequired"])
	assert.Equal(t, "en-US", posting["inLanguage"])
	assert.Equal(t, map[string]any{"@type": "Person", "name": "Jane", "url": "https://blog.example.com"}, posting["author"])
	assert.Equal(t, map[string]any{"@type": "WebPage", "@id": "https://blog.example.com/post/rust"}, posting["mainEntityOfPage"])

	var breadcrumbs struct {
		Type  string `json:"@type"`
		Items []struct {
			Position int    `json:"position"`
			Name     string `json:"name"`
			Item     string `json:"item"`
		} `json:"itemListElement"`
	}
	require.NoError(t, json.Unmarshal([]byte(page.StructuredData[1]), &breadcrumbs))
	assert.Equal(t, "BreadcrumbList", breadcrumbs.Type)
	require.Len(t, breadcrumbs.Items, 2)
	assert.Equal(t, 1, breadcrumbs.Items[0].Position)
	assert.Equal(t, "Blog", breadcrumbs.Items[0].Name)
	assert.Equal(t, "https://blog.example.com", breadcrumbs.Items[0].Item)
	assert.Equal(t, "Rust", breadcrumbs.Items[1].Name)
	assert.Equal(t, page.URL, breadcrumbs.Items[1].Item)
}

func TestNewPostPageUntagged(t *testing.T) {
	site := testSite
	site.AuthorName = ""

	page, err := NewPostPage(testPosts()[2], site)
	require.NoError(t, err)

	var posting map[string]any
	require.NoError(t, json.Unmarshal([]byte(page.StructuredData[0]), &posting))
	assert.Equal(t, "Technology", posting["articleSection"])
	assert.Equal(t, "", posting["keywords"])
	assert.NotContains(t, posting, "author")
}

func TestHomeFromIndex(t *testing.T) {
	home := HomeFromIndex(core.NewIndex(testPosts()))
	assert.Len(t, home.Posts, 3)
	assert.Equal(t, []string{"go", "rust", "systems"}, home.Tags)
}
