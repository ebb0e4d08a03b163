// Package render projects posts into the data an external renderer needs to
// draw the home page and the post pages.
package render

import (
	"time"

	"github.com/samber/lo"
	"go.hacdias.com/quill/core"
)

const dateFormat = "Jan 2, 2006"

// FormatDate formats t the way dates are displayed on pages, for example
// "Mar 14, 2025".
func FormatDate(t time.Time) string {
	return t.UTC().Format(dateFormat)
}

type ListItem struct {
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Date     string   `json:"date"`
	ReadTime string   `json:"readTime"`
	Tags     []string `json:"tags"`
}

func NewListItem(p *core.Post) ListItem {
	return ListItem{
		Slug:     p.Slug,
		Title:    p.Title,
		Excerpt:  p.Excerpt,
		Date:     FormatDate(p.Date),
		ReadTime: p.ReadTime,
		Tags:     p.Tags,
	}
}

type HomePage struct {
	Posts []ListItem `json:"posts"`
	Tags  []string   `json:"tags"`

	// SelectedTag is the tag the posts are filtered by, if any.
	SelectedTag string `json:"selectedTag,omitempty"`

	all []ListItem
}

func Home(posts []*core.Post, tags []string) HomePage {
	items := lo.Map(posts, func(p *core.Post, _ int) ListItem {
		return NewListItem(p)
	})

	return HomePage{
		Posts: items,
		Tags:  tags,
		all:   items,
	}
}

// HomeFromIndex builds the home page from every post and tag of index.
func HomeFromIndex(index *core.Index) HomePage {
	return Home(index.Posts(), index.Tags())
}

// Filter returns the page with only the posts tagged with tag. Filtering by
// the empty tag, or by the already selected one, clears the selection.
func (h HomePage) Filter(tag string) HomePage {
	page := HomePage{
		Posts: h.all,
		Tags:  h.Tags,
		all:   h.all,
	}

	if tag == "" || tag == h.SelectedTag {
		return page
	}

	page.Posts = lo.Filter(h.all, func(item ListItem, _ int) bool {
		return lo.Contains(item.Tags, tag)
	})
	page.SelectedTag = tag
	return page
}
