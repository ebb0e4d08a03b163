package core

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/karlseguin/typed"
	"github.com/samber/lo"
	"go.hacdias.com/quill/pkg/frontmatter"
)

// ContentExtension is the extension of the documents read as posts.
const ContentExtension = ".mdx"

type Post struct {
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	Tags      []string  `json:"tags"`
	Excerpt   string    `json:"excerpt"`
	ReadTime  string    `json:"readTime"`
	WordCount int       `json:"wordCount"`
	Content   string    `json:"content,omitempty"`

	// Filename is the base name of the source document.
	Filename string `json:"-"`
}

// FileSlug is the slug derived from the filename, used when the front matter
// declares none.
func (p *Post) FileSlug() string {
	return strings.TrimSuffix(p.Filename, ContentExtension)
}

// HasTag reports whether the post is tagged with tag.
func (p *Post) HasTag(tag string) bool {
	return lo.Contains(p.Tags, tag)
}

// NewPost builds a fully populated post from the front matter fields and body
// of the document filename. Missing or malformed fields fall back to their
// defaults: the slug to the filename, the title to the slug, the date to now,
// the tags to an empty list and the excerpt to the first paragraph.
func NewPost(filename string, fields frontmatter.Fields, body string, now time.Time) *Post {
	p, _ := buildPost(filename, fields, body, now)
	return p
}

// buildPost is [NewPost], also returning the names of the fields that were
// present but could not be used.
func buildPost(filename string, fields frontmatter.Fields, body string, now time.Time) (*Post, []string) {
	var malformed []string
	t := typed.New(fields)

	stringField := func(key string) string {
		if _, ok := t[key]; !ok {
			return ""
		}
		if s, ok := t.StringIf(key); ok {
			return s
		}
		s, ok := scalarString(t[key])
		if !ok {
			malformed = append(malformed, key)
		}
		return s
	}

	p := &Post{
		Content:   body,
		Filename:  filename,
		ReadTime:  readTime(body),
		WordCount: wordCount(body),
	}
	p.Slug = p.FileSlug()

	if slug := stringField("slug"); slug != "" {
		p.Slug = slug
	}

	p.Title = stringField("title")
	if p.Title == "" {
		p.Title = p.Slug
	}

	p.Date = now
	if v, ok := t["date"]; ok {
		if date, ok := parseDate(v); ok {
			p.Date = date
		} else {
			malformed = append(malformed, "date")
		}
	}

	p.Tags = []string{}
	if v, ok := t["tags"]; ok {
		tags, ok := parseTags(v)
		if !ok {
			malformed = append(malformed, "tags")
		}
		p.Tags = tags
	}

	p.Excerpt = stringField("excerpt")
	if p.Excerpt == "" {
		p.Excerpt = deriveExcerpt(body)
	}

	return p, malformed
}

func parseDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		return d, !d.IsZero()
	case string:
		date, err := dateparse.ParseIn(strings.TrimSpace(d), time.UTC)
		if err != nil {
			return time.Time{}, false
		}
		return date, true
	default:
		return time.Time{}, false
	}
}

// parseTags accepts a list of scalars or a single string. Unusable elements
// are skipped and reported through the boolean.
func parseTags(v any) ([]string, bool) {
	tags := []string{}

	switch vv := v.(type) {
	case nil:
		return tags, true
	case string:
		if vv != "" {
			tags = append(tags, vv)
		}
		return tags, true
	case []string:
		return append(tags, vv...), true
	case []any:
		ok := true
		for _, el := range vv {
			if tag, isScalar := scalarString(el); isScalar {
				tags = append(tags, tag)
			} else {
				ok = false
			}
		}
		return tags, ok
	default:
		return tags, false
	}
}

// scalarString formats strings, numbers and booleans. Any other value is
// rejected.
func scalarString(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case int, int64, uint64, float64, bool:
		return fmt.Sprint(v), true
	default:
		return "", false
	}
}

// sortPosts sorts posts by date, newest first. Posts with the same date keep
// their relative order.
func sortPosts(posts []*Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})
}
