package core

import (
	"slices"
	"sort"

	"github.com/samber/lo"
)

// Index is an immutable in-memory view over a set of posts, built once and
// queried many times within a single run.
type Index struct {
	posts      []*Post
	bySlug     map[string]*Post
	byFileSlug map[string]*Post
	byTag      map[string][]*Post
	tags       []string
}

// NewIndex indexes posts, which are expected in listing order with unique
// slugs, as returned by [Repository.ListPosts].
func NewIndex(posts []*Post) *Index {
	i := &Index{
		posts:      slices.Clone(posts),
		bySlug:     make(map[string]*Post, len(posts)),
		byFileSlug: make(map[string]*Post, len(posts)),
		byTag:      map[string][]*Post{},
		tags:       tagsOf(posts),
	}

	for _, p := range posts {
		i.bySlug[p.Slug] = p
		if _, ok := i.byFileSlug[p.FileSlug()]; !ok {
			i.byFileSlug[p.FileSlug()] = p
		}
		for _, tag := range lo.Uniq(p.Tags) {
			i.byTag[tag] = append(i.byTag[tag], p)
		}
	}

	return i
}

func (i *Index) Len() int {
	return len(i.posts)
}

func (i *Index) Posts() []*Post {
	return slices.Clone(i.posts)
}

// Get returns the post with the given slug, falling back to filename-derived
// slugs, or [ErrPostNotFound].
func (i *Index) Get(slug string) (*Post, error) {
	if p, ok := i.bySlug[slug]; ok {
		return p, nil
	}
	if p, ok := i.byFileSlug[slug]; ok {
		return p, nil
	}
	return nil, ErrPostNotFound
}

func (i *Index) Slugs() []string {
	return slugsOf(i.posts)
}

func (i *Index) Tags() []string {
	return slices.Clone(i.tags)
}

// ByTag returns the posts tagged with tag, in listing order.
func (i *Index) ByTag(tag string) []*Post {
	return slices.Clone(i.byTag[tag])
}

func slugsOf(posts []*Post) []string {
	return lo.Map(posts, func(p *Post, _ int) string {
		return p.Slug
	})
}

func tagsOf(posts []*Post) []string {
	tags := lo.Uniq(lo.FlatMap(posts, func(p *Post, _ int) []string {
		return p.Tags
	}))
	sort.Strings(tags)
	return tags
}
