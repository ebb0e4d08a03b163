package core

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/goliatone/go-slug"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"go.hacdias.com/quill/log"
	"go.hacdias.com/quill/pkg/frontmatter"
	"go.uber.org/zap"
)

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrDuplicateSlug = errors.New("duplicate slug")
)

// Repository reads posts from a content directory. Nothing is cached: every
// call re-reads and re-derives the whole directory.
type Repository struct {
	fs     *afero.Afero
	dir    string
	parser frontmatter.Parser
	log    *zap.SugaredLogger
	now    func() time.Time
}

func NewRepository(fs afero.Fs, dir string, parser frontmatter.Parser) *Repository {
	if parser == nil {
		parser = frontmatter.Default()
	}

	return &Repository{
		fs:     &afero.Afero{Fs: fs},
		dir:    dir,
		parser: parser,
		log:    log.S().Named("posts"),
		now:    time.Now,
	}
}

// NewRepositoryFromConfig creates a repository on the operating system's
// file system, reading from [Config.ContentPath].
func NewRepositoryFromConfig(c *Config) *Repository {
	return NewRepository(afero.NewOsFs(), c.ContentPath(), frontmatter.Default())
}

// ListPosts returns all posts, newest first. A missing content directory
// yields no posts.
func (r *Repository) ListPosts() ([]*Post, error) {
	exists, err := r.fs.DirExists(r.dir)
	if err != nil {
		return nil, err
	}
	if !exists {
		r.log.Debugw("content directory does not exist", "dir", r.dir)
		return []*Post{}, nil
	}

	infos, err := r.fs.ReadDir(r.dir)
	if err != nil {
		return nil, err
	}

	now := r.now()
	posts := []*Post{}
	filenames := map[string]string{}

	for _, info := range infos {
		if info.IsDir() || !strings.HasSuffix(info.Name(), ContentExtension) {
			continue
		}

		p, err := r.loadPost(info.Name(), now)
		if err != nil {
			return nil, err
		}

		if other, ok := filenames[p.Slug]; ok {
			return nil, fmt.Errorf("%w %q: declared by %s and %s", ErrDuplicateSlug, p.Slug, other, p.Filename)
		}
		filenames[p.Slug] = p.Filename

		posts = append(posts, p)
	}

	sortPosts(posts)
	return posts, nil
}

func (r *Repository) loadPost(filename string, now time.Time) (*Post, error) {
	raw, err := r.fs.ReadFile(filepath.Join(r.dir, filename))
	if err != nil {
		return nil, err
	}

	fields, body, err := r.parser.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	p, malformed := buildPost(filename, fields, string(body), now)
	for _, field := range malformed {
		r.log.Warnw("malformed front matter field, using default", "file", filename, "field", field)
	}

	if !slug.IsValid(p.Slug) {
		r.log.Warnw("slug is not URL safe", "file", filename, "slug", p.Slug)
	}

	return p, nil
}

// GetPost returns the post with the given slug, or [ErrPostNotFound]. A post
// declaring its own slug can also be found by its filename-derived slug, as
// long as no other post resolves to it.
func (r *Repository) GetPost(slug string) (*Post, error) {
	posts, err := r.ListPosts()
	if err != nil {
		return nil, err
	}

	p, ok := lo.Find(posts, func(p *Post) bool {
		return p.Slug == slug
	})
	if ok {
		return p, nil
	}

	p, ok = lo.Find(posts, func(p *Post) bool {
		return p.FileSlug() == slug
	})
	if !ok {
		return nil, ErrPostNotFound
	}

	return p, nil
}

// ListSlugs returns the slugs of all posts, in listing order.
func (r *Repository) ListSlugs() ([]string, error) {
	posts, err := r.ListPosts()
	if err != nil {
		return nil, err
	}

	return slugsOf(posts), nil
}

// ListTags returns the alphabetically sorted set of all tags.
func (r *Repository) ListTags() ([]string, error) {
	posts, err := r.ListPosts()
	if err != nil {
		return nil, err
	}

	return tagsOf(posts), nil
}

// ListPostsByTag returns the posts tagged with tag, newest first.
func (r *Repository) ListPostsByTag(tag string) ([]*Post, error) {
	posts, err := r.ListPosts()
	if err != nil {
		return nil, err
	}

	return lo.Filter(posts, func(p *Post, _ int) bool {
		return p.HasTag(tag)
	}), nil
}

// Index reads the directory once and returns an in-memory snapshot of it.
func (r *Repository) Index() (*Index, error) {
	posts, err := r.ListPosts()
	if err != nil {
		return nil, err
	}

	return NewIndex(posts), nil
}
