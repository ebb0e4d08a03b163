// Package publisher writes the syndication documents of a site to an output
// file system.
package publisher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"go.hacdias.com/quill/core"
	"go.hacdias.com/quill/feeds"
	"go.hacdias.com/quill/log"
	"go.uber.org/zap"
)

const postFeedFilename = "rss.xml"

type Option func(*Publisher)

// WithClock sets the function used to read the current time.
func WithClock(now func() time.Time) Option {
	return func(p *Publisher) {
		p.now = now
	}
}

func WithLogger(log *zap.SugaredLogger) Option {
	return func(p *Publisher) {
		p.log = log
	}
}

// Report describes a finished run.
type Report struct {
	Posts int
	Files []string
}

type Publisher struct {
	repo *core.Repository
	out  *afero.Afero
	cfg  feeds.Config
	now  func() time.Time
	log  *zap.SugaredLogger
}

func New(repo *core.Repository, out afero.Fs, cfg feeds.Config, opts ...Option) *Publisher {
	p := &Publisher{
		repo: repo,
		out:  &afero.Afero{Fs: out},
		cfg:  cfg,
		now:  time.Now,
		log:  log.S().Named("publisher"),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// NewFromConfig creates a publisher reading from the configured content
// directory and writing to the configured public directory.
func NewFromConfig(c *core.Config, opts ...Option) *Publisher {
	out := afero.NewBasePathFs(afero.NewOsFs(), c.PublicDirectory)
	return New(core.NewRepositoryFromConfig(c), out, feeds.FromSite(c.Site), opts...)
}

// Publish loads every post once and writes the site feeds, the sitemap and
// one feed per post. Slugs are checked before anything is written, and the
// first error aborts the run.
func (p *Publisher) Publish(ctx context.Context) (*Report, error) {
	index, err := p.repo.Index()
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}

	posts := index.Posts()
	for _, post := range posts {
		if !filepath.IsLocal(post.Slug) {
			return nil, fmt.Errorf("slug %q of %s cannot be used as a path", post.Slug, post.Filename)
		}
	}

	now := p.now()
	report := &Report{
		Posts: index.Len(),
		Files: []string{},
	}

	for _, kind := range []feeds.Kind{feeds.KindRSS, feeds.KindAtom, feeds.KindSitemap} {
		doc, err := feeds.Generate(kind, posts, p.cfg, now)
		if err != nil {
			return nil, err
		}

		err = p.write(ctx, feeds.Filename(kind), doc, report)
		if err != nil {
			return nil, err
		}
	}

	for _, post := range posts {
		filename := filepath.Join("post", post.Slug, postFeedFilename)

		doc := feeds.RSS([]*core.Post{post}, p.postFeedConfig(post), now)
		err = p.write(ctx, filename, doc, report)
		if err != nil {
			return nil, err
		}
	}

	p.log.Infow("published", "posts", report.Posts, "files", len(report.Files))
	return report, nil
}

func (p *Publisher) postFeedConfig(post *core.Post) feeds.Config {
	cfg := p.cfg
	cfg.Title = post.Title + " - " + p.cfg.Title
	cfg.Description = feeds.Summary(post.Content)
	cfg.SelfURL = p.cfg.PostURL(post.Slug) + "/" + postFeedFilename
	return cfg
}

func (p *Publisher) write(ctx context.Context, filename, content string, report *Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := p.out.MkdirAll(filepath.Dir(filename), 0755)
	if err != nil {
		return fmt.Errorf("could not create directory for %s: %w", filename, err)
	}

	err = p.out.WriteFile(filename, []byte(content), 0644)
	if err != nil {
		return fmt.Errorf("could not write %s: %w", filename, err)
	}

	p.log.Debugw("wrote file", "file", filename)
	report.Files = append(report.Files, filename)
	return nil
}
