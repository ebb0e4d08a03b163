// Package feeds projects posts into syndication documents: RSS 2.0, Atom and
// XML sitemaps. Generators never re-order posts and never fail.
package feeds

import (
	"fmt"
	"time"

	"go.hacdias.com/quill/core"
)

type Kind string

const (
	KindRSS     Kind = "rss"
	KindAtom    Kind = "atom"
	KindSitemap Kind = "sitemap"
)

const charsetUTF8Suffix = "; charset=utf-8"

// Generate generates the document of the given kind.
func Generate(kind Kind, posts []*core.Post, cfg Config, now time.Time) (string, error) {
	switch kind {
	case KindRSS:
		return RSS(posts, cfg, now), nil
	case KindAtom:
		return Atom(posts, cfg, now), nil
	case KindSitemap:
		return Sitemap(posts, cfg, now), nil
	default:
		return "", fmt.Errorf("unknown feed kind %q", kind)
	}
}

// ContentType returns the media type documents of the given kind are served
// with.
func ContentType(kind Kind) string {
	switch kind {
	case KindRSS:
		return "application/rss+xml" + charsetUTF8Suffix
	case KindAtom:
		return "application/atom+xml" + charsetUTF8Suffix
	default:
		return "application/xml" + charsetUTF8Suffix
	}
}

// Filename is the conventional file name of documents of the given kind.
func Filename(kind Kind) string {
	return string(kind) + ".xml"
}
