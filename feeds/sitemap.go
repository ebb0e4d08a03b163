package feeds

import (
	"fmt"
	"strings"
	"time"

	"go.hacdias.com/quill/core"
)

const sitemapDate = "2006-01-02"

type sitemapEntry struct {
	Location   string
	LastMod    time.Time
	ChangeFreq string
	Priority   string
}

// Sitemap generates an XML sitemap listing the home page followed by every
// post.
func Sitemap(posts []*core.Post, cfg Config, now time.Time) string {
	entries := make([]sitemapEntry, 0, len(posts)+1)
	entries = append(entries, sitemapEntry{
		Location:   cfg.siteURL(),
		LastMod:    now,
		ChangeFreq: "daily",
		Priority:   "1.0",
	})

	for _, post := range posts {
		entries = append(entries, sitemapEntry{
			Location:   cfg.PostURL(post.Slug),
			LastMod:    post.Date,
			ChangeFreq: "monthly",
			Priority:   "0.8",
		})
	}

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, entry := range entries {
		builder.WriteString("  <url>\n")
		builder.WriteString(fmt.Sprintf("    <loc>%s</loc>\n", Escape(entry.Location)))
		builder.WriteString(fmt.Sprintf("    <lastmod>%s</lastmod>\n", entry.LastMod.UTC().Format(sitemapDate)))
		builder.WriteString(fmt.Sprintf("    <changefreq>%s</changefreq>\n", entry.ChangeFreq))
		builder.WriteString(fmt.Sprintf("    <priority>%s</priority>\n", entry.Priority))
		builder.WriteString("  </url>\n")
	}
	builder.WriteString("</urlset>\n")
	return builder.String()
}
