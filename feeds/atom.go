package feeds

import (
	"fmt"
	"strings"
	"time"

	"go.hacdias.com/quill/core"
)

const atomDate = "2006-01-02T15:04:05.000Z07:00"

// Atom generates an Atom document with one entry per post, in the given order.
func Atom(posts []*core.Post, cfg Config, now time.Time) string {
	site := cfg.siteURL()

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(`<feed xmlns="http://www.w3.org/2005/Atom">` + "\n")
	builder.WriteString(fmt.Sprintf("  <title>%s</title>\n", Escape(cfg.Title)))
	if cfg.Description != "" {
		builder.WriteString(fmt.Sprintf("  <subtitle>%s</subtitle>\n", Escape(cfg.Description)))
	}
	builder.WriteString(fmt.Sprintf(`  <link href="%s"/>`+"\n", Escape(site)))
	builder.WriteString(fmt.Sprintf(`  <link href="%s" rel="self"/>`+"\n", Escape(cfg.selfURL("/atom.xml"))))
	builder.WriteString(fmt.Sprintf("  <updated>%s</updated>\n", now.UTC().Format(atomDate)))
	builder.WriteString(fmt.Sprintf("  <id>%s/</id>\n", Escape(site)))
	builder.WriteString("  <author>\n")
	builder.WriteString(fmt.Sprintf("    <name>%s</name>\n", Escape(cfg.AuthorName)))
	if cfg.AuthorEmail != "" {
		builder.WriteString(fmt.Sprintf("    <email>%s</email>\n", Escape(cfg.AuthorEmail)))
	}
	builder.WriteString("  </author>\n")

	for _, post := range posts {
		link := Escape(cfg.PostURL(post.Slug))

		builder.WriteString("  <entry>\n")
		builder.WriteString(fmt.Sprintf("    <title>%s</title>\n", Escape(post.Title)))
		builder.WriteString(fmt.Sprintf(`    <link href="%s"/>`+"\n", link))
		builder.WriteString(fmt.Sprintf("    <id>%s</id>\n", link))
		builder.WriteString(fmt.Sprintf("    <updated>%s</updated>\n", post.Date.UTC().Format(atomDate)))
		builder.WriteString(fmt.Sprintf("    <summary>%s</summary>\n", Escape(Summary(post.Content))))
		for _, tag := range post.Tags {
			builder.WriteString(fmt.Sprintf(`    <category term="%s"/>`+"\n", Escape(tag)))
		}
		builder.WriteString("  </entry>\n")
	}

	builder.WriteString("</feed>\n")
	return builder.String()
}
