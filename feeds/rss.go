package feeds

import (
	"fmt"
	"strings"
	"time"

	"go.hacdias.com/quill/core"
)

// rssDate is RFC 1123 with the zone spelled GMT, as RSS readers expect.
const rssDate = "Mon, 02 Jan 2006 15:04:05 GMT"

// RSS generates an RSS 2.0 document with one item per post, in the given
// order.
func RSS(posts []*core.Post, cfg Config, now time.Time) string {
	site := cfg.siteURL()

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(`<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">` + "\n")
	builder.WriteString("  <channel>\n")
	builder.WriteString(fmt.Sprintf("    <title>%s</title>\n", Escape(cfg.Title)))
	builder.WriteString(fmt.Sprintf("    <link>%s</link>\n", Escape(site)))
	builder.WriteString(fmt.Sprintf("    <description>%s</description>\n", Escape(cfg.Description)))
	builder.WriteString("    <language>en-us</language>\n")
	builder.WriteString(fmt.Sprintf("    <lastBuildDate>%s</lastBuildDate>\n", now.UTC().Format(rssDate)))
	builder.WriteString(fmt.Sprintf(`    <atom:link href="%s" rel="self" type="application/rss+xml"/>`+"\n", Escape(cfg.selfURL("/rss.xml"))))
	if editor := cfg.managingEditor(); editor != "" {
		builder.WriteString(fmt.Sprintf("    <managingEditor>%s</managingEditor>\n", Escape(editor)))
	}

	for _, post := range posts {
		link := Escape(cfg.PostURL(post.Slug))

		builder.WriteString("    <item>\n")
		builder.WriteString(fmt.Sprintf("      <title>%s</title>\n", Escape(post.Title)))
		builder.WriteString(fmt.Sprintf("      <link>%s</link>\n", link))
		builder.WriteString(fmt.Sprintf(`      <guid isPermaLink="true">%s</guid>`+"\n", link))
		builder.WriteString(fmt.Sprintf("      <description>%s</description>\n", Escape(Summary(post.Content))))
		builder.WriteString(fmt.Sprintf("      <pubDate>%s</pubDate>\n", post.Date.UTC().Format(rssDate)))
		for _, tag := range post.Tags {
			builder.WriteString(fmt.Sprintf("      <category>%s</category>\n", Escape(tag)))
		}
		builder.WriteString("    </item>\n")
	}

	builder.WriteString("  </channel>\n")
	builder.WriteString("</rss>\n")
	return builder.String()
}
