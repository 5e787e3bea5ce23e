package main

import (
	"bytes"
	"html/template"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	mdOnce     sync.Once
	mdRenderer goldmark.Markdown
	mdPolicy   *bluemonday.Policy
)

func markdownTooling() (goldmark.Markdown, *bluemonday.Policy) {
	mdOnce.Do(func() {
		mdRenderer = goldmark.New()
		mdPolicy = bluemonday.UGCPolicy()
	})
	return mdRenderer, mdPolicy
}

// renderMarkdown converts a product description to sanitized HTML. Plain
// text passes through as a single paragraph; on a parse failure the source
// is escaped rather than dropped.
func renderMarkdown(src string) template.HTML {
	md, policy := markdownTooling()
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return template.HTML("<p>" + template.HTMLEscapeString(src) + "</p>")
	}
	clean := policy.Sanitize(buf.String())
	return template.HTML(strings.TrimSpace(clean))
}
