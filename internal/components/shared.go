package components

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// Icon renders an iconify glyph, e.g. Icon("lucide:mail", "", "h-4 w-4").
func Icon(name, ariaLabel, size string) g.Node {
	classes := "iconify inline-block"
	if size != "" {
		classes += " " + size
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", name),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", name),
		g.Attr("aria-hidden", "true"),
	)
}

// externalLink opens href in a new browsing context.
func externalLink(href, classes string, children ...g.Node) g.Node {
	return A(
		Href(href),
		Target("_blank"),
		Rel("noreferrer"),
		Class(classes),
		g.Group(children),
	)
}

// Markdown renders trusted markdown. Raw HTML in the source is dropped by
// goldmark; a conversion failure renders nothing.
func Markdown(src, classes string) g.Node {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return nil
	}
	return Div(Class(classes), g.Raw(buf.String()))
}
