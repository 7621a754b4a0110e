package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	// Boost upgrades same-origin links to htmx swaps. The static export
	// leaves it on too; it only needs the script, not a server.
	Boost bool
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "Portfolio"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				g.If(config.Description != "", Meta(Name("description"), Content(config.Description))),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				Meta(Name("htmx-config"), Content(`{"scrollIntoViewOnBoost":false}`)),

				Script(Src("https://cdn.tailwindcss.com")),
				Script(Src("https://code.iconify.design/3/3.1.1/iconify.min.js")),
				g.If(config.Boost, Script(Src("https://unpkg.com/htmx.org@2.0.4"))),
			),
			Body(
				g.If(config.Boost, g.Attr("hx-boost", "true")),
				g.Group(content),
			),
		),
	})
}
