package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/ui"
)

// ProjectList renders the catalog in order.
func ProjectList(projects []content.Project, state ui.State, opts Options) g.Node {
	cards := make([]g.Node, 0, len(projects))
	for i, p := range projects {
		cards = append(cards, ProjectCard(p, i, state, opts))
	}

	return Section(
		ID("projects"),
		Class("px-6 py-5 max-w-4xl mx-auto"),
		H2(Class("text-3xl font-bold mb-12"), g.Text("Projects")),
		Div(Class("space-y-10"), g.Group(cards)),
	)
}

// ProjectCard renders one project. A private code link leads to the
// state with the popup open rather than to a repository.
func ProjectCard(p content.Project, index int, state ui.State, opts Options) g.Node {
	pal := paletteFor(state.Dark)

	return Article(
		ID(fmt.Sprintf("project-%d", index)),
		g.Attr("data-project", p.Title),
		Class("border-b pb-5 last:border-b-0 "+pal.Rule),

		H3(
			Class("text-2xl font-semibold mb-4 flex items-center gap-3"),
			g.Text(p.Title),
			g.If(p.InProgress,
				Span(
					g.Attr("data-badge", "in-progress"),
					Class("text-xs px-2.5 py-1 rounded-full font-medium "+pal.Badge),
					g.Text("In Progress"),
				),
			),
		),

		projectMedia(p, opts.Media, pal),

		g.If(p.Blurb != "",
			P(Class("mb-6 leading-relaxed text-base "+pal.Muted), g.Text(p.Blurb)),
		),

		g.If(len(p.Tech) > 0,
			Div(
				Class("flex flex-wrap gap-2 mb-6"),
				g.Map(p.Tech, func(t string) g.Node {
					return Span(g.Attr("data-tag", t), Class("text-xs px-3 py-1.5 rounded-md "+pal.Tag), g.Text(t))
				}),
			),
		),

		projectActions(p, state, opts, pal),
	)
}

// projectMedia picks video over image over nothing.
func projectMedia(p content.Project, policy content.MediaPolicy, pal palette) g.Node {
	frame := "aspect-video mb-6 rounded-lg overflow-hidden border " + pal.Frame

	switch p.Media.Kind {
	case content.MediaVideo:
		return Div(
			g.Attr("data-media", "video"),
			Class(frame),
			Video(
				Class("h-full w-full object-cover"),
				Src(p.Media.Src),
				g.If(p.Media.Poster != "", g.Attr("poster", p.Media.Poster)),
				g.Attr("controls"),
				g.Attr("preload", "metadata"),
			),
		)
	case content.MediaImage:
		return Div(
			g.Attr("data-media", "image"),
			Class(frame),
			Img(
				Class("h-full w-full object-cover"),
				Src(p.Media.Src),
				Alt(p.Title),
			),
		)
	}

	if policy == content.MediaPlaceholder {
		return Div(g.Attr("data-media", "placeholder"), Class(frame))
	}
	return nil
}

func projectActions(p content.Project, state ui.State, opts Options, pal palette) g.Node {
	linkClass := "inline-flex items-center gap-2 text-sm transition-colors " + pal.Link

	var actions []g.Node
	if p.Live != "" {
		actions = append(actions, externalLink(p.Live, linkClass,
			g.Attr("data-action", "live"),
			Icon("lucide:external-link", "", "h-4 w-4"),
			g.Text("Live Site"),
		))
	}

	switch p.Code.Kind {
	case content.CodeURL:
		actions = append(actions, externalLink(p.Code.Href, linkClass,
			g.Attr("data-action", "code"),
			Icon("mdi:github", "", "h-4 w-4"),
			g.Text("View code"),
		))
	case content.CodePrivate:
		actions = append(actions, A(
			Href(opts.href(state.OpenPopup())),
			g.Attr("data-action", "code-private"),
			g.Attr("rel", "nofollow"),
			Class(linkClass+" cursor-pointer"),
			Icon("mdi:github", "", "h-4 w-4"),
			g.Text("View code"),
		))
	}

	if len(actions) == 0 {
		return nil
	}
	return Div(Class("flex gap-6"), g.Group(actions))
}
