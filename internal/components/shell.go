package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/ui"
)

// Options are the render-wide settings threaded from the root to every
// component.
type Options struct {
	// Linker addresses the state a control leads to.
	Linker ui.Linker
	Media  content.MediaPolicy
	// Year is printed in the footer.
	Year  int
	Boost bool
}

func (o Options) href(s ui.State) string {
	if o.Linker == nil {
		return ui.QueryLinker{}.Href(s)
	}
	return o.Linker.Href(s)
}

// Page renders the complete document for one state.
func Page(site *content.Site, state ui.State, opts Options) g.Node {
	return Layout(
		PageConfig{
			Title:       site.Profile.Name,
			Description: site.Profile.Tagline,
			Boost:       opts.Boost,
		},
		PageShell(site, state, opts),
	)
}

// PageShell is the root component. It owns state for this render and is
// the only place transitions are computed; children get the state and the
// options and link to the transitions they request.
func PageShell(site *content.Site, state ui.State, opts Options) g.Node {
	pal := paletteFor(state.Dark)

	theme := "light"
	if state.Dark {
		theme = "dark"
	}

	return Main(
		ID("page"),
		g.Attr("data-theme", theme),
		g.Attr("data-popup", state.Phase().String()),
		Class("min-h-screen transition-colors duration-300 "+pal.Main),

		ThemeToggle(state, opts),
		Hero(site.Profile, state.Dark),
		SkillsPanel(site.Skills, state.Dark),
		ProjectList(site.Projects, state, opts),
		PageFooter(site.Profile, opts.Year, state.Dark),

		PrivacyModal(state, opts),
	)
}

// ThemeToggle links to the same page with the theme flipped.
func ThemeToggle(state ui.State, opts Options) g.Node {
	pal := paletteFor(state.Dark)

	glyph := Icon("lucide:moon", "", "h-5 w-5")
	if state.Dark {
		glyph = Icon("lucide:sun", "", "h-5 w-5")
	}

	return A(
		Href(opts.href(state.ToggleDarkMode())),
		g.Attr("data-action", "toggle-theme"),
		g.Attr("aria-label", "Toggle dark mode"),
		g.Attr("rel", "nofollow"),
		Class("fixed top-6 right-6 p-3 rounded-full transition-all duration-300 z-50 "+pal.Toggle),
		glyph,
	)
}
