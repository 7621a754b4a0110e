package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Zachkp/folio/internal/content"
)

func Hero(profile content.Profile, dark bool) g.Node {
	pal := paletteFor(dark)
	linkClass := "inline-flex items-center gap-2 text-sm transition-colors " + pal.Link

	var contacts []g.Node
	if profile.Email != "" {
		contacts = append(contacts, A(
			Href("mailto:"+profile.Email),
			Class(linkClass),
			Icon("lucide:mail", "", "h-4 w-4"),
			g.Text("Email"),
		))
	}
	for _, link := range profile.Links {
		if link.URL == "" {
			continue
		}
		contacts = append(contacts, externalLink(link.URL, linkClass,
			Icon(linkIcon(link.Label), "", "h-4 w-4"),
			g.Text(link.Label),
		))
	}
	if profile.Resume != "" {
		contacts = append(contacts, externalLink(profile.Resume, linkClass,
			Icon("lucide:file-text", "", "h-4 w-4"),
			g.Text("Resume"),
		))
	}

	return Section(
		ID("hero"),
		Class("px-6 pt-20 pb-10 max-w-4xl mx-auto border-b "+pal.Rule),
		H1(Class("text-5xl font-bold tracking-tight mb-3"), g.Text(profile.Name)),
		g.If(profile.Tagline != "",
			P(Class("text-lg mb-8 "+pal.Muted), g.Text(profile.Tagline)),
		),
		Markdown(profile.Bio, "mb-8 leading-relaxed "+pal.Muted),
		g.If(len(contacts) > 0,
			Nav(Class("flex flex-wrap gap-6"), g.Group(contacts)),
		),
	)
}

// linkIcon picks a glyph for well-known profile labels.
func linkIcon(label string) string {
	switch label {
	case "GitHub":
		return "mdi:github"
	case "LinkedIn":
		return "mdi:linkedin"
	case "X", "Twitter":
		return "mdi:twitter"
	default:
		return "lucide:link"
	}
}
