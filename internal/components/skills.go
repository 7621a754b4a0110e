package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Zachkp/folio/internal/content"
)

// SkillsPanel lists each category with its skills, in content order.
func SkillsPanel(skills content.Skills, dark bool) g.Node {
	if len(skills) == 0 {
		return nil
	}
	pal := paletteFor(dark)

	return Section(
		ID("skills"),
		Class("px-6 py-10 max-w-4xl mx-auto border-b "+pal.Rule),
		H2(Class("text-3xl font-bold mb-8"), g.Text("Skills")),
		Div(
			Class("space-y-4"),
			g.Map([]content.SkillGroup(skills), func(group content.SkillGroup) g.Node {
				return Div(
					g.Attr("data-skill-category", group.Category),
					Class("flex flex-col gap-2 sm:flex-row sm:items-baseline"),
					H3(Class("w-40 shrink-0 text-sm font-semibold uppercase tracking-wide "+pal.Muted), g.Text(group.Category)),
					Div(
						Class("flex flex-wrap gap-2"),
						g.Map(group.Skills, func(name string) g.Node {
							return Span(Class("text-xs px-3 py-1.5 rounded-md "+pal.Tag), g.Text(name))
						}),
					),
				)
			}),
		),
	)
}
