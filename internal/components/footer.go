package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Zachkp/folio/internal/content"
)

func PageFooter(profile content.Profile, year int, dark bool) g.Node {
	pal := paletteFor(dark)

	return Footer(
		Class("px-6 py-10 mt-20 border-t "+pal.Rule),
		Div(
			Class("max-w-4xl mx-auto text-sm "+pal.Footer),
			g.Text(fmt.Sprintf("© %d %s", year, profile.Name)),
		),
	)
}
