package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Zachkp/folio/internal/ui"
)

// PrivacyModal explains that a repository is private. Both the dimmed
// backdrop and the acknowledgement control lead to the closed state.
func PrivacyModal(state ui.State, opts Options) g.Node {
	if !state.Popup {
		return nil
	}
	pal := paletteFor(state.Dark)
	closed := opts.href(state.ClosePopup())

	return Div(
		ID("privacy-modal"),
		g.Attr("role", "dialog"),
		g.Attr("aria-modal", "true"),
		g.Attr("aria-labelledby", "privacy-modal-title"),
		Class("fixed inset-0 z-50 flex items-center justify-center p-4"),

		A(
			Href(closed),
			g.Attr("data-dismiss", "backdrop"),
			g.Attr("aria-label", "Close"),
			g.Attr("rel", "nofollow"),
			Class("absolute inset-0 bg-black/50"),
		),

		Div(
			Class("relative max-w-md w-full p-6 rounded-lg shadow-xl "+pal.Dialog),
			H3(ID("privacy-modal-title"), Class("text-xl font-semibold mb-3"), g.Text("Private Repository")),
			P(
				Class("mb-6 "+pal.DialogText),
				g.Text("This repo is private. Feel free to message me for a link!"),
			),
			A(
				Href(closed),
				g.Attr("data-dismiss", "acknowledge"),
				g.Attr("rel", "nofollow"),
				Class("block w-full text-center py-2.5 px-4 rounded-lg font-medium transition-colors "+pal.Button),
				g.Text("Got it"),
			),
		),
	)
}
