package components

// palette is the presentation contract: the core hands over one boolean
// and gets back the Tailwind classes for each surface.
type palette struct {
	Main       string
	Toggle     string
	Rule       string
	Muted      string
	Link       string
	Badge      string
	Tag        string
	Frame      string
	Dialog     string
	DialogText string
	Button     string
	Footer     string
}

var (
	lightPalette = palette{
		Main:       "bg-white text-slate-900",
		Toggle:     "bg-slate-100 text-slate-700 hover:bg-slate-200",
		Rule:       "border-slate-200",
		Muted:      "text-slate-600",
		Link:       "text-slate-600 hover:text-slate-900",
		Badge:      "bg-amber-50 text-amber-700 border border-amber-200",
		Tag:        "text-slate-600 bg-slate-100",
		Frame:      "bg-slate-100 border-slate-200",
		Dialog:     "bg-white",
		DialogText: "text-slate-600",
		Button:     "bg-slate-900 hover:bg-slate-800 text-white",
		Footer:     "text-slate-500",
	}

	darkPalette = palette{
		Main:       "bg-slate-900 text-slate-100",
		Toggle:     "bg-slate-800 text-yellow-400 hover:bg-slate-700",
		Rule:       "border-slate-700",
		Muted:      "text-slate-400",
		Link:       "text-slate-400 hover:text-slate-200",
		Badge:      "bg-amber-500/20 text-amber-300 border border-amber-500/30",
		Tag:        "text-slate-300 bg-slate-800",
		Frame:      "bg-slate-800 border-slate-700",
		Dialog:     "bg-slate-800",
		DialogText: "text-slate-300",
		Button:     "bg-slate-700 hover:bg-slate-600 text-slate-100",
		Footer:     "text-slate-500",
	}
)

func paletteFor(dark bool) palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}
