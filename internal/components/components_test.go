package components

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	g "maragu.dev/gomponents"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/ui"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func parse(t *testing.T, n g.Node) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(render(t, n)))
	require.NoError(t, err)
	return doc
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// findAll returns every element carrying key (and value, when non-empty).
func findAll(root *html.Node, key, value string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if v, ok := attr(n, key); ok && (value == "" || v == value) {
				out = append(out, n)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

func findTag(root *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

func textOf(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func testSite() *content.Site {
	return &content.Site{
		Profile: content.Profile{
			Name:    "Test Person",
			Tagline: "Builder of things",
			Bio:     "Hello **world**",
			Email:   "test@example.com",
			Resume:  "/files/resume.pdf",
			Links: content.Links{
				{Label: "GitHub", URL: "https://github.com/test"},
				{Label: "LinkedIn", URL: "https://linkedin.com/in/test"},
			},
		},
		Skills: content.Skills{
			{Category: "Languages", Skills: []string{"Go", "Python"}},
			{Category: "Tools", Skills: []string{"Docker"}},
		},
		Projects: []content.Project{
			{
				Title: "Video Project",
				Blurb: "with video",
				Tech:  []string{"Go", "Go"},
				Media: content.Video("/videos/v.mp4", "/images/v.jpg"),
				Code:  content.PrivateCode(),
			},
			{
				Title: "Image Project",
				Blurb: "with image",
				Media: content.Image("/images/i.png"),
				Live:  "https://live.example.com",
			},
			{
				Title:      "Bare Project",
				Blurb:      "no media",
				Tech:       []string{"Rust"},
				Code:       content.CodeAt("https://github.com/test/bare"),
				InProgress: true,
			},
		},
	}
}

func testOptions() Options {
	return Options{Linker: ui.QueryLinker{}, Year: 2026}
}

func TestMediaResolution(t *testing.T) {
	site := testSite()
	for i, p := range site.Projects {
		doc := parse(t, ProjectCard(p, i, ui.State{}, testOptions()))
		videos, images := findTag(doc, "video"), findTag(doc, "img")

		switch p.Media.Kind {
		case content.MediaVideo:
			require.Len(t, videos, 1, p.Title)
			assert.Empty(t, images, p.Title)
			poster, _ := attr(videos[0], "poster")
			assert.Equal(t, p.Media.Poster, poster)
			_, controls := attr(videos[0], "controls")
			assert.True(t, controls)
		case content.MediaImage:
			require.Len(t, images, 1, p.Title)
			assert.Empty(t, videos, p.Title)
			alt, _ := attr(images[0], "alt")
			assert.Equal(t, p.Title, alt)
		default:
			assert.Empty(t, videos, p.Title)
			assert.Empty(t, images, p.Title)
		}
	}
}

func TestCardWithoutMediaOmitsContainer(t *testing.T) {
	p := content.Project{Title: "Bare", Blurb: "still here", Tech: []string{"Go", "SQL"}}

	doc := parse(t, ProjectCard(p, 0, ui.State{}, testOptions()))
	assert.Empty(t, findAll(doc, "data-media", ""))
	assert.Contains(t, textOf(doc), "still here")
	assert.Len(t, findAll(doc, "data-tag", ""), 2)

	opts := testOptions()
	opts.Media = content.MediaPlaceholder
	doc = parse(t, ProjectCard(p, 0, ui.State{}, opts))
	assert.Len(t, findAll(doc, "data-media", "placeholder"), 1)
}

func TestTagsKeepOrderAndDuplicates(t *testing.T) {
	p := content.Project{Title: "T", Tech: []string{"B", "A", "B"}}
	doc := parse(t, ProjectCard(p, 0, ui.State{}, testOptions()))

	var got []string
	for _, n := range findAll(doc, "data-tag", "") {
		got = append(got, textOf(n))
	}
	assert.Equal(t, []string{"B", "A", "B"}, got)
}

func TestPrivateCodeWithoutLiveSite(t *testing.T) {
	p := content.Project{Title: "Private", Code: content.PrivateCode()}
	doc := parse(t, ProjectCard(p, 0, ui.State{}, testOptions()))

	actions := findAll(doc, "data-action", "")
	require.Len(t, actions, 1)
	v, _ := attr(actions[0], "data-action")
	assert.Equal(t, "code-private", v)
	href, _ := attr(actions[0], "href")
	assert.Equal(t, "/?popup=1", href)
	assert.NotContains(t, textOf(doc), "Live Site")
}

func TestLiveSiteWithoutCode(t *testing.T) {
	p := content.Project{Title: "Live", Live: "https://live.example.com"}
	doc := parse(t, ProjectCard(p, 0, ui.State{}, testOptions()))

	actions := findAll(doc, "data-action", "")
	require.Len(t, actions, 1)
	v, _ := attr(actions[0], "data-action")
	assert.Equal(t, "live", v)
	target, _ := attr(actions[0], "target")
	assert.Equal(t, "_blank", target)
	assert.NotContains(t, textOf(doc), "View code")
}

func TestPublicCodeOpensNewContext(t *testing.T) {
	p := content.Project{Title: "Public", Code: content.CodeAt("https://github.com/x/y")}
	doc := parse(t, ProjectCard(p, 0, ui.State{}, testOptions()))

	actions := findAll(doc, "data-action", "code")
	require.Len(t, actions, 1)
	href, _ := attr(actions[0], "href")
	target, _ := attr(actions[0], "target")
	assert.Equal(t, "https://github.com/x/y", href)
	assert.Equal(t, "_blank", target)
}

func TestNoActions(t *testing.T) {
	p := content.Project{Title: "Quiet"}
	doc := parse(t, ProjectCard(p, 0, ui.State{}, testOptions()))
	assert.Empty(t, findAll(doc, "data-action", ""))
}

func TestPrivateLinkKeepsTheme(t *testing.T) {
	p := content.Project{Title: "Private", Code: content.PrivateCode()}
	doc := parse(t, ProjectCard(p, 0, ui.State{Dark: true}, testOptions()))

	actions := findAll(doc, "data-action", "code-private")
	require.Len(t, actions, 1)
	href, _ := attr(actions[0], "href")
	assert.Equal(t, "/?dark=1&popup=1", href)
}

func TestInProgressBadge(t *testing.T) {
	doc := parse(t, ProjectCard(content.Project{Title: "A", InProgress: true}, 0, ui.State{}, testOptions()))
	assert.Len(t, findAll(doc, "data-badge", "in-progress"), 1)

	doc = parse(t, ProjectCard(content.Project{Title: "B"}, 0, ui.State{}, testOptions()))
	assert.Empty(t, findAll(doc, "data-badge", ""))
}

func TestProjectListOrder(t *testing.T) {
	site := testSite()
	doc := parse(t, ProjectList(site.Projects, ui.State{}, testOptions()))

	var got []string
	for _, n := range findAll(doc, "data-project", "") {
		v, _ := attr(n, "data-project")
		got = append(got, v)
	}
	assert.Equal(t, []string{"Video Project", "Image Project", "Bare Project"}, got)
}

func TestSkillsPanelOrder(t *testing.T) {
	site := testSite()
	doc := parse(t, SkillsPanel(site.Skills, false))

	var got []string
	for _, n := range findAll(doc, "data-skill-category", "") {
		v, _ := attr(n, "data-skill-category")
		got = append(got, v)
	}
	assert.Equal(t, []string{"Languages", "Tools"}, got)

	assert.Nil(t, SkillsPanel(nil, false))
}

func TestPrivacyModal(t *testing.T) {
	assert.Nil(t, PrivacyModal(ui.State{}, testOptions()))

	doc := parse(t, PrivacyModal(ui.State{Dark: true, Popup: true}, testOptions()))
	for _, path := range []string{"backdrop", "acknowledge"} {
		nodes := findAll(doc, "data-dismiss", path)
		require.Len(t, nodes, 1, path)
		href, _ := attr(nodes[0], "href")
		assert.Equal(t, "/?dark=1", href, path)
	}
	assert.Contains(t, textOf(doc), "This repo is private.")
}

func TestPageShellPopupVisibility(t *testing.T) {
	site := testSite()

	hidden := parse(t, PageShell(site, ui.State{}, testOptions()))
	assert.Empty(t, findAll(hidden, "id", "privacy-modal"))

	visible := parse(t, PageShell(site, ui.State{Popup: true}, testOptions()))
	assert.Len(t, findAll(visible, "id", "privacy-modal"), 1)
}

func TestThemeToggleRoundTrip(t *testing.T) {
	site := testSite()
	for _, s := range ui.All() {
		before := render(t, Page(site, s, testOptions()))
		after := render(t, Page(site, s.ToggleDarkMode().ToggleDarkMode(), testOptions()))
		assert.Equal(t, before, after)
		assert.NotEqual(t, before, render(t, Page(site, s.ToggleDarkMode(), testOptions())))
	}
}

func TestThemeToggleLink(t *testing.T) {
	doc := parse(t, PageShell(testSite(), ui.State{Popup: true}, testOptions()))
	toggles := findAll(doc, "data-action", "toggle-theme")
	require.Len(t, toggles, 1)
	href, _ := attr(toggles[0], "href")
	assert.Equal(t, "/?dark=1&popup=1", href)

	mains := findAll(doc, "data-theme", "light")
	assert.Len(t, mains, 1)
}

func TestHero(t *testing.T) {
	doc := parse(t, Hero(testSite().Profile, false))

	links := findTag(doc, "a")
	require.Len(t, links, 4)
	href, _ := attr(links[0], "href")
	assert.Equal(t, "mailto:test@example.com", href)
	href, _ = attr(links[1], "href")
	assert.Equal(t, "https://github.com/test", href)
	href, _ = attr(links[3], "href")
	assert.Equal(t, "/files/resume.pdf", href)

	assert.Len(t, findTag(doc, "strong"), 1, "bio markdown is rendered")
}

func TestHeroOptionalFields(t *testing.T) {
	doc := parse(t, Hero(content.Profile{Name: "Only Name"}, true))
	assert.Empty(t, findTag(doc, "a"))
	assert.Empty(t, findTag(doc, "nav"))
	assert.Contains(t, textOf(doc), "Only Name")
}

func TestMarkdownDropsRawHTML(t *testing.T) {
	out := render(t, Markdown("<script>alert(1)</script>\n\nplain", ""))
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "plain")
	assert.Nil(t, Markdown("   ", ""))
}

func TestFooterYear(t *testing.T) {
	out := render(t, PageFooter(content.Profile{Name: "Test Person"}, 2026, false))
	assert.Contains(t, out, "© 2026 Test Person")
}
