package site

import (
	"bytes"
	"fmt"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/profile"
)

var fixedClock = func() time.Time {
	return time.Date(2031, time.March, 4, 12, 0, 0, 0, time.UTC)
}

func newTestRenderer(t *testing.T, p profile.Profile, opts ...Option) *Renderer {
	t.Helper()
	opts = append([]Option{WithClock(fixedClock)}, opts...)
	r, err := New(p, opts...)
	require.NoError(t, err)
	return r
}

func renderPage(t *testing.T, r *Renderer, menu Menu) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.Page(&buf, menu))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestPage_ExampleProfileEndToEnd(t *testing.T) {
	doc := renderPage(t, newTestRenderer(t, profile.Default()), Menu{})

	assert.Equal(t, 6, doc.Find("#skills .skill-card").Length())
	assert.Equal(t, 3, doc.Find("#skills .certification-card").Length())
	assert.Equal(t, 3, doc.Find("#projects .project-card").Length())
	assert.Equal(t, 2, doc.Find("#resume .timeline-item").Length())
	assert.Equal(t, 3, doc.Find("#accomplishments li").Length())

	var labels []string
	doc.Find("header nav.main-nav li a").Each(func(_ int, s *goquery.Selection) {
		labels = append(labels, s.Text())
	})
	assert.Equal(t, []string{"Home", "Skills", "Projects", "Resume", "Accomplishments", "Contact"}, labels)
}

func TestPage_CompositionOrder(t *testing.T) {
	doc := renderPage(t, newTestRenderer(t, profile.Default()), Menu{})

	root := doc.Find("#root")
	require.Equal(t, 1, root.Length())

	var order []string
	root.Find("header, section, footer").Each(func(_ int, s *goquery.Selection) {
		if id, ok := s.Attr("id"); ok {
			order = append(order, id)
			return
		}
		order = append(order, goquery.NodeName(s))
	})
	assert.Equal(t, []string{"app-header", "home", "skills", "projects", "resume", "accomplishments", "contact", "footer"}, order)
}

func TestPage_SkillCardsInOrder(t *testing.T) {
	p := profile.Default()
	doc := renderPage(t, newTestRenderer(t, p), Menu{})

	cards := doc.Find("#skills .skill-card")
	require.Equal(t, len(p.Skills), cards.Length())
	cards.Each(func(i int, s *goquery.Selection) {
		assert.Equal(t, p.Skills[i].Name, s.Find("h3").Text())
		assert.Equal(t, p.Skills[i].Description, s.Find("p").Text())
	})

	certs := doc.Find("#skills .certification-card p")
	certs.Each(func(i int, s *goquery.Selection) {
		assert.Equal(t, p.Certifications[i], s.Text())
	})
}

func TestPage_ProjectCards(t *testing.T) {
	p := profile.Default()
	p.Projects = []profile.Project{
		{
			Title: "Relay", Description: "Message relay",
			Tags:    []string{"Go", "NATS", "Go"},
			LiveURL: "https://relay.example.com", SourceURL: "https://github.com/x/relay", DriveURL: "https://drive.google.com/relay",
		},
		{
			Title: "Ledger", Description: "Double entry",
			Tags:    []string{"SQL"},
			LiveURL: "https://ledger.example.com", SourceURL: "https://github.com/x/ledger", DriveURL: "https://drive.google.com/ledger",
		},
	}
	doc := renderPage(t, newTestRenderer(t, p), Menu{})

	cards := doc.Find("#projects .project-card")
	require.Equal(t, 2, cards.Length())
	cards.Each(func(i int, s *goquery.Selection) {
		want := p.Projects[i]
		assert.Equal(t, want.Title, s.Find("h3").Text())
		assert.Equal(t, want.Description, s.Find("p").Text())

		var tags []string
		s.Find(".tag").Each(func(_ int, tag *goquery.Selection) {
			tags = append(tags, tag.Text())
		})
		assert.Equal(t, want.Tags, tags)

		links := s.Find(".project-links a")
		require.Equal(t, 3, links.Length())
		for class, url := range map[string]string{"live": want.LiveURL, "source": want.SourceURL, "drive": want.DriveURL} {
			a := s.Find(".project-links a." + class)
			href, _ := a.Attr("href")
			assert.Equal(t, url, href)
			target, _ := a.Attr("target")
			assert.Equal(t, "_blank", target)
			rel, _ := a.Attr("rel")
			assert.Equal(t, "noopener noreferrer", rel)
		}
	})
}

func TestPage_HeroAndContactLinks(t *testing.T) {
	p := profile.Default()
	doc := renderPage(t, newTestRenderer(t, p), Menu{})

	var hrefs []string
	doc.Find("#home .social-links a").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		hrefs = append(hrefs, href)
		target, _ := s.Attr("target")
		assert.Equal(t, "_blank", target)
	})
	assert.Equal(t, []string{p.Socials.GitHub, p.Socials.LinkedIn, p.Socials.Drive}, hrefs)

	mail, _ := doc.Find("#contact a.email").Attr("href")
	assert.Equal(t, "mailto:alex.doe@email.com", mail)
}

func TestPage_EmptySequencesRenderNoCards(t *testing.T) {
	p := profile.Default()
	p.Skills = nil
	p.Projects = nil
	doc := renderPage(t, newTestRenderer(t, p), Menu{})

	assert.Equal(t, 0, doc.Find(".skill-card").Length())
	assert.Equal(t, 0, doc.Find(".project-card").Length())
	assert.Equal(t, 1, doc.Find("#projects").Length())
}

func TestPage_FooterYearFromClock(t *testing.T) {
	doc := renderPage(t, newTestRenderer(t, profile.Default()), Menu{})

	assert.Equal(t, "© 2031 Alex Doe. All Rights Reserved.", strings.TrimSpace(doc.Find("footer p").Text()))
}

func TestPage_AttachesIconKitOnceAsLastBodyChild(t *testing.T) {
	doc := renderPage(t, newTestRenderer(t, profile.Default()), Menu{})

	kit := doc.Find(fmt.Sprintf("script[src=%q]", DefaultIconKit))
	require.Equal(t, 1, kit.Length())
	cross, _ := kit.Attr("crossorigin")
	assert.Equal(t, "anonymous", cross)
	assert.True(t, doc.Find("body").Children().Last().Is("script"))
}

func TestCompose_ReleasesScriptAfterRender(t *testing.T) {
	r := newTestRenderer(t, profile.Default(), WithIconKit("https://example.com/kit.js"))

	var seen []ScriptRef
	err := r.Compose(Menu{}, func(name string, v View) error {
		assert.Equal(t, "index.html", name)
		seen = v.Scripts
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []ScriptRef{{Src: "https://example.com/kit.js", CrossOrigin: "anonymous"}}, seen)
}

func TestPage_MenuStateReflectedInHeader(t *testing.T) {
	r := newTestRenderer(t, profile.Default())

	closed := renderPage(t, r, Menu{})
	assert.False(t, closed.Find("nav.main-nav").HasClass("active"))

	open := renderPage(t, r, ParseMenu("open"))
	assert.True(t, open.Find("nav.main-nav").HasClass("active"))
	assert.True(t, open.Find("button.menu-toggle").HasClass("active"))

	hx, _ := open.Find("button.menu-toggle").Attr("hx-get")
	assert.Equal(t, "/partials/header?menu=open&event=toggle", hx)
}

func TestPage_StaticExportHasNoFragmentCalls(t *testing.T) {
	doc := renderPage(t, newTestRenderer(t, profile.Default(), WithStaticExport()), Menu{})

	assert.Equal(t, 0, doc.Find("[hx-get]").Length())
	css, _ := doc.Find(`link[rel="stylesheet"]`).Attr("href")
	assert.Equal(t, "static/style.css", css)
	_, ok := doc.Find("button.menu-toggle").Attr("onclick")
	assert.True(t, ok)
}

func TestPage_StaticExportLoadsOnlyTheIconKit(t *testing.T) {
	doc := renderPage(t, newTestRenderer(t, profile.Default(), WithStaticExport()), Menu{})

	scripts := doc.Find("script[src]")
	require.Equal(t, 1, scripts.Length())
	src, _ := scripts.Attr("src")
	assert.Equal(t, DefaultIconKit, src)
}

func TestSection(t *testing.T) {
	r := newTestRenderer(t, profile.Default())

	var buf bytes.Buffer
	require.NoError(t, r.Section(&buf, "resume"))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Find(".timeline-item").Length())
	assert.Equal(t, 0, doc.Find("header").Length())

	buf.Reset()
	require.NoError(t, r.Section(&buf, "home"))
	assert.Contains(t, buf.String(), `id="home"`)

	err = r.Section(&buf, "blog")
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestHeader_Fragment(t *testing.T) {
	r := newTestRenderer(t, profile.Default())

	var buf bytes.Buffer
	require.NoError(t, r.Header(&buf, ParseMenu("open")))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)

	assert.Equal(t, 6, doc.Find("nav li a").Length())
	assert.True(t, doc.Find("nav").HasClass("active"))
	hx, _ := doc.Find("nav li").First().Attr("hx-get")
	assert.Equal(t, "/partials/header?menu=open&event=navigate", hx)
}

func TestNew_MissingMountPoint(t *testing.T) {
	fsys := fstest.MapFS{
		"templates/index.html": {Data: []byte(`<html><body><div id="app"></div></body></html>`)},
	}

	_, err := New(profile.Default(), WithTemplates(fsys))
	assert.ErrorIs(t, err, ErrMountPointMissing)
}

func TestNew_KeepsOwnCopyOfProfile(t *testing.T) {
	p := profile.Default()
	r := newTestRenderer(t, p)

	p.Skills[0].Name = "mutated"

	var buf bytes.Buffer
	require.NoError(t, r.Section(&buf, "skills"))
	assert.Contains(t, buf.String(), "JavaScript (ES6+)")
	assert.NotContains(t, buf.String(), "mutated")
}

func TestStatic_ServesStylesheet(t *testing.T) {
	data, err := fs.ReadFile(Static(), "style.css")
	require.NoError(t, err)
	assert.Contains(t, string(data), ".main-nav.active")
}
