// Package site renders the portfolio page and its section fragments from a
// profile.Profile.
package site

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"time"

	"github.com/Zachkp/portfolio/internal/profile"
)

var (
	// ErrMountPointMissing means the shell template has no mount point to
	// attach the page to.
	ErrMountPointMissing = errors.New("mount point not found")

	ErrUnknownSection = errors.New("unknown section")
)

const (
	shellTemplate = "index.html"
	mountPoint    = "root"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Static returns the stylesheet and other assets served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// sectionTemplates maps fragment ids to template names.
var sectionTemplates = map[string]string{
	"home":            "hero",
	"skills":          "skills",
	"projects":        "projects",
	"resume":          "resume",
	"accomplishments": "accomplishments",
	"contact":         "contact",
	"footer":          "footer",
}

// View is the data every template executes against.
type View struct {
	Profile profile.Profile
	Nav     []NavLink
	Menu    Menu
	Year    int
	Scripts []ScriptRef

	// Interactive pages drive the header through the fragment endpoint;
	// exported pages toggle it in the browser.
	Interactive bool
	AssetPrefix string
}

type Option func(*Renderer)

// WithClock sets the clock the footer reads its year from.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

// WithIconKit overrides the icon kit script URL.
func WithIconKit(src string) Option {
	return func(r *Renderer) { r.app = NewApp(src) }
}

// WithTemplates parses templates/*.html from fsys instead of the embedded set.
func WithTemplates(fsys fs.FS) Option {
	return func(r *Renderer) { r.templates = fsys }
}

// WithStaticExport makes rendered pages self-contained: header toggling happens in
// the browser and assets are referenced relatively.
func WithStaticExport() Option {
	return func(r *Renderer) {
		r.interactive = false
		r.assetPrefix = ""
	}
}

type Renderer struct {
	profile     profile.Profile
	tmpl        *template.Template
	templates   fs.FS
	now         func() time.Time
	app         *App
	interactive bool
	assetPrefix string
}

// New parses the templates and locates the mount point. The renderer keeps
// its own copy of p.
func New(p profile.Profile, opts ...Option) (*Renderer, error) {
	r := &Renderer{
		profile:     p.Clone(),
		templates:   templateFS,
		now:         time.Now,
		app:         NewApp(DefaultIconKit),
		interactive: true,
		assetPrefix: "/",
	}
	for _, opt := range opts {
		opt(r)
	}

	tmpl, err := template.ParseFS(r.templates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	if tmpl.Lookup(shellTemplate) == nil || tmpl.Lookup(mountPoint) == nil {
		return nil, fmt.Errorf("%w: %s must host a %q template", ErrMountPointMissing, shellTemplate, mountPoint)
	}
	r.tmpl = tmpl

	return r, nil
}

func (r *Renderer) view(menu Menu) View {
	return View{
		Profile:     r.profile,
		Nav:         NavLinks(),
		Menu:        menu,
		Year:        r.now().Year(),
		Interactive: r.interactive,
		AssetPrefix: r.assetPrefix,
	}
}

// Compose mounts the app on a fresh document, hands the resulting view to
// render, and unmounts once render returns or panics.
func (r *Renderer) Compose(menu Menu, render func(name string, v View) error) error {
	doc := NewDocument()
	unmount := r.app.Mount(doc)
	defer unmount()

	v := r.view(menu)
	v.Scripts = doc.Scripts()
	return render(shellTemplate, v)
}

// Page writes the full page.
func (r *Renderer) Page(w io.Writer, menu Menu) error {
	return r.Compose(menu, func(name string, v View) error {
		return r.tmpl.ExecuteTemplate(w, name, v)
	})
}

func sectionTemplate(id string) (string, error) {
	name, ok := sectionTemplates[id]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSection, id)
	}
	return name, nil
}

// Section writes one section fragment. Unknown ids return ErrUnknownSection.
func (r *Renderer) Section(w io.Writer, id string) error {
	name, err := sectionTemplate(id)
	if err != nil {
		return err
	}
	return r.tmpl.ExecuteTemplate(w, name, r.view(Menu{}))
}

// Header writes the header fragment for the given menu state.
func (r *Renderer) Header(w io.Writer, menu Menu) error {
	return r.tmpl.ExecuteTemplate(w, "header", r.view(menu))
}
