package site

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownMenuEvent is returned by Menu.Apply for events other than
// toggle and navigate.
var ErrUnknownMenuEvent = errors.New("unknown menu event")

const (
	EventToggle   = "toggle"
	EventNavigate = "navigate"
)

// Sections lists the in-page anchors the header links to, in display order.
var Sections = []string{"home", "skills", "projects", "resume", "accomplishments", "contact"}

// NavLink is one header entry pointing at an in-page anchor.
type NavLink struct {
	ID    string
	Label string
}

var navLinks = buildNavLinks()

func buildNavLinks() []NavLink {
	title := cases.Title(language.English)
	links := make([]NavLink, len(Sections))
	for i, id := range Sections {
		links[i] = NavLink{ID: id, Label: title.String(id)}
	}
	return links
}

// NavLinks returns the header entries.
func NavLinks() []NavLink {
	out := make([]NavLink, len(navLinks))
	copy(out, navLinks)
	return out
}

// Menu is the collapsible navigation state owned by the header. The zero
// value is closed.
type Menu struct {
	open bool
}

// ParseMenu reads the state carried by the client. Anything other than
// "open" is closed.
func ParseMenu(state string) Menu {
	return Menu{open: state == "open"}
}

func (m Menu) Open() bool { return m.open }

// State is the wire form sent back by the header controls.
func (m Menu) State() string {
	if m.open {
		return "open"
	}
	return "closed"
}

// Toggle flips the menu.
func (m *Menu) Toggle() {
	m.open = !m.open
}

// Navigate closes the menu whatever its state, so following a link on a
// narrow layout hides the menu again.
func (m *Menu) Navigate() {
	m.open = false
}

// Apply runs the transition named by event.
func (m *Menu) Apply(event string) error {
	switch event {
	case EventToggle:
		m.Toggle()
	case EventNavigate:
		m.Navigate()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMenuEvent, event)
	}
	return nil
}
