package site

import "sync"

// DefaultIconKit is the icon font kit loaded by the page.
const DefaultIconKit = "https://kit.fontawesome.com/6e1f268156.js"

// App composes the sections into a page and owns the icon kit script for
// as long as it is mounted.
type App struct {
	iconKit string
}

func NewApp(iconKit string) *App {
	if iconKit == "" {
		iconKit = DefaultIconKit
	}
	return &App{iconKit: iconKit}
}

// Mount attaches the icon kit script to doc and returns the matching
// unmount. Unmount removes exactly that script and is safe to call more
// than once. The script's own load is not observed.
func (a *App) Mount(doc *Document) (unmount func()) {
	ref := &ScriptRef{Src: a.iconKit, CrossOrigin: "anonymous"}
	doc.AppendScript(ref)

	var once sync.Once
	return func() {
		once.Do(func() {
			doc.RemoveScript(ref)
		})
	}
}
