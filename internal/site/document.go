package site

import "slices"

// ScriptRef is an external script attached to the end of the page body.
type ScriptRef struct {
	Src         string
	CrossOrigin string
}

// Document is the body of one rendered page. It is built and discarded per
// render and is not safe for concurrent use.
type Document struct {
	scripts []*ScriptRef
}

func NewDocument() *Document {
	return &Document{}
}

// AppendScript attaches s as the last body child.
func (d *Document) AppendScript(s *ScriptRef) {
	d.scripts = append(d.scripts, s)
}

// RemoveScript detaches exactly s, compared by identity. It reports whether
// s was attached.
func (d *Document) RemoveScript(s *ScriptRef) bool {
	i := slices.Index(d.scripts, s)
	if i < 0 {
		return false
	}
	d.scripts = slices.Delete(d.scripts, i, i+1)
	return true
}

// Scripts returns the attached scripts in body order.
func (d *Document) Scripts() []ScriptRef {
	out := make([]ScriptRef, len(d.scripts))
	for i, s := range d.scripts {
		out[i] = *s
	}
	return out
}
