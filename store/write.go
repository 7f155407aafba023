package store

import (
	"bytes"
	"io"

	"github.com/joshuapare/prefkit/internal/prefstext"
)

// Write serializes n and its descendants depth-first: lead comments, the
// group header, entries with their comments, trailing comments, then the
// child groups.
func (n *Node) Write(w io.Writer) error {
	e := prefstext.NewEmitter(w)
	n.emit(e, n.Segments())
	return e.Flush()
}

func (n *Node) emit(e *prefstext.Emitter, path []string) {
	e.Group(path, n.lead)
	for _, ent := range n.entries {
		e.Entry(ent.Name, ent.Value, ent.Comments)
	}
	e.Comments(n.trailing)
	for _, c := range n.children {
		// Full slice expression so siblings never share a backing array.
		c.emit(e, append(path[:len(path):len(path)], c.name))
	}
}

// serialize renders a whole file: banner plus the tree below top.
func serialize(top *Node, vendor, application string) ([]byte, error) {
	var buf bytes.Buffer
	e := prefstext.NewEmitter(&buf)
	e.Banner(vendor, application)
	top.emit(e, top.Segments())
	if err := e.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
