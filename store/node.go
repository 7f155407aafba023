package store

import (
	"github.com/joshuapare/prefkit/internal/prefstext"
	"github.com/joshuapare/prefkit/store/index"
)

// Node is one group of a preferences tree. It owns its entries and child
// groups; parent is a non-owning back-reference used for path
// reconstruction and dirty propagation.
//
// NOT thread-safe. A tree must only be used by one goroutine at a time.
type Node struct {
	name     string
	parent   *Node
	root     *RootNode // set on the top node of a RootNode's tree only
	entries  []Entry
	children []*Node
	lead     []string // comment lines in front of the group header
	trailing []string // comment lines after the last entry
	dirty    bool

	entryIdx index.Lazy
	childIdx index.Lazy
}

// NewTree creates a detached top node.
func NewTree() *Node {
	return &Node{}
}

// Name returns the group name. The top node has an empty name.
func (n *Node) Name() string { return n.name }

// Parent returns the parent group, or nil for the top node.
func (n *Node) Parent() *Node { return n.parent }

// IsTop reports whether n has no parent.
func (n *Node) IsTop() bool { return n.parent == nil }

// Top returns the top node of n's tree.
func (n *Node) Top() *Node {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// RootNode returns the RootNode owning n's tree, or nil for detached trees.
func (n *Node) RootNode() *RootNode { return n.Top().root }

// Segments returns the group names from the top node down to n.
func (n *Node) Segments() []string {
	depth := 0
	for p := n; p.parent != nil; p = p.parent {
		depth++
	}
	segs := make([]string, depth)
	for p := n; p.parent != nil; p = p.parent {
		depth--
		segs[depth] = p.name
	}
	return segs
}

// Path returns the slash-joined path of n relative to the top node, or "."
// for the top node.
func (n *Node) Path() string {
	return JoinPath(n.Segments())
}

// ============================================================================
// Entries
// ============================================================================

func (n *Node) entryName(i int) string { return n.entries[i].Name }

// entryPos returns the position of the entry named name, or -1.
func (n *Node) entryPos(name string) int {
	return n.entryIdx.Lookup(len(n.entries), n.entryName, name)
}

// Get returns the value of the entry named name.
func (n *Node) Get(name string) (string, bool) {
	if i := n.entryPos(name); i >= 0 {
		return n.entries[i].Value, true
	}
	return "", false
}

// HasEntry reports whether an entry named name exists.
func (n *Node) HasEntry(name string) bool { return n.entryPos(name) >= 0 }

// Set creates or updates an entry. It returns true and marks the tree dirty
// only if the stored value changed.
func (n *Node) Set(name, value string) bool {
	_, changed := n.set(name, value)
	return changed
}

func (n *Node) set(name, value string) (pos int, changed bool) {
	if i := n.entryPos(name); i >= 0 {
		if n.entries[i].Value == value {
			return i, false
		}
		n.entries[i].Value = value
		n.markDirty()
		return i, true
	}
	n.entries = append(n.entries, Entry{Name: name, Value: value})
	pos = len(n.entries) - 1
	n.entryIdx.Appended(name, pos)
	n.markDirty()
	return pos, true
}

// SetLine stores a pre-escaped "name:value" line as read from a file.
func (n *Node) SetLine(line string) error {
	_, err := n.setLine(line)
	return err
}

func (n *Node) setLine(line string) (int, error) {
	name, value, err := prefstext.SplitEntry(line)
	if err != nil {
		return -1, err
	}
	pos, _ := n.set(name, value)
	return pos, nil
}

// DeleteEntry removes the entry named name. Its comments move to the entry
// that followed it, or to the group's trailing comments.
func (n *Node) DeleteEntry(name string) bool {
	i := n.entryPos(name)
	if i < 0 {
		return false
	}
	if c := n.entries[i].Comments; len(c) > 0 {
		if i+1 < len(n.entries) {
			next := &n.entries[i+1]
			next.Comments = append(append([]string(nil), c...), next.Comments...)
		} else {
			n.trailing = append(append([]string(nil), c...), n.trailing...)
		}
	}
	n.entryIdx.Removed(name, i, len(n.entries))
	n.entries = append(n.entries[:i], n.entries[i+1:]...)
	n.markDirty()
	return true
}

// DeleteAllEntries removes every entry. Their comments are kept as the
// group's trailing comments.
func (n *Node) DeleteAllEntries() {
	if len(n.entries) == 0 {
		return
	}
	var kept []string
	for _, e := range n.entries {
		kept = append(kept, e.Comments...)
	}
	n.trailing = append(kept, n.trailing...)
	n.entries = nil
	n.entryIdx.Invalidate()
	n.markDirty()
}

// NumEntries returns the number of entries.
func (n *Node) NumEntries() int { return len(n.entries) }

// EntryAt returns a copy of the i-th entry.
func (n *Node) EntryAt(i int) (Entry, bool) {
	if i < 0 || i >= len(n.entries) {
		return Entry{}, false
	}
	return n.entries[i].clone(), true
}

// Entries returns copies of all entries in order.
func (n *Node) Entries() []Entry {
	out := make([]Entry, len(n.entries))
	for i, e := range n.entries {
		out[i] = e.clone()
	}
	return out
}

// ============================================================================
// Children
// ============================================================================

func (n *Node) childName(i int) string { return n.children[i].name }

// Child returns the direct child named name, or nil.
func (n *Node) Child(name string) *Node {
	if i := n.childIdx.Lookup(len(n.children), n.childName, name); i >= 0 {
		return n.children[i]
	}
	return nil
}

// AddChild appends a new child named name and returns it. It does not check
// for an existing child of the same name; use Search for that.
func (n *Node) AddChild(name string) *Node {
	c := &Node{name: name, parent: n}
	n.children = append(n.children, c)
	n.childIdx.Appended(name, len(n.children)-1)
	c.markDirty()
	return c
}

// NumChildren returns the number of child groups.
func (n *Node) NumChildren() int { return len(n.children) }

// ChildAt returns the i-th child, or nil.
func (n *Node) ChildAt(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Children returns the child groups in order.
func (n *Node) Children() []*Node {
	return append([]*Node(nil), n.children...)
}

// ChildNames returns the names of the child groups in order.
func (n *Node) ChildNames() []string {
	names := make([]string, len(n.children))
	for i, c := range n.children {
		names[i] = c.name
	}
	return names
}

// Remove detaches n and its descendants from the tree. It returns false for
// the top node, which cannot be removed.
func (n *Node) Remove() bool {
	p := n.parent
	if p == nil {
		return false
	}
	for i, c := range p.children {
		if c == n {
			p.childIdx.Removed(n.name, i, len(p.children))
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	p.markDirty()
	n.parent = nil
	return true
}

// DeleteAllChildren removes every child group.
func (n *Node) DeleteAllChildren() {
	if len(n.children) == 0 {
		return
	}
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
	n.childIdx.Invalidate()
	n.markDirty()
}

// Clear removes all entries and child groups.
func (n *Node) Clear() {
	n.DeleteAllEntries()
	n.DeleteAllChildren()
}

// ============================================================================
// Comments
// ============================================================================

// Lead returns the comment lines written in front of the group header.
func (n *Node) Lead() []string { return append([]string(nil), n.lead...) }

// Trailing returns the comment lines written after the last entry.
func (n *Node) Trailing() []string { return append([]string(nil), n.trailing...) }

// ============================================================================
// Dirty tracking
// ============================================================================

// markDirty flags n and its ancestors. Persistence is whole-file, so a dirty
// flag anywhere means the file must be rewritten.
func (n *Node) markDirty() {
	for p := n; p != nil; p = p.parent {
		p.dirty = true
	}
}

// Dirty reports whether n or any descendant has unsaved changes.
func (n *Node) Dirty() bool {
	if n.dirty {
		return true
	}
	for _, c := range n.children {
		if c.Dirty() {
			return true
		}
	}
	return false
}

// ClearDirtyFlags clears the dirty flag of n and all descendants.
func (n *Node) ClearDirtyFlags() {
	n.dirty = false
	for _, c := range n.children {
		c.ClearDirtyFlags()
	}
}

// IndexStats reports the state of the entry and child indexes of n.
func (n *Node) IndexStats() (entries, children index.Stats) {
	return n.entryIdx.Stats(), n.childIdx.Stats()
}

// DropIndexes discards both indexes of n and its descendants. Lookups
// rebuild them on demand.
func (n *Node) DropIndexes() {
	n.entryIdx.Invalidate()
	n.childIdx.Invalidate()
	for _, c := range n.children {
		c.DropIndexes()
	}
}
