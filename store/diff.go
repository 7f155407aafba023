package store

// DiffStatus represents the diff state of an item.
type DiffStatus int

const (
	DiffAdded    DiffStatus = iota + 1 // Item added (only in new)
	DiffRemoved                        // Item removed (only in old)
	DiffModified                       // Entry exists in both with different values
)

func (s DiffStatus) String() string {
	switch s {
	case DiffAdded:
		return "added"
	case DiffRemoved:
		return "removed"
	case DiffModified:
		return "modified"
	default:
		return "unchanged"
	}
}

// Change is one difference between two trees. Group changes describe a
// group added or removed as a whole and carry no entry.
type Change struct {
	Path     string
	Group    bool
	Entry    string
	Status   DiffStatus
	OldValue string
	NewValue string
}

// Diff compares two trees group by group. Changes are reported in the order
// of the old tree, followed by additions in the order of the new tree.
// Comments are not compared.
func Diff(oldTree, newTree *Node) []Change {
	var out []Change
	diffNode(oldTree, newTree, &out)
	return out
}

func diffNode(o, n *Node, out *[]Change) {
	path := n.Path()

	for _, e := range o.entries {
		nv, ok := n.Get(e.Name)
		switch {
		case !ok:
			*out = append(*out, Change{Path: path, Entry: e.Name, Status: DiffRemoved, OldValue: e.Value})
		case nv != e.Value:
			*out = append(*out, Change{Path: path, Entry: e.Name, Status: DiffModified, OldValue: e.Value, NewValue: nv})
		}
	}
	for _, e := range n.entries {
		if !o.HasEntry(e.Name) {
			*out = append(*out, Change{Path: path, Entry: e.Name, Status: DiffAdded, NewValue: e.Value})
		}
	}

	for _, oc := range o.children {
		if nc := n.Child(oc.name); nc != nil {
			diffNode(oc, nc, out)
			continue
		}
		*out = append(*out, Change{Path: oc.Path(), Group: true, Status: DiffRemoved})
	}
	for _, nc := range n.children {
		if o.Child(nc.name) == nil {
			*out = append(*out, Change{Path: nc.Path(), Group: true, Status: DiffAdded})
		}
	}
}
