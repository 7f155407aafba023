package prefs

import "github.com/joshuapare/prefkit/store"

// ID is an opaque token for a group that lets a live group be wrapped in a
// new handle without reopening its file. IDs are scoped to the Env that
// issued them; the zero ID is never issued.
type ID uint64

// ID returns the token of the handle's group. Asking twice for the same
// group returns the same ID.
func (p *Preferences) ID() ID {
	e := p.env
	e.mu.Lock()
	defer e.mu.Unlock()
	for id, n := range e.ids {
		if n == p.node {
			return id
		}
	}
	if e.ids == nil {
		e.ids = make(map[ID]*store.Node)
	}
	e.nextID++
	e.ids[e.nextID] = p.node
	return e.nextID
}

// FromID returns a new handle on the group behind id, or nil if id is
// unknown, the group was removed, or every handle on its file was closed.
func FromID(id ID, opts ...Option) *Preferences {
	c := buildConfig(opts)
	n := c.env.node(id)
	if n == nil {
		return nil
	}
	r := n.RootNode()
	if r == nil || r.Refs() == 0 {
		c.env.forget(id)
		return nil
	}
	return attach(c.env, r, n)
}

// RemoveID deletes the group behind id from its tree and forgets id.
func RemoveID(id ID, opts ...Option) bool {
	c := buildConfig(opts)
	n := c.env.node(id)
	if n == nil {
		return false
	}
	c.env.forget(id)
	return n.Remove()
}

// node returns the live group registered as id. Groups that were detached
// from their tree are forgotten.
func (e *Env) node(id ID) *store.Node {
	e.mu.Lock()
	defer e.mu.Unlock()
	n, ok := e.ids[id]
	if !ok {
		return nil
	}
	if !attached(n) {
		delete(e.ids, id)
		return nil
	}
	return n
}

func (e *Env) forget(id ID) {
	e.mu.Lock()
	delete(e.ids, id)
	e.mu.Unlock()
}

// attached reports whether n is still reachable from the top of its tree.
func attached(n *store.Node) bool {
	r := n.RootNode()
	return r != nil && n.Top() == r.Top()
}
