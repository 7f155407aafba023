package prefs

import (
	"github.com/joshuapare/prefkit/internal/paths"
	"github.com/joshuapare/prefkit/internal/writer"
	"github.com/joshuapare/prefkit/pkg/types"
	"github.com/joshuapare/prefkit/store"
)

// Preferences is a handle on one group of a preferences tree. Handles are
// cheap views: every handle on the same file shares one store.RootNode, and
// the Close that releases the last of them writes the file.
//
// Handles are not safe for concurrent use.
type Preferences struct {
	node   *store.Node
	root   *store.RootNode
	env    *Env
	closed bool
}

// New opens the preferences of vendor/application in the scope selected by
// root. The CLocale and Clear flags may be or-ed into root.
//
// New never fails: a missing file is a first run, and when the scope has no
// usable directory the handle falls back to an in-memory tree and logs a
// warning.
func New(root types.Root, vendor, application string, opts ...Option) *Preferences {
	c := buildConfig(opts)
	if root.Scope() == types.Memory {
		return newMemory(c, root, application)
	}
	dir, err := c.env.Dirs.Dir(root)
	if err != nil {
		c.env.logger().Warn("no preferences directory, using memory",
			"scope", root.String(), "vendor", vendor, "application", application, "error", err)
		return newMemory(c, types.Memory|root&^types.RootMask, application)
	}
	return open(c, root, paths.File(dir, vendor, application), vendor, application)
}

// NewAt opens dir/vendor/application.prefs. The scope bits of flags select
// which access policy applies.
func NewAt(dir, vendor, application string, flags types.Root, opts ...Option) *Preferences {
	c := buildConfig(opts)
	if flags.Scope() == types.Memory {
		return newMemory(c, flags, application)
	}
	return open(c, flags, paths.File(dir, vendor, application), vendor, application)
}

// NewMemory creates a tree that is never read from or written to disk.
func NewMemory(name string, opts ...Option) *Preferences {
	return newMemory(buildConfig(opts), types.Memory, name)
}

func newMemory(c config, root types.Root, name string) *Preferences {
	r := store.NewRootNode(store.Options{
		Fs:          c.env.Fs,
		Application: name,
		Root:        root,
		Logger:      c.env.logger(),
	})
	return attach(c.env, r, r.Top())
}

func open(c config, root types.Root, file, vendor, application string) *Preferences {
	access := c.env.access()
	sync := c.env.Sync
	if c.sync != nil {
		sync = *c.sync
	}
	r, err := store.Open(store.Options{
		Fs:           c.env.Fs,
		Filename:     file,
		Vendor:       vendor,
		Application:  application,
		Root:         root,
		ReadAllowed:  access.CanRead(root),
		WriteAllowed: access.CanWrite(root),
		Sync:         sync,
		Logger:       c.env.logger(),
	})
	if err != nil {
		// The tree is empty but usable; callers get their defaults.
		c.env.logger().Warn("preferences opened empty", "file", file, "error", err)
	}
	return attach(c.env, r, r.Top())
}

func attach(env *Env, r *store.RootNode, n *store.Node) *Preferences {
	r.Retain()
	return &Preferences{node: n, root: r, env: env}
}

// Group returns a handle on the group at path below parent, creating every
// missing group on the way. A path starting with '/' is resolved from the
// top of the tree.
func Group(parent *Preferences, path string) *Preferences {
	return attach(parent.env, parent.root, parent.node.Search(path))
}

// GroupAt returns a handle on the i-th group of parent, or nil if i is out
// of range.
func GroupAt(parent *Preferences, i int) *Preferences {
	n := parent.node.ChildAt(i)
	if n == nil {
		return nil
	}
	return attach(parent.env, parent.root, n)
}

// Clone returns another handle on the same group.
func (p *Preferences) Clone() *Preferences {
	return attach(p.env, p.root, p.node)
}

// Close releases the handle. Closing the last handle of a file writes it if
// it has unsaved changes. Closing twice returns types.ErrClosed.
func (p *Preferences) Close() error {
	if p.closed {
		return types.ErrClosed
	}
	p.closed = true
	return p.root.Release()
}

// Flush writes the file now if the tree has unsaved changes.
func (p *Preferences) Flush() error {
	if p.closed {
		return types.ErrClosed
	}
	return p.root.Write()
}

// Dirty reports whether the tree has unsaved changes.
func (p *Preferences) Dirty() bool { return p.root.Dirty() }

// Filename returns the backing file, or "" for memory trees.
func (p *Preferences) Filename() string { return p.root.Filename() }

// Path returns the group path relative to the top of the tree ("." for the
// top itself).
func (p *Preferences) Path() string { return p.node.Path() }

// Name returns the last segment of the group path, or "" for the top.
func (p *Preferences) Name() string { return p.node.Name() }

// Node exposes the group's tree node.
func (p *Preferences) Node() *store.Node { return p.node }

// RootNode exposes the file the handle belongs to.
func (p *Preferences) RootNode() *store.RootNode { return p.root }

// UserdataPath returns a per-application directory next to the
// preferences file, creating it if needed. Memory trees have none.
func (p *Preferences) UserdataPath() (string, error) {
	file := p.root.Filename()
	if file == "" {
		return "", &types.Error{Kind: types.ErrKindNotFound, Msg: "memory preferences have no userdata directory"}
	}
	dir := paths.Userdata(file)
	if err := p.root.Fs().MkdirAll(dir, writer.DirPerm); err != nil {
		return "", types.IOError("create "+dir, err)
	}
	return dir, nil
}

// ============================================================================
// Groups
// ============================================================================

// Groups returns the number of direct child groups.
func (p *Preferences) Groups() int { return p.node.NumChildren() }

// GroupName returns the name of the i-th child group, or "" if i is out of
// range.
func (p *Preferences) GroupName(i int) string {
	if c := p.node.ChildAt(i); c != nil {
		return c.Name()
	}
	return ""
}

// GroupNames returns the names of the direct child groups in file order.
func (p *Preferences) GroupNames() []string { return p.node.ChildNames() }

// GroupExists reports whether the group at path exists. It never creates
// groups. Paths are cleaned the way Group cleans them.
func (p *Preferences) GroupExists(path string) bool {
	return p.node.Find(store.CleanPath(path)) != nil
}

// DeleteGroup removes the group at path and everything below it. A path
// naming the handle's own group deletes nothing; use Remove for that.
func (p *Preferences) DeleteGroup(path string) bool {
	n := p.node.Find(store.CleanPath(path))
	if n == nil || n == p.node {
		return false
	}
	return n.Remove()
}

// DeleteAllGroups removes every child group.
func (p *Preferences) DeleteAllGroups() { p.node.DeleteAllChildren() }

// ============================================================================
// Entries
// ============================================================================

// Entries returns the number of entries in the group.
func (p *Preferences) Entries() int { return p.node.NumEntries() }

// EntryName returns the name of the i-th entry, or "" if i is out of range.
func (p *Preferences) EntryName(i int) string {
	if e, ok := p.node.EntryAt(i); ok {
		return e.Name
	}
	return ""
}

// EntryNames returns the entry names in file order.
func (p *Preferences) EntryNames() []string {
	names := make([]string, p.node.NumEntries())
	for i := range names {
		names[i] = p.EntryName(i)
	}
	return names
}

// EntryExists reports whether key exists. key may name an entry in a
// subgroup ("window/width").
func (p *Preferences) EntryExists(key string) bool {
	n, name := p.lookup(key)
	return n != nil && n.HasEntry(name)
}

// DeleteEntry removes key.
func (p *Preferences) DeleteEntry(key string) bool {
	n, name := p.lookup(key)
	return n != nil && n.DeleteEntry(name)
}

// DeleteAllEntries removes every entry of the group.
func (p *Preferences) DeleteAllEntries() { p.node.DeleteAllEntries() }

// Size returns the length of the stored text of key, or 0 if it does not
// exist.
func (p *Preferences) Size(key string) int {
	v, ok := p.raw(key)
	if !ok {
		return 0
	}
	return len(v)
}

// Clear removes every entry and child group.
func (p *Preferences) Clear() { p.node.Clear() }

// Remove detaches the group from its parent. The top of a tree cannot be
// removed. The handle stays usable on the detached group, but nothing done
// through it is saved.
func (p *Preferences) Remove() bool { return p.node.Remove() }

// lookup resolves key for reading: no groups are created.
func (p *Preferences) lookup(key string) (*store.Node, string) {
	group, name := splitKey(key)
	if group == "" {
		return p.node, name
	}
	return p.node.Find(group), name
}

// resolve resolves key for writing, creating missing groups.
func (p *Preferences) resolve(key string) (*store.Node, string) {
	group, name := splitKey(key)
	if group == "" {
		return p.node, name
	}
	return p.node.Search(group), name
}

// splitKey splits key into a cleaned group path and the entry name, so
// reads and writes of the same key reach the same group.
func splitKey(key string) (group, name string) {
	group, name = store.SplitKey(key)
	return store.CleanPath(group), name
}

func (p *Preferences) raw(key string) (string, bool) {
	n, name := p.lookup(key)
	if n == nil {
		return "", false
	}
	return n.Get(name)
}
