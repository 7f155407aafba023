package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/joshuapare/prefkit/internal/logger"
	"github.com/joshuapare/prefkit/internal/prefstext"
	"github.com/joshuapare/prefkit/internal/writer"
	"github.com/joshuapare/prefkit/pkg/types"
)

// Options configures a RootNode.
type Options struct {
	// Fs is the filesystem holding the file. Default: the OS filesystem.
	Fs afero.Fs

	// Filename is the backing file. Empty means an in-memory tree that is
	// never read or written.
	Filename string

	// Vendor and Application are written to the file banner.
	Vendor      string
	Application string

	// Root is the scope plus flags the tree was opened with. types.Clear
	// skips reading the file.
	Root types.Root

	// ReadAllowed and WriteAllowed apply the file access policy.
	ReadAllowed  bool
	WriteAllowed bool

	// Sync selects write durability.
	Sync writer.SyncMode

	// Writer overrides the destination of Write. Default: an atomic
	// writer.FileWriter on Fs/Filename.
	Writer writer.Writer

	// Logger receives diagnostics. Default: logger.L.
	Logger *slog.Logger
}

// RootNode owns one preferences file and the tree loaded from it. Handles
// share a RootNode through Retain/Release; the release that drops the last
// reference flushes the tree.
type RootNode struct {
	opts   Options
	top    *Node
	refs   int
	writes int
	diags  *types.DiagnosticReport
}

// NewRootNode creates a RootNode with an empty tree without touching the
// filesystem.
func NewRootNode(opts Options) *RootNode {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Logger == nil {
		opts.Logger = logger.L
	}
	r := &RootNode{opts: opts, diags: types.NewDiagnosticReport(opts.Filename)}
	r.top = &Node{root: r}
	return r
}

// Open creates a RootNode and loads its file. A missing file is a first run
// and yields an empty tree. Any other read failure is logged and returned,
// but the returned RootNode is always usable (with an empty tree).
func Open(opts Options) (*RootNode, error) {
	r := NewRootNode(opts)
	return r, r.read()
}

// Top returns the top node of the tree.
func (r *RootNode) Top() *Node { return r.top }

// Filename returns the backing file, or "" for in-memory trees.
func (r *RootNode) Filename() string { return r.opts.Filename }

// Vendor returns the vendor name.
func (r *RootNode) Vendor() string { return r.opts.Vendor }

// Application returns the application name.
func (r *RootNode) Application() string { return r.opts.Application }

// Root returns the scope and flags the tree was opened with.
func (r *RootNode) Root() types.Root { return r.opts.Root }

// Fs returns the filesystem of the backing file.
func (r *RootNode) Fs() afero.Fs { return r.opts.Fs }

// Dirty reports whether the tree has unsaved changes.
func (r *RootNode) Dirty() bool { return r.top.Dirty() }

// Writes returns how many times the tree was written successfully.
func (r *RootNode) Writes() int { return r.writes }

// Skipped returns how many malformed lines were skipped while reading.
func (r *RootNode) Skipped() int { return r.diags.Len() }

// Diagnostics returns the malformed lines skipped while reading.
func (r *RootNode) Diagnostics() *types.DiagnosticReport { return r.diags }

// read loads the backing file into a fresh tree.
func (r *RootNode) read() error {
	log := r.opts.Logger
	switch {
	case r.opts.Filename == "":
		return nil
	case r.opts.Root.Has(types.Clear):
		log.Debug("preferences cleared on open", "file", r.opts.Filename)
		return nil
	case !r.opts.ReadAllowed:
		log.Debug("preferences read not permitted", "file", r.opts.Filename)
		return nil
	}

	f, err := r.opts.Fs.Open(r.opts.Filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("preferences file not found, starting empty", "file", r.opts.Filename)
			return nil
		}
		log.Warn("cannot open preferences file", "file", r.opts.Filename, "error", err)
		return types.IOError("open "+r.opts.Filename, err)
	}
	defer f.Close()

	top := &Node{root: r}
	diags := types.NewDiagnosticReport(r.opts.Filename)
	b := &treeBuilder{top: top, cur: top, log: log, diags: diags}
	if err := prefstext.Parse(f, b); err != nil {
		log.Warn("cannot read preferences file", "file", r.opts.Filename, "error", err)
		return types.IOError("read "+r.opts.Filename, err)
	}
	top.ClearDirtyFlags()
	r.top = top
	r.diags = diags
	return nil
}

// Write saves the tree if it is dirty. On success all dirty flags are
// cleared. On failure the tree and its dirty flags are left untouched so a
// later Write can retry.
func (r *RootNode) Write() error {
	if !r.top.Dirty() {
		return nil
	}
	if r.opts.Filename == "" && r.opts.Writer == nil {
		r.top.ClearDirtyFlags()
		return nil
	}
	if !r.opts.WriteAllowed {
		return &types.Error{Kind: types.ErrKindAccess, Msg: "write " + r.opts.Filename + " not permitted"}
	}

	buf, err := serialize(r.top, r.opts.Vendor, r.opts.Application)
	if err != nil {
		return types.IOError("serialize "+r.opts.Filename, err)
	}

	w := r.opts.Writer
	if w == nil {
		w = &writer.FileWriter{Fs: r.opts.Fs, Path: r.opts.Filename, Sync: r.opts.Sync}
	}
	if err := w.WritePrefs(buf); err != nil {
		r.opts.Logger.Warn("cannot write preferences file", "file", r.opts.Filename, "error", err)
		return types.IOError("write "+r.opts.Filename, err)
	}

	r.top.ClearDirtyFlags()
	r.writes++
	return nil
}

// Serialize returns the file contents Write would produce.
func (r *RootNode) Serialize() ([]byte, error) {
	return serialize(r.top, r.opts.Vendor, r.opts.Application)
}

// Retain adds a reference.
func (r *RootNode) Retain() { r.refs++ }

// Release drops a reference. Dropping the last one writes the tree.
func (r *RootNode) Release() error {
	if r.refs <= 0 {
		return types.ErrClosed
	}
	r.refs--
	if r.refs > 0 {
		return nil
	}
	return r.Write()
}

// Refs returns the current reference count.
func (r *RootNode) Refs() int { return r.refs }

func (r *RootNode) String() string {
	name := r.opts.Filename
	if name == "" {
		name = "<memory>"
	}
	return fmt.Sprintf("RootNode(%s, %s/%s, refs=%d)", name, r.opts.Vendor, r.opts.Application, r.refs)
}

// treeBuilder receives parser callbacks and builds a Node tree.
type treeBuilder struct {
	top, cur *Node
	log      *slog.Logger
	diags    *types.DiagnosticReport
}

func (b *treeBuilder) Group(path []string, lead []string) {
	b.cur = b.top.searchSegments(path)
	b.cur.lead = append(b.cur.lead, lead...)
}

func (b *treeBuilder) Entry(line string, comments []string) error {
	pos, err := b.cur.setLine(line)
	if err != nil {
		return err
	}
	if len(comments) > 0 {
		e := &b.cur.entries[pos]
		e.Comments = append(e.Comments, comments...)
	}
	return nil
}

func (b *treeBuilder) Trailing(comments []string) {
	b.cur.trailing = append(b.cur.trailing, comments...)
}

func (b *treeBuilder) Malformed(lineNo int, line string, err error) {
	b.diags.Add(types.Diagnostic{Line: lineNo, Text: line, Issue: err.Error(), Group: b.cur.Path()})
	b.log.Debug("skipping malformed preferences line",
		"file", b.diags.FilePath, "line", lineNo, "text", line, "error", err)
}
