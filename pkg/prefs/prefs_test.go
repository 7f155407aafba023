package prefs

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/joshuapare/prefkit/internal/numfmt"
	"github.com/joshuapare/prefkit/internal/testutil"
	"github.com/joshuapare/prefkit/pkg/types"
	"github.com/joshuapare/prefkit/store"
)

const configHome = "/cfg"

func newTestEnv(fs afero.Fs) *Env {
	env := NewEnv(fs)
	env.Locale = numfmt.NewState(language.English)
	env.Dirs = testutil.Resolver(configHome, "/etc/test")
	return env
}

func demoFile() string {
	return filepath.Join(configHome, "acme.test", "demo.prefs")
}

func TestScenario_WindowSize(t *testing.T) {
	env := newTestEnv(afero.NewMemMapFs())

	p := New(types.User, "acme.test", "demo", WithEnv(env))
	win := Group(p, "window")
	win.SetInt("width", 800)
	win.SetInt("height", 600)
	require.NoError(t, win.Close())
	require.NoError(t, p.Close())

	assert.True(t, testutil.Exists(t, env.Fs, demoFile()))

	p2 := New(types.User, "acme.test", "demo", WithEnv(env))
	defer p2.Close()
	win2 := Group(p2, "window")
	defer win2.Close()

	w, ok := win2.GetInt("width", -1)
	assert.True(t, ok)
	assert.Equal(t, 800, w)
	h, ok := win2.GetInt("height", -1)
	assert.True(t, ok)
	assert.Equal(t, 600, h)
}

func TestFirstRun_ReturnsDefaults(t *testing.T) {
	env := newTestEnv(afero.NewMemMapFs())
	p := New(types.User, "acme.test", "fresh", WithEnv(env))

	assert.Equal(t, 0, p.Groups())
	assert.Equal(t, 0, p.Entries())
	v, ok := p.GetString("missing", "fallback")
	assert.False(t, ok)
	assert.Equal(t, "fallback", v)
	n, ok := p.GetInt("window/width", 640)
	assert.False(t, ok)
	assert.Equal(t, 640, n)
	assert.False(t, p.GroupExists("window"), "getters never create groups")

	require.NoError(t, p.Close())
	exists, _ := afero.Exists(env.Fs, filepath.Join(configHome, "acme.test", "fresh.prefs"))
	assert.False(t, exists, "an untouched tree is not written")
}

func TestRoundTrip_AllTypes(t *testing.T) {
	env := newTestEnv(afero.NewMemMapFs())
	binary := []byte{0x00, 0x01, 'a', 0xff, 0x80, '\n', 0x00}
	text := "line1\nline2\x00\xffcafé\\:[x]"

	p := New(types.User|types.CLocale, "acme.test", "demo", WithEnv(env))
	p.SetString("text", text)
	p.SetInt("int", -42)
	p.SetInt64("int64", math.MinInt64)
	p.SetBool("on", true)
	p.SetBool("off", false)
	p.SetFloat32("f32", 0.1)
	p.SetFloat64("f64", math.Pi)
	p.SetFloat64Prec("prec", math.Pi, 3)
	p.SetBytes("bin", binary)
	p.SetBytes("empty", nil)
	require.NoError(t, p.Close())

	q := New(types.User|types.CLocale, "acme.test", "demo", WithEnv(env))
	defer q.Close()

	s, ok := q.GetString("text", "")
	require.True(t, ok)
	assert.Equal(t, text, s)

	i, _ := q.GetInt("int", 0)
	assert.Equal(t, -42, i)
	i64, _ := q.GetInt64("int64", 0)
	assert.Equal(t, int64(math.MinInt64), i64)

	on, _ := q.GetBool("on", false)
	off, ok := q.GetBool("off", true)
	assert.True(t, on)
	assert.True(t, ok)
	assert.False(t, off)

	f32, _ := q.GetFloat32("f32", 0)
	assert.Equal(t, float32(0.1), f32)
	f64, _ := q.GetFloat64("f64", 0)
	assert.Equal(t, math.Pi, f64)
	prec, _ := q.GetFloat64("prec", 0)
	assert.Equal(t, 3.14, prec)

	b, ok := q.GetBytes("bin", nil)
	require.True(t, ok)
	assert.Equal(t, binary, b)
	b, ok = q.GetBytes("empty", []byte("def"))
	assert.True(t, ok)
	assert.Empty(t, b)
}

func TestGetBytes_NonHexText(t *testing.T) {
	p := NewMemory("bytes", WithEnv(newTestEnv(afero.NewMemMapFs())))
	p.SetString("raw", "not hex!")
	b, ok := p.GetBytes("raw", nil)
	assert.True(t, ok)
	assert.Equal(t, []byte("not hex!"), b)
}

func TestGetInt_StrtolPrefix(t *testing.T) {
	p := NewMemory("ints", WithEnv(newTestEnv(afero.NewMemMapFs())))
	p.SetString("a", "  12px")
	p.SetString("b", "px")

	a, _ := p.GetInt("a", -1)
	assert.Equal(t, 12, a)
	b, ok := p.GetInt("b", -1)
	assert.True(t, ok)
	assert.Equal(t, 0, b)
}

func TestFlush_Idempotent(t *testing.T) {
	env := newTestEnv(afero.NewMemMapFs())
	p := New(types.User, "acme.test", "demo", WithEnv(env))
	defer p.Close()

	p.SetString("k", "v")
	assert.True(t, p.Dirty())
	require.NoError(t, p.Flush())
	require.NoError(t, p.Flush())
	assert.Equal(t, 1, p.RootNode().Writes())
	assert.False(t, p.Dirty())

	p.SetString("k", "v")
	require.NoError(t, p.Flush())
	assert.Equal(t, 1, p.RootNode().Writes())
}

func TestGroup_PathCreation(t *testing.T) {
	p := NewMemory("groups", WithEnv(newTestEnv(afero.NewMemMapFs())))
	c := Group(p, "a/b/c")
	defer c.Close()

	assert.True(t, p.GroupExists("a/b/c"))
	assert.Contains(t, p.GroupNames(), "a")
	assert.Equal(t, "a/b/c", c.Path())
	assert.Equal(t, "c", c.Name())
	assert.Equal(t, ".", p.Path())

	p.SetInt("x/y/z", 1)
	assert.True(t, p.GroupExists("x/y"))
	assert.True(t, p.EntryExists("x/y/z"))
	assert.Equal(t, []string{"a", "x"}, p.GroupNames())

	top := Group(c, "/")
	assert.Equal(t, ".", top.Path())
	top.SetString("/abs", "1")
	assert.True(t, p.EntryExists("abs"))
}

func TestKeys_ReadsAndWritesResolveAlike(t *testing.T) {
	tests := []struct {
		key   string
		group string
	}{
		{"a//b/x", "a/b"},
		{"../y", "."},
		{"a/../z", "a"},
		{"./a/./w", "a"},
		{"/c//v", "c"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			p := NewMemory("keys", WithEnv(newTestEnv(afero.NewMemMapFs())))
			require.True(t, p.SetString(tt.key, "v"))

			got, ok := p.GetString(tt.key, "def")
			assert.True(t, ok)
			assert.Equal(t, "v", got)
			assert.True(t, p.EntryExists(tt.key))
			assert.Equal(t, 1, p.Size(tt.key))

			_, name := store.SplitKey(tt.key)
			g := p.Node().Find(tt.group)
			require.NotNil(t, g)
			assert.True(t, g.HasEntry(name))

			assert.True(t, p.DeleteEntry(tt.key))
			assert.False(t, p.EntryExists(tt.key))
		})
	}
}

func TestGroup_ExistsMatchesCreation(t *testing.T) {
	p := NewMemory("groups", WithEnv(newTestEnv(afero.NewMemMapFs())))
	g := Group(p, "a//b")
	defer g.Close()

	assert.Equal(t, "a/b", g.Path())
	assert.True(t, p.GroupExists("a//b"))
	assert.True(t, p.GroupExists("a/./b/"))
	assert.False(t, g.DeleteGroup(""), "a handle does not delete its own group")
	assert.True(t, p.DeleteGroup("a//b"))
	assert.False(t, p.GroupExists("a/b"))
	assert.True(t, p.GroupExists("a"))
}

func TestDeleteGroup_RemovesDescendants(t *testing.T) {
	p := NewMemory("delete", WithEnv(newTestEnv(afero.NewMemMapFs())))
	p.SetString("a/b/c/k", "v")
	p.SetString("keep/k", "v")

	assert.True(t, p.DeleteGroup("a"))
	assert.False(t, p.GroupExists("a"))
	assert.False(t, p.GroupExists("a/b/c"))
	assert.False(t, p.EntryExists("a/b/c/k"))
	assert.Equal(t, []string{"keep"}, p.GroupNames())

	assert.False(t, p.DeleteGroup("a"))
	assert.False(t, p.DeleteGroup("."), "the top cannot be deleted")

	p.DeleteAllGroups()
	assert.Equal(t, 0, p.Groups())
}

func TestEntries(t *testing.T) {
	p := NewMemory("entries", WithEnv(newTestEnv(afero.NewMemMapFs())))
	p.SetString("first", "hello")
	p.SetInt("second", 2)
	p.SetString("sub/third", "3")

	assert.Equal(t, 2, p.Entries())
	assert.Equal(t, []string{"first", "second"}, p.EntryNames())
	assert.Equal(t, "second", p.EntryName(1))
	assert.Equal(t, "", p.EntryName(2))
	assert.Equal(t, 5, p.Size("first"))
	assert.Equal(t, 1, p.Size("sub/third"))
	assert.Equal(t, 0, p.Size("nope"))

	assert.False(t, p.SetString("", "x"), "empty entry name")
	assert.False(t, p.SetString("sub/", "x"))

	assert.True(t, p.DeleteEntry("sub/third"))
	assert.False(t, p.DeleteEntry("sub/third"))
	assert.True(t, p.GroupExists("sub"))

	p.DeleteAllEntries()
	assert.Equal(t, 0, p.Entries())
	assert.Equal(t, 1, p.Groups())

	p.SetString("again", "1")
	p.Clear()
	assert.Equal(t, 0, p.Entries())
	assert.Equal(t, 0, p.Groups())
}

func TestNameHelper(t *testing.T) {
	p := NewMemory("names", WithEnv(newTestEnv(afero.NewMemMapFs())))
	for i := 0; i < 20; i++ {
		p.SetInt(Name("File%d", i), i*i)
	}
	assert.Equal(t, 20, p.Entries())
	v, ok := p.GetInt(Name("File%d", 7), -1)
	assert.True(t, ok)
	assert.Equal(t, 49, v)
}

func TestGroupAt(t *testing.T) {
	p := NewMemory("index", WithEnv(newTestEnv(afero.NewMemMapFs())))
	Group(p, "one").Close()
	Group(p, "two").Close()

	assert.Equal(t, 2, p.Groups())
	assert.Equal(t, "two", p.GroupName(1))
	assert.Equal(t, "", p.GroupName(2))

	g := GroupAt(p, 0)
	require.NotNil(t, g)
	assert.Equal(t, "one", g.Path())
	assert.Nil(t, GroupAt(p, 5))
}

func TestLocaleIndependence(t *testing.T) {
	fs := afero.NewMemMapFs()

	german := newTestEnv(fs)
	german.Locale = numfmt.NewState(language.German)
	p := New(types.User|types.CLocale, "acme.test", "demo", WithEnv(german))
	p.SetFloat64("scale", 3.25)
	p.SetFloat32("ratio", 1.5)
	require.NoError(t, p.Close())

	english := newTestEnv(fs)
	q := New(types.User|types.CLocale, "acme.test", "demo", WithEnv(english))
	defer q.Close()

	raw, _ := q.GetString("scale", "")
	assert.Equal(t, "3.25", raw)
	v, _ := q.GetFloat64("scale", 0)
	assert.InDelta(t, 3.25, v, 1e-12)
	r, _ := q.GetFloat32("ratio", 0)
	assert.Equal(t, float32(1.5), r)
}

func TestLocaleDependentWithoutCLocale(t *testing.T) {
	german := newTestEnv(afero.NewMemMapFs())
	german.Locale = numfmt.NewState(language.German)

	p := NewMemory("locale", WithEnv(german))
	p.SetFloat64("scale", 3.25)
	raw, _ := p.GetString("scale", "")
	assert.Equal(t, "3,25", raw)

	v, _ := p.GetFloat64("scale", 0)
	assert.Equal(t, 3.25, v)
}

func TestIDs(t *testing.T) {
	env := newTestEnv(afero.NewMemMapFs())
	p := NewMemory("ids", WithEnv(env))
	defer p.Close()

	win := Group(p, "window")
	id := win.ID()
	assert.NotZero(t, id)
	assert.Equal(t, id, win.ID())
	require.NoError(t, win.Close())

	again := FromID(id, WithEnv(env))
	require.NotNil(t, again)
	assert.Equal(t, "window", again.Path())
	again.SetInt("width", 1)
	assert.True(t, p.EntryExists("window/width"))
	require.NoError(t, again.Close())

	assert.Nil(t, FromID(id+100, WithEnv(env)))
	assert.Nil(t, FromID(id, WithEnv(newTestEnv(env.Fs))), "ids belong to their Env")

	assert.True(t, RemoveID(id, WithEnv(env)))
	assert.False(t, p.GroupExists("window"))
	assert.False(t, RemoveID(id, WithEnv(env)))
	assert.Nil(t, FromID(id, WithEnv(env)))
}

func TestIDs_RemovedGroupIsForgotten(t *testing.T) {
	env := newTestEnv(afero.NewMemMapFs())
	p := NewMemory("ids", WithEnv(env))
	defer p.Close()

	id := Group(p, "a/b").ID()
	p.DeleteGroup("a")
	assert.Nil(t, FromID(id, WithEnv(env)))
}

func TestIDs_ClosedFile(t *testing.T) {
	env := newTestEnv(afero.NewMemMapFs())
	p := NewMemory("ids", WithEnv(env))
	id := p.ID()
	require.NoError(t, p.Close())
	assert.Nil(t, FromID(id, WithEnv(env)))
}

func TestClose_RefCounting(t *testing.T) {
	env := newTestEnv(afero.NewMemMapFs())
	p := New(types.User, "acme.test", "demo", WithEnv(env))
	clone := p.Clone()
	win := Group(p, "window")
	assert.Equal(t, 3, p.RootNode().Refs())

	win.SetInt("width", 800)
	require.NoError(t, p.Close())
	require.NoError(t, win.Close())
	exists, _ := afero.Exists(env.Fs, demoFile())
	assert.False(t, exists, "a handle is still open")

	require.NoError(t, clone.Close())
	exists, _ = afero.Exists(env.Fs, demoFile())
	assert.True(t, exists)

	assert.ErrorIs(t, clone.Close(), types.ErrClosed)
	assert.ErrorIs(t, clone.Flush(), types.ErrClosed)
}

func TestClearFlag(t *testing.T) {
	env := newTestEnv(afero.NewMemMapFs())
	p := New(types.User, "acme.test", "demo", WithEnv(env))
	p.SetString("old", "1")
	require.NoError(t, p.Close())

	q := New(types.User|types.Clear, "acme.test", "demo", WithEnv(env))
	assert.False(t, q.EntryExists("old"))
	q.SetString("new", "1")
	require.NoError(t, q.Close())

	r := New(types.User, "acme.test", "demo", WithEnv(env))
	defer r.Close()
	assert.False(t, r.EntryExists("old"))
	assert.True(t, r.EntryExists("new"))
}

func TestAccessPolicy(t *testing.T) {
	env := newTestEnv(afero.NewMemMapFs())
	p := New(types.User, "acme.test", "demo", WithEnv(env))
	p.SetString("k", "v")
	require.NoError(t, p.Close())

	env.SetAccess(types.UserReadOK)
	q := New(types.User, "acme.test", "demo", WithEnv(env))
	v, ok := q.GetString("k", "")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
	q.SetString("k", "changed")
	assert.ErrorIs(t, q.Close(), types.ErrAccessDenied)

	env.SetAccess(types.AccessNone)
	r := New(types.User, "acme.test", "demo", WithEnv(env))
	defer r.Close()
	assert.False(t, r.EntryExists("k"))
}

func TestNew_FallsBackToMemory(t *testing.T) {
	env := newTestEnv(afero.NewMemMapFs())
	env.Dirs = testutil.Resolver("", "")

	p := New(types.User|types.CLocale, "acme.test", "demo", WithEnv(env))
	defer p.Close()
	assert.Equal(t, "", p.Filename())
	assert.Equal(t, types.Memory, p.RootNode().Root().Scope())
	assert.True(t, p.RootNode().Root().Has(types.CLocale))

	p.SetInt("works", 1)
	require.NoError(t, p.Flush())
}

func TestNewAt(t *testing.T) {
	env := newTestEnv(afero.NewMemMapFs())
	p := NewAt("/opt/app", "acme.test", "demo", types.User, WithEnv(env))
	assert.Equal(t, filepath.Join("/opt/app", "acme.test", "demo.prefs"), p.Filename())
	p.SetString("k", "v")
	require.NoError(t, p.Close())

	exists, _ := afero.Exists(env.Fs, filepath.Join("/opt/app", "acme.test", "demo.prefs"))
	assert.True(t, exists)
}

func TestUserdataPath(t *testing.T) {
	env := newTestEnv(afero.NewMemMapFs())
	p := New(types.User, "acme.test", "demo", WithEnv(env))
	defer p.Close()

	dir, err := p.UserdataPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(configHome, "acme.test", "demo")+string(filepath.Separator), dir)
	isDir, err := afero.IsDir(env.Fs, dir)
	require.NoError(t, err)
	assert.True(t, isDir)

	m := NewMemory("scratch", WithEnv(env))
	_, err = m.UserdataPath()
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestRemove(t *testing.T) {
	p := NewMemory("remove", WithEnv(newTestEnv(afero.NewMemMapFs())))
	g := Group(p, "g")
	assert.True(t, g.Remove())
	assert.False(t, p.GroupExists("g"))
	assert.False(t, p.Remove(), "the top cannot be removed")
}

func TestNewUUID(t *testing.T) {
	a, b := NewUUID(), NewUUID()
	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	assert.NoError(t, err)
}
