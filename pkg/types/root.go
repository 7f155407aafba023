package types

import "fmt"

// Root selects the scope of a preferences file and carries option flags in
// its upper bits.
type Root uint32

const (
	// System preferences are shared by all users of the machine.
	System Root = 0
	// User preferences live in the per-user configuration directory.
	User Root = 1
	// Memory preferences are never read from or written to disk.
	Memory Root = 2

	// RootMask extracts the scope from a Root value.
	RootMask Root = 0x00FF

	// CLocale requests locale-independent numeric text ('.' decimal point)
	// for float and double entries.
	CLocale Root = 0x1000
	// Clear starts with an empty tree, ignoring any existing file contents.
	Clear Root = 0x2000
)

// Scope returns the scope part of r.
func (r Root) Scope() Root { return r & RootMask }

// Has reports whether every bit of flag is set in r.
func (r Root) Has(flag Root) bool { return r&flag == flag }

func (r Root) String() string {
	var s string
	switch r.Scope() {
	case System:
		s = "system"
	case User:
		s = "user"
	case Memory:
		s = "memory"
	default:
		s = fmt.Sprintf("scope(%d)", uint32(r.Scope()))
	}
	if r.Has(CLocale) {
		s += "|c_locale"
	}
	if r.Has(Clear) {
		s += "|clear"
	}
	return s
}

// Access is a bit set of file access permissions applied process-wide (or
// per Env) to every RootNode that is opened.
type Access uint32

const (
	AccessNone    Access = 0
	UserReadOK    Access = 0x0001
	UserWriteOK   Access = 0x0002
	UserOK               = UserReadOK | UserWriteOK
	SystemReadOK  Access = 0x0004
	SystemWriteOK Access = 0x0008
	SystemOK             = SystemReadOK | SystemWriteOK
	AccessAll     Access = UserOK | SystemOK
)

// CanRead reports whether files of the given scope may be read.
func (a Access) CanRead(scope Root) bool {
	switch scope.Scope() {
	case User:
		return a&UserReadOK != 0
	case System:
		return a&SystemReadOK != 0
	default:
		return true
	}
}

// CanWrite reports whether files of the given scope may be written.
func (a Access) CanWrite(scope Root) bool {
	switch scope.Scope() {
	case User:
		return a&UserWriteOK != 0
	case System:
		return a&SystemWriteOK != 0
	default:
		return true
	}
}
