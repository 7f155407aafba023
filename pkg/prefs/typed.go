package prefs

import (
	"encoding/hex"
	"math"

	"github.com/joshuapare/prefkit/internal/numfmt"
	"github.com/joshuapare/prefkit/pkg/types"
	"github.com/joshuapare/prefkit/store"
)

// Typed accessors. Keys may contain '/' to address an entry in a subgroup:
// setters create missing groups, getters never do. Every getter returns def
// and false when the entry does not exist.

func (p *Preferences) set(key, value string) bool {
	if _, name := store.SplitKey(key); name == "" {
		return false
	}
	n, name := p.resolve(key)
	n.Set(name, value)
	return true
}

func (p *Preferences) cLocale() bool {
	return p.root.Root().Has(types.CLocale)
}

// SetString stores a text value. It returns false if key has no entry name.
func (p *Preferences) SetString(key, value string) bool {
	return p.set(key, value)
}

// GetString returns the text of key.
func (p *Preferences) GetString(key, def string) (string, bool) {
	v, ok := p.raw(key)
	if !ok {
		return def, false
	}
	return v, true
}

// SetInt stores an integer.
func (p *Preferences) SetInt(key string, value int) bool {
	return p.set(key, numfmt.FormatInt(int64(value)))
}

// GetInt returns key as an integer. Text that does not start with a number
// reads as 0, like strtol.
func (p *Preferences) GetInt(key string, def int) (int, bool) {
	v, ok := p.raw(key)
	if !ok {
		return def, false
	}
	n, _ := numfmt.ParseInt(v)
	return int(max(min(n, math.MaxInt), math.MinInt)), true
}

// SetInt64 stores a 64-bit integer.
func (p *Preferences) SetInt64(key string, value int64) bool {
	return p.set(key, numfmt.FormatInt(value))
}

// GetInt64 returns key as a 64-bit integer.
func (p *Preferences) GetInt64(key string, def int64) (int64, bool) {
	v, ok := p.raw(key)
	if !ok {
		return def, false
	}
	n, _ := numfmt.ParseInt(v)
	return n, true
}

// SetBool stores a boolean as 1 or 0.
func (p *Preferences) SetBool(key string, value bool) bool {
	if value {
		return p.set(key, "1")
	}
	return p.set(key, "0")
}

// GetBool returns key as a boolean: any non-zero integer is true.
func (p *Preferences) GetBool(key string, def bool) (bool, bool) {
	v, ok := p.raw(key)
	if !ok {
		return def, false
	}
	n, _ := numfmt.ParseInt(v)
	return n != 0, true
}

// SetFloat32 stores a float in its shortest round-trip form.
func (p *Preferences) SetFloat32(key string, value float32) bool {
	return p.SetFloat32Prec(key, value, -1)
}

// SetFloat32Prec stores a float with prec significant digits (%.*g).
func (p *Preferences) SetFloat32Prec(key string, value float32, prec int) bool {
	return p.set(key, p.env.locale().FormatFloat(float64(value), prec, 32, p.cLocale()))
}

// GetFloat32 returns key as a float.
func (p *Preferences) GetFloat32(key string, def float32) (float32, bool) {
	v, ok := p.raw(key)
	if !ok {
		return def, false
	}
	f, _ := p.env.locale().ParseFloat(v, 32, p.cLocale())
	return float32(f), true
}

// SetFloat64 stores a double in its shortest round-trip form.
func (p *Preferences) SetFloat64(key string, value float64) bool {
	return p.SetFloat64Prec(key, value, -1)
}

// SetFloat64Prec stores a double with prec significant digits (%.*g).
func (p *Preferences) SetFloat64Prec(key string, value float64, prec int) bool {
	return p.set(key, p.env.locale().FormatFloat(value, prec, 64, p.cLocale()))
}

// GetFloat64 returns key as a double.
func (p *Preferences) GetFloat64(key string, def float64) (float64, bool) {
	v, ok := p.raw(key)
	if !ok {
		return def, false
	}
	f, _ := p.env.locale().ParseFloat(v, 64, p.cLocale())
	return f, true
}

// SetBytes stores binary data as hex text.
func (p *Preferences) SetBytes(key string, value []byte) bool {
	return p.set(key, hex.EncodeToString(value))
}

// GetBytes returns the binary data of key. A value that is not hex text
// (written by hand or by SetString) is returned as its raw bytes.
func (p *Preferences) GetBytes(key string, def []byte) ([]byte, bool) {
	v, ok := p.raw(key)
	if !ok {
		return def, false
	}
	if b, err := hex.DecodeString(v); err == nil {
		return b, true
	}
	return []byte(v), true
}
