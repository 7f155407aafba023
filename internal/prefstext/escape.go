package prefstext

import (
	"strings"
	"unicode/utf8"

	"github.com/joshuapare/prefkit/pkg/types"
)

var (
	errTrailingEscape = types.MalformedError("prefstext: trailing escape character", nil)
	errBadEscape      = types.MalformedError("prefstext: unknown escape sequence", nil)
	errBadHexEscape   = types.MalformedError("prefstext: invalid \\x escape", nil)
)

// class selects which characters beyond the common set are escaped.
type class int

const (
	classValue   class = iota // backslash, controls, invalid UTF-8
	className                 // + ':' and a leading marker or blank
	classSegment              // + '/', '[' and ']'
)

// EscapeValue encodes an arbitrary byte string as single-line text.
func EscapeValue(s string) string { return escape(s, classValue) }

// EscapeName encodes an entry name so it cannot be confused with a comment,
// a header or the name/value separator.
func EscapeName(s string) string { return escape(s, className) }

// EscapeSegment encodes one group name for use inside a header path.
func EscapeSegment(s string) string { return escape(s, classSegment) }

// needsEscape reports whether byte b at offset i must be written as \xHH for
// the given class. Controls and backslashes are handled by the caller.
func needsEscape(c class, b byte, i int) bool {
	switch c {
	case className:
		return b == ':' || (i == 0 && (b == '[' || b == '#' || b == ';' || b == ' '))
	case classSegment:
		return b == '/' || b == '[' || b == ']' || (i == 0 && (b == '.' || b == ' '))
	}
	return false
}

func escape(s string, c class) string {
	// Fast path: nothing to escape (zero allocation)
	clean := true
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b < 0x20 || b == 0x7f || b == EscapeChar || b >= utf8.RuneSelf || needsEscape(c, b, i) {
			clean = false
			break
		}
	}
	if clean {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + len(s)/4)
	for i := 0; i < len(s); {
		b := s[i]
		if b >= utf8.RuneSelf {
			r, size := utf8.DecodeRuneInString(s[i:])
			if r == utf8.RuneError && size == 1 {
				writeHex(&sb, b)
			} else {
				sb.WriteString(s[i : i+size])
			}
			i += size
			continue
		}
		switch {
		case b == EscapeChar:
			sb.WriteString(`\\`)
		case b == '\n':
			sb.WriteString(`\n`)
		case b == '\r':
			sb.WriteString(`\r`)
		case b == '\t':
			sb.WriteString(`\t`)
		case b < 0x20 || b == 0x7f || needsEscape(c, b, i):
			writeHex(&sb, b)
		default:
			sb.WriteByte(b)
		}
		i++
	}
	return sb.String()
}

func writeHex(sb *strings.Builder, b byte) {
	sb.WriteByte(EscapeChar)
	sb.WriteByte('x')
	sb.WriteByte(hexDigits[b>>4])
	sb.WriteByte(hexDigits[b&0x0f])
}

// Unescape decodes text produced by any of the Escape functions.
func Unescape(s string) (string, error) {
	// Single-pass check: look for backslash which precedes all escapes
	if strings.IndexByte(s, EscapeChar) == -1 {
		return s, nil
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b != EscapeChar {
			sb.WriteByte(b)
			continue
		}
		i++
		if i >= len(s) {
			return "", errTrailingEscape
		}
		switch s[i] {
		case '\\':
			sb.WriteByte('\\')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'x':
			if i+2 >= len(s) {
				return "", errBadHexEscape
			}
			hi, ok1 := unhex(s[i+1])
			lo, ok2 := unhex(s[i+2])
			if !ok1 || !ok2 {
				return "", errBadHexEscape
			}
			sb.WriteByte(hi<<4 | lo)
			i += 2
		default:
			return "", errBadEscape
		}
	}
	return sb.String(), nil
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
