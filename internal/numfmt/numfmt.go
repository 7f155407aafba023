// Package numfmt converts numbers to and from preferences text.
//
// Floating point text honours a process-wide numeric locale, modelled by
// State, the way C's printf and strtod honour LC_NUMERIC: the decimal point
// becomes the locale's decimal separator. Files written under one locale
// and read under another therefore disagree unless the C locale is forced
// for the conversion, which is what the cLocale arguments request.
//
// Caveat: without cLocale a value such as "3,25" written under a German
// locale reads back as 3 under an English one. This mirrors strtod and is
// not reported as an error.
package numfmt

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CSeparator is the decimal point of the C locale.
const CSeparator = "."

// State is the process numeric locale. It is shared by every RootNode that
// uses the same Env; conversions lock it only for the duration of one
// save/switch/convert/restore sequence.
type State struct {
	mu  sync.Mutex
	tag language.Tag
	sep string
}

// NewState creates a State set to tag.
func NewState(tag language.Tag) *State {
	return &State{tag: tag, sep: DecimalSeparator(tag)}
}

// FromEnvironment creates a State from LC_ALL, LC_NUMERIC or LANG, in that
// order of precedence.
func FromEnvironment() *State {
	for _, key := range []string{"LC_ALL", "LC_NUMERIC", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return NewState(ParseLocale(v))
		}
	}
	return NewState(language.Und)
}

// ParseLocale converts a POSIX locale name ("de_DE.UTF-8@euro") to a
// language tag. "C", "POSIX" and unparseable names map to language.Und.
func ParseLocale(name string) language.Tag {
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	if name == "" || name == "C" || name == "POSIX" {
		return language.Und
	}
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return language.Und
	}
	return tag
}

// DecimalSeparator returns the decimal separator used by tag.
func DecimalSeparator(tag language.Tag) string {
	if tag == language.Und {
		return CSeparator
	}
	s := []rune(message.NewPrinter(tag).Sprintf("%v", number.Decimal(1.5)))
	if len(s) < 3 {
		return CSeparator
	}
	return string(s[1 : len(s)-1])
}

// Set switches the process numeric locale and returns the previous one.
func (s *State) Set(tag language.Tag) language.Tag {
	sep := DecimalSeparator(tag)
	s.mu.Lock()
	prev := s.tag
	s.tag, s.sep = tag, sep
	s.mu.Unlock()
	return prev
}

// Tag returns the current numeric locale.
func (s *State) Tag() language.Tag {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tag
}

// scoped runs fn with the separator of the effective locale. With cLocale
// the state is switched to the C locale around fn and restored afterwards.
func (s *State) scoped(cLocale bool, fn func(sep string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !cLocale {
		fn(s.sep)
		return
	}
	savedTag, savedSep := s.tag, s.sep
	s.tag, s.sep = language.Und, CSeparator
	defer func() { s.tag, s.sep = savedTag, savedSep }()
	fn(s.sep)
}

// FormatFloat formats v in %g style. prec < 0 selects the shortest text that
// parses back to the same value at bitSize.
func (s *State) FormatFloat(v float64, prec, bitSize int, cLocale bool) string {
	var out string
	s.scoped(cLocale, func(sep string) {
		out = strconv.FormatFloat(v, 'g', prec, bitSize)
		if sep != CSeparator {
			out = strings.Replace(out, CSeparator, sep, 1)
		}
	})
	return out
}

// ParseFloat parses the longest numeric prefix of text, like strtod. ok is
// false when no prefix is numeric.
func (s *State) ParseFloat(text string, bitSize int, cLocale bool) (v float64, ok bool) {
	s.scoped(cLocale, func(sep string) {
		prefix := floatPrefix(strings.TrimSpace(text), sep)
		if prefix == "" {
			return
		}
		if sep != CSeparator {
			prefix = strings.Replace(prefix, sep, CSeparator, 1)
		}
		f, err := strconv.ParseFloat(prefix, bitSize)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return
		}
		v, ok = f, true
	})
	return v, ok
}

// FormatInt formats an integer. Integers are locale independent.
func FormatInt(v int64) string { return strconv.FormatInt(v, 10) }

// ParseInt parses the longest integer prefix of text, like strtol. Values
// out of range saturate.
func ParseInt(text string) (int64, bool) {
	t := strings.TrimSpace(text)
	end := 0
	if end < len(t) && (t[end] == '+' || t[end] == '-') {
		end++
	}
	digits := end
	for end < len(t) && t[end] >= '0' && t[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	// Only ErrRange is possible here; n is already saturated.
	n, _ := strconv.ParseInt(t[:end], 10, 64)
	return n, true
}

// floatPrefix returns the longest prefix of s that is a decimal floating
// point literal using sep as decimal separator, or an inf/nan word.
func floatPrefix(s, sep string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for _, word := range []string{"infinity", "inf", "nan"} {
		if len(s)-i >= len(word) && strings.EqualFold(s[i:i+len(word)], word) {
			return s[:i+len(word)]
		}
	}

	mant := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		mant++
	}
	if strings.HasPrefix(s[i:], sep) {
		j := i + len(sep)
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if mant+frac > 0 {
			i = j
			mant += frac
		}
	}
	if mant == 0 {
		return ""
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return s[:i]
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
