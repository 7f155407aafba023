package prefstext

import (
	"strings"
	"unicode/utf8"

	"github.com/joshuapare/prefkit/pkg/types"
	"golang.org/x/text/encoding/charmap"
)

var (
	errMissingSeparator = types.MalformedError("prefstext: entry line has no ':' separator", nil)
	errMalformedHeader  = types.MalformedError("prefstext: malformed group header", nil)
)

// LineKind classifies one line of a preferences file.
type LineKind int

const (
	LineBlank   LineKind = iota // empty or whitespace only
	LineComment                 // starts with '#' or ';' after optional whitespace
	LineHeader                  // "[path]"
	LineEntry                   // "name:value"
)

func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "blank"
	case LineComment:
		return "comment"
	case LineHeader:
		return "header"
	default:
		return "entry"
	}
}

// DecodeLine strips a trailing CR and converts a line that is not valid
// UTF-8 from Windows-1252, the usual encoding of hand edits made by legacy
// editors. Generated files only ever contain valid UTF-8.
func DecodeLine(raw string) string {
	line := strings.TrimSuffix(raw, CR)
	if utf8.ValidString(line) {
		return line
	}
	decoded, err := charmap.Windows1252.NewDecoder().String(line)
	if err != nil {
		return line
	}
	return decoded
}

// blanks are the only characters trimmed around a line before it is
// classified. Other Unicode spaces are content: EscapeName never escapes
// them, so a name may start with one.
const blanks = " \t"

// Classify returns the kind of a decoded line.
func Classify(line string) LineKind {
	trim := strings.Trim(line, blanks)
	switch {
	case trim == "":
		return LineBlank
	case strings.HasPrefix(trim, CommentHash), strings.HasPrefix(trim, CommentSemicolon):
		return LineComment
	case strings.HasPrefix(trim, GroupOpenBracket) && strings.HasSuffix(trim, GroupCloseBracket):
		return LineHeader
	default:
		return LineEntry
	}
}

// IsBanner reports whether line is one of the generated banner lines.
func IsBanner(line string) bool {
	return strings.HasPrefix(line, BannerPrefix) ||
		strings.HasPrefix(line, BannerVendor) ||
		strings.HasPrefix(line, BannerApplication)
}

// ParseHeader decodes a header line into its path segments. The top node
// ("[.]") yields an empty slice.
func ParseHeader(line string) ([]string, error) {
	trim := strings.Trim(line, blanks)
	if len(trim) < 2 || !strings.HasPrefix(trim, GroupOpenBracket) || !strings.HasSuffix(trim, GroupCloseBracket) {
		return nil, errMalformedHeader
	}
	path := trim[1 : len(trim)-1]
	if path == TopPath || path == "" {
		return []string{}, nil
	}
	path = strings.TrimPrefix(path, TopPrefix)

	parts := strings.Split(path, PathSeparator)
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		seg, err := Unescape(p)
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

// FormatHeader returns the header line (without newline) for segments.
func FormatHeader(segments []string) string {
	if len(segments) == 0 {
		return GroupOpenBracket + TopPath + GroupCloseBracket
	}
	var sb strings.Builder
	sb.WriteString(GroupOpenBracket)
	for i, s := range segments {
		if i > 0 {
			sb.WriteString(PathSeparator)
		}
		sb.WriteString(EscapeSegment(s))
	}
	sb.WriteString(GroupCloseBracket)
	return sb.String()
}

// SplitEntry decodes a "name:value" line. Names never contain a literal ':'
// (EscapeName writes it as \x3a), so the first ':' is the separator.
func SplitEntry(line string) (name, value string, err error) {
	sep := strings.Index(line, NameValueSeparator)
	if sep < 0 {
		return "", "", errMissingSeparator
	}
	if name, err = Unescape(line[:sep]); err != nil {
		return "", "", err
	}
	if value, err = Unescape(line[sep+1:]); err != nil {
		return "", "", err
	}
	return name, value, nil
}

// FormatEntry returns the entry line (without newline) for name and value.
func FormatEntry(name, value string) string {
	return EscapeName(name) + NameValueSeparator + EscapeValue(value)
}
