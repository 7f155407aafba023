package prefstext

const (
	// ============================================================================
	// File Banner
	// ============================================================================

	// BannerPrefix starts the first generated line of every file.
	BannerPrefix = "; prefkit preferences file format"

	// BannerVersion is the format version written after BannerPrefix.
	BannerVersion = "1.0"

	// BannerVendor prefixes the generated vendor line.
	BannerVendor = "; vendor: "

	// BannerApplication prefixes the generated application line.
	BannerApplication = "; application: "

	// ============================================================================
	// Delimiters and Structural Tokens
	// ============================================================================

	// GroupOpenBracket marks the start of a group header.
	GroupOpenBracket = "["

	// GroupCloseBracket marks the end of a group header.
	GroupCloseBracket = "]"

	// PathSeparator separates group names inside a header.
	PathSeparator = "/"

	// TopPath is the header path of the top node.
	TopPath = "."

	// TopPrefix is accepted in front of header paths ("[./window]").
	TopPrefix = "./"

	// NameValueSeparator separates an entry name from its value.
	NameValueSeparator = ":"

	// CommentHash and CommentSemicolon start comment lines.
	CommentHash      = "#"
	CommentSemicolon = ";"

	// ============================================================================
	// Line Endings
	// ============================================================================

	// LF terminates every written line.
	LF = "\n"

	// CR is stripped from the end of lines read from CRLF files.
	CR = "\r"

	// UTF8BOM is skipped at the start of input.
	UTF8BOM = "\xef\xbb\xbf"

	// ============================================================================
	// Escapes
	// ============================================================================

	// EscapeChar introduces every escape sequence.
	EscapeChar = '\\'

	// hexDigits is used to format \xHH escapes.
	hexDigits = "0123456789abcdef"
)
