package prefstext

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// bannerLines is how many leading lines may hold the generated banner.
const bannerLines = 3

// Handler receives the structure of a preferences file as it is parsed.
type Handler interface {
	// Group makes path the current group. lead holds the comment lines that
	// preceded the header.
	Group(path []string, lead []string)

	// Entry receives a raw (still escaped) entry line together with the
	// comment lines that preceded it. A non-nil error marks the line
	// malformed; its comments are then kept for the next line.
	Entry(line string, comments []string) error

	// Trailing receives comment lines left over at end of input.
	Trailing(comments []string)

	// Malformed reports a skipped line (1-based line number).
	Malformed(lineNo int, line string, err error)
}

// Parse reads preferences text from r and reports its structure to h.
// Malformed lines are reported and skipped; only read errors abort parsing.
func Parse(r io.Reader, h Handler) error {
	br := bufio.NewReader(r)
	var (
		pending []string
		lineNo  int
		content bool // a header or entry was seen
		started bool // anything but the banner was seen
	)

	for {
		raw, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if raw == "" && err != nil {
			break
		}
		lineNo++
		raw = strings.TrimSuffix(raw, LF)
		if lineNo == 1 {
			raw = strings.TrimPrefix(raw, UTF8BOM)
		}
		line := DecodeLine(raw)

		if !started && lineNo <= bannerLines && IsBanner(line) {
			if err != nil {
				break
			}
			continue
		}
		started = true

		switch Classify(line) {
		case LineBlank, LineComment:
			pending = append(pending, line)

		case LineHeader:
			path, perr := ParseHeader(line)
			if perr != nil {
				h.Malformed(lineNo, line, perr)
				break
			}
			lead := pending
			if content {
				// The writer separates groups with one blank line: what
				// precedes it trails the previous group.
				if i := firstBlank(pending); i >= 0 {
					if i > 0 {
						h.Trailing(pending[:i])
					}
					lead = pending[i+1:]
				}
			}
			content = true
			h.Group(path, takeLines(lead))
			pending = nil

		case LineEntry:
			if eerr := h.Entry(line, takeLines(pending)); eerr != nil {
				h.Malformed(lineNo, line, eerr)
				break
			}
			content = true
			pending = nil
		}

		if err != nil {
			break
		}
	}

	if len(pending) > 0 {
		h.Trailing(pending)
	}
	return nil
}

// takeLines returns lines or nil, never an empty non-nil slice.
func takeLines(lines []string) []string {
	if len(lines) == 0 {
		return nil
	}
	return lines
}

func firstBlank(lines []string) int {
	for i, l := range lines {
		if Classify(l) == LineBlank {
			return i
		}
	}
	return -1
}
