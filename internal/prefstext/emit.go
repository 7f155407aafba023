package prefstext

import (
	"bufio"
	"io"
)

// Emitter writes preferences text. The first write error is sticky and is
// returned by Flush.
type Emitter struct {
	w      *bufio.Writer
	groups int
	err    error
}

// NewEmitter creates an Emitter writing to w.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: bufio.NewWriter(w)}
}

func (e *Emitter) line(s string) {
	if e.err != nil {
		return
	}
	if _, err := e.w.WriteString(s); err != nil {
		e.err = err
		return
	}
	if _, err := e.w.WriteString(LF); err != nil {
		e.err = err
	}
}

// Banner writes the generated banner lines.
func (e *Emitter) Banner(vendor, application string) {
	e.line(BannerPrefix + " " + BannerVersion)
	e.line(BannerVendor + EscapeValue(vendor))
	e.line(BannerApplication + EscapeValue(application))
}

// Group writes a group header preceded by its lead comments. Every group
// after the first is separated from the previous one by a blank line.
func (e *Emitter) Group(path []string, lead []string) {
	if e.groups > 0 {
		e.line("")
	}
	e.groups++
	e.Comments(lead)
	e.line(FormatHeader(path))
}

// Entry writes one entry preceded by its comments.
func (e *Emitter) Entry(name, value string, comments []string) {
	e.Comments(comments)
	e.line(FormatEntry(name, value))
}

// Comments writes comment and blank lines verbatim.
func (e *Emitter) Comments(lines []string) {
	for _, l := range lines {
		e.line(l)
	}
}

// Flush flushes buffered output and returns the first error encountered.
func (e *Emitter) Flush() error {
	if e.err != nil {
		return e.err
	}
	return e.w.Flush()
}
