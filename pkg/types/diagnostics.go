package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Diagnostic is one malformed line found while reading a preferences file.
// Malformed lines are skipped, so a diagnostic describes data that will be
// lost on the next save.
type Diagnostic struct {
	Line  int    `json:"line"`            // 1-based line number
	Text  string `json:"text"`            // the line as read
	Issue string `json:"issue"`           // why it was rejected
	Group string `json:"group,omitempty"` // group the line appeared in
}

// DiagnosticReport collects all diagnostics of one file.
type DiagnosticReport struct {
	FilePath    string       `json:"file_path,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// NewDiagnosticReport creates an empty report for file.
func NewDiagnosticReport(file string) *DiagnosticReport {
	return &DiagnosticReport{FilePath: file, Diagnostics: []Diagnostic{}}
}

// Add appends a diagnostic.
func (r *DiagnosticReport) Add(d Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)
}

// Len returns the number of diagnostics.
func (r *DiagnosticReport) Len() int { return len(r.Diagnostics) }

// HasAnyIssues returns true if any line was skipped.
func (r *DiagnosticReport) HasAnyIssues() bool {
	return len(r.Diagnostics) > 0
}

// -----------------------------------------------------------------------------
// Output Formatters
// -----------------------------------------------------------------------------

// FormatJSON returns the report as formatted JSON (2-space indentation)
func (r *DiagnosticReport) FormatJSON() (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatText returns a human-readable text report
func (r *DiagnosticReport) FormatText() string {
	var b strings.Builder

	b.WriteString(strings.Repeat("=", 79) + "\n")
	b.WriteString("Preferences File Check\n")
	b.WriteString(strings.Repeat("=", 79) + "\n\n")

	if r.FilePath != "" {
		fmt.Fprintf(&b, "File:    %s\n", r.FilePath)
	}
	fmt.Fprintf(&b, "Skipped: %d line(s)\n\n", len(r.Diagnostics))

	if len(r.Diagnostics) == 0 {
		b.WriteString("No issues found.\n")
		return b.String()
	}

	for i, d := range r.Diagnostics {
		fmt.Fprintf(&b, "%d. line %d: %s\n", i+1, d.Line, d.Issue)
		fmt.Fprintf(&b, "   Text:  %q\n", d.Text)
		if d.Group != "" {
			fmt.Fprintf(&b, "   Group: %s\n", d.Group)
		}
	}
	return b.String()
}

// FormatTextCompact returns a compact one-line-per-issue text format
func (r *DiagnosticReport) FormatTextCompact() string {
	var b strings.Builder
	for _, d := range r.Diagnostics {
		fmt.Fprintf(&b, "%s:%d: %s\n", r.FilePath, d.Line, d.Issue)
	}
	if len(r.Diagnostics) == 0 {
		b.WriteString("No issues found.\n")
	}
	return b.String()
}
