// Package types defines the small set of shared types used across prefkit:
// the typed error taxonomy, scope (root type) identifiers with their flag
// bits, file access permission flags, and the report of malformed lines
// found while reading a file.
//
// Design goals:
//   - Missing data is never an error for callers of the typed accessors;
//     the error kinds here describe I/O, access and state failures.
//   - Errors carry a stable Kind so callers branch on intent, not text.
//
// This package has no dependencies beyond the standard library.
package types
