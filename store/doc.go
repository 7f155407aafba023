// Package store implements the in-memory preferences tree and its file
// lifecycle.
//
// # Overview
//
// A Node is one group: an ordered list of entries (name/value strings) and
// an ordered list of child groups. The top node of a tree has no parent and
// no name; its path is ".". A RootNode owns one tree and the file it is
// loaded from and saved to.
//
// # Lookups
//
//   - Child/Get: single-name lookups, linear for small groups and indexed
//     (store/index) once a group grows past index.Threshold items.
//   - Find: read-only path walk; nil on any missing or malformed segment.
//   - Search: creating path walk; never fails.
//
// # Dirty Tracking
//
// Every mutation marks the node and its ancestors dirty. Persistence is
// whole-file: RootNode.Write rewrites the file when any node is dirty and
// clears all flags after a successful write. A failed write leaves the
// flags set so the next Write retries.
//
// # Files
//
// RootNode.Write renders the tree with internal/prefstext and replaces the
// file atomically (temp file, sync, rename) through internal/writer.
// Comment and blank lines read from the file are kept with the entry or
// group that follows them and are written back in place.
//
// # Reference Counting
//
// Handles call Retain when they start sharing a RootNode and Release when
// they are closed. The Release that drops the count to zero writes the tree.
//
// # Thread Safety
//
// Nothing in this package is thread-safe. Callers serialize access.
package store
