// Package index provides the lazily built name→position caches used by
// store.Node for entry and child lookups.
//
// # Overview
//
// A Node keeps its entries and children as ordered slices. Most groups hold a
// handful of settings, so a linear scan is the cheapest lookup. Groups used as
// arrays ("File0", "File1", ... "File9999") would make every lookup O(n) and
// every bulk load O(n²), so the first lookup on a list longer than Threshold
// builds a map from name to position.
//
// # Cache Semantics
//
// The index is a derived cache:
//
//   - It never changes what a lookup returns. When a list contains the same
//     name twice, both the scan and the index report the first position.
//   - Appends keep a built index current (Lazy.Appended).
//   - Removing the last item keeps it current (Lazy.Removed). Other removals
//     and reorders drop it; the next long lookup rebuilds it.
//
// # Usage
//
//	var lazy index.Lazy
//	pos := lazy.Lookup(len(items), func(i int) string { return items[i].Name }, "File42")
//	if pos < 0 {
//	    items = append(items, item)
//	    lazy.Appended(item.Name, len(items)-1)
//	}
//
// # Thread Safety
//
// Index instances are not thread-safe. The owning tree is single-threaded.
package index
