package index

// Threshold is the list length up to which lookups scan linearly. Longer
// lists get an index on first lookup.
const Threshold = 8

// ReadOnlyIndex is the query side of a name→position index.
type ReadOnlyIndex interface {
	// Get returns the position of name, or ok=false if absent.
	Get(name string) (pos int, ok bool)

	// Stats returns index statistics.
	Stats() Stats
}

// Index is the full mutable interface.
type Index interface {
	ReadOnlyIndex

	// Add registers name at pos. An existing mapping is kept so the index
	// agrees with a front-to-back scan when names repeat.
	Add(name string, pos int)

	// Remove deletes name from the index. Safe to call for absent names.
	Remove(name string)
}

// Stats reports index metrics.
type Stats struct {
	Count       int    // Number of indexed names
	BytesApprox int    // Approximate memory usage (best effort)
	Impl        string // Implementation name
}
