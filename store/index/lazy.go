package index

// Lazy holds an optional index over one ordered list. The zero value is an
// unbuilt index ready for use.
type Lazy struct {
	idx    Index
	builds int
}

// Lookup returns the first position in the list whose name equals name, or
// -1. n is the list length and nameAt returns the name at a position.
//
// Lists of up to Threshold items are scanned. Longer lists use the index,
// building it first if needed.
func (l *Lazy) Lookup(n int, nameAt func(i int) string, name string) int {
	if l.idx == nil && n <= Threshold {
		for i := 0; i < n; i++ {
			if nameAt(i) == name {
				return i
			}
		}
		return -1
	}
	if l.idx == nil {
		l.idx = Build(n, nameAt)
		l.builds++
	}
	if p, ok := l.idx.Get(name); ok {
		return p
	}
	return -1
}

// Appended records that name was appended at pos. A no-op while unbuilt.
func (l *Lazy) Appended(name string, pos int) {
	if l.idx != nil {
		l.idx.Add(name, pos)
	}
}

// Removed records that the item named name at pos was removed from a list
// of n items. Removing the last item keeps the index; any other removal
// shifts positions and drops it.
func (l *Lazy) Removed(name string, pos, n int) {
	if l.idx == nil {
		return
	}
	if pos != n-1 {
		l.idx = nil
		return
	}
	// An earlier item with the same name keeps its mapping.
	if p, ok := l.idx.Get(name); ok && p == pos {
		l.idx.Remove(name)
	}
}

// Invalidate drops the index. Called after removals or reorders, which shift
// positions.
func (l *Lazy) Invalidate() {
	l.idx = nil
}

// Built reports whether the index currently exists.
func (l *Lazy) Built() bool { return l.idx != nil }

// Builds returns how many times the index has been built.
func (l *Lazy) Builds() int { return l.builds }

// Stats returns the statistics of the current index, or zero Stats when
// unbuilt.
func (l *Lazy) Stats() Stats {
	if l.idx == nil {
		return Stats{Impl: "none"}
	}
	return l.idx.Stats()
}
