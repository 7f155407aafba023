package index

const (
	// estimatedBytesPerMapEntry is the rough map overhead per entry plus the
	// int value.
	estimatedBytesPerMapEntry = 40

	// defaultCapacity is used when no capacity hint is given.
	defaultCapacity = 32
)

var _ Index = (*StringIndex)(nil)

// StringIndex is a map-based Index keyed by the exact (case-sensitive) name.
type StringIndex struct {
	pos map[string]int
}

// NewStringIndex creates a StringIndex with an optional capacity hint.
func NewStringIndex(capHint int) *StringIndex {
	if capHint <= 0 {
		capHint = defaultCapacity
	}
	return &StringIndex{pos: make(map[string]int, capHint)}
}

// Build creates a StringIndex over the n names returned by nameAt.
func Build(n int, nameAt func(i int) string) *StringIndex {
	s := NewStringIndex(n)
	for i := 0; i < n; i++ {
		s.Add(nameAt(i), i)
	}
	return s
}

// Get implements ReadOnlyIndex.
func (s *StringIndex) Get(name string) (int, bool) {
	p, ok := s.pos[name]
	return p, ok
}

// Add implements Index.
func (s *StringIndex) Add(name string, pos int) {
	if _, exists := s.pos[name]; exists {
		return
	}
	s.pos[name] = pos
}

// Remove implements Index.
func (s *StringIndex) Remove(name string) {
	delete(s.pos, name)
}

// Stats implements ReadOnlyIndex.
func (s *StringIndex) Stats() Stats {
	bytes := 0
	for k := range s.pos {
		bytes += len(k) + estimatedBytesPerMapEntry
	}
	return Stats{
		Count:       len(s.pos),
		BytesApprox: bytes,
		Impl:        "StringIndex",
	}
}
