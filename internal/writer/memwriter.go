package writer

// MemWriter captures preferences bytes in memory.
type MemWriter struct {
	Buf    []byte
	Writes int
}

// WritePrefs stores a copy of the provided buffer.
func (w *MemWriter) WritePrefs(buf []byte) error {
	w.Buf = append(w.Buf[:0], buf...)
	w.Writes++
	return nil
}
