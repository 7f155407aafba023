package store

// Entry is one name/value pair of a Node. Comments holds the comment and
// blank lines that precede the entry in the file; they are written back in
// front of it.
type Entry struct {
	Name     string
	Value    string
	Comments []string
}

// clone returns a copy that shares no slices with e.
func (e Entry) clone() Entry {
	if e.Comments != nil {
		e.Comments = append([]string(nil), e.Comments...)
	}
	return e
}
