package store

import "strings"

const (
	// PathSeparator separates group names in a path.
	PathSeparator = "/"

	// TopPath names the top node.
	TopPath = "."
)

// SplitPath splits a slash-delimited group path. A leading separator makes
// the path absolute (resolved from the top node). A single trailing
// separator is ignored. Interior empty segments are kept so that callers
// can reject them.
func SplitPath(path string) (segments []string, absolute bool) {
	if strings.HasPrefix(path, PathSeparator) {
		absolute = true
		path = path[1:]
	}
	path = strings.TrimSuffix(path, PathSeparator)
	if path == "" || path == TopPath {
		return nil, absolute
	}
	return strings.Split(path, PathSeparator), absolute
}

// SplitKey splits "a/b/name" into the group path "a/b" and the entry name
// "name". A key without separator has an empty group path; "/name" has
// the group path "/", the top of the tree.
func SplitKey(key string) (group, name string) {
	i := strings.LastIndex(key, PathSeparator)
	switch {
	case i < 0:
		return "", key
	case i == 0:
		return PathSeparator, key[1:]
	}
	return key[:i], key[i+1:]
}

// JoinPath joins group names into a path; no names yields TopPath.
func JoinPath(segments []string) string {
	if len(segments) == 0 {
		return TopPath
	}
	return strings.Join(segments, PathSeparator)
}

// CleanPath drops the empty, "." and ".." segments of path, the ones Search
// skips, so that Find and Search resolve the result to the same group. An
// absolute path stays absolute; a path with no segments left is "" (or "/").
func CleanPath(path string) string {
	segs, abs := SplitPath(path)
	kept := segs[:0]
	for _, s := range segs {
		if validSegment(s) {
			kept = append(kept, s)
		}
	}
	clean := strings.Join(kept, PathSeparator)
	if abs {
		return PathSeparator + clean
	}
	return clean
}

// validSegment reports whether s can name a group.
func validSegment(s string) bool {
	return s != "" && s != "." && s != ".."
}

// Find resolves path relative to n (or to the top node for absolute paths)
// without creating anything. It returns nil if any segment is missing or
// malformed.
func (n *Node) Find(path string) *Node {
	segs, abs := SplitPath(path)
	cur := n
	if abs {
		cur = n.Top()
	}
	for _, s := range segs {
		if !validSegment(s) {
			return nil
		}
		if cur = cur.Child(s); cur == nil {
			return nil
		}
	}
	return cur
}

// Search resolves path relative to n (or to the top node for absolute
// paths), creating missing groups. Empty, "." and ".." segments are skipped,
// so Search always returns a node.
func (n *Node) Search(path string) *Node {
	segs, abs := SplitPath(path)
	cur := n
	if abs {
		cur = n.Top()
	}
	return cur.searchSegments(segs)
}

// searchSegments walks already-split group names, creating missing ones.
func (n *Node) searchSegments(segs []string) *Node {
	cur := n
	for _, s := range segs {
		if !validSegment(s) {
			continue
		}
		next := cur.Child(s)
		if next == nil {
			next = cur.AddChild(s)
		}
		cur = next
	}
	return cur
}
