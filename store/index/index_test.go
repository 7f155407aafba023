package index

import (
	"strconv"
	"testing"
)

// Test_StringIndex_AddGet tests adding and retrieving names.
func Test_StringIndex_AddGet(t *testing.T) {
	idx := NewStringIndex(4)

	idx.Add("width", 0)
	idx.Add("height", 1)
	idx.Add("", 2)

	if pos, ok := idx.Get("height"); !ok || pos != 1 {
		t.Errorf("Get(height) = %d, %v; want 1, true", pos, ok)
	}
	if pos, ok := idx.Get(""); !ok || pos != 2 {
		t.Errorf("Get(\"\") = %d, %v; want 2, true", pos, ok)
	}
	if _, ok := idx.Get("Width"); ok {
		t.Error("Get(Width) found a match; lookups must be case-sensitive")
	}

	stats := idx.Stats()
	if stats.Count != 3 {
		t.Errorf("Expected 3 entries, got %d", stats.Count)
	}
	if stats.Impl != "StringIndex" {
		t.Errorf("Expected impl=StringIndex, got %s", stats.Impl)
	}
}

// Test_StringIndex_FirstWins tests that duplicates keep the first position.
func Test_StringIndex_FirstWins(t *testing.T) {
	idx := Build(3, func(i int) string { return []string{"a", "b", "a"}[i] })
	if pos, _ := idx.Get("a"); pos != 0 {
		t.Errorf("Get(a) = %d; want 0", pos)
	}

	idx.Remove("a")
	if _, ok := idx.Get("a"); ok {
		t.Error("Get(a) found a match after Remove")
	}
	idx.Remove("missing")
}

func names(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "File" + strconv.Itoa(i)
	}
	return out
}

// Test_Lazy_ShortListNeverBuilds tests the linear path.
func Test_Lazy_ShortListNeverBuilds(t *testing.T) {
	list := names(Threshold)
	var l Lazy
	for i, n := range list {
		if pos := l.Lookup(len(list), func(i int) string { return list[i] }, n); pos != i {
			t.Errorf("Lookup(%s) = %d; want %d", n, pos, i)
		}
	}
	if l.Lookup(len(list), func(i int) string { return list[i] }, "nope") != -1 {
		t.Error("Lookup(nope) should be -1")
	}
	if l.Built() {
		t.Error("index built for a list at the threshold")
	}
}

// Test_Lazy_BuildsOnceAndTracksAppends tests the indexed path.
func Test_Lazy_BuildsOnceAndTracksAppends(t *testing.T) {
	list := names(100)
	var l Lazy
	at := func(i int) string { return list[i] }

	if pos := l.Lookup(len(list), at, "File57"); pos != 57 {
		t.Fatalf("Lookup(File57) = %d; want 57", pos)
	}
	if !l.Built() || l.Builds() != 1 {
		t.Fatalf("Built=%v Builds=%d; want true, 1", l.Built(), l.Builds())
	}

	list = append(list, "extra")
	l.Appended("extra", len(list)-1)
	if pos := l.Lookup(len(list), at, "extra"); pos != 100 {
		t.Errorf("Lookup(extra) = %d; want 100", pos)
	}
	if l.Builds() != 1 {
		t.Errorf("Builds = %d after append; want 1", l.Builds())
	}

	l.Invalidate()
	if l.Built() {
		t.Error("Invalidate did not drop the index")
	}
	if pos := l.Lookup(len(list), at, "File3"); pos != 3 {
		t.Errorf("Lookup(File3) = %d; want 3", pos)
	}
	if l.Builds() != 2 {
		t.Errorf("Builds = %d after rebuild; want 2", l.Builds())
	}
}

// Test_Lazy_Removed tests that removing the last item keeps the index and
// any other removal drops it.
func Test_Lazy_Removed(t *testing.T) {
	list := append(names(20), "File3")
	var l Lazy
	at := func(i int) string { return list[i] }
	l.Lookup(len(list), at, "File0")

	// A trailing duplicate leaves the first mapping alone.
	l.Removed("File3", len(list)-1, len(list))
	list = list[:len(list)-1]
	if pos := l.Lookup(len(list), at, "File3"); pos != 3 {
		t.Errorf("Lookup(File3) = %d; want 3", pos)
	}

	l.Removed("File19", len(list)-1, len(list))
	list = list[:len(list)-1]
	if !l.Built() {
		t.Fatal("removing the last item dropped the index")
	}
	if pos := l.Lookup(len(list), at, "File19"); pos != -1 {
		t.Errorf("Lookup(File19) = %d after removal; want -1", pos)
	}

	l.Removed("File0", 0, len(list))
	if l.Built() {
		t.Error("removing the first item kept a stale index")
	}
	if l.Builds() != 1 {
		t.Errorf("Builds = %d; want 1", l.Builds())
	}
}

// Test_Lazy_MatchesScan checks indexed and scanned lookups agree, including
// for repeated names.
func Test_Lazy_MatchesScan(t *testing.T) {
	list := append(names(20), "File5", "dup", "dup")
	at := func(i int) string { return list[i] }

	scan := func(name string) int {
		for i, n := range list {
			if n == name {
				return i
			}
		}
		return -1
	}

	var l Lazy
	for _, q := range append(list, "absent") {
		if got, want := l.Lookup(len(list), at, q), scan(q); got != want {
			t.Errorf("Lookup(%q) = %d; scan = %d", q, got, want)
		}
	}
}
