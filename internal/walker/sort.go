package walker

import (
	"strings"

	"github.com/bethropolis/dir-tree/internal/entry"
)

// Sorter compares two entries of the same directory, returning a negative
// number when a sorts first.
type Sorter func(a, b entry.Entry) int

// ByName orders entries by the bytes of their names. Names within one
// directory are unique, so it never reports a tie.
func ByName(a, b entry.Entry) int {
	return strings.Compare(a.Name(), b.Name())
}

// DirsFirst lists directories before everything else, each group by name.
func DirsFirst(a, b entry.Entry) int {
	if a.IsDir() != b.IsDir() {
		if a.IsDir() {
			return -1
		}
		return 1
	}
	return ByName(a, b)
}

// Reverse inverts s.
func Reverse(s Sorter) Sorter {
	return func(a, b entry.Entry) int {
		return s(b, a)
	}
}
