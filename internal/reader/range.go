package reader

import "fmt"

// StringRange is a half-open [Start, End) span of the input.
type StringRange struct {
	Start int
	End   int
}

// At returns the empty range at pos.
func At(pos int) StringRange {
	return StringRange{Start: pos, End: pos}
}

// Between returns [start, end).
func Between(start, end int) StringRange {
	return StringRange{Start: start, End: end}
}

// Encompassing returns the smallest range covering both a and b.
func Encompassing(a, b StringRange) StringRange {
	return StringRange{Start: min(a.Start, b.Start), End: max(a.End, b.End)}
}

// Get returns the part of s covered by the range.
func (r StringRange) Get(s string) string {
	return s[r.Start:r.End]
}

func (r StringRange) IsEmpty() bool {
	return r.Start == r.End
}

func (r StringRange) Len() int {
	return r.End - r.Start
}

func (r StringRange) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}
