// Package overlap finds every sufficiently long exact common substring
// shared by two texts and partitions each text into runs of characters
// annotated with a match strength.
//
// It is built for annotation tools that highlight where two texts overlap:
//   - Matching: a divide-and-conquer search over pairs of sub-ranges
//     finds the longest common substring, then searches the regions around it
//   - Partitioning: each character's strength is the length of the longest
//     match covering it, and equal-strength neighbors are merged into spans
//
// All positions and lengths count Unicode code points, never bytes.
package overlap

import "errors"

// Minimum match lengths used by annotation views.
const (
	// SentenceMinLen highlights fine-grained overlap between two sentences.
	SentenceMinLen = 5
	// DocumentMinLen highlights broader overlap between document contexts.
	DocumentMinLen = 15
)

var (
	// ErrInvalidArgument is returned when an input is rejected before any
	// matching is attempted.
	ErrInvalidArgument = errors.New("overlap: invalid argument")

	// ErrResourceExceeded is returned when a search stops early because a
	// budget set with WithMaxCells, WithMaxRectangles or WithMaxPending ran
	// out. Results returned alongside it are partial.
	ErrResourceExceeded = errors.New("overlap: resource budget exceeded")
)

// Match is an exact common substring: a[AStart:AStart+Length] equals
// b[BStart:BStart+Length].
type Match struct {
	AStart int // start index in sequence A
	BStart int // start index in sequence B
	Length int // number of code points
}

// AEnd returns the exclusive end index of the match in A.
func (m Match) AEnd() int { return m.AStart + m.Length }

// BEnd returns the exclusive end index of the match in B.
func (m Match) BEnd() int { return m.BStart + m.Length }

// ProjectA returns the match as seen from sequence A.
func (m Match) ProjectA() Projection { return Projection{Start: m.AStart, Length: m.Length} }

// ProjectB returns the match as seen from sequence B.
func (m Match) ProjectB() Projection { return Projection{Start: m.BStart, Length: m.Length} }

// Projection is a match projected onto one side of a comparison.
type Projection struct {
	Start  int
	Length int
}

// Rectangle is a pair of half-open ranges, a[ALo:AHi] and b[BLo:BHi],
// examined during the search.
type Rectangle struct {
	ALo, AHi int
	BLo, BHi int
}

// Cells returns the number of character pairs the rectangle covers.
func (r Rectangle) Cells() int {
	return (r.AHi - r.ALo) * (r.BHi - r.BLo)
}
