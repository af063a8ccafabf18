package segment

// Boundaries is the tagged input type for externally supplied segment
// boundaries. Upstream automatic segmentation tools emit either a list
// of 1-based note indices, nothing at all, or a zero-dimensional
// empty-array placeholder meaning "no boundaries found"; the three
// shapes are resolved here by construction instead of structural
// sniffing inside the algorithm.
//
// The zero value Boundaries{} represents an unrecognized shape and
// yields ErrMalformedBoundaryInput from ExtractSegments.
type Boundaries struct {
	state boundaryState
	idx   []int
}

type boundaryState int

const (
	boundaryMalformed boundaryState = iota
	boundaryAbsent
	boundaryPlaceholder
	boundaryList
)

// NoBoundaries represents an absent boundary value. ExtractSegments
// treats it as "no segments".
func NoBoundaries() Boundaries {
	return Boundaries{state: boundaryAbsent}
}

// EmptyPlaceholder represents the recognized empty-array artifact
// written by automatic phrase segmentation when it found no boundaries.
// ExtractSegments treats it as "no segments" rather than an error.
func EmptyPlaceholder() Boundaries {
	return Boundaries{state: boundaryPlaceholder}
}

// BoundaryList wraps externally supplied boundary note indices, given
// in the SymbTr convention (1-based).
func BoundaryList(noteIdx ...int) Boundaries {
	return Boundaries{state: boundaryList, idx: noteIdx}
}
