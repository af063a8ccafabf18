// Package bounds classifies SymbTr boundary codes and normalizes raw
// boundary index lists into validated segment cut points.
package bounds

import "errors"

// Sentinel errors for bound normalization.
var (
	// ErrBoundOutOfRange indicates a normalized boundary outside the
	// score's valid [firstNote, len(score)] range.
	ErrBoundOutOfRange = errors.New("bounds: boundary outside the score")
)

// Boundary classification codes of the SymbTr annotation layer.
const (
	// UsulChangeCode marks an usul (rhythmic cycle) change. An usul
	// change always delimits a segment.
	UsulChangeCode = 51

	// AnnotationCode marks a hand-annotated structural boundary.
	AnnotationCode = 53

	// FlavorCode marks a flavor (cesni) annotation: a boundary whose
	// lyric field carries the flavor name rather than sung text.
	FlavorCode = 54

	// ModulationCode marks an annotated modulation boundary.
	ModulationCode = 55
)

// BoundKind classifies a note code's boundary role.
//
//   - KindNone       — the code does not delimit anything.
//   - KindUsulChange — an usul change; always a boundary.
//   - KindAnnotation — one of the hand-annotation sub-codes
//     (AnnotationCode, FlavorCode, ModulationCode).
type BoundKind int

const (
	// KindNone: not a boundary code.
	KindNone BoundKind = iota

	// KindUsulChange: usul-change boundary (UsulChangeCode).
	KindUsulChange

	// KindAnnotation: hand-annotated boundary (codes 53-55).
	KindAnnotation
)

// Classify maps a note code to its BoundKind. Pure lookup.
func Classify(code int) BoundKind {
	switch code {
	case UsulChangeCode:
		return KindUsulChange
	case AnnotationCode, FlavorCode, ModulationCode:
		return KindAnnotation
	default:
		return KindNone
	}
}
