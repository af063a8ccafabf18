// Package score defines the SymbTr score and section containers and the
// score-level queries the segmentation pipeline consumes.
package score

import "errors"

// Sentinel errors for score queries.
var (
	// ErrLengthMismatch indicates the parallel per-note fields disagree in length.
	ErrLengthMismatch = errors.New("score: parallel per-note fields must have the same length")

	// ErrRangeOutOfScore indicates a note range that falls outside the score.
	ErrRangeOutOfScore = errors.New("score: note range outside the score")

	// ErrSectionMembership indicates a note matched zero or several sections.
	ErrSectionMembership = errors.New("score: note must belong to exactly one section")
)

// StructuralCodeMin is the lowest code value reserved for structural
// annotation rows (usul changes, boundary and flavor annotations).
// Rows at or above this value annotate the score rather than sound.
const StructuralCodeMin = 51

// Score is an ordered, fixed-length sequence of notes stored as parallel
// per-index fields, mirroring the SymbTr column layout.
//
// Invariants:
//   - len(Codes) == len(Lyrics); indices are contiguous from 0.
//   - Pitch is optional: nil, or one value per note.
//
// Note position is the primary key and is never reused; internal
// indexing is 0-based throughout this module, while the SymbTr
// ecosystem counts notes from 1.
type Score struct {
	// Codes holds the integer classification tag of every note row.
	Codes []int

	// Lyrics holds the lyric fragment attached to every note row;
	// empty string for rows without text.
	Lyrics []string

	// Pitch optionally holds one pitch value per note, used for
	// melodic similarity. May be nil when no melodic data is loaded.
	Pitch []float64
}

// Len returns the number of note rows in the score.
func (s *Score) Len() int { return len(s.Codes) }

// Validate checks the parallel-length invariant. It must pass before
// any extraction runs over the score.
func (s *Score) Validate() error {
	if len(s.Codes) != len(s.Lyrics) {
		return ErrLengthMismatch
	}
	if s.Pitch != nil && len(s.Pitch) != len(s.Codes) {
		return ErrLengthMismatch
	}

	return nil
}

// Section is an externally supplied score section, read-only to this
// module. StartNote and EndNote use the SymbTr convention: 1-based and
// inclusive. The structure labels are opaque tokens owned by the caller.
type Section struct {
	StartNote        int
	EndNote          int
	MelodicStructure string
	LyricsStructure  string
}
