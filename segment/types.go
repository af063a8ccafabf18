// Package segment slices a score into labeled segment records along
// normalized boundary cut points.
package segment

import (
	"errors"
	"fmt"
)

// Sentinel errors for segment extraction.
var (
	// ErrOptionViolation is returned when an Options field is invalid.
	ErrOptionViolation = errors.New("segment: invalid option supplied")

	// ErrMalformedBoundaryInput is returned when the externally supplied
	// boundary value has an unrecognized shape. Only the recognized
	// empty-placeholder artifact maps to "no segments"; anything else is
	// a caller contract violation and is reported, not swallowed.
	ErrMalformedBoundaryInput = errors.New("segment: malformed segment boundary input")

	// ErrNilLabeler is returned when an Extractor is constructed without
	// a structure labeler.
	ErrNilLabeler = errors.New("segment: structure labeler must not be nil")
)

// Kind selects the classification token family of the produced units:
// phrases are inferred from intrinsic annotation codes, segments are
// delimited by externally supplied boundary indices.
type Kind int

const (
	// KindPhrase produces VOCAL_PHRASE / INSTRUMENTAL_PHRASE tokens.
	KindPhrase Kind = iota

	// KindSegment produces VOCAL_SEGMENT / INSTRUMENTAL_SEGMENT tokens.
	KindSegment
)

// token returns the token suffix of the kind.
func (k Kind) token() string {
	if k == KindPhrase {
		return "PHRASE"
	}

	return "SEGMENT"
}

// SectionRef records one section a segment's note range touches, with
// the section's structure labels copied through from the caller's data.
type SectionRef struct {
	SectionIdx       int
	MelodicStructure string
	LyricsStructure  string
}

// SimilarityScores holds the raw similarity of a segment against its
// structural group's representative. Attached only when
// Options.SaveStructureSim is set.
type SimilarityScores struct {
	Melodic float64
	Lyrics  float64
}

// Segment is one contiguous note range delimited by two adjacent cut
// points.
//
// StartNote and EndNote are internal (0-based) at construction time;
// the structure labeler rewrites them to the SymbTr (1-based)
// convention in place before the sequence is returned. After labeling
// the record is immutable.
type Segment struct {
	// Name and Slug hold the classification token, one of
	// {VOCAL,INSTRUMENTAL}_{PHRASE,SEGMENT} before structural
	// refinement.
	Name string
	Slug string

	// Flavor lists, in score order, the lyric fragment of every
	// FlavorCode note inside the span: flavor (cesni) names, not the
	// segment's own lyrics.
	Flavor []string

	// Lyrics is the contiguous sung text spanning the segment.
	Lyrics string

	// Sections lists every section the note range touches.
	Sections []SectionRef

	StartNote int
	EndNote   int

	// StructuralLabel is the letter label of the segment's structural
	// group, assigned by the labeler.
	StructuralLabel string

	// Similarity carries the raw similarity scores when requested.
	Similarity *SimilarityScores
}

// Options configures segment extraction. The value is read-only once
// passed to New; construct a fresh Extractor per configuration.
//
// Fields:
//   - LyricsSimThreshold — minimum lyric similarity, in [0, 1], for two
//     segments to be regarded as structurally equal.
//   - MelodySimThreshold — same for melody.
//   - SaveStructureSim   — attach raw similarity scores to the output.
//   - CropConsecutiveBounds — collapse boundaries one note apart during
//     normalization.
type Options struct {
	LyricsSimThreshold    float64
	MelodySimThreshold    float64
	SaveStructureSim      bool
	CropConsecutiveBounds bool
}

// DefaultOptions returns the stock configuration: both similarity
// thresholds at 0.70, similarity scores saved, consecutive-bound
// cropping enabled.
func DefaultOptions() Options {
	return Options{
		LyricsSimThreshold:    0.70,
		MelodySimThreshold:    0.70,
		SaveStructureSim:      true,
		CropConsecutiveBounds: true,
	}
}

// validate checks threshold ranges.
func (o Options) validate() error {
	if o.LyricsSimThreshold < 0 || o.LyricsSimThreshold > 1 {
		return errWithValue("LyricsSimThreshold", o.LyricsSimThreshold)
	}
	if o.MelodySimThreshold < 0 || o.MelodySimThreshold > 1 {
		return errWithValue("MelodySimThreshold", o.MelodySimThreshold)
	}

	return nil
}

// errWithValue wraps ErrOptionViolation with the offending field.
func errWithValue(field string, v float64) error {
	return fmt.Errorf("%w: %s must lie in [0, 1], got %g", ErrOptionViolation, field, v)
}
