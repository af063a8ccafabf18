package segment

import (
	"github.com/makamlab/symbtrseg/bounds"
	"github.com/makamlab/symbtrseg/score"
)

// StructureLabeler refines built segments: it assigns structural
// letter labels (and, when configured, raw similarity scores) by
// comparing segments melodically and lyrically, then rewrites
// StartNote/EndNote from internal 0-based to SymbTr 1-based indexing
// in place. The label package ships the stock implementation.
type StructureLabeler interface {
	LabelStructures(segs []Segment, s *score.Score) error
	ToSymbTrIndex(segs []Segment)
}

// Extractor converts a score into a sequence of labeled segments or
// phrases. Its configuration is fixed at construction; the extractor
// holds no cross-call state, so one instance may serve many scores.
type Extractor struct {
	opts    Options
	labeler StructureLabeler
}

// New builds an Extractor from opts and a structure labeler.
//
// Errors:
//   - ErrOptionViolation — a similarity threshold outside [0, 1].
//   - ErrNilLabeler      — labeler is nil.
func New(opts Options, labeler StructureLabeler) (*Extractor, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if labeler == nil {
		return nil, ErrNilLabeler
	}

	return &Extractor{opts: opts, labeler: labeler}, nil
}

// ExtractPhrases slices the score along its intrinsic boundary codes.
//
// An usul change always marks a boundary, but a score whose only
// boundary codes are usul changes is unannotated for phrasing
// purposes: without at least one hand-annotation code the result is
// empty, not an error.
//
// Segments are returned in score order with SymbTr (1-based) indices.
func (e *Extractor) ExtractPhrases(s *score.Score, sections []score.Section) ([]Segment, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if !bounds.HasAnnotations(s) {
		return nil, nil
	}

	return e.extract(bounds.Collect(s), s, sections, KindPhrase)
}

// ExtractSegments slices the score along externally supplied boundary
// indices (SymbTr convention, 1-based; converted internally before
// normalization).
//
// NoBoundaries and EmptyPlaceholder inputs yield an empty result; the
// zero Boundaries value yields ErrMalformedBoundaryInput.
func (e *Extractor) ExtractSegments(s *score.Score, b Boundaries, sections []score.Section) ([]Segment, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	switch b.state {
	case boundaryAbsent, boundaryPlaceholder:
		return nil, nil
	case boundaryList:
		if len(b.idx) == 0 {
			return nil, nil
		}
		raw := make([]int, len(b.idx))
		for i, n := range b.idx {
			raw[i] = n - 1
		}

		return e.extract(raw, s, sections, KindSegment)
	default:
		return nil, ErrMalformedBoundaryInput
	}
}

// extract is the shared pipeline: normalize bounds, slice the score
// into segment records, resolve section membership, then hand the
// whole sequence to the labeler for structural refinement and index
// conversion.
//
// Bounds are fully validated before the first Segment is constructed;
// a failed extraction emits no partial result.
func (e *Extractor) extract(raw []int, s *score.Score, sections []score.Section, kind Kind) ([]Segment, error) {
	bs, err := bounds.Parse(raw, s, e.opts.CropConsecutiveBounds)
	if err != nil {
		return nil, err
	}

	segs := make([]Segment, 0, len(bs)-1)
	for p := 0; p+1 < len(bs); p++ {
		// The sentinel end bound is never itself a segment start.
		start := bs[p]
		end := bs[p+1] - 1

		lyrics, err := score.LyricsBetween(s, start, end)
		if err != nil {
			return nil, err
		}

		var refs []SectionRef
		if len(sections) > 0 {
			refs, err = sectionsBetween(sections, start, end)
			if err != nil {
				return nil, err
			}
		}

		name := segmentName(lyrics, kind)
		segs = append(segs, Segment{
			Name:      name,
			Slug:      name,
			Flavor:    flavorBetween(s, start, end),
			Lyrics:    lyrics,
			Sections:  refs,
			StartNote: start,
			EndNote:   end,
		})
	}

	if err := e.labeler.LabelStructures(segs, s); err != nil {
		return nil, err
	}
	e.labeler.ToSymbTrIndex(segs)

	return segs, nil
}

// flavorBetween collects, in score order, the lyric fragment of every
// FlavorCode note in the inclusive range.
func flavorBetween(s *score.Score, start, end int) []string {
	var flavor []string
	for i := start; i <= end; i++ {
		if s.Codes[i] == bounds.FlavorCode {
			flavor = append(flavor, s.Lyrics[i])
		}
	}

	return flavor
}

// sectionsBetween resolves every section the inclusive note range
// touches. Both endpoints must each belong to exactly one section;
// everything in between is copied through with its structure labels.
func sectionsBetween(sections []score.Section, start, end int) ([]SectionRef, error) {
	startIdx, err := score.SectionIndexAt(sections, start)
	if err != nil {
		return nil, err
	}
	endIdx, err := score.SectionIndexAt(sections, end)
	if err != nil {
		return nil, err
	}

	refs := make([]SectionRef, 0, endIdx-startIdx+1)
	for i := startIdx; i <= endIdx; i++ {
		refs = append(refs, SectionRef{
			SectionIdx:       i,
			MelodicStructure: sections[i].MelodicStructure,
			LyricsStructure:  sections[i].LyricsStructure,
		})
	}

	return refs, nil
}

// segmentName derives the classification token from the vocal test:
// a segment with sung text is VOCAL, anything else INSTRUMENTAL.
func segmentName(lyrics string, kind Kind) string {
	if lyrics != "" {
		return "VOCAL_" + kind.token()
	}

	return "INSTRUMENTAL_" + kind.token()
}
