package bounds_test

import (
	"testing"

	"github.com/makamlab/symbtrseg/bounds"
	"github.com/makamlab/symbtrseg/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plainScore builds an n-note score of sounding notes without lyrics.
func plainScore(n int) *score.Score {
	return &score.Score{
		Codes:  make([]int, n),
		Lyrics: make([]string, n),
	}
}

// TestClassify covers the pure code lookup.
func TestClassify(t *testing.T) {
	assert.Equal(t, bounds.KindUsulChange, bounds.Classify(bounds.UsulChangeCode))
	assert.Equal(t, bounds.KindAnnotation, bounds.Classify(bounds.AnnotationCode))
	assert.Equal(t, bounds.KindAnnotation, bounds.Classify(bounds.FlavorCode))
	assert.Equal(t, bounds.KindAnnotation, bounds.Classify(bounds.ModulationCode))
	assert.Equal(t, bounds.KindNone, bounds.Classify(0))
	assert.Equal(t, bounds.KindNone, bounds.Classify(52))
}

// TestCollect_AnchorsAtFirstNote verifies that the raw bound list
// starts at the first sounding note and picks up every later boundary
// code.
func TestCollect_AnchorsAtFirstNote(t *testing.T) {
	s := &score.Score{
		Codes:  []int{51, 0, 0, bounds.AnnotationCode, 0, bounds.UsulChangeCode, 0},
		Lyrics: make([]string, 7),
	}

	got := bounds.Collect(s)
	assert.Equal(t, []int{1, 3, 5}, got, "anchor at first sounding note, then boundary codes in score order")
}

// TestHasAnnotations distinguishes hand-annotated scores from scores
// carrying only usul changes.
func TestHasAnnotations(t *testing.T) {
	usulOnly := &score.Score{Codes: []int{51, 0, 51, 0}, Lyrics: make([]string, 4)}
	assert.False(t, bounds.HasAnnotations(usulOnly), "usul changes alone are not annotations")

	annotated := &score.Score{Codes: []int{51, 0, bounds.FlavorCode, 0}, Lyrics: make([]string, 4)}
	assert.True(t, bounds.HasAnnotations(annotated))
}

// TestParse_SortDedupAnchor checks normalization: anchor at the first
// note, sentinel end at len(score), ascending order, no duplicates.
func TestParse_SortDedupAnchor(t *testing.T) {
	s := plainScore(10)

	got, err := bounds.Parse([]int{6, 2, 2}, s, false)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 6, 10}, got)

	for i := 0; i+1 < len(got); i++ {
		assert.Less(t, got[i], got[i+1], "normalized bounds must be strictly ascending")
	}
	assert.Equal(t, score.FirstNoteIndex(s), got[0], "first bound is the first sounding note")
	assert.Equal(t, s.Len(), got[len(got)-1], "last bound is the one-past-end sentinel")
}

// TestParse_EmptyInput verifies the minimal output: start anchor plus
// end sentinel.
func TestParse_EmptyInput(t *testing.T) {
	got, err := bounds.Parse(nil, plainScore(4), true)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4}, got)
}

// TestParse_DuplicateBeforeCrop reproduces the external-boundary
// scenario: duplicate bound 2 collapses via dedup before the
// consecutive-bound rule is even consulted.
func TestParse_DuplicateBeforeCrop(t *testing.T) {
	got, err := bounds.Parse([]int{2, 2, 6}, plainScore(10), true)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 6, 10}, got)
}

// TestParse_CropMidScorePair verifies the keep-last rule away from the
// leading edge: of the adjacent pair (4, 5), the first member goes.
func TestParse_CropMidScorePair(t *testing.T) {
	got, err := bounds.Parse([]int{4, 5}, plainScore(10), true)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 5, 10}, got)
}

// TestParse_CropLeadingRun verifies the keep-first rule at the leading
// edge: a run of consecutive bounds adjacent to the score start
// collapses to the run's first member.
func TestParse_CropLeadingRun(t *testing.T) {
	got, err := bounds.Parse([]int{1, 2, 3}, plainScore(10), true)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 10}, got)
}

// TestParse_CropDisabled keeps adjacent bounds verbatim.
func TestParse_CropDisabled(t *testing.T) {
	got, err := bounds.Parse([]int{4, 5}, plainScore(10), false)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 5, 10}, got)
}

// TestParse_CropIdempotent verifies that re-normalizing a normalized
// sequence changes nothing.
func TestParse_CropIdempotent(t *testing.T) {
	s := plainScore(12)

	once, err := bounds.Parse([]int{4, 5, 7, 8}, s, true)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 5, 8, 12}, once)

	twice, err := bounds.Parse(once, s, true)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

// TestParse_OutOfRange verifies that bounds outside
// [firstNote, len(score)] fail instead of being clamped.
func TestParse_OutOfRange(t *testing.T) {
	s := plainScore(10)

	_, err := bounds.Parse([]int{-2}, s, false)
	assert.ErrorIs(t, err, bounds.ErrBoundOutOfRange, "negative bound must error")

	_, err = bounds.Parse([]int{12}, s, false)
	assert.ErrorIs(t, err, bounds.ErrBoundOutOfRange, "bound past the sentinel must error")
}

// TestParse_InputNotMutated verifies Parse is pure with respect to its
// input slice.
func TestParse_InputNotMutated(t *testing.T) {
	raw := []int{6, 2, 2}
	_, err := bounds.Parse(raw, plainScore(10), true)
	require.NoError(t, err)
	assert.Equal(t, []int{6, 2, 2}, raw)
}
