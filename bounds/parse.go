package bounds

import (
	"fmt"
	"sort"

	"github.com/makamlab/symbtrseg/score"
)

// Parse normalizes an arbitrary boundary index list into a sorted,
// deduplicated, range-validated cut-point sequence:
//
//  1. The first sounding note index is anchored at the front.
//  2. len(score) is appended as the sentinel end-of-score boundary
//     (one past the last real note).
//  3. The list is sorted ascending and deduplicated.
//  4. If cropConsecutive is set, adjacent boundaries (difference of
//     exactly 1) collapse; see cropConsecutiveBounds for the tie-break.
//  5. Every remaining bound must lie in [firstNote, len(score)];
//     a violation yields ErrBoundOutOfRange, never a silent clamp.
//
// Contract:
//   - raw may be empty, unsorted, contain duplicates, and omit the
//     score's natural start and end; it is never mutated.
//   - On success the result is strictly ascending.
//
// Complexity: O(k log k) for k input bounds.
func Parse(raw []int, s *score.Score, cropConsecutive bool) ([]int, error) {
	first := score.FirstNoteIndex(s)
	last := s.Len()

	seen := make(map[int]struct{}, len(raw)+2)
	bs := make([]int, 0, len(raw)+2)
	add := func(b int) {
		if _, ok := seen[b]; !ok {
			seen[b] = struct{}{}
			bs = append(bs, b)
		}
	}
	add(first)
	for _, b := range raw {
		add(b)
	}
	add(last)
	sort.Ints(bs)

	if cropConsecutive {
		bs = cropConsecutiveBounds(bs, first)
	}

	for _, b := range bs {
		if b < first || b > last {
			return nil, fmt.Errorf("%w: bound %d not in [%d, %d]", ErrBoundOutOfRange, b, first, last)
		}
	}

	return bs, nil
}

// cropConsecutiveBounds drops redundant members of adjacent boundary
// pairs. Two boundaries one note apart produce a zero-or-one-note
// segment, almost always a marker artifact rather than a structural
// unit.
//
// Tie-break: walking adjacent pairs in ascending order, nextToStart
// starts as {firstBound + 1}. A pair whose first member is in
// nextToStart drops its second member and adds it to the set, so a run
// adjacent to the leading boundary collapses to the run's first member
// regardless of length. Any other adjacent pair drops its first member.
// The keep-first-at-the-leading-edge, keep-last-elsewhere asymmetry is
// a contract, not a simplification target.
//
// The drop set is computed over the whole walk before any removal, so
// positions never shift mid-iteration. Idempotent: the output contains
// no adjacent pair.
func cropConsecutiveBounds(bs []int, firstBound int) []int {
	drop := make(map[int]bool, len(bs))
	nextToStart := map[int]bool{firstBound + 1: true}
	for i := 0; i+1 < len(bs); i++ {
		if bs[i+1]-bs[i] != 1 {
			continue
		}
		if nextToStart[bs[i+1]-1] {
			drop[i+1] = true
			nextToStart[bs[i+1]] = true
		} else {
			drop[i] = true
		}
	}

	out := make([]int, 0, len(bs)-len(drop))
	for i, b := range bs {
		if !drop[i] {
			out = append(out, b)
		}
	}

	return out
}
