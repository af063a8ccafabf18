package score

import (
	"fmt"
	"strings"
)

// FirstNoteIndex returns the index of the first sounding note: the first
// row whose code is below StructuralCodeMin. Leading usul/annotation
// rows are skipped. Returns 0 when the score carries no sounding note.
//
// Complexity: O(n) worst case, O(1) for ordinary scores.
func FirstNoteIndex(s *Score) int {
	for i, code := range s.Codes {
		if code < StructuralCodeMin {
			return i
		}
	}

	return 0
}

// LyricsBetween returns the concatenated lyric content of the inclusive
// note range [start, end]. Fragments attached to structural rows
// (code >= StructuralCodeMin) carry annotation payloads, not sung text,
// and are excluded.
//
// Contract:
//   - 0 <= start <= end < s.Len(), otherwise ErrRangeOutOfScore.
//
// Complexity: O(end-start).
func LyricsBetween(s *Score, start, end int) (string, error) {
	if start < 0 || end >= s.Len() || start > end {
		return "", fmt.Errorf("%w: [%d, %d] not in [0, %d)", ErrRangeOutOfScore, start, end, s.Len())
	}

	var sb strings.Builder
	for i := start; i <= end; i++ {
		if s.Codes[i] >= StructuralCodeMin {
			continue
		}
		sb.WriteString(s.Lyrics[i])
	}

	return sb.String(), nil
}

// SectionIndexAt resolves the unique section containing the 0-based
// note index. Section ranges use SymbTr (1-based, inclusive) indexing
// and are converted internally before the comparison.
//
// A well-formed section list is non-overlapping and covers every note
// it is asked about; zero or multiple matches indicate inconsistent
// caller data and yield ErrSectionMembership. The first match is never
// picked silently.
//
// Complexity: O(len(sections)).
func SectionIndexAt(sections []Section, noteIdx int) (int, error) {
	matched := -1
	count := 0
	for i, sec := range sections {
		secStart := sec.StartNote - 1
		secEnd := sec.EndNote - 1
		if secStart <= noteIdx && noteIdx <= secEnd {
			matched = i
			count++
		}
	}
	if count != 1 {
		return 0, fmt.Errorf("%w: note %d matched %d sections", ErrSectionMembership, noteIdx, count)
	}

	return matched, nil
}
