package bounds

import "github.com/makamlab/symbtrseg/score"

// Collect scans the score and returns the raw boundary index list
// implied by its codes: the first sounding note, followed by every
// later note whose code classifies as a boundary.
//
// The result is unnormalized (see Parse): it is ordered because the
// scan is, but carries no sentinel end and no validation.
//
// Complexity: O(n).
func Collect(s *score.Score) []int {
	first := score.FirstNoteIndex(s)

	all := []int{first}
	for i, code := range s.Codes {
		if i > first && Classify(code) != KindNone {
			all = append(all, i)
		}
	}

	return all
}

// HasAnnotations reports whether any note carries a hand-annotation
// sub-code. A score whose only boundary codes are usul changes is
// unannotated for phrasing purposes.
func HasAnnotations(s *score.Score) bool {
	for _, code := range s.Codes {
		if Classify(code) == KindAnnotation {
			return true
		}
	}

	return false
}
