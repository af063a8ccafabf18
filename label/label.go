package label

import (
	"strconv"

	"github.com/makamlab/symbtrseg/score"
	"github.com/makamlab/symbtrseg/segment"
)

// LabelStructures assigns a structural letter label to every segment
// by greedy grouping in score order: a segment joins the earliest
// group whose representative (the group's first member) it matches,
// i.e. melodic similarity >= the melody threshold AND lyric similarity
// >= the lyrics threshold; otherwise it founds a new group.
//
// Group labels run "A".."Z", then "A1", "B1", and so on. When
// similarity saving is enabled, each segment records its raw scores
// against its group representative (1.0/1.0 for a group founder).
//
// Segments still carry internal (0-based) indices at this point; call
// ToSymbTrIndex afterwards.
//
// Complexity: O(g·n·c) for n segments, g groups, c the pairwise
// similarity cost.
func (l *Labeler) LabelStructures(segs []segment.Segment, s *score.Score) error {
	var reps []int
	for i := range segs {
		assigned := false
		for g, r := range reps {
			melSim := melodicSimilarity(s, &segs[r], &segs[i])
			lyrSim := lyricsSimilarity(segs[r].Lyrics, segs[i].Lyrics)
			if melSim >= l.melodySimThres && lyrSim >= l.lyricsSimThres {
				segs[i].StructuralLabel = groupLabel(g)
				if l.saveSim {
					segs[i].Similarity = &segment.SimilarityScores{Melodic: melSim, Lyrics: lyrSim}
				}
				assigned = true

				break
			}
		}
		if !assigned {
			g := len(reps)
			reps = append(reps, i)
			segs[i].StructuralLabel = groupLabel(g)
			if l.saveSim {
				segs[i].Similarity = &segment.SimilarityScores{Melodic: 1, Lyrics: 1}
			}
		}
	}

	return nil
}

// ToSymbTrIndex rewrites StartNote/EndNote on every segment from
// internal 0-based indexing to the SymbTr 1-based convention, in place.
func (l *Labeler) ToSymbTrIndex(segs []segment.Segment) {
	for i := range segs {
		segs[i].StartNote++
		segs[i].EndNote++
	}
}

// ToInternalIndex is the inverse of ToSymbTrIndex.
func (l *Labeler) ToInternalIndex(segs []segment.Segment) {
	for i := range segs {
		segs[i].StartNote--
		segs[i].EndNote--
	}
}

// melodicSimilarity maps the warp distance between the two segments'
// pitch spans into (0, 1] via 1/(1 + dist/maxLen): 1.0 for identical
// series, monotonically falling with distance. Scores without pitch
// data carry no melodic evidence to separate segments, so the
// similarity is 1.0 and grouping degrades to lyrics only.
func melodicSimilarity(s *score.Score, a, b *segment.Segment) float64 {
	if s.Pitch == nil {
		return 1.0
	}

	pa := s.Pitch[a.StartNote : a.EndNote+1]
	pb := s.Pitch[b.StartNote : b.EndNote+1]
	maxLen := max(len(pa), len(pb))

	return 1.0 / (1.0 + warpDistance(pa, pb)/float64(maxLen))
}

// groupLabel returns the letter label of group g.
func groupLabel(g int) string {
	letter := string(rune('A' + g%26))
	if g < 26 {
		return letter
	}

	return letter + strconv.Itoa(g/26)
}
