// Package label ships the stock structure labeler: it groups segments
// by melodic and lyric similarity and converts note indices to the
// SymbTr convention.
package label

import "github.com/makamlab/symbtrseg/segment"

// Labeler assigns structural letter labels to built segments by greedy
// similarity grouping and rewrites their indices to the SymbTr
// convention. It implements segment.StructureLabeler.
//
// Thresholds are fixed at construction and must lie in [0, 1]; the
// Extractor validates them before wiring a Labeler in.
type Labeler struct {
	lyricsSimThres float64
	melodySimThres float64
	saveSim        bool
}

// New builds a Labeler from the extraction options, so the extractor
// and its labeler always share one configuration value.
func New(opts segment.Options) *Labeler {
	return &Labeler{
		lyricsSimThres: opts.LyricsSimThreshold,
		melodySimThres: opts.MelodySimThreshold,
		saveSim:        opts.SaveStructureSim,
	}
}
