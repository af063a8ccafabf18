// Package score holds the in-memory SymbTr score model: parallel
// per-note fields (code, lyrics, optional pitch), externally supplied
// sections, and the score-level queries consumed by the segmentation
// pipeline (first sounding note, lyric spans, section membership).
//
// All functions are deterministic and side-effect free; invalid input
// surfaces as sentinel errors, never as panics.
package score
