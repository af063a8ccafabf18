// Package symbtrseg turns symbolically-encoded SymbTr scores of
// Ottoman-Turkish makam music into labeled segments and phrases.
//
// 🚀 What is symbtrseg?
//
//	A deterministic, dependency-light library that brings together:
//		• Boundary classification: usul changes & hand annotations
//		• Bound normalization: anchor, sort, dedup, consecutive-bound crop
//		• Segment construction: lyrics spans, flavor (çeşni) lists,
//		  section membership
//		• Structural labeling: melodic (DTW) & lyric (edit distance)
//		  similarity grouping
//
// ✨ Why choose symbtrseg?
//
//   - Pure transforms – no shared state, no hidden I/O, safe to run
//     across scores in parallel
//   - Sentinel errors everywhere – no panics on user input, no silent
//     clamping of malformed boundaries
//   - SymbTr-faithful – reproduces the ecosystem's boundary codes,
//     1-based indexing and crop tie-break exactly
//
// Everything is organized under four subpackages:
//
//	score/   — score & section containers, score-level queries
//	bounds/  — boundary code classification & bound normalization
//	segment/ — segment records, extraction entry points
//	label/   — structural labeling & SymbTr index conversion
//
// Quick start:
//
//	opts := segment.DefaultOptions()
//	ex, err := segment.New(opts, label.New(opts))
//	if err != nil { ... }
//	phrases, err := ex.ExtractPhrases(score, sections)
package symbtrseg
