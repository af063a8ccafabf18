// Package segment is the heart of the pipeline: it slices a SymbTr
// score into contiguous, non-overlapping segment records along
// normalized boundary cut points and enriches each record with its
// lyrics span, flavor annotations and section membership.
//
// Two entry points cover the two boundary sources:
//
//   - Extractor.ExtractPhrases — boundaries inferred from the score's
//     own annotation codes (usul changes plus hand annotations);
//   - Extractor.ExtractSegments — boundaries supplied externally as
//     1-based note indices, e.g. by an automatic segmentation tool,
//     wrapped in the Boundaries tagged variant.
//
// After construction the whole sequence passes through a
// StructureLabeler, which assigns structural letter labels and
// converts note indices to the SymbTr (1-based) convention. The label
// package ships the stock labeler.
//
// The pipeline is a deterministic, synchronous transform: segments come
// back in score order, segment i's end note precedes segment i+1's
// start note by exactly one, and a failed extraction emits nothing.
package segment
