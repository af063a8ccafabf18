// Package bounds turns raw boundary annotations into validated segment
// cut points.
//
// Three independently specified boundary sources meet here:
//
//   - usul-change markers (UsulChangeCode), which always delimit;
//   - hand-annotation markers (AnnotationCode, FlavorCode,
//     ModulationCode);
//   - externally supplied note indices, e.g. from an automatic
//     segmentation tool.
//
// Collect produces the raw index list implied by the score's own codes;
// Parse normalizes any candidate list (anchor, sentinel end, sort,
// dedup, optional consecutive-bound cropping) and enforces the range
// invariant before any segment is built.
//
// All functions are deterministic and side-effect free: inputs are
// never mutated, and invalid data surfaces as sentinel errors.
package bounds
