// Package grid provides N-dimensional strided views over flat cell
// buffers, plus the index bookkeeping the marching algorithms are built
// on: bounds predicates, index iteration, neighbour-offset tables and
// integer bounding boxes.
//
// Overview:
//
//   - Grid[T] interprets a caller-owned []T of length s₁·s₂·…·s_N as an
//     N-dimensional array with the first axis fastest, i.e.
//     lin(I) = i₁ + Σ_{k≥2} iₖ · Π_{j<k} sⱼ.
//   - The view borrows the buffer; it never copies or frees it, and it
//     must not outlive it.
//   - FaceNeighborOffsets and VertexNeighborOffsets build the 2N and
//     3^N−1 offset tables used for upwind stencils and connectivity
//     analysis respectively.
//
// Bounds checking:
//
//   - At, Set and Linear do not range-check on the hot path. Callers must
//     pre-validate indices with Inside; an out-of-range index either
//     panics via the underlying slice access or, when its linear position
//     still falls inside the buffer, silently addresses another cell.
//
// Errors (sentinel):
//
//   - ErrInvalidGridSize   if any size element is < 1.
//   - ErrCellBufferSize    if the buffer length does not match the size.
//   - ErrInvalidDimension  if a dimensionality is < 1.
//   - ErrEmptyIndices      if a bounding box is requested for no indices.
//
// Complexity:
//
//   - All single-cell operations are O(N) in the dimensionality.
//   - Offset-table construction is O(N·3^N) (vertex) and O(N²) (face),
//     done once and reused.
package grid
