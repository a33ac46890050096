// Package matrix provides the Square store used by the wavefront sweep.
//
// What:
//
//   - Square wraps a flat, row-major []float64 of n×n cells.
//   - Seed initializes the major diagonal to (i+1)/n and marks it settled.
//   - Set writes a value symmetrically into (r,c) and (c,r).
//   - A per-cell settled bitmap records which cells hold final values, so a
//     computed 0.0 is never confused with an untouched cell.
//
// Why:
//
//   - The schedulers in farm/ and tree/ write disjoint ranges concurrently;
//     Square itself carries no locks — callers guarantee disjoint writes.
//   - The settled bitmap makes coverage checkable ("every off-diagonal cell
//     written exactly once") and lets the tree scheduler skip merged cells.
//
// Errors:
//
//   - ErrInvalidLength: requested length is not positive.
//   - ErrUnallocated: a zero-value Square was used before construction.
//   - ErrIndexOutOfBounds: a row or column index is outside [0, n).
//
// Complexity: all accessors are O(1); Seed, Clone, Equal and String are O(n²).
package matrix
