// Package wavefront holds the building blocks of the anti-diagonal sweep:
// the diagonal cursor, the chunk policies, the numeric kernel and a
// sequential reference implementation.
//
// What:
//
//   - Cursor tracks the current diagonal and its shrinking element count.
//   - Policy computes chunk sizes: StaticPolicy issues one fixed size per
//     diagonal, DynamicPolicy re-fits each chunk to the remaining workload.
//   - Chunks carves one diagonal into an exact, non-overlapping partition.
//   - ComputeCell evaluates cbrt(Σ m[r,r+k]·m[c,r+1+k]) over the k settled
//     on earlier diagonals; ComputeRange applies it to a clamped chunk.
//   - Sequential runs the whole sweep single-threaded; both schedulers must
//     reproduce its output bit for bit.
//
// Why:
//
//   - Chunk sizing used to be scattered across coordinator state; keeping it
//     a pure function makes the partition property testable in isolation.
//   - The kernel always sums k = 0..len-1 in order, which is what makes the
//     farm, the tree and the sequential sweep bit-identical.
//
// Errors:
//
//   - ErrNilMatrix: the store is nil or was never allocated.
//   - ErrWorkerCount: worker count outside [1, matrix length].
//   - ErrDiagRange: a chunk names a diagonal outside [1, n).
//   - ErrNotUpper: the kernel was pointed at a cell on or below the diagonal.
//   - ErrVectorLength: vector length disagrees with the cell's diagonal.
//   - ErrUnknownPolicy: unrecognized policy selector.
package wavefront
