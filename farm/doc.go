// Package farm implements the centralized feedback-farm scheduler for the
// wavefront sweep.
//
// What:
//
//   - One coordinator partitions the current diagonal into chunks and hands
//     them to a fixed pool of workers over a work channel.
//   - Workers compute their chunk through the shared kernel and report the
//     number of covered elements back on a completion channel.
//   - The coordinator advances to the next diagonal only when the
//     outstanding-element counter for the current one reaches zero: a strict
//     barrier, so no worker ever reads a cell that is still being written.
//
// The coordinator cycles through three phases per run: issuing (carving and
// sending chunks), awaiting (draining completions until the barrier opens)
// and done (closing the work channel so workers drain and exit).
//
// Why:
//
//   - Diagonals shrink by one element each step; the feedback channel lets
//     the coordinator re-fit chunk sizes (dynamic policy) and keep workers
//     busy without any shared mutable scheduler state.
//   - The matrix store is written lock-free: chunks are range-disjoint and
//     the barrier orders diagonals.
//
// Limitations: there is no mid-run cancellation and no per-chunk timeout —
// a stalled worker stalls the whole pipeline. This is a closed batch
// computation; the only controlled shutdown is the end-of-stream after the
// last diagonal.
//
// Options:
//
//   - WithWorkers: pool size (default: one less than the CPU count, the
//     coordinator occupies the remaining thread).
//   - WithPolicy / WithMaxChunk: chunk sizing, see wavefront.Policy.
//   - WithCoordinatorAssist: the coordinator computes the final chunk of
//     each diagonal itself instead of idling at the barrier.
//   - WithOnDiagonal: completion callback per diagonal, used by the CLI for
//     throttled progress logging.
package farm
