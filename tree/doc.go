// Package tree implements the hierarchical divide-and-conquer scheduler
// for the wavefront sweep: a coordinator-free alternative to the farm for
// participants that only share point-to-point channels.
//
// What:
//
//   - Each of P participants owns a contiguous block of ceil(N/P) rows and
//     sweeps it as an independent sub-matrix, seeded with the global values
//     of the rows it owns.
//   - Per round, every participant derives its role from (id, activeCount)
//     alone: TERMINAL holds the fully merged result and stops the run,
//     MASTER absorbs the block of its supporter(s), SUPPORTER transmits its
//     block to its master and exits.
//   - After a merge the master re-runs the sweep over the doubled block;
//     cells copied from merged blocks are settled and skipped, so only the
//     cross-block cells are computed.
//   - Rounds collapse by integer halving (active /= 2, id /= 2, stride ×= 2);
//     no floating-point power arithmetic enters the role computation.
//
// Synchronization is implicit: a master cannot merge before its supporters
// finish (the block transfer blocks), and a supporter exits right after its
// one send, so round r merges never race round r+1 computations.
//
// The participant count must be a power of two (and at most the matrix
// length); other counts are rejected with ErrParticipantCount rather than
// left to the undefined behavior of naive halving.
package tree
