// Package wavefront is the root of the wavefront module: a small library
// for filling the upper triangle of an N×N symmetric matrix whose cells
// depend on every earlier anti-diagonal (the "wavefront" pattern), plus
// two interchangeable schedulers that parallelize the sweep.
//
// What lives where:
//
//	matrix/    — the Square store: flat row-major buffer, symmetric writes,
//	             deterministic diagonal seeding and a per-cell settled bitmap
//	wavefront/ — diagonal cursor, chunk policies, the numeric kernel and a
//	             sequential reference sweep
//	farm/      — centralized feedback-farm scheduler: one coordinator hands
//	             chunks of the current diagonal to a fixed worker pool
//	tree/      — hierarchical divide-and-conquer scheduler: participants
//	             compute private blocks and merge upward, halving each round
//
// Both schedulers produce bit-identical matrices for the same length, for
// any worker or participant count, because every cell is computed by the
// same kernel in the same summation order.
//
// Quick start:
//
//	m, _ := matrix.NewSquare(1 << 10)
//	_ = m.Seed()
//	if err := farm.Run(m); err != nil {
//	    // handle configuration errors
//	}
//
// cmd/wavefront wraps the library in a CLI with YAML configuration and
// structured progress logging.
package wavefront
