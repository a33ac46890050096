package wavefront

import (
	"github.com/katalvlaran/wavefront/matrix"
)

// Sequential fills the upper triangle of a seeded store with a
// single-threaded diagonal-by-diagonal sweep. It is the reference the
// schedulers are tested against, and the per-block building block of the
// tree scheduler. Cells already settled are skipped, so it can resume a
// partially merged matrix.
//
// A 1×1 matrix has no diagonals to sweep and returns unchanged.
//
// Complexity: O(n³) time, O(1) extra memory.
func Sequential(m *matrix.Square) error {
	if m == nil || m.Len() == 0 {
		return ErrNilMatrix
	}

	for cur := NewCursor(m.Len()); !cur.Done(); cur.Advance() {
		if _, err := ComputeRange(m, Chunk{Start: 1, End: cur.Length, Diag: cur.Diag}); err != nil {
			return err
		}
	}

	return nil
}
