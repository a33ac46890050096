package wavefront

import (
	"math"

	"github.com/katalvlaran/wavefront/matrix"
)

// ComputeCell evaluates one cell of the upper triangle:
//
//	m[row][col] = cbrt( Σ_{k=0}^{vecLength-1} m[row][row+k] · m[col][row+1+k] )
//
// The second operand walks a row of the lower triangle, which mirrors the
// column vector thanks to the symmetric write contract. vecLength always
// equals col-row, the number of the diagonal the cell sits on; every operand
// was settled on a strictly earlier diagonal, which the schedulers guarantee
// through their barrier.
//
// Complexity: O(vecLength).
func ComputeCell(m *matrix.Square, row, col, vecLength int) (float64, error) {
	if m == nil || m.Len() == 0 {
		return 0, ErrNilMatrix
	}
	if row < 0 || col >= m.Len() || row >= col {
		return 0, ErrNotUpper
	}
	if vecLength != col-row {
		return 0, ErrVectorLength
	}

	var sum float64
	for k := 0; k < vecLength; k++ {
		// Indices are validated above: row+k < col < n and row+1+k ≤ col.
		a, _ := m.At(row, row+k)
		b, _ := m.At(col, row+1+k)
		sum += a * b
	}

	return math.Cbrt(sum), nil
}

// ComputeRange computes every cell of a chunk and writes the results
// symmetrically into the store. The chunk is clamped against the true
// diagonal length first; a chunk starting past the diagonal is skipped
// whole. Cells already settled (merged from another participant's block)
// are left untouched. Returns the number of element positions covered.
//
// Complexity: O(size · diag).
func ComputeRange(m *matrix.Square, c Chunk) (int, error) {
	if m == nil || m.Len() == 0 {
		return 0, ErrNilMatrix
	}
	if c.Diag < 1 || c.Diag >= m.Len() {
		return 0, ErrDiagRange
	}

	cc, ok := c.Clamp(m.Len() - c.Diag)
	if !ok {
		return 0, nil
	}

	for pos := cc.Start; pos <= cc.End; pos++ {
		row := pos - 1
		col := row + cc.Diag

		done, err := m.Settled(row, col)
		if err != nil {
			return 0, err
		}
		if done {
			continue
		}

		v, err := ComputeCell(m, row, col, cc.Diag)
		if err != nil {
			return 0, err
		}
		if err = m.Set(row, col, v); err != nil {
			return 0, err
		}
	}

	return cc.Size(), nil
}
