package matrix

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for Square operations.
var (
	// ErrInvalidLength indicates a requested matrix length ≤ 0.
	ErrInvalidLength = errors.New("matrix: length must be > 0")
	// ErrUnallocated indicates use of a Square that was never constructed.
	ErrUnallocated = errors.New("matrix: square not allocated")
	// ErrIndexOutOfBounds indicates a row or column index outside [0, n).
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")
	// ErrSeedRange indicates an invalid (offset, total) pair for SeedBlock.
	ErrSeedRange = errors.New("matrix: seed offset/total out of range")
)

// squareErrorf wraps an underlying error with Square method context.
func squareErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Square.%s(%d,%d): %w", method, row, col, err)
}

// Square is an n×n matrix of float64 values in a single row-major slice.
// settled[i] is true once data[i] holds its final value; Seed and Set are
// the only writers. Square performs no locking of its own: concurrent use
// is safe only when writers touch disjoint cells, which the schedulers
// guarantee by construction.
type Square struct {
	n       int
	data    []float64
	settled []bool
}

// NewSquare allocates an n×n Square with every cell unset.
// Returns ErrInvalidLength when n ≤ 0.
// Complexity: O(n²) time and memory.
func NewSquare(n int) (*Square, error) {
	if n <= 0 {
		return nil, ErrInvalidLength
	}

	return &Square{
		n:       n,
		data:    make([]float64, n*n),
		settled: make([]bool, n*n),
	}, nil
}

// Len returns the side length of the matrix; 0 for a zero-value Square.
func (m *Square) Len() int { return m.n }

// indexOf computes the flat index of (row, col) or reports why it cannot.
// A zero-length Square is a fatal precondition violation, not a clamp.
func (m *Square) indexOf(method string, row, col int) (int, error) {
	if m.n == 0 {
		return 0, squareErrorf(method, row, col, ErrUnallocated)
	}
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, squareErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.n + col, nil
}

// Seed initializes the major diagonal to (i+1)/n and marks it settled.
// All off-diagonal cells are reset to the unset state.
// Complexity: O(n²).
func (m *Square) Seed() error {
	return m.SeedBlock(0, m.n)
}

// SeedBlock seeds this Square as the block starting at global row `offset`
// of a conceptual `total`×`total` matrix: cell (i,i) becomes
// (offset+i+1)/total. The tree scheduler uses it so every participant's
// private block carries the seeds of the rows it owns.
// Complexity: O(n²).
func (m *Square) SeedBlock(offset, total int) error {
	if m.n == 0 {
		return squareErrorf("SeedBlock", 0, 0, ErrUnallocated)
	}
	if total <= 0 || offset < 0 || offset+m.n > total {
		return squareErrorf("SeedBlock", offset, total, ErrSeedRange)
	}

	for i := range m.data {
		m.data[i] = 0
		m.settled[i] = false
	}
	for i := 0; i < m.n; i++ {
		idx := i*m.n + i
		m.data[idx] = float64(offset+i+1) / float64(total)
		m.settled[idx] = true
	}

	return nil
}

// At returns the value stored at (row, col).
func (m *Square) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set writes v symmetrically into (row, col) and (col, row) and marks both
// cells settled. The schedulers call Set at most once per unordered pair;
// Square does not police that contract (the range partitioning does).
func (m *Square) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	m.settled[idx] = true

	mirror := col*m.n + row
	m.data[mirror] = v
	m.settled[mirror] = true

	return nil
}

// Settled reports whether (row, col) holds its final value.
func (m *Square) Settled(row, col int) (bool, error) {
	idx, err := m.indexOf("Settled", row, col)
	if err != nil {
		return false, err
	}

	return m.settled[idx], nil
}

// Clone returns a deep copy of the Square, settled bits included.
// Complexity: O(n²).
func (m *Square) Clone() *Square {
	if m.n == 0 {
		return &Square{}
	}
	data := make([]float64, len(m.data))
	copy(data, m.data)
	settled := make([]bool, len(m.settled))
	copy(settled, m.settled)

	return &Square{n: m.n, data: data, settled: settled}
}

// Equal reports whether two Squares have identical length, values and
// settled bits. Comparison is exact (bit-identity is a scheduler property).
func (m *Square) Equal(o *Square) bool {
	if o == nil || m.n != o.n {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] || m.settled[i] != o.settled[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for debugging small matrices.
func (m *Square) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		sb.WriteString("[")
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.n+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
