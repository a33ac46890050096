// Package wavefront defines core types, options, and sentinel errors for
// the sweep primitives shared by the farm and tree schedulers.
package wavefront

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for sweep primitives.
var (
	// ErrNilMatrix indicates a nil or unallocated matrix store.
	ErrNilMatrix = errors.New("wavefront: matrix must be non-nil and allocated")
	// ErrWorkerCount indicates a worker count outside [1, matrix length].
	ErrWorkerCount = errors.New("wavefront: worker count must be in [1, matrix length]")
	// ErrDiagRange indicates a chunk referencing a diagonal outside [1, n).
	ErrDiagRange = errors.New("wavefront: diagonal out of range")
	// ErrNotUpper indicates a kernel call on a cell not strictly above the diagonal.
	ErrNotUpper = errors.New("wavefront: cell must lie strictly above the major diagonal")
	// ErrVectorLength indicates a vector length that disagrees with col-row.
	ErrVectorLength = errors.New("wavefront: vector length must equal col-row")
	// ErrUnknownPolicy indicates an unrecognized chunk-policy selector.
	ErrUnknownPolicy = errors.New("wavefront: unknown chunk policy")
)

// DefaultMaxChunk caps static chunks at 64 elements, matching the farm's
// original tuning. Set MaxChunk to 0 to disable the cap.
const DefaultMaxChunk = 64

// PolicyKind selects how chunk sizes are derived for a diagonal.
type PolicyKind int

const (
	// Static issues chunks of ceil(diagLength/workers), identical for the
	// whole diagonal, optionally capped at MaxChunk.
	Static PolicyKind = iota
	// Dynamic re-fits every chunk to ceil(remaining/remainingWorkers), so
	// late chunks shrink and the last worker is not starved.
	Dynamic
)

// String returns the selector spelling accepted by ParsePolicy.
func (k PolicyKind) String() string {
	switch k {
	case Static:
		return "static"
	case Dynamic:
		return "dynamic"
	default:
		return fmt.Sprintf("PolicyKind(%d)", int(k))
	}
}

// ParsePolicy maps a selector string to a PolicyKind.
func ParsePolicy(s string) (PolicyKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "static":
		return Static, nil
	case "dynamic":
		return Dynamic, nil
	default:
		return Static, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Chunk is a contiguous, 1-indexed range of element positions within one
// diagonal, assigned to a single worker. Position p maps to cell
// (p-1, p-1+Diag). Invariant: Start ≤ End, and the chunks issued for a
// diagonal exactly cover [1, diagLength] with no overlap.
type Chunk struct {
	Start int
	End   int
	Diag  int
}

// Size returns the number of element positions covered by the chunk.
func (c Chunk) Size() int { return c.End - c.Start + 1 }

// Clamp corrects a chunk against the true (shrinking) diagonal length.
// A chunk computed from a stale length may overshoot: End is pulled back to
// diagLength. When Start itself is past the diagonal the chunk is empty and
// the second return is false — callers skip it entirely.
func (c Chunk) Clamp(diagLength int) (Chunk, bool) {
	if c.Start < 1 {
		c.Start = 1
	}
	if c.Start > diagLength {
		return c, false
	}
	if c.End > diagLength {
		c.End = diagLength
	}

	return c, true
}

// Cursor tracks the sweep position: the current diagonal index and how many
// elements that diagonal holds. The major diagonal is number 0 and is never
// swept; a fresh cursor already points at diagonal 1.
type Cursor struct {
	Diag   int // current diagonal, 1-based for the sweep
	Length int // element count of the current diagonal
	n      int // matrix side length
}

// NewCursor returns a cursor positioned on diagonal 1 of an n×n matrix.
func NewCursor(n int) Cursor {
	return Cursor{Diag: 1, Length: n - 1, n: n}
}

// Advance moves to the next diagonal; each diagonal is one element shorter.
func (c *Cursor) Advance() {
	c.Diag++
	c.Length--
}

// Done reports whether every diagonal has been swept. It is immediately
// true for a 1×1 matrix, which needs no sweep at all.
func (c *Cursor) Done() bool { return c.Diag >= c.n }

// ValidateWorkers rejects configurations before any scheduling starts:
// the worker count must be positive and must not exceed the matrix length.
func ValidateWorkers(n, workers int) error {
	if workers < 1 || workers > n {
		return fmt.Errorf("%w: %d workers for length %d", ErrWorkerCount, workers, n)
	}

	return nil
}
