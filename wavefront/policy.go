package wavefront

// Policy computes the size of the next chunk to carve from a diagonal.
// Implementations must be pure: the partition of a diagonal depends only on
// its length and the worker count, never on completion timing.
//
//   - diagLength: total element count of the diagonal being partitioned.
//   - remaining: elements not yet assigned on this diagonal.
//   - remainingWorkers: workers without an assignment yet (≥ 1).
type Policy interface {
	Next(diagLength, remaining, remainingWorkers int) int
}

// StaticPolicy issues one fixed chunk size per diagonal:
// ceil(diagLength/Workers), floored at 1 and capped at MaxChunk when the
// cap is positive. The cap keeps chunks cache-sized on huge diagonals.
type StaticPolicy struct {
	Workers  int
	MaxChunk int
}

// Next implements Policy. Only diagLength matters for the static variant.
func (p StaticPolicy) Next(diagLength, _, _ int) int {
	workers := p.Workers
	if workers < 1 {
		workers = 1
	}
	size := (diagLength + workers - 1) / workers
	if size < 1 {
		size = 1
	}
	if p.MaxChunk > 0 && size > p.MaxChunk {
		size = p.MaxChunk
	}

	return size
}

// DynamicPolicy re-fits each chunk to the remaining workload:
// ceil(remaining/remainingWorkers). Late chunks shrink as the diagonal
// empties, so short diagonals never starve the last worker.
type DynamicPolicy struct{}

// Next implements Policy.
func (DynamicPolicy) Next(_, remaining, remainingWorkers int) int {
	if remainingWorkers < 1 {
		remainingWorkers = 1
	}
	size := (remaining + remainingWorkers - 1) / remainingWorkers
	if size < 1 {
		size = 1
	}

	return size
}

// NewPolicy builds the Policy for a selector. Static policies need the
// worker count to fix their per-diagonal size; maxChunk ≤ 0 disables the cap.
func NewPolicy(kind PolicyKind, workers, maxChunk int) (Policy, error) {
	switch kind {
	case Static:
		return StaticPolicy{Workers: workers, MaxChunk: maxChunk}, nil
	case Dynamic:
		return DynamicPolicy{}, nil
	default:
		return nil, ErrUnknownPolicy
	}
}

// Chunks carves one diagonal into an exact partition of [1, diagLength].
// Assignment order is the only state: chunk i is sized by the policy with
// the workload and worker counts remaining after chunks 0..i-1. The final
// chunk is clamped so the partition never overshoots the diagonal.
func Chunks(diag, diagLength, workers int, p Policy) []Chunk {
	if diagLength <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}

	out := make([]Chunk, 0, workers)
	start, issued := 1, 0
	for start <= diagLength {
		remaining := diagLength - start + 1
		remainingWorkers := workers - issued
		if remainingWorkers < 1 {
			remainingWorkers = 1
		}
		size := p.Next(diagLength, remaining, remainingWorkers)
		if size < 1 {
			size = 1
		}
		end := start + size - 1
		if end > diagLength {
			end = diagLength
		}
		out = append(out, Chunk{Start: start, End: end, Diag: diag})
		start = end + 1
		issued++
	}

	return out
}
