package farm

import (
	"runtime"
	"sync"

	"github.com/katalvlaran/wavefront/matrix"
	"github.com/katalvlaran/wavefront/wavefront"
)

// Option mutates the farm configuration. Safe to apply repeatedly.
type Option func(*config)

// config stores the effective farm configuration after applying options.
type config struct {
	workers    int
	workersSet bool
	policy     wavefront.PolicyKind
	maxChunk   int
	assist     bool
	onDiagonal func(diag, length int)
}

// WithWorkers fixes the worker pool size. Explicit values are validated
// strictly against the matrix length before scheduling starts.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
		c.workersSet = true
	}
}

// WithPolicy selects the chunk policy (wavefront.Static or wavefront.Dynamic).
func WithPolicy(kind wavefront.PolicyKind) Option {
	return func(c *config) { c.policy = kind }
}

// WithMaxChunk caps static chunk sizes; 0 disables the cap.
func WithMaxChunk(n int) Option {
	return func(c *config) { c.maxChunk = n }
}

// WithCoordinatorAssist makes the coordinator compute the last chunk of
// every diagonal synchronously instead of idling while workers finish.
func WithCoordinatorAssist() Option {
	return func(c *config) { c.assist = true }
}

// WithOnDiagonal registers a callback invoked after each diagonal's barrier
// with the completed diagonal number and its element count. The callback
// runs on the coordinator goroutine; keep it cheap.
func WithOnDiagonal(fn func(diag, length int)) Option {
	return func(c *config) { c.onDiagonal = fn }
}

// gatherOptions resolves option setters against the defaults.
func gatherOptions(opts ...Option) config {
	c := config{
		workers:  runtime.NumCPU() - 1,
		policy:   wavefront.Static,
		maxChunk: wavefront.DefaultMaxChunk,
	}
	if c.workers < 1 {
		c.workers = 1
	}
	for _, set := range opts {
		set(&c)
	}

	return c
}

// coveredSize returns how many element positions a chunk spans after
// clamping against the true diagonal length, without computing anything.
// It keeps the outstanding counter consistent even on a failed chunk.
func coveredSize(n int, c wavefront.Chunk) int {
	cc, ok := c.Clamp(n - c.Diag)
	if !ok {
		return 0
	}

	return cc.Size()
}

// Run sweeps a seeded store with the feedback farm and blocks until every
// diagonal is settled. The matrix must be seeded; configuration errors are
// reported before any goroutine starts. A 1×1 matrix returns immediately.
func Run(m *matrix.Square, opts ...Option) error {
	if m == nil || m.Len() == 0 {
		return wavefront.ErrNilMatrix
	}
	cfg := gatherOptions(opts...)
	n := m.Len()

	if cfg.workersSet {
		if err := wavefront.ValidateWorkers(n, cfg.workers); err != nil {
			return err
		}
	} else if cfg.workers > n {
		// Defaults adapt to tiny matrices instead of failing.
		cfg.workers = n
	}

	pol, err := wavefront.NewPolicy(cfg.policy, cfg.workers, cfg.maxChunk)
	if err != nil {
		return err
	}
	if n == 1 {
		return nil
	}

	workCh := make(chan wavefront.Chunk, cfg.workers)
	doneCh := make(chan int, cfg.workers)

	var (
		wg      sync.WaitGroup
		errOnce sync.Once
		runErr  error
	)
	fail := func(err error) {
		errOnce.Do(func() { runErr = err })
	}

	wg.Add(cfg.workers)
	for i := 0; i < cfg.workers; i++ {
		go func() {
			defer wg.Done()
			for c := range workCh {
				done, err := wavefront.ComputeRange(m, c)
				if err != nil {
					fail(err)
					done = coveredSize(n, c)
				}
				doneCh <- done
			}
		}()
	}

	cur := wavefront.NewCursor(n)
	for !cur.Done() {
		chunks := wavefront.Chunks(cur.Diag, cur.Length, cfg.workers, pol)
		outstanding := cur.Length

		// Issuing: the coordinator may hold back the final chunk for itself.
		last := len(chunks)
		if cfg.assist && last > 1 {
			last--
		}
		for _, c := range chunks[:last] {
			sent := false
			for !sent {
				select {
				case workCh <- c:
					sent = true
				case d := <-doneCh:
					outstanding -= d
				}
			}
		}
		if cfg.assist && last < len(chunks) {
			d, err := wavefront.ComputeRange(m, chunks[last])
			if err != nil {
				fail(err)
				d = coveredSize(n, chunks[last])
			}
			outstanding -= d
		}

		// Awaiting: the barrier opens when the whole diagonal reported in.
		for outstanding > 0 {
			outstanding -= <-doneCh
		}
		if cfg.onDiagonal != nil {
			cfg.onDiagonal(cur.Diag, cur.Length)
		}

		cur.Advance()
	}

	// Done: end-of-stream, workers drain and exit.
	close(workCh)
	wg.Wait()
	close(doneCh)

	return runErr
}
