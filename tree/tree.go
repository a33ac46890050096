package tree

import (
	"sort"
	"sync"

	"github.com/katalvlaran/wavefront/matrix"
	"github.com/katalvlaran/wavefront/wavefront"
)

// Option mutates the tree configuration.
type Option func(*config)

type config struct {
	onRound func(round, active int)
}

// WithOnRound registers a callback invoked at the start of every round with
// the round number (1-based) and the active participant count. It runs on
// participant 0's goroutine; keep it cheap.
func WithOnRound(fn func(round, active int)) Option {
	return func(c *config) { c.onRound = fn }
}

// block is one contiguous slice of the global matrix: the rows (and the
// matching columns) starting at global index start. A nil store marks an
// empty block, which occurs when ceil(n/P) blocks overrun a small matrix.
type block struct {
	start int
	m     *matrix.Square
}

// Run computes the full n×n wavefront with P participants and returns the
// terminal participant's matrix. Every participant sweeps a private block,
// then rounds of supporter→master merges halve the participant count until
// one holds the complete result. Output is bit-identical to the sequential
// sweep and to the farm for any valid P.
func Run(n, participants int, opts ...Option) (*matrix.Square, error) {
	if n <= 0 {
		return nil, wavefront.ErrNilMatrix
	}
	if err := validateParticipants(n, participants); err != nil {
		return nil, err
	}
	var cfg config
	for _, set := range opts {
		set(&cfg)
	}

	// One inbox per original rank; a master can receive at most two blocks
	// in a round, so the buffer lets supporters send and exit immediately.
	inboxes := make([]chan block, participants)
	for i := range inboxes {
		inboxes[i] = make(chan block, 2)
	}
	resultCh := make(chan *matrix.Square, 1)

	var (
		wg      sync.WaitGroup
		errOnce sync.Once
		runErr  error
	)
	fail := func(err error) {
		errOnce.Do(func() { runErr = err })
	}

	blockLen := (n + participants - 1) / participants
	wg.Add(participants)
	for p := 0; p < participants; p++ {
		go func(rank int) {
			defer wg.Done()
			participate(rank, n, blockLen, participants, inboxes, resultCh, cfg.onRound, fail)
		}(p)
	}

	wg.Wait()
	close(resultCh)
	if runErr != nil {
		return nil, runErr
	}

	return <-resultCh, nil
}

// participate runs one participant from its private block to its exit:
// sweep, role check, then transmit (SUPPORTER), merge and continue
// (MASTER), or deliver the result (TERMINAL). On an internal error the
// protocol is still followed so peers never block on a vanished sender.
func participate(rank, n, blockLen, participants int, inboxes []chan block,
	resultCh chan<- *matrix.Square, onRound func(round, active int), fail func(error)) {

	blk := newBlock(rank, n, blockLen, fail)
	id, active, stride, round := rank, participants, 1, 1

	for {
		if onRound != nil && id == 0 {
			onRound(round, active)
		}

		// Sub-matrix compute: settled cells (merged last round) are skipped,
		// so only the cross-block wedge is filled on later rounds.
		if blk.m != nil {
			if err := wavefront.Sequential(blk.m); err != nil {
				fail(err)
			}
		}

		switch RoleOf(id, active) {
		case Terminal:
			resultCh <- blk.m
			return

		case Supporter:
			inboxes[MasterOf(id)*stride] <- blk
			return

		case Master:
			incoming := make([]block, 0, 2)
			for range SupportersOf(id, active) {
				incoming = append(incoming, <-inboxes[rank])
			}
			merged, err := mergeBlocks(blk, incoming)
			if err != nil {
				// Keep following the protocol so peers never block on a
				// vanished participant; the error surfaces from Run.
				fail(err)
				merged = block{start: blk.start}
			}
			blk = merged

			// Round collapse: iterative halving, no pow arithmetic.
			id /= 2
			active /= 2
			stride *= 2
			round++
		}
	}
}

// newBlock allocates and seeds the private block of one rank. Blocks are
// ceil(n/P) rows each; trailing ranks may get a short or empty block.
func newBlock(rank, n, blockLen int, fail func(error)) block {
	start := rank * blockLen
	if start > n {
		start = n
	}
	length := blockLen
	if start+length > n {
		length = n - start
	}
	if length == 0 {
		return block{start: start}
	}

	m, err := matrix.NewSquare(length)
	if err != nil {
		fail(err)
		return block{start: start}
	}
	if err = m.SeedBlock(start, n); err != nil {
		fail(err)
		return block{start: start}
	}

	return block{start: start, m: m}
}

// mergeBlocks embeds a master's block and its supporters' blocks into one
// larger store. Blocks are contiguous by construction (supporter ranks sit
// directly right of their master), so they are laid out in start order;
// every settled cell is copied, unset cells stay unset for the next sweep.
func mergeBlocks(own block, incoming []block) (block, error) {
	all := append([]block{own}, incoming...)
	sort.Slice(all, func(i, j int) bool { return all[i].start < all[j].start })

	total := 0
	for _, b := range all {
		if b.m != nil {
			total += b.m.Len()
		}
	}
	if total == 0 {
		return block{start: own.start}, nil
	}

	merged, err := matrix.NewSquare(total)
	if err != nil {
		return block{}, err
	}

	offset := 0
	for _, b := range all {
		if b.m == nil {
			continue
		}
		if err = copyBlock(merged, b.m, offset); err != nil {
			return block{}, err
		}
		offset += b.m.Len()
	}

	return block{start: all[0].start, m: merged}, nil
}

// copyBlock writes every settled cell of src into dst at the given
// diagonal offset. Set's symmetric write keeps the mirror consistent.
func copyBlock(dst, src *matrix.Square, offset int) error {
	for i := 0; i < src.Len(); i++ {
		for j := i; j < src.Len(); j++ {
			ok, err := src.Settled(i, j)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			v, err := src.At(i, j)
			if err != nil {
				return err
			}
			if err = dst.Set(offset+i, offset+j, v); err != nil {
				return err
			}
		}
	}

	return nil
}
