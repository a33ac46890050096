package tree

import (
	"errors"
	"fmt"
)

// Sentinel errors for the tree scheduler.
var (
	// ErrParticipantCount indicates a participant count that is not a power of two.
	ErrParticipantCount = errors.New("tree: participant count must be a power of two")
	// ErrParticipantRange indicates a participant count outside [1, matrix length].
	ErrParticipantRange = errors.New("tree: participant count must be in [1, matrix length]")
)

// Role is a participant's function for one round, recomputed every round
// from (id, active) — no role state survives a collapse.
type Role int

const (
	// Master absorbs the block(s) of its supporter(s) this round.
	Master Role = iota
	// Supporter transmits its block to its master and exits.
	Supporter
	// Terminal holds the fully merged result and ends the run.
	Terminal
)

// String names the role for logs and test output.
func (r Role) String() string {
	switch r {
	case Master:
		return "MASTER"
	case Supporter:
		return "SUPPORTER"
	case Terminal:
		return "TERMINAL"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// RoleOf derives a participant's role for the current round. A participant
// is TERMINAL only when it is the last one standing; otherwise even ids
// with a right-hand neighbor lead, everyone else supports.
func RoleOf(id, active int) Role {
	if id == 0 && active == 1 {
		return Terminal
	}
	if id%2 == 0 && id+1 < active {
		return Master
	}

	return Supporter
}

// SupportersOf lists the supporter ids that merge into master id this
// round: always id+1, plus id+2 when the count is odd and id+2 is the
// trailing participant that would otherwise have no master.
func SupportersOf(id, active int) []int {
	ids := []int{id + 1}
	if id+2 == active-1 && (id+2)%2 == 0 {
		ids = append(ids, id+2)
	}

	return ids
}

// MasterOf returns the id of the master a supporter reports to: the
// nearest lower even id.
func MasterOf(id int) int {
	if id%2 == 1 {
		return id - 1
	}

	return id - 2
}

// validateParticipants rejects non-power-of-two or out-of-range counts
// before any goroutine starts.
func validateParticipants(n, participants int) error {
	if participants < 1 || participants > n {
		return fmt.Errorf("%w: %d participants for length %d", ErrParticipantRange, participants, n)
	}
	if participants&(participants-1) != 0 {
		return fmt.Errorf("%w: got %d", ErrParticipantCount, participants)
	}

	return nil
}
