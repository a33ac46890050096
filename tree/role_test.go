package tree_test

import (
	"testing"

	"github.com/katalvlaran/wavefront/tree"
	"github.com/stretchr/testify/assert"
)

// TestRoleOf_Table pins the role function across the counts that occur
// while collapsing 8 → 4 → 2 → 1, plus the odd counts the twin-supporter
// rule exists for.
func TestRoleOf_Table(t *testing.T) {
	cases := []struct {
		id, active int
		want       tree.Role
	}{
		{0, 1, tree.Terminal},
		{0, 2, tree.Master},
		{1, 2, tree.Supporter},
		{0, 4, tree.Master},
		{1, 4, tree.Supporter},
		{2, 4, tree.Master},
		{3, 4, tree.Supporter},
		{0, 8, tree.Master},
		{6, 8, tree.Master},
		{7, 8, tree.Supporter},
		// Odd counts: the trailing even id has no right-hand neighbor.
		{0, 3, tree.Master},
		{1, 3, tree.Supporter},
		{2, 3, tree.Supporter},
		{2, 5, tree.Master},
		{4, 5, tree.Supporter},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, tree.RoleOf(c.id, c.active),
			"RoleOf(%d, %d)", c.id, c.active)
	}
}

// TestSupportersOf verifies pairing, including the twin-supporter case on
// odd active counts.
func TestSupportersOf(t *testing.T) {
	assert.Equal(t, []int{1}, tree.SupportersOf(0, 2))
	assert.Equal(t, []int{1}, tree.SupportersOf(0, 4))
	assert.Equal(t, []int{3}, tree.SupportersOf(2, 4))
	assert.Equal(t, []int{1, 2}, tree.SupportersOf(0, 3), "trailing even id joins its left master")
	assert.Equal(t, []int{1}, tree.SupportersOf(0, 5))
	assert.Equal(t, []int{3, 4}, tree.SupportersOf(2, 5))
}

// TestMasterOf maps supporters back to the nearest lower even id.
func TestMasterOf(t *testing.T) {
	assert.Equal(t, 0, tree.MasterOf(1))
	assert.Equal(t, 2, tree.MasterOf(3))
	assert.Equal(t, 2, tree.MasterOf(4), "even trailing supporter reports two left")
	assert.Equal(t, 6, tree.MasterOf(7))
}

// TestRole_String names every role.
func TestRole_String(t *testing.T) {
	assert.Equal(t, "MASTER", tree.Master.String())
	assert.Equal(t, "SUPPORTER", tree.Supporter.String())
	assert.Equal(t, "TERMINAL", tree.Terminal.String())
}
