package group

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMemberSet_DeduplicatesInput(t *testing.T) {
	set := NewMemberSet("a", "b", "a", "c", "b")

	assert.Equal(t, MemberSet{"a", "b", "c"}, set)
	assert.Equal(t, 3, set.Len())
}

func TestNewMemberSet_SkipsEmptyIDs(t *testing.T) {
	set := NewMemberSet("", "a", "")

	assert.Equal(t, MemberSet{"a"}, set)
}

func TestMemberSet_Add_KeepsExistingPosition(t *testing.T) {
	set := NewMemberSet("a", "b", "c")

	result := set.Add("b", "d")

	assert.Equal(t, MemberSet{"a", "b", "c", "d"}, result)
}

func TestMemberSet_Add_DoesNotMutateReceiver(t *testing.T) {
	set := NewMemberSet("a", "b")
	set = set[:2:2]

	_ = set.Add("c")

	assert.Equal(t, MemberSet{"a", "b"}, set)
}

func TestMemberSet_Remove(t *testing.T) {
	set := NewMemberSet("a", "b", "c")

	assert.Equal(t, MemberSet{"a", "c"}, set.Remove("b"))
}

func TestMemberSet_Remove_AbsentIDIsNoOp(t *testing.T) {
	set := NewMemberSet("a", "b")

	assert.Equal(t, MemberSet{"a", "b"}, set.Remove("z"))
}

func TestMemberSet_Contains(t *testing.T) {
	set := NewMemberSet("a", "b")

	assert.True(t, set.Contains("a"))
	assert.False(t, set.Contains("z"))
}
