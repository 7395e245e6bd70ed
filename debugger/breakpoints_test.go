package debugger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakpointManagerAddAssignsIncrementingIDs(t *testing.T) {
	bm := NewBreakpointManager()
	a := bm.Add(0x100, false)
	b := bm.Add(0x200, false)
	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)
}

func TestBreakpointManagerAddAtSameAddressReEnablesExisting(t *testing.T) {
	bm := NewBreakpointManager()
	first := bm.Add(0x100, false)
	bm.SetEnabled(first.ID, false)

	second := bm.Add(0x100, true)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.Enabled)
	assert.True(t, second.Temporary)
	assert.Len(t, bm.All(), 1)
}

func TestBreakpointManagerDeleteUnknownIDFails(t *testing.T) {
	bm := NewBreakpointManager()
	err := bm.Delete(99)
	assert.Error(t, err)
}

func TestBreakpointManagerSetEnabledUnknownIDFails(t *testing.T) {
	bm := NewBreakpointManager()
	err := bm.SetEnabled(99, true)
	assert.Error(t, err)
}

func TestBreakpointManagerAllSortedByAddress(t *testing.T) {
	bm := NewBreakpointManager()
	bm.Add(0x300, false)
	bm.Add(0x100, false)
	bm.Add(0x200, false)

	all := bm.All()
	require.Len(t, all, 3)
	assert.Equal(t, uint32(0x100), all[0].Address)
	assert.Equal(t, uint32(0x200), all[1].Address)
	assert.Equal(t, uint32(0x300), all[2].Address)
}

func TestBreakpointManagerClearRemovesEverything(t *testing.T) {
	bm := NewBreakpointManager()
	bm.Add(0x100, false)
	bm.Add(0x200, false)
	bm.Clear()
	assert.Empty(t, bm.All())
}

func TestBreakpointManagerProcessHitIncrementsCount(t *testing.T) {
	bm := NewBreakpointManager()
	bm.Add(0x100, false)

	hit := bm.ProcessHit(0x100)
	require.NotNil(t, hit)
	assert.Equal(t, 1, hit.HitCount)

	bm.ProcessHit(0x100)
	assert.Equal(t, 2, bm.At(0x100).HitCount)
}

func TestBreakpointManagerProcessHitOnUnsetAddressReturnsNil(t *testing.T) {
	bm := NewBreakpointManager()
	assert.Nil(t, bm.ProcessHit(0xDEAD))
}

func TestBreakpointManagerProcessHitDeletesTemporaryBreakpoint(t *testing.T) {
	bm := NewBreakpointManager()
	bm.Add(0x100, true)

	hit := bm.ProcessHit(0x100)
	require.NotNil(t, hit)
	assert.Nil(t, bm.At(0x100))
}
