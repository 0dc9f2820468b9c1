package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mfkoch/chesscore/types"
)

func TestNewRoundsCapacityUpToPowerOfTwo(t *testing.T) {
	tt := New(5)
	assert.Equal(t, 8, tt.Capacity())
}

func TestInsertAndLookup(t *testing.T) {
	tt := New(16)
	m := types.NewMove(types.SqE2, types.SqE4, types.Pawn, types.PtNone, types.DoublePush)

	err := tt.Insert(types.Key(42), m)
	assert.NoError(t, err)

	got, ok := tt.Lookup(types.Key(42))
	assert.True(t, ok)
	assert.Equal(t, m, got)
	assert.EqualValues(t, 1, tt.LiveCount())
}

func TestLookupMissReturnsFalse(t *testing.T) {
	tt := New(16)
	_, ok := tt.Lookup(types.Key(7))
	assert.False(t, ok)
}

func TestInsertAlwaysReplacesOnLiveKeyMatch(t *testing.T) {
	tt := New(16)
	key := types.Key(9)
	m1 := types.NewMove(types.SqE2, types.SqE4, types.Pawn, types.PtNone, types.DoublePush)
	m2 := types.NewMove(types.SqD2, types.SqD4, types.Pawn, types.PtNone, types.DoublePush)

	assert.NoError(t, tt.Insert(key, m1))
	assert.NoError(t, tt.Insert(key, m2))

	got, ok := tt.Lookup(key)
	assert.True(t, ok)
	assert.Equal(t, m2, got)
	assert.EqualValues(t, 1, tt.LiveCount(), "replacing a live key must not grow the live count")
}

func TestCollidingKeysProbeToDistinctSlots(t *testing.T) {
	tt := New(2) // mask = 1, so every key maps to slot 0 or 1
	m1 := types.NewMove(types.SqA2, types.SqA3, types.Pawn, types.PtNone, types.Quiet)
	m2 := types.NewMove(types.SqB2, types.SqB3, types.Pawn, types.PtNone, types.Quiet)

	assert.NoError(t, tt.Insert(types.Key(0), m1))
	assert.NoError(t, tt.Insert(types.Key(2), m2)) // 2 & 1 == 0, collides with key 0

	got0, ok0 := tt.Lookup(types.Key(0))
	assert.True(t, ok0)
	assert.Equal(t, m1, got0)

	got2, ok2 := tt.Lookup(types.Key(2))
	assert.True(t, ok2)
	assert.Equal(t, m2, got2)
}

func TestDeleteLeavesTombstoneThatLookupSkips(t *testing.T) {
	tt := New(2)
	m1 := types.NewMove(types.SqA2, types.SqA3, types.Pawn, types.PtNone, types.Quiet)
	m2 := types.NewMove(types.SqB2, types.SqB3, types.Pawn, types.PtNone, types.Quiet)

	assert.NoError(t, tt.Insert(types.Key(0), m1))
	assert.NoError(t, tt.Insert(types.Key(2), m2))

	tt.Delete(types.Key(0))
	assert.EqualValues(t, 1, tt.LiveCount())

	_, ok := tt.Lookup(types.Key(0))
	assert.False(t, ok)

	// key 2 still reachable even though its probe path starts at the
	// now-tombstoned slot 0.
	got, ok := tt.Lookup(types.Key(2))
	assert.True(t, ok)
	assert.Equal(t, m2, got)
}

func TestInsertReusesTombstonedSlot(t *testing.T) {
	tt := New(2)
	m1 := types.NewMove(types.SqA2, types.SqA3, types.Pawn, types.PtNone, types.Quiet)
	m2 := types.NewMove(types.SqB2, types.SqB3, types.Pawn, types.PtNone, types.Quiet)

	assert.NoError(t, tt.Insert(types.Key(0), m1))
	tt.Delete(types.Key(0))
	assert.NoError(t, tt.Insert(types.Key(0), m2))

	got, ok := tt.Lookup(types.Key(0))
	assert.True(t, ok)
	assert.Equal(t, m2, got)
}

func TestInsertReturnsTableFullErrorWhenSaturated(t *testing.T) {
	tt := New(2)
	m := types.NewMove(types.SqA2, types.SqA3, types.Pawn, types.PtNone, types.Quiet)

	assert.NoError(t, tt.Insert(types.Key(0), m))
	assert.NoError(t, tt.Insert(types.Key(1), m))

	err := tt.Insert(types.Key(2), m)
	assert.Error(t, err)
	var fullErr *TableFullError
	assert.ErrorAs(t, err, &fullErr)
	assert.Equal(t, types.Key(2), fullErr.Key)
}

func TestClearResetsLiveCountAndEntries(t *testing.T) {
	tt := New(16)
	assert.NoError(t, tt.Insert(types.Key(3), types.MoveNone))
	tt.Clear()

	assert.EqualValues(t, 0, tt.LiveCount())
	_, ok := tt.Lookup(types.Key(3))
	assert.False(t, ok)
}
