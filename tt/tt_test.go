package tt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/board"
	. "github.com/corvidchess/corvid/types"
)

func TestResizeIsPowerOfTwoCapacity(t *testing.T) {
	table := NewTable(1)
	assert.Greater(t, table.Capacity(), uint64(0))
	assert.Equal(t, table.Capacity()&(table.Capacity()-1), uint64(0))
}

func TestProbeMissOnEmptyTable(t *testing.T) {
	table := NewTable(1)
	_, ok := table.Probe(board.Key(12345))
	assert.False(t, ok)
}

func TestStoreThenProbeHit(t *testing.T) {
	table := NewTable(1)
	key := board.Key(0xDEADBEEF)
	table.Store(key, NewMove(SqE2, SqE4, FlagDoublePush), Value(37), 5, BoundExact)

	e, ok := table.Probe(key)
	assert.True(t, ok)
	assert.Equal(t, Value(37), e.Value)
	assert.Equal(t, int8(5), e.Depth)
	assert.Equal(t, BoundExact, e.Bound)
}

func TestZeroSizeTableNeverStores(t *testing.T) {
	table := NewTable(0)
	table.Store(board.Key(1), MoveNone, Value(1), 1, BoundExact)
	_, ok := table.Probe(board.Key(1))
	assert.False(t, ok)
}

func TestMateScorePlyRoundTrip(t *testing.T) {
	mateIn3FromRoot := Checkmate - 6 // found 6 plies deep from the root
	stored := ValueToTT(mateIn3FromRoot, 6)
	retrievedAtPly2 := ValueFromTT(stored, 2)
	assert.Equal(t, Checkmate-2, retrievedAtPly2)

	nonMate := Value(150)
	assert.Equal(t, nonMate, ValueFromTT(ValueToTT(nonMate, 4), 1))
}

func TestHashFullStartsAtZero(t *testing.T) {
	table := NewTable(1)
	assert.Equal(t, 0, table.HashFull())
}
