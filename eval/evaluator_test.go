package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/board"
)

func TestStartPositionIsRoughlyBalanced(t *testing.T) {
	b := board.StartPosition()
	v := NewClassicalEvaluator().Evaluate(&b)
	// Only the side-to-move tempo bonus should separate the two sides
	// in the symmetric starting position.
	assert.Less(t, int(v), 50)
	assert.Greater(t, int(v), -50)
}

func TestExtraQueenIsStronglyPositive(t *testing.T) {
	b, err := board.FromFEN("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	assert.NoError(t, err)
	v := NewClassicalEvaluator().Evaluate(&b)
	assert.Greater(t, int(v), 800)
}

func TestEvaluationFlipsWithSideToMove(t *testing.T) {
	white, err := board.FromFEN("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	assert.NoError(t, err)
	black, err := board.FromFEN("4k3/8/8/8/8/8/8/3QK3 b - - 0 1")
	assert.NoError(t, err)

	wv := NewClassicalEvaluator().Evaluate(&white)
	bv := NewClassicalEvaluator().Evaluate(&black)
	assert.Greater(t, int(wv), 0)
	assert.Less(t, int(bv), 0)
}
