package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/board"
	. "github.com/corvidchess/corvid/types"
)

// Perft totals below are the well-known published node counts for
// these four reference positions (Chess Programming Wiki's "Perft
// Results" page), used as an exact correctness check on move
// generation, make_move and legality filtering together. Depths here
// stop short of the full reference depths (start position goes to 6,
// Kiwipete to 5, the endgame position to 6) to keep CI runtime
// reasonable; the shallower depths already exercise every special move
// type in each position.
func TestPerftStartPosition(t *testing.T) {
	b := board.StartPosition()
	assert.Equal(t, uint64(20), Perft(b, 1))
	assert.Equal(t, uint64(400), Perft(b, 2))
	assert.Equal(t, uint64(8902), Perft(b, 3))
	assert.Equal(t, uint64(197281), Perft(b, 4))
}

func TestPerftKiwipete(t *testing.T) {
	b, err := board.FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, uint64(48), Perft(b, 1))
	assert.Equal(t, uint64(2039), Perft(b, 2))
	assert.Equal(t, uint64(97862), Perft(b, 3))
}

func TestPerftEndgamePosition(t *testing.T) {
	b, err := board.FromFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, uint64(14), Perft(b, 1))
	assert.Equal(t, uint64(191), Perft(b, 2))
	assert.Equal(t, uint64(2812), Perft(b, 3))
	assert.Equal(t, uint64(43238), Perft(b, 4))
}

func TestPerftPromotionHeavyPosition(t *testing.T) {
	b, err := board.FromFEN("r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, uint64(6), Perft(b, 1))
	assert.Equal(t, uint64(264), Perft(b, 2))
	assert.Equal(t, uint64(9467), Perft(b, 3))
}

func TestGenerateLegalExcludesMovesIntoCheck(t *testing.T) {
	b, err := board.FromFEN("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	assert.NoError(t, err)
	ml := GenerateLegal(&b)
	for _, m := range ml.Slice() {
		assert.NotEqual(t, "e1d2", m.Uci())
		assert.NotEqual(t, "e1f2", m.Uci())
	}
}

func TestCastlingBlockedThroughCheck(t *testing.T) {
	// A rook on f3 attacks f1, the square the king must cross to
	// castle king side, so only queen side castling remains legal.
	b, err := board.FromFEN("4k3/8/8/8/8/5r2/8/R3K2R w KQ - 0 1")
	assert.NoError(t, err)
	legal := GenerateLegal(&b)
	assert.False(t, legal.Contains(NewMove(SqE1, SqG1, FlagCastleKing)))
	assert.True(t, legal.Contains(NewMove(SqE1, SqC1, FlagCastleQueen)))
}
