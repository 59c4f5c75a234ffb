package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/corvidchess/corvid/types"
)

func TestStartPosition(t *testing.T) {
	b := StartPosition()
	assert.Equal(t, White, b.SideToMove())
	assert.Equal(t, CastlingAll, b.CastlingRights())
	assert.Equal(t, SqNone, b.EnPassantSquare())
	assert.Equal(t, 0, b.HalfMoveClock())
	assert.Equal(t, 1, b.FullMoveNumber())
	assert.Equal(t, SqE1, b.KingSquare(White))
	assert.Equal(t, SqE8, b.KingSquare(Black))
	assert.Equal(t, 8, b.Pieces(White, Pawn).PopCount())
	assert.Equal(t, b.computeKeyFromScratch(), b.Key())
}

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	for _, fen := range fens {
		b, err := FromFEN(fen)
		assert.NoError(t, err)
		assert.Equal(t, fen, b.Fen())
	}
}

func TestFromFenRejectsGarbage(t *testing.T) {
	_, err := FromFEN("not a fen")
	assert.Error(t, err)
}

func TestFromFenRejectsRankOverrun(t *testing.T) {
	// Nine pieces on the first rank: every character is charset-valid
	// on its own, but the rank consumes one square too many.
	_, err := FromFEN("ppppppppp/8/8/8/8/8/8/8 w - - 0 1")
	assert.Error(t, err)
}

func TestMakeMoveNormalAndIncrementalKey(t *testing.T) {
	b := StartPosition()
	m := NewMove(SqE2, SqE4, FlagDoublePush)
	after := b.MakeMove(m)

	assert.Equal(t, PieceNone, after.PieceOn(SqE2))
	assert.Equal(t, WhitePawn, after.PieceOn(SqE4))
	assert.Equal(t, Black, after.SideToMove())
	// No black pawn sits beside e4, so there is nothing to capture en
	// passant with - the ep square stays unset (spec's Zobrist hygiene
	// rule: only hash/record an ep square that is actually attackable).
	assert.Equal(t, SqNone, after.EnPassantSquare())
	assert.Equal(t, 0, after.HalfMoveClock())
	assert.Equal(t, after.computeKeyFromScratch(), after.Key())

	// original board must be unaffected - value semantics, no unmake needed
	assert.Equal(t, WhitePawn, b.PieceOn(SqE2))
	assert.Equal(t, White, b.SideToMove())
}

func TestMakeMoveDoublePushSetsEpSquareOnlyWhenAttackable(t *testing.T) {
	// Black pawn on d4 can capture en passant on e3 after e2e4.
	b, err := FromFEN("4k3/8/8/8/3p4/8/4P3/4K3 w - - 0 1")
	assert.NoError(t, err)
	after := b.MakeMove(NewMove(SqE2, SqE4, FlagDoublePush))
	assert.Equal(t, SqE3, after.EnPassantSquare())
	assert.Equal(t, after.computeKeyFromScratch(), after.Key())
}

func TestMakeMoveCastling(t *testing.T) {
	b, err := FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)

	after := b.MakeMove(NewMove(SqE1, SqG1, FlagCastleKing))
	assert.Equal(t, WhiteKing, after.PieceOn(SqG1))
	assert.Equal(t, WhiteRook, after.PieceOn(SqF1))
	assert.Equal(t, PieceNone, after.PieceOn(SqE1))
	assert.Equal(t, PieceNone, after.PieceOn(SqH1))
	assert.False(t, after.CastlingRights().Has(WhiteOO))
	assert.False(t, after.CastlingRights().Has(WhiteOOO))
	assert.True(t, after.CastlingRights().Has(BlackOO))
	assert.Equal(t, after.computeKeyFromScratch(), after.Key())
}

func TestMakeMoveEnPassant(t *testing.T) {
	b, err := FromFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	assert.NoError(t, err)

	after := b.MakeMove(NewMove(SqE5, SqD6, FlagEnPassant))
	assert.Equal(t, WhitePawn, after.PieceOn(SqD6))
	assert.Equal(t, PieceNone, after.PieceOn(SqD5))
	assert.Equal(t, PieceNone, after.PieceOn(SqE5))
	assert.Equal(t, after.computeKeyFromScratch(), after.Key())
}

func TestMakeMovePromotionCapture(t *testing.T) {
	b, err := FromFEN("1n2k3/2P5/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)

	after := b.MakeMove(NewPromotionMove(SqC7, SqB8, Queen, true))
	assert.Equal(t, WhiteQueen, after.PieceOn(SqB8))
	assert.Equal(t, PieceNone, after.PieceOn(SqC7))
	assert.Equal(t, 0, after.HalfMoveClock())
	assert.Equal(t, after.computeKeyFromScratch(), after.Key())
}

func TestMakeNullMove(t *testing.T) {
	b, err := FromFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	assert.NoError(t, err)

	after := b.MakeNullMove()
	assert.Equal(t, Black, after.SideToMove())
	assert.Equal(t, SqNone, after.EnPassantSquare())
	assert.Equal(t, after.computeKeyFromScratch(), after.Key())
}

func TestIsInCheck(t *testing.T) {
	b, err := FromFEN("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, b.IsInCheck(White))
	assert.False(t, b.IsInCheck(Black))
}

func TestInsufficientMaterial(t *testing.T) {
	cases := map[string]bool{
		"4k3/8/8/8/8/8/8/4K3 w - - 0 1":   true,  // K v K
		"4k3/8/8/8/8/8/8/4KN2 w - - 0 1":  true,  // K+N v K
		"4k3/8/8/8/8/8/8/4KB2 w - - 0 1":  true,  // K+B v K
		"4k1n1/8/8/8/8/8/8/4KB2 w - - 0 1": false, // K+B v K+N - sufficient
		"4k3/8/8/8/8/8/P7/4K3 w - - 0 1":  false, // pawn present
	}
	for fen, want := range cases {
		b, err := FromFEN(fen)
		assert.NoError(t, err)
		assert.Equal(t, want, b.IsInsufficientMaterial(), fen)
	}
}

func TestFiftyMoveDraw(t *testing.T) {
	b, err := FromFEN("4k3/8/8/8/8/8/8/4K3 w - - 49 50")
	assert.NoError(t, err)
	assert.False(t, b.IsFiftyMoveDraw())
	after := b.MakeNullMove()
	assert.True(t, after.IsFiftyMoveDraw())
}
