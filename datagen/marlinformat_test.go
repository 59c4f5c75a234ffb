/*
 * MIT License
 *
 * Copyright (c) 2026 corvid contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package datagen

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/board"
	. "github.com/corvidchess/corvid/types"
)

func TestEncodeHeaderStartPositionOccupancyAndEp(t *testing.T) {
	b := board.StartPosition()
	h := EncodeHeader(&b, WdlDraw)

	assert.Equal(t, b.OccupiedAll(), h.Occupancy)
	assert.Equal(t, byte(64), h.EpSquare&0x7F, "no en passant square at game start")
	assert.Equal(t, byte(0), h.EpSquare&0x80, "White to move")
	assert.Equal(t, byte(0), h.HalfMoveClock)
	assert.Equal(t, WdlDraw, h.Wdl)

	idx, black := h.PieceIndexAt(0)
	assert.Equal(t, uint8(marlinCastleRook), idx, "a1 rook still guards White's queenside right, so it reads as the castling marker")
	assert.False(t, black)
}

func TestEncodeHeaderMarksCastlingRookSpecially(t *testing.T) {
	// White has lost its queenside right but kept the kingside one, so
	// of White's rooks only the h1 rook should read as the special marker.
	fen := "r3k2r/8/8/8/8/8/8/R3K2R w Kkq - 0 1"
	b, err := board.FromFEN(fen)
	require.NoError(t, err)

	h := EncodeHeader(&b, WdlDraw)

	occ := b.OccupiedAll()
	found := false
	for i := 0; occ != 0; i++ {
		sq := occ.PopLsb()
		idx, black := h.PieceIndexAt(i)
		switch sq {
		case SqA1:
			assert.Equal(t, uint8(marlinPieceIndex[Rook]), idx, "a1 rook lost its right, no special marker")
			assert.False(t, black)
		case SqH1:
			assert.Equal(t, uint8(marlinCastleRook), idx, "h1 rook still guards White's kingside right")
			assert.False(t, black)
			found = true
		case SqA8:
			assert.Equal(t, uint8(marlinCastleRook), idx)
			assert.True(t, black)
		case SqH8:
			assert.Equal(t, uint8(marlinCastleRook), idx)
			assert.True(t, black)
		}
	}
	assert.True(t, found)
}

func TestHeaderWriteToReadHeaderRoundTrip(t *testing.T) {
	fen := "r3k2r/8/8/8/8/8/8/R3K2R w Kkq - 3 10"
	b, err := board.FromFEN(fen)
	require.NoError(t, err)
	h := EncodeHeader(&b, WdlWin)

	var buf bytes.Buffer
	require.NoError(t, h.WriteTo(&buf))
	assert.Equal(t, 32, buf.Len())

	got, err := ReadHeader(&buf)
	require.NoError(t, err)
	assert.Equal(t, h, got)
}

func TestEncodeMoveNormalQuietMove(t *testing.T) {
	m := NewMove(SqE2, SqE4, FlagDoublePush)
	vm := EncodeMove(m)
	assert.Equal(t, Square(vm&0x3F), SqE2)
	assert.Equal(t, Square((vm>>6)&0x3F), SqE4)
	assert.Equal(t, viriKindNormal, uint16(vm)&0xC000)
}

func TestEncodeMoveEnPassant(t *testing.T) {
	m := NewMove(SqE5, SqD6, FlagEnPassant)
	vm := EncodeMove(m)
	assert.Equal(t, viriKindEnPassant, uint16(vm)&0xC000)
	assert.Equal(t, Square((vm>>6)&0x3F), SqD6)
}

func TestEncodeMoveKingsideCastleReportsRookOrigin(t *testing.T) {
	m := NewMove(SqE1, SqG1, FlagCastleKing)
	vm := EncodeMove(m)
	assert.Equal(t, viriKindCastle, uint16(vm)&0xC000)
	assert.Equal(t, Square((vm>>6)&0x3F), SqH1)
}

func TestEncodeMoveQueensideCastleReportsRookOrigin(t *testing.T) {
	m := NewMove(SqE8, SqC8, FlagCastleQueen)
	vm := EncodeMove(m)
	assert.Equal(t, viriKindCastle, uint16(vm)&0xC000)
	assert.Equal(t, Square((vm>>6)&0x3F), SqA8)
}

func TestEncodeMovePromotionCarriesPromotedPiece(t *testing.T) {
	m := NewPromotionMove(SqA7, SqA8, Queen, false)
	vm := EncodeMove(m)
	assert.Equal(t, viriKindPromotion, uint16(vm)&0xC000)
	assert.Equal(t, uint16(3), (uint16(vm)>>12)&0x3, "Queen is promoted-piece index 3")
}

func TestGameWriteToReadGameRoundTrip(t *testing.T) {
	b := board.StartPosition()
	h := EncodeHeader(&b, WdlLoss)
	game := Game{
		Header: h,
		Moves: []MoveRecord{
			{Move: EncodeMove(NewMove(SqE2, SqE4, FlagDoublePush)), Eval: 35},
			{Move: EncodeMove(NewMove(SqE7, SqE5, FlagDoublePush)), Eval: -20},
			{Move: EncodeMove(NewMove(SqG1, SqF3, FlagQuiet)), Eval: 40},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, game.WriteTo(&buf))

	got, err := ReadGame(&buf)
	require.NoError(t, err)
	assert.Equal(t, game.Header, got.Header)
	require.Equal(t, len(game.Moves), len(got.Moves))
	for i := range game.Moves {
		assert.Equal(t, game.Moves[i], got.Moves[i])
	}
}
