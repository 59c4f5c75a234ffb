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

package board

import (
	"github.com/corvidchess/corvid/assert"
	. "github.com/corvidchess/corvid/types"
)

// rookCastleSquares maps a king's destination square under castling to
// the rook's origin and destination squares.
var rookCastleSquares = map[Square][2]Square{
	SqG1: {SqH1, SqF1},
	SqC1: {SqA1, SqD1},
	SqG8: {SqH8, SqF8},
	SqC8: {SqA8, SqD8},
}

// MakeMove applies m to b and returns the resulting position. b itself
// is left untouched - callers hold on to the board they already have
// (for the PV, for repetition history) for free, since nothing here
// mutates through a pointer they still reference.
//
// m is assumed pseudo-legal for b; MakeMove does not check whether the
// move leaves the mover's own king in check. Use movegen.IsLegal (or
// generate only legal moves) before calling this in a search loop.
func (b Board) MakeMove(m Move) Board {
	assert.Assert(m.IsValid(), "board MakeMove: invalid move %s", m.Uci())

	from, to := m.From(), m.To()
	fromPc := b.mailbox[from]
	assert.Assert(fromPc != PieceNone, "board MakeMove: no piece on %s", from.String())

	us := fromPc.SideOf()
	assert.Assert(us == b.sideToMove, "board MakeMove: %s to move, but piece on %s belongs to %s", b.sideToMove, from.String(), us)

	targetPc := b.mailbox[to]
	fromPt := fromPc.TypeOf()

	b.key ^= castlingKey(b.castlingRights)
	if b.epSquare != SqNone {
		b.key ^= enPassantKey(b.epSquare.FileOf())
		b.epSquare = SqNone
	}

	resetClock := false

	switch flag := m.MoveFlag(); {
	case flag == FlagCastleKing || flag == FlagCastleQueen:
		rook := rookCastleSquares[to]
		b.doMovePiece(from, to)
		b.doMovePiece(rook[0], rook[1])
		b.castlingRights = b.castlingRights.Remove(from).Remove(rook[0])

	case flag == FlagEnPassant:
		assert.Assert(fromPt == Pawn, "board MakeMove: en passant move but mover is not a pawn")
		capSq := SquareOf(to.FileOf(), from.RankOf())
		capturedPc := b.doRemovePiece(capSq)
		assert.Assert(capturedPc.TypeOf() == Pawn, "board MakeMove: en passant target square held no pawn")
		b.doMovePiece(from, to)
		resetClock = true

	case m.IsPromotion():
		if targetPc != PieceNone {
			b.doRemovePiece(to)
		}
		b.doRemovePiece(from)
		b.doPutPiece(MakePiece(us, m.PromotionType()), to)
		b.castlingRights = b.castlingRights.Remove(from).Remove(to)
		resetClock = true

	default:
		if targetPc != PieceNone {
			b.doRemovePiece(to)
			resetClock = true
		} else if fromPt == Pawn {
			resetClock = true
		}
		if fromPt == Pawn && SquareDistance(from, to) == 2 {
			passed := to.To(us.Opposite().PawnDirection())
			them := us.Opposite()
			if PawnAttacksBb(us, passed)&b.piecesBb[them][Pawn] != 0 {
				b.epSquare = passed
				b.key ^= enPassantKey(b.epSquare.FileOf())
			}
		}
		b.doMovePiece(from, to)
		b.castlingRights = b.castlingRights.Remove(from).Remove(to)
	}

	b.key ^= castlingKey(b.castlingRights)

	if resetClock {
		b.halfMoveClock = 0
	} else {
		b.halfMoveClock++
	}
	if us == Black {
		b.fullMoveNumber++
	}

	b.sideToMove = b.sideToMove.Opposite()
	b.key ^= sideToMoveKey()

	return b
}

// MakeNullMove returns the position after passing the turn without
// making a move - used by the searcher's null-move pruning. The en
// passant square is always cleared, since a player who just moved
// cannot still be threatening a capture that required an immediate
// reply.
func (b Board) MakeNullMove() Board {
	if b.epSquare != SqNone {
		b.key ^= enPassantKey(b.epSquare.FileOf())
		b.epSquare = SqNone
	}
	b.sideToMove = b.sideToMove.Opposite()
	b.key ^= sideToMoveKey()
	b.halfMoveClock++
	return b
}

func (b *Board) doPutPiece(pc Piece, sq Square) {
	b.putPiece(pc, sq)
	b.key ^= pieceKey(pc, sq)
}

func (b *Board) doRemovePiece(sq Square) Piece {
	pc := b.removePiece(sq)
	b.key ^= pieceKey(pc, sq)
	return pc
}

func (b *Board) doMovePiece(from, to Square) {
	pc := b.removePiece(from)
	b.key ^= pieceKey(pc, from)
	b.putPiece(pc, to)
	b.key ^= pieceKey(pc, to)
}
