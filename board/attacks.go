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
	. "github.com/corvidchess/corvid/types"
)

// IsSquareAttacked reports whether sq is attacked by any piece of side
// by, given the current occupancy. Used both for check detection (is
// the king's square attacked by the opponent) and for castling legality
// (are the king's transit squares attacked).
func (b *Board) IsSquareAttacked(sq Square, by Side) bool {
	occ := b.OccupiedAll()

	if PawnAttacksBb(by.Opposite(), sq)&b.piecesBb[by][Pawn] != 0 {
		return true
	}
	if AttacksBb(Knight, sq, occ)&b.piecesBb[by][Knight] != 0 {
		return true
	}
	if AttacksBb(King, sq, occ)&b.piecesBb[by][King] != 0 {
		return true
	}
	bishopsQueens := b.piecesBb[by][Bishop] | b.piecesBb[by][Queen]
	if AttacksBb(Bishop, sq, occ)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := b.piecesBb[by][Rook] | b.piecesBb[by][Queen]
	if AttacksBb(Rook, sq, occ)&rooksQueens != 0 {
		return true
	}
	return false
}

// IsInCheck reports whether c's king is currently attacked.
func (b *Board) IsInCheck(c Side) bool {
	return b.IsSquareAttacked(b.kingSquare[c], c.Opposite())
}

// AttackersTo returns the bitboard of every piece (either side) that
// attacks sq, given occupancy occ. Not currently called from anywhere
// in this tree; kept as the building block a static-exchange evaluator
// would need, since neither IsSquareAttacked nor the move generator
// (which tests legality by making the move) needs the full attacker
// set for a single square.
func (b *Board) AttackersTo(sq Square, occ Bitboard) Bitboard {
	var attackers Bitboard
	attackers |= AttacksBb(Knight, sq, occ) & (b.piecesBb[White][Knight] | b.piecesBb[Black][Knight])
	attackers |= AttacksBb(King, sq, occ) & (b.piecesBb[White][King] | b.piecesBb[Black][King])
	bishopRays := AttacksBb(Bishop, sq, occ)
	rookRays := AttacksBb(Rook, sq, occ)
	attackers |= bishopRays & (b.piecesBb[White][Bishop] | b.piecesBb[Black][Bishop] | b.piecesBb[White][Queen] | b.piecesBb[Black][Queen])
	attackers |= rookRays & (b.piecesBb[White][Rook] | b.piecesBb[Black][Rook] | b.piecesBb[White][Queen] | b.piecesBb[Black][Queen])
	attackers |= PawnAttacksBb(Black, sq) & b.piecesBb[White][Pawn]
	attackers |= PawnAttacksBb(White, sq) & b.piecesBb[Black][Pawn]
	return attackers
}
