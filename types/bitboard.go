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

package types

import (
	"math/bits"
	"strings"
)

// Bitboard is a set of squares packed into a 64-bit word, bit i
// corresponding to Square(i).
type Bitboard uint64

const (
	BbZero Bitboard = 0
	BbAll  Bitboard = 0xFFFFFFFFFFFFFFFF
)

var (
	sqBb   [SqLength]Bitboard
	fileBb [FileNone]Bitboard
	rankBb [RankNone]Bitboard

	fileAMask Bitboard // squares NOT on file A - used to mask off west-wrap
	fileHMask Bitboard // squares NOT on file H - used to mask off east-wrap

	pseudoAttacks  [PtLength][SqLength]Bitboard // king, knight (others filled via magics)
	pawnAttacksBb  [2][SqLength]Bitboard
)

func initBitboards() {
	for sq := SqA1; sq <= SqH8; sq++ {
		sqBb[sq] = Bitboard(1) << sq
	}
	for f := FileA; f <= FileH; f++ {
		var bb Bitboard
		for r := Rank1; r <= Rank8; r++ {
			bb |= SquareOf(f, r).Bb()
		}
		fileBb[f] = bb
	}
	for r := Rank1; r <= Rank8; r++ {
		var bb Bitboard
		for f := FileA; f <= FileH; f++ {
			bb |= SquareOf(f, r).Bb()
		}
		rankBb[r] = bb
	}
	fileAMask = ^fileBb[FileA]
	fileHMask = ^fileBb[FileH]

	initSquareDistance()

	knightOffsets := []Direction{17, 15, 10, 6, -6, -10, -15, -17}
	kingOffsets := []Direction{North, South, East, West, Northeast, Northwest, Southeast, Southwest}
	for sq := SqA1; sq <= SqH8; sq++ {
		pseudoAttacks[King][sq] = ringAttacks(sq, kingOffsets)
		pseudoAttacks[Knight][sq] = knightAttacks(sq, knightOffsets)
		pawnAttacksBb[White][sq] = pawnCaptureAttacks(sq, White)
		pawnAttacksBb[Black][sq] = pawnCaptureAttacks(sq, Black)
	}
}

// ringAttacks computes the king's one-step attack set by walking the
// eight directions and masking off board-edge wraps via Square.To.
func ringAttacks(sq Square, dirs []Direction) Bitboard {
	var bb Bitboard
	for _, d := range dirs {
		if to := sq.To(d); to.IsValid() {
			bb |= to.Bb()
		}
	}
	return bb
}

// knightAttacks computes the knight's eight candidate jumps, discarding
// any that wrap around a file edge (distance check handles the wrap
// since a valid knight move has file distance 1 or 2, never more).
func knightAttacks(sq Square, offsets []Direction) Bitboard {
	var bb Bitboard
	for _, d := range offsets {
		raw := int(sq) + int(d)
		if raw < 0 || raw > int(SqH8) {
			continue
		}
		to := Square(raw)
		if SquareDistance(sq, to) <= 2 && FileDistance(sq.FileOf(), to.FileOf()) <= 2 {
			bb |= to.Bb()
		}
	}
	return bb
}

func pawnCaptureAttacks(sq Square, c Side) Bitboard {
	var bb Bitboard
	var left, right Direction
	if c == White {
		left, right = Northwest, Northeast
	} else {
		left, right = Southwest, Southeast
	}
	if to := sq.To(left); to.IsValid() {
		bb |= to.Bb()
	}
	if to := sq.To(right); to.IsValid() {
		bb |= to.Bb()
	}
	return bb
}

// PawnAttacksBb returns the squares a pawn of side c on sq attacks.
func PawnAttacksBb(c Side, sq Square) Bitboard {
	return pawnAttacksBb[c][sq]
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Has reports whether sq is a member of b.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bb() != 0
}

// PushSquare returns b with sq added.
func (b Bitboard) PushSquare(sq Square) Bitboard {
	return b | sq.Bb()
}

// PopSquare returns b with sq removed.
func (b Bitboard) PopSquare(sq Square) Bitboard {
	return b &^ sq.Bb()
}

// PopLsb clears and returns the least significant set square of *b, or
// SqNone if b is empty.
func (b *Bitboard) PopLsb() Square {
	if *b == 0 {
		return SqNone
	}
	sq := Square(bits.TrailingZeros64(uint64(*b)))
	*b &= *b - 1
	return sq
}

// Shift moves every bit of b one square in direction d, masking off
// bits that would wrap around a file edge (spec.md §4.A): the
// west-bearing directions clear file A before shifting, the
// east-bearing directions clear file H. North/South rely on the
// natural 64-bit shift to drop bits off the board.
func (b Bitboard) Shift(d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b & fileHMask) << 1
	case West:
		return (b & fileAMask) >> 1
	case Northeast:
		return (b & fileHMask) << 9
	case Southeast:
		return (b & fileHMask) >> 7
	case Southwest:
		return (b & fileAMask) >> 9
	case Northwest:
		return (b & fileAMask) << 7
	default:
		panic("invalid shift direction")
	}
}

// String renders b as an 8x8 board diagram, rank 8 first, for debug
// logging.
func (b Bitboard) String() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, r)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteString("\n")
		if r == Rank1 {
			break
		}
	}
	return sb.String()
}
