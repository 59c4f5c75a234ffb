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

// Move packs a move into 16 bits: bits 0-5 are the origin square, bits
// 6-11 the destination square, bits 12-15 a flag nibble describing the
// move's special nature (spec.md §3).
type Move uint16

const (
	MoveNone Move = 0

	fromShift = 0
	toShift   = 6
	flagShift = 12
	sqMask    = 0x3F
)

// Flag is the 4-bit move-kind nibble.
type Flag uint8

const (
	FlagQuiet       Flag = 0
	FlagDoublePush  Flag = 1
	FlagCastleKing  Flag = 2
	FlagCastleQueen Flag = 3
	FlagCapture     Flag = 4
	FlagEnPassant   Flag = 5
	// 6, 7 unused

	FlagPromoN     Flag = 8
	FlagPromoB     Flag = 9
	FlagPromoR     Flag = 10
	FlagPromoQ     Flag = 11
	FlagPromoCapN  Flag = 12
	FlagPromoCapB  Flag = 13
	FlagPromoCapR  Flag = 14
	FlagPromoCapQ  Flag = 15
)

// NewMove packs from, to and flag into a Move.
func NewMove(from, to Square, flag Flag) Move {
	return Move(from)<<fromShift | Move(to)<<toShift | Move(flag)<<flagShift
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m>>fromShift) & sqMask
}

// To returns the destination square.
func (m Move) To() Square {
	return Square(m>>toShift) & sqMask
}

// MoveFlag returns the move's flag nibble.
func (m Move) MoveFlag() Flag {
	return Flag(m >> flagShift)
}

// IsValid reports whether m is not MoveNone. MoveNone (from=to=a1,
// flag=quiet) is the only all-zero encoding and is never itself a
// legal move; IsValid does not check that from and to differ.
func (m Move) IsValid() bool {
	return m != MoveNone
}

// IsCapture reports whether m removes an enemy piece (flag bit 2 set).
func (m Move) IsCapture() bool {
	return m.MoveFlag()&FlagCapture != 0
}

// IsPromotion reports whether m promotes a pawn (flag bit 3 set).
func (m Move) IsPromotion() bool {
	return m.MoveFlag()&8 != 0
}

// IsEnPassant reports whether m is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.MoveFlag() == FlagEnPassant
}

// IsCastle reports whether m is a king- or queen-side castle.
func (m Move) IsCastle() bool {
	f := m.MoveFlag()
	return f == FlagCastleKing || f == FlagCastleQueen
}

// IsDoublePush reports whether m is a pawn double push.
func (m Move) IsDoublePush() bool {
	return m.MoveFlag() == FlagDoublePush
}

// IsQuiet reports whether m is neither a capture nor a promotion.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

var promoTypeForFlag = map[Flag]PieceType{
	FlagPromoN: Knight, FlagPromoB: Bishop, FlagPromoR: Rook, FlagPromoQ: Queen,
	FlagPromoCapN: Knight, FlagPromoCapB: Bishop, FlagPromoCapR: Rook, FlagPromoCapQ: Queen,
}

// PromotionType returns the piece type m promotes to, or PtNone if m
// is not a promotion.
func (m Move) PromotionType() PieceType {
	if !m.IsPromotion() {
		return PtNone
	}
	return promoTypeForFlag[m.MoveFlag()]
}

var promoFlagForType = map[PieceType]struct{ quiet, capture Flag }{
	Knight: {FlagPromoN, FlagPromoCapN},
	Bishop: {FlagPromoB, FlagPromoCapB},
	Rook:   {FlagPromoR, FlagPromoCapR},
	Queen:  {FlagPromoQ, FlagPromoCapQ},
}

// NewPromotionMove builds a (quiet or capturing) promotion move.
func NewPromotionMove(from, to Square, promo PieceType, capture bool) Move {
	flags := promoFlagForType[promo]
	if capture {
		return NewMove(from, to, flags.capture)
	}
	return NewMove(from, to, flags.quiet)
}

var promoLetter = map[PieceType]string{Knight: "n", Bishop: "b", Rook: "r", Queen: "q"}

// Uci renders m in UCI long algebraic notation: "<from><to>" or
// "<from><to><promo-letter>" (spec.md §6). Castling is reported as the
// king move, en passant as the pawn move - no special casing needed
// since From()/To() already encode those correctly.
func (m Move) Uci() string {
	if m == MoveNone {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += promoLetter[m.PromotionType()]
	}
	return s
}

func (m Move) String() string {
	return m.Uci()
}
