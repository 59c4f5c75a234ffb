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

// Piece packs a Side and a PieceType into one value for use in the
// mailbox board (spec.md §3's square_to_piece array): bit 3 is the
// color, bits 0-2 are the piece type.
type Piece int8

const (
	PieceNone   Piece = 0
	WhitePawn   Piece = Piece(Pawn)
	WhiteKnight Piece = Piece(Knight)
	WhiteBishop Piece = Piece(Bishop)
	WhiteRook   Piece = Piece(Rook)
	WhiteQueen  Piece = Piece(Queen)
	WhiteKing   Piece = Piece(King)
	BlackPawn   Piece = Piece(Pawn) | 8
	BlackKnight Piece = Piece(Knight) | 8
	BlackBishop Piece = Piece(Bishop) | 8
	BlackRook   Piece = Piece(Rook) | 8
	BlackQueen  Piece = Piece(Queen) | 8
	BlackKing   Piece = Piece(King) | 8
	PieceLength Piece = 16
)

// MakePiece builds the Piece for side c, type pt.
func MakePiece(c Side, pt PieceType) Piece {
	return Piece(int(c)<<3 + int(pt))
}

// SideOf returns the color of p.
func (p Piece) SideOf() Side {
	return Side(p >> 3)
}

// TypeOf returns the piece type of p (PtNone if p is PieceNone).
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// ValueOf returns the classical material value of p.
func (p Piece) ValueOf() int {
	return p.TypeOf().ValueOf()
}

var pieceToChar = string("-PNBRQK--pnbrqk-")

// String returns a single FEN-style character for p (upper case for
// White, lower case for Black, "-" for PieceNone).
func (p Piece) String() string {
	return string(pieceToChar[p])
}
