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

// CastlingRights is a 4-bit mask of the castling rights still available
// to either side (spec.md §3's castling_rights[Side][2] model, packed
// into a single value for cheap copying and Zobrist hashing).
type CastlingRights uint8

const (
	CastlingNone CastlingRights = 0
	WhiteOO      CastlingRights = 1 << 0
	WhiteOOO     CastlingRights = 1 << 1
	BlackOO      CastlingRights = 1 << 2
	BlackOOO     CastlingRights = 1 << 3

	CastlingAll = WhiteOO | WhiteOOO | BlackOO | BlackOOO
)

// rightsLost maps a square to the castling rights that are permanently
// lost the moment a piece moves off of (or a capture lands on) it: the
// two corner rook squares and the two starting king squares.
var rightsLost = map[Square]CastlingRights{
	SqA1: WhiteOOO, SqH1: WhiteOO, SqE1: WhiteOO | WhiteOOO,
	SqA8: BlackOOO, SqH8: BlackOO, SqE8: BlackOO | BlackOOO,
}

// Remove returns cr with any rights tied to sq cleared - called for
// both the move's origin and destination square on every make_move, so
// a rook capture on its home square also strips that side's rights.
func (cr CastlingRights) Remove(sq Square) CastlingRights {
	return cr &^ rightsLost[sq]
}

// Has reports whether all of the bits in right are set in cr.
func (cr CastlingRights) Has(right CastlingRights) bool {
	return cr&right == right
}

// ForSide returns the king- and queen-side rights belonging to c.
func (cr CastlingRights) ForSide(c Side) (kingSide, queenSide CastlingRights) {
	if c == White {
		return WhiteOO, WhiteOOO
	}
	return BlackOO, BlackOOO
}

var castlingChars = []struct {
	right CastlingRights
	char  string
}{
	{WhiteOO, "K"}, {WhiteOOO, "Q"}, {BlackOO, "k"}, {BlackOOO, "q"},
}

// String renders cr in FEN castling-field notation, e.g. "KQkq", "Kq"
// or "-" when no rights remain.
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	s := ""
	for _, e := range castlingChars {
		if cr.Has(e.right) {
			s += e.char
		}
	}
	return s
}
