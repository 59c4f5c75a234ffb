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

// PieceType is one of the six chess piece types, plus a None sentinel.
// Ordered per spec: Pawn, Knight, Bishop, Rook, Queen, King.
type PieceType int8

const (
	PtNone PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	PtLength
)

var pieceTypeToString = [PtLength]string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// String returns the piece type's name.
func (pt PieceType) String() string {
	return pieceTypeToString[pt]
}

var pieceTypeToChar = string("-PNBRQK")

// Char returns a single upper case letter for pt ('P','N','B','R','Q','K').
func (pt PieceType) Char() string {
	return string(pieceTypeToChar[pt])
}

var pieceTypeValue = [PtLength]int{0, 100, 320, 330, 500, 900, 20000}

// ValueOf returns the classical material value of pt in centipawns.
func (pt PieceType) ValueOf() int {
	return pieceTypeValue[pt]
}

var gamePhaseValue = [PtLength]int{0, 0, 1, 1, 2, 4, 0}

// GamePhaseValue returns pt's weight toward the game-phase counter used
// to taper evaluation between midgame and endgame.
func (pt PieceType) GamePhaseValue() int {
	return gamePhaseValue[pt]
}

// IsValid reports whether pt is one of the six real piece types
// (excludes PtNone).
func (pt PieceType) IsValid() bool {
	return pt > PtNone && pt < PtLength
}

// IsSliding reports whether pt is a bishop, rook or queen.
func (pt PieceType) IsSliding() bool {
	return pt == Bishop || pt == Rook || pt == Queen
}
