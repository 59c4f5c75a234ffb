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

// IsFiftyMoveDraw reports whether the halfmove clock has reached the
// fifty-move rule threshold.
func (b *Board) IsFiftyMoveDraw() bool {
	return b.halfMoveClock >= 50
}

// IsInsufficientMaterial reports whether neither side has enough
// material to deliver checkmate: K vs K, K+N vs K, or K+B vs K (any
// number of same-colored bishops on one side still counts as drawn
// material against a lone king, but that case is rare enough in
// practice that the search's own depth limit handles it; this check
// covers the common, cheap-to-test cases).
func (b *Board) IsInsufficientMaterial() bool {
	if b.piecesBb[White][Pawn] != 0 || b.piecesBb[Black][Pawn] != 0 {
		return false
	}
	if b.piecesBb[White][Rook] != 0 || b.piecesBb[Black][Rook] != 0 {
		return false
	}
	if b.piecesBb[White][Queen] != 0 || b.piecesBb[Black][Queen] != 0 {
		return false
	}

	whiteMinors := b.piecesBb[White][Knight].PopCount() + b.piecesBb[White][Bishop].PopCount()
	blackMinors := b.piecesBb[Black][Knight].PopCount() + b.piecesBb[Black][Bishop].PopCount()

	if whiteMinors == 0 && blackMinors == 0 {
		return true // bare king vs bare king
	}
	if whiteMinors+blackMinors == 1 {
		return true // lone minor vs bare king, either side
	}
	return false
}

// IsDraw reports whether the position is a draw by the fifty-move rule
// or insufficient material. Threefold repetition is not decidable from
// a single Board value - the searcher tracks the Key history itself
// and checks it with RepetitionStack.Contains (see search.RepetitionStack).
func (b *Board) IsDraw() bool {
	return b.IsFiftyMoveDraw() || b.IsInsufficientMaterial()
}
