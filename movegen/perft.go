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

package movegen

import (
	"github.com/corvidchess/corvid/board"
	. "github.com/corvidchess/corvid/types"
)

// Perft counts the leaf nodes reachable from b in exactly depth plies
// of strictly legal moves. It's the standard move-generator correctness
// check: the totals for well-known test positions are published and
// exact, so any mismatch pinpoints a move generation bug.
func Perft(b board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	pseudo := GeneratePseudoLegal(&b, GenAll)
	var nodes uint64
	for _, m := range pseudo.Slice() {
		if !IsLegal(&b, m) {
			continue
		}
		if depth == 1 {
			nodes++
			continue
		}
		child := b.MakeMove(m)
		nodes += Perft(child, depth-1)
	}
	return nodes
}

// Divide returns, for every legal move at the root, the Perft count of
// the subtree under it - used to bisect a perft mismatch against a
// reference engine by comparing move-by-move instead of only the total.
func Divide(b board.Board, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth == 0 {
		return result
	}
	pseudo := GeneratePseudoLegal(&b, GenAll)
	for _, m := range pseudo.Slice() {
		if !IsLegal(&b, m) {
			continue
		}
		child := b.MakeMove(m)
		result[m] = Perft(child, depth-1)
	}
	return result
}
