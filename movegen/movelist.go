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
	. "github.com/corvidchess/corvid/types"
)

// MoveList is a fixed-capacity, append-only list of moves backed by a
// slice preallocated to MaxMoves - no single chess position has close
// to that many legal moves, so it never reallocates mid-search.
type MoveList struct {
	data []Move
}

// NewMoveList returns an empty MoveList ready to receive moves.
func NewMoveList() MoveList {
	return MoveList{data: make([]Move, 0, MaxMoves)}
}

// Len returns the number of moves currently stored.
func (ml *MoveList) Len() int { return len(ml.data) }

// At returns the move at index i.
func (ml *MoveList) At(i int) Move { return ml.data[i] }

// Push appends m to the list.
func (ml *MoveList) Push(m Move) { ml.data = append(ml.data, m) }

// Clear empties the list without releasing its backing array.
func (ml *MoveList) Clear() { ml.data = ml.data[:0] }

// Slice exposes the underlying moves for range loops and sorting.
func (ml *MoveList) Slice() []Move { return ml.data }

// Contains reports whether m is present in the list - used by tests
// and by the UCI "position ... moves" handler to validate input.
func (ml *MoveList) Contains(m Move) bool {
	for _, x := range ml.data {
		if x == m {
			return true
		}
	}
	return false
}
