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

package search

import (
	"github.com/corvidchess/corvid/assert"
	"github.com/corvidchess/corvid/board"
	. "github.com/corvidchess/corvid/types"
)

// RepetitionStack tracks the Zobrist keys of every position played so
// far in the game plus every position made on the way down the current
// search tree. board.Board has no history of its own (it is copied,
// not mutated in place), so threefold repetition can only be decided
// here, by the searcher that actually walks the tree.
type RepetitionStack struct {
	keys []board.Key
}

// NewRepetitionStack returns an empty stack preallocated to MaxMoves +
// MaxPly, enough room for a full game plus one search tree's depth.
func NewRepetitionStack() RepetitionStack {
	return RepetitionStack{keys: make([]board.Key, 0, MaxMoves+MaxPly)}
}

// Push records key as played.
func (r *RepetitionStack) Push(key board.Key) {
	r.keys = append(r.keys, key)
}

// Pop removes the most recently pushed key - called on the way back up
// out of a search node, since board states are not undone in place.
func (r *RepetitionStack) Pop() {
	assert.Assert(len(r.keys) > 0, "search RepetitionStack: pop of empty stack")
	r.keys = r.keys[:len(r.keys)-1]
}

// Contains reports whether key has already been played anywhere on the
// stack - a single prior occurrence is enough to call a repetition
// inside the search tree, since repeating twice more inside the same
// search would be a threefold draw the opponent can force.
func (r *RepetitionStack) Contains(key board.Key) bool {
	for _, k := range r.keys {
		if k == key {
			return true
		}
	}
	return false
}

// Len returns the number of keys currently on the stack.
func (r *RepetitionStack) Len() int { return len(r.keys) }

// Keys returns the keys currently on the stack, oldest first - used to
// hand a game's history to another Searcher via SetHistory (datagen's
// self-play harness does this before every search of a game).
func (r *RepetitionStack) Keys() []board.Key {
	return r.keys
}
