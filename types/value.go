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
	"fmt"
	"strconv"
)

// Value is a centipawn evaluation or search score. Mate scores are
// encoded as Checkmate minus the number of plies to deliver it, so
// shorter mates always compare as more extreme than longer ones
// (spec.md §4.H).
type Value int32

const (
	ValueZero  Value = 0
	ValueDraw  Value = 0
	Inf        Value = 32767
	Checkmate  Value = Inf - 1
	MaxPlyVal  Value = 256

	// MateThreshold: any |value| at or above this is a forced mate
	// score rather than a material/positional evaluation.
	MateThreshold Value = Checkmate - MaxPlyVal
)

// IsMate reports whether v represents a forced mate for either side.
func (v Value) IsMate() bool {
	return v.Abs() >= MateThreshold
}

// Abs returns the absolute value of v.
func (v Value) Abs() Value {
	if v < 0 {
		return -v
	}
	return v
}

// MateIn returns the number of plies to mate encoded in v. Only
// meaningful when v.IsMate() is true; the sign of the return value
// matches the sign of v (negative means being mated).
func (v Value) MateIn() int {
	if v > 0 {
		return int(Checkmate - v)
	}
	return -int(Checkmate + v)
}

// MateInMoves returns the number of full moves to mate, as reported by
// the UCI "score mate" field (spec.md §6): plies rounded up to moves.
func (v Value) MateInMoves() int {
	plies := v.MateIn()
	if plies >= 0 {
		return (plies + 1) / 2
	}
	return -((-plies + 1) / 2)
}

// UciString renders v as a UCI score field: "cp <n>" for ordinary
// evaluations, "mate <n>" for forced mates.
func (v Value) UciString() string {
	if v.IsMate() {
		return "mate " + strconv.Itoa(v.MateInMoves())
	}
	return "cp " + strconv.Itoa(int(v))
}

func (v Value) String() string {
	return fmt.Sprintf("%d", int(v))
}
