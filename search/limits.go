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
	"time"

	. "github.com/corvidchess/corvid/types"
)

// Limits describes how a single StartSearch call should be bounded -
// the parsed form of a UCI "go" command.
type Limits struct {
	WhiteTime time.Duration
	BlackTime time.Duration
	WhiteInc  time.Duration
	BlackInc  time.Duration
	MoveTime  time.Duration

	Depth int   // 0 = unlimited
	Nodes int64 // 0 = unlimited

	Infinite bool
}

// NewLimits returns an empty Limits with no bound set - equivalent to
// "go infinite" until a field is filled in.
func NewLimits() Limits {
	return Limits{}
}

// TimeControl reports whether any wall-clock budget applies.
func (l Limits) TimeControl() bool {
	return l.MoveTime > 0 || l.WhiteTime > 0 || l.BlackTime > 0
}

// budget computes the time allotted to the upcoming move for side us,
// per spec.md §6: movetime if given, else own_time/20 + own_inc/2.
func (l Limits) budget(us Side) time.Duration {
	if l.MoveTime > 0 {
		return l.MoveTime
	}
	var own, inc time.Duration
	if us == White {
		own, inc = l.WhiteTime, l.WhiteInc
	} else {
		own, inc = l.BlackTime, l.BlackInc
	}
	return own/20 + inc/2
}
