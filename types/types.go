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

// Package types contains the primitive chess data types shared by every
// other package in the engine: squares, files/ranks, sides, pieces,
// directions, bitboards, magic attack tables and the packed Move.
//
// Many of these would be enums in another language; Go has none, so
// each is a small integer type with a validated constructor and a
// String() method instead.
package types

import (
	"github.com/corvidchess/corvid/logging"
)

var log = logging.GetLog("types")

// SqLength is the number of squares on a board.
const SqLength = 64

// MaxPly is the maximum search ply the engine will ever recurse to.
// Also bounds the killer table and the PV/repetition bookkeeping.
const MaxPly = 256

// MaxMoves bounds the capacity of a single MoveList / the repetition
// stack kept across one game.
const MaxMoves = 512

const (
	KB uint64 = 1024
	MB uint64 = KB * 1024
)

var initialized = false

func init() {
	if initialized {
		return
	}
	log.Debug("initializing precomputed tables")
	initBitboards()
	initMagics()
	initialized = true
}
