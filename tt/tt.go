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

// Package tt implements the search's transposition table: a
// fixed-capacity, power-of-2-sized, replace-always hash table keyed by
// Zobrist hash. It is not safe for concurrent use; Resize and Clear
// must not race with Probe/Store from a running search.
package tt

import (
	"math"
	"unsafe"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidchess/corvid/assert"
	"github.com/corvidchess/corvid/board"
	"github.com/corvidchess/corvid/logging"
	. "github.com/corvidchess/corvid/types"
	"github.com/corvidchess/corvid/util"
)

var out = message.NewPrinter(language.English)
var log = logging.GetLog("tt")

// Bound describes whether Entry.Value is exact or a cutoff bound, the
// classical alpha-beta bookkeeping needed to use a cached score safely
// at a different alpha/beta window than the one it was stored under.
type Bound int8

const (
	BoundNone Bound = iota
	BoundExact
	BoundLower // fail-high: value is a lower bound (beta cutoff)
	BoundUpper // fail-low: value is an upper bound (alpha cutoff)
)

// EntrySize is the size in bytes of one Entry - used only to report
// the table's real memory usage, the way the teacher engine does.
const EntrySize = int(unsafe.Sizeof(Entry{}))

// MaxSizeMB bounds how large a single Resize may request.
const MaxSizeMB = 65_536

// Entry is one transposition table slot.
type Entry struct {
	Key   board.Key
	Move  Move
	Value Value
	Depth int8
	Bound Bound
}

// Table is a fixed-capacity transposition table.
type Table struct {
	data     []Entry
	mask     uint64
	capacity uint64
}

// NewTable creates a Table sized to the largest power-of-2 entry count
// that fits in sizeMB megabytes.
func NewTable(sizeMB int) *Table {
	t := &Table{}
	t.Resize(sizeMB)
	return t
}

// Resize clears the table and reallocates it to fit sizeMB of memory
// (rounded down to a power of 2 entries, per spec.md §4.H).
func (t *Table) Resize(sizeMB int) {
	if sizeMB > MaxSizeMB {
		log.Warningf("requested TT size %d MB reduced to max %d MB", sizeMB, MaxSizeMB)
		sizeMB = MaxSizeMB
	}
	if sizeMB <= 0 {
		t.data = nil
		t.capacity = 0
		t.mask = 0
		return
	}
	bytes := uint64(sizeMB) * MB
	capacity := uint64(1) << uint(math.Floor(math.Log2(float64(bytes)/float64(EntrySize))))
	t.capacity = capacity
	t.mask = capacity - 1
	t.data = make([]Entry, capacity)
	log.Infof("tt resized to %d MB, %d entries (%d bytes each)", sizeMB, capacity, EntrySize)
	log.Debug(util.MemStat())
}

// Clear wipes every entry without changing capacity.
func (t *Table) Clear() {
	for i := range t.data {
		t.data[i] = Entry{}
	}
}

func (t *Table) index(key board.Key) uint64 {
	// The high bits of a 64-bit Zobrist key are as well distributed as
	// the low bits, so masking (rather than the classic Stockfish
	// "multiply the top half" trick) is enough at the table sizes this
	// engine targets.
	return uint64(key) & t.mask
}

// Probe looks up key and reports whether it was an exact hit (full key
// match, not just a bucket collision).
func (t *Table) Probe(key board.Key) (Entry, bool) {
	if t.capacity == 0 {
		return Entry{}, false
	}
	e := t.data[t.index(key)]
	return e, e.Key == key
}

// Store writes an entry for key, always replacing whatever was in the
// bucket (spec.md §4.H's replace-always policy - no depth- or
// age-based preference, since this engine's TT is small enough that
// aging logic wouldn't earn back its own bookkeeping cost).
func (t *Table) Store(key board.Key, move Move, value Value, depth int, bound Bound) {
	if assert.DEBUG {
		assert.Assert(depth >= 0, "tt Store: depth must be >= 0, got %d", depth)
	}
	if t.capacity == 0 {
		return
	}
	t.data[t.index(key)] = Entry{Key: key, Move: move, Value: value, Depth: int8(depth), Bound: bound}
}

// Capacity returns the number of entries the table can hold.
func (t *Table) Capacity() uint64 { return t.capacity }

// HashFull returns an approximate per-mille fill ratio, sampling the
// first 1000 buckets the way the "info hashfull" UCI field expects.
func (t *Table) HashFull() int {
	if t.capacity == 0 {
		return 0
	}
	sample := uint64(1000)
	if sample > t.capacity {
		sample = t.capacity
	}
	used := 0
	for i := uint64(0); i < sample; i++ {
		if t.data[i].Key != 0 {
			used++
		}
	}
	return used * 1000 / int(sample)
}

// ValueToTT adjusts a mate score found at search ply ply into a
// ply-independent score before storing it, and ValueFromTT reverses the
// adjustment on retrieval - both needed because a mate score's meaning
// ("mate in N plies from here") depends on how deep in the tree it was
// found, but the TT entry may be probed again from a different depth
// (spec.md §4.H).
func ValueToTT(v Value, ply int) Value {
	if v >= MateThreshold {
		return v + Value(ply)
	}
	if v <= -MateThreshold {
		return v - Value(ply)
	}
	return v
}

func ValueFromTT(v Value, ply int) Value {
	if v >= MateThreshold {
		return v - Value(ply)
	}
	if v <= -MateThreshold {
		return v + Value(ply)
	}
	return v
}
