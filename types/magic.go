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

// Magic holds the fancy-magic-bitboard lookup for a single square of a
// sliding piece (spec.md §4.B): the relevant blocker mask, the magic
// multiplier, and the square's slice of the shared attack table.
type Magic struct {
	Mask    Bitboard
	Number  Bitboard
	Attacks []Bitboard
	Shift   uint
}

func (m *Magic) index(occupied Bitboard) uint {
	return uint(((occupied & m.Mask) * m.Number) >> m.Shift)
}

var (
	bishopMagics [SqLength]Magic
	rookMagics   [SqLength]Magic

	bishopDirs = [4]Direction{Northeast, Southeast, Southwest, Northwest}
	rookDirs   = [4]Direction{North, East, South, West}
)

func initMagics() {
	// Seeds picked so the xorshift search below lands on a valid magic
	// for every square quickly; one seed per rank, as in the classic
	// fancy-magic construction.
	seeds := [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}
	findMagics(&bishopMagics, bishopDirs, seeds, 9)
	findMagics(&rookMagics, rookDirs, seeds, 12)
}

// findMagics computes, for every square, the relevant occupancy mask,
// then searches for a magic multiplier that maps every blocker subset
// of that mask (enumerated via the carry-rippler trick) to a unique
// index into a table of the requested size, verifying each candidate
// against the classical ray-cast attack before accepting it.
func findMagics(magics *[SqLength]Magic, dirs [4]Direction, seeds [8]uint64, indexBits uint) {
	var occupancy, reference [4096]Bitboard
	var epoch [4096]int
	cnt := 0

	for sq := SqA1; sq <= SqH8; sq++ {
		edges := ((rankBb[Rank1] | rankBb[Rank8]) &^ sq.RankOf().Bb()) |
			((fileBb[FileA] | fileBb[FileH]) &^ sq.FileOf().Bb())
		mask := slidingAttack(dirs, sq, BbZero) &^ edges
		shift := uint(64 - mask.PopCount())

		m := &magics[sq]
		m.Mask = mask
		m.Shift = shift

		size := 0
		var b Bitboard
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(dirs, sq, b)
			size++
			b = (b - mask) & mask
			if b == 0 {
				break
			}
		}
		m.Attacks = make([]Bitboard, 1<<indexBits)

		rng := NewPrnG(seeds[sq.RankOf()])
		for i := 0; i < size; {
			var candidate Bitboard
			for {
				candidate = Bitboard(rng.SparseRand())
				if ((candidate * mask) >> 56).PopCount() >= 6 {
					break
				}
			}
			m.Number = candidate
			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.Attacks[idx] = reference[i]
				} else if m.Attacks[idx] != reference[i] {
					break // collision with a different attack set: retry
				}
			}
		}
	}
}

// slidingAttack ray-casts along dirs from sq until it leaves the board
// or hits a blocker in occupied (classical attack computation, used
// only to populate the magic tables and verify candidates at startup).
func slidingAttack(dirs [4]Direction, sq Square, occupied Bitboard) Bitboard {
	var attacks Bitboard
	for _, d := range dirs {
		s := sq
		for {
			next := s.To(d)
			if !next.IsValid() {
				break
			}
			attacks |= next.Bb()
			if occupied.Has(next) {
				break
			}
			s = next
		}
	}
	return attacks
}

// AttacksBb returns the squares attacked by a piece of type pt on sq,
// given the current board occupancy. occ is ignored for King and
// Knight. Calling with Pawn or PtNone is a programmer error (spec.md
// §4.B) and panics.
func AttacksBb(pt PieceType, sq Square, occ Bitboard) Bitboard {
	switch pt {
	case Bishop:
		m := &bishopMagics[sq]
		return m.Attacks[m.index(occ)]
	case Rook:
		m := &rookMagics[sq]
		return m.Attacks[m.index(occ)]
	case Queen:
		mb, mr := &bishopMagics[sq], &rookMagics[sq]
		return mb.Attacks[mb.index(occ)] | mr.Attacks[mr.index(occ)]
	case King, Knight:
		return pseudoAttacks[pt][sq]
	default:
		panic("AttacksBb: invalid piece type (must be Knight, Bishop, Rook, Queen or King)")
	}
}

// PrnG is a small xorshift64* generator used to search for magic
// numbers at startup.
type PrnG struct{ s uint64 }

// NewPrnG creates a generator seeded with seed (must be non-zero).
func NewPrnG(seed uint64) *PrnG {
	return &PrnG{s: seed}
}

func (r *PrnG) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// Rand64 returns the next pseudo-random 64-bit value, uniformly
// distributed over the full range (unlike SparseRand). Used wherever
// an ordinary random key is needed, e.g. Zobrist hashing.
func (r *PrnG) Rand64() uint64 {
	return r.rand64()
}

// SparseRand returns a pseudo-random value with roughly 1/8th of its
// bits set on average, which converges faster when searching for rook
// magics than a uniformly random 64-bit value.
func (r *PrnG) SparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}
