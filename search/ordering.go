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
	"sort"

	"github.com/corvidchess/corvid/board"
	"github.com/corvidchess/corvid/movegen"
	. "github.com/corvidchess/corvid/types"
)

// Move ordering scores, per spec.md §4.I. A transposition move scores
// the u32 maximum, ahead of everything else. A capture scores
// scoreCaptureBase plus its MVV-LVA term and a killer scores
// scoreKiller, the same base value, so captures with a positive MVV-LVA
// term sort ahead of the killers while king captures (negative term)
// sort just below them. History scores are not capped, so a quiet move
// with enough accumulated history can pass the killers and captures.
const (
	scoreTTMove   = ^uint32(0)
	scoreCaptureBase uint32 = 1_000_000_000
	scoreKiller   uint32 = 1_000_000_000
)

// mvvLva[victim][attacker] favors capturing a valuable piece with a
// cheap one: victim value weighted by 10, attacker value subtracted so
// that among equal victims the cheapest attacker sorts first.
var mvvLva [PtLength][PtLength]int32

func init() {
	for victim := Pawn; victim < PtLength; victim++ {
		for attacker := Pawn; attacker < PtLength; attacker++ {
			mvvLva[victim][attacker] = int32(victim.ValueOf()*10 - attacker.ValueOf())
		}
	}
}

// killerTable holds, per ply, the two most recent quiet moves that
// caused a beta cutoff - tried early in sibling nodes at the same ply
// since a move that refuted one line often refutes another.
type killerTable struct {
	moves [MaxPly][2]Move
}

func (k *killerTable) store(ply int, m Move) {
	if ply >= MaxPly {
		return
	}
	if k.moves[ply][0] == m {
		return
	}
	k.moves[ply][1] = k.moves[ply][0]
	k.moves[ply][0] = m
}

func (k *killerTable) isKiller(ply int, m Move) bool {
	if ply >= MaxPly {
		return false
	}
	return m == k.moves[ply][0] || m == k.moves[ply][1]
}

func (k *killerTable) clear() {
	*k = killerTable{}
}

// historyTable rewards quiet moves (indexed from/to, not piece-aware)
// that have caused cutoffs before, weighted by the square of the depth
// at which they did so - deeper cutoffs are stronger evidence.
type historyTable struct {
	scores [SqLength][SqLength]int32
}

func (h *historyTable) add(from, to Square, depth int) {
	h.scores[from][to] += int32(depth * depth)
}

func (h *historyTable) get(from, to Square) int32 {
	return h.scores[from][to]
}

func (h *historyTable) clear() {
	*h = historyTable{}
}

// orderedMove pairs a move with its ordering score so scoring and
// sorting stay a single pass over the move list.
type orderedMove struct {
	move  Move
	score uint32
	index int // original generation order, for a stable tie-break
}

// orderMoves scores every move in ml for the node described by b, ttMove,
// ply and the searcher's killer/history tables, then stable-sorts them
// descending by score - the single source of move ordering the whole
// engine uses (spec.md's move-ordering stability note: ties must break
// deterministically by source index, which the index comparison and
// sort.SliceStable both guarantee here; ties occur between the two
// killers and between quiets with equal history).
func (s *Searcher) orderMoves(b *board.Board, ml movegen.MoveList, ttMove Move, ply int) []orderedMove {
	n := ml.Len()
	scored := make([]orderedMove, n)
	for i := 0; i < n; i++ {
		m := ml.At(i)
		scored[i] = orderedMove{move: m, index: i, score: s.scoreMove(b, m, ttMove, ply)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].index < scored[j].index
	})
	return scored
}

func (s *Searcher) scoreMove(b *board.Board, m Move, ttMove Move, ply int) uint32 {
	if m == ttMove {
		return scoreTTMove
	}
	if m.IsCapture() {
		victim := b.PieceOn(m.To()).TypeOf()
		if m.IsEnPassant() {
			victim = Pawn
		}
		attacker := b.PieceOn(m.From()).TypeOf()
		return uint32(int64(scoreCaptureBase) + int64(mvvLva[victim][attacker]))
	}
	if s.killers.isKiller(ply, m) {
		return scoreKiller
	}
	h := s.history.get(m.From(), m.To())
	if h < 0 {
		return 0
	}
	return uint32(h)
}
