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

package datagen

import (
	"math/rand"

	"github.com/corvidchess/corvid/board"
	"github.com/corvidchess/corvid/eval"
	"github.com/corvidchess/corvid/movegen"
	"github.com/corvidchess/corvid/search"
	. "github.com/corvidchess/corvid/types"
)

// openingPlies is the number of random legal moves played from the
// start position before self-play search takes over, matching
// original_source/src/datagen.cpp's 8-or-9-ply random opening.
const openingPlies = 8

// SoftNodes and HardNodes are the per-move node budgets self-play uses
// in place of a wall-clock limit, carried over from
// original_source/src/datagen.cpp's fixed 5000/100000 search call.
// This port's search.Limits has a single Nodes field rather than
// separate soft/hard budgets, so HardNodes is what's actually passed;
// SoftNodes is kept only to document the original's intent.
const (
	SoftNodes int64 = 5000
	HardNodes int64 = 100000
)

// Generator plays self-play games and emits Marlinformat-encoded
// Games, grounded on original_source/src/datagen.cpp's
// play_datagen_game. It owns exactly one Searcher and reuses it across
// games (via Searcher.Clear between games), as SPEC_FULL.md's datagen
// section calls for.
type Generator struct {
	searcher  *search.Searcher
	rng       *rand.Rand
	hardNodes int64
}

// NewGenerator returns a Generator with a fresh Searcher sized ttMB
// megabytes, seeded from seed for reproducible openings, using
// HardNodes as the per-move node budget.
func NewGenerator(ttMB int, seed int64) *Generator {
	return NewGeneratorWithBudget(ttMB, seed, HardNodes)
}

// NewGeneratorWithBudget is NewGenerator with an explicit per-move
// node budget, for tests and for tuning throughput against record
// quality.
func NewGeneratorWithBudget(ttMB int, seed int64, hardNodes int64) *Generator {
	return &Generator{
		searcher:  search.NewSearcher(ttMB, eval.NewClassicalEvaluator()),
		rng:       rand.New(rand.NewSource(seed)),
		hardNodes: hardNodes,
	}
}

// PlayGame plays one self-play game to a natural ending (checkmate,
// stalemate, or a drawn position) and returns its Marlinformat
// encoding. The opening is replayed from scratch whenever the random
// walk reaches a position with no legal moves, so the recorded game
// always starts from a genuinely playable opening.
func (g *Generator) PlayGame() Game {
	var b board.Board
	var rep search.RepetitionStack

	for {
		b, rep = g.randomOpening()
		ml := movegen.GenerateLegal(&b)
		if ml.Len() > 0 {
			break
		}
	}
	start := b

	g.searcher.Clear()
	var moves []MoveRecord

	for {
		g.searcher.SetHistory(rep.Keys())
		stm := b.SideToMove()
		result := <-g.searcher.StartSearch(b, search.Limits{Nodes: g.hardNodes})
		if !result.BestMove.IsValid() {
			break
		}

		// ViriMove evals are stored from White's perspective
		// (original_source/src/datagen.cpp: "stm == WHITE ? value :
		// -value"), but the search itself reports from the mover's
		// perspective, so Black's scores get negated here.
		scoreForWhite := result.BestValue
		if stm == Black {
			scoreForWhite = -scoreForWhite
		}
		moves = append(moves, MoveRecord{
			Move: EncodeMove(result.BestMove),
			Eval: clampEval(scoreForWhite),
		})

		b = b.MakeMove(result.BestMove)
		rep.Push(b.Key())

		if b.IsDraw() || threefold(rep, b.Key()) {
			break
		}
		afterMl := movegen.GenerateLegal(&b)
		if afterMl.Len() == 0 {
			break
		}
	}

	return Game{Header: EncodeHeader(&start, g.outcome(&b, rep)), Moves: moves}
}

// threefold reports whether key has occurred at least three times on
// rep, the actual repetition rule original_source/src/datagen.cpp
// checks at the game-loop level - a stricter test than the single
// prior occurrence RepetitionStack.Contains uses for in-tree pruning.
func threefold(rep search.RepetitionStack, key board.Key) bool {
	count := 0
	for _, k := range rep.Keys() {
		if k == key {
			count++
		}
	}
	return count >= 3
}

// outcome determines the final Wdl once play has stopped at b: a draw
// whenever the stop was a repetition/fifty-move/insufficient-material
// draw or a stalemate, otherwise a mate against whichever side was to
// move at b (original_source/src/datagen.cpp's post-loop wdl logic).
func (g *Generator) outcome(b *board.Board, rep search.RepetitionStack) Wdl {
	if b.IsDraw() || threefold(rep, b.Key()) {
		return WdlDraw
	}
	if !b.IsInCheck(b.SideToMove()) {
		return WdlDraw // stalemate
	}
	if b.SideToMove() == White {
		return WdlLoss // White was mated
	}
	return WdlWin // Black was mated
}

// randomOpening plays openingPlies (or one extra, coin-flip) random
// legal moves from the start position and returns the resulting board
// plus the Zobrist history accumulated along the way.
func (g *Generator) randomOpening() (board.Board, search.RepetitionStack) {
	b := board.StartPosition()
	rep := search.NewRepetitionStack()
	rep.Push(b.Key())

	plies := openingPlies
	if g.rng.Intn(2) == 1 {
		plies++
	}

	for i := 0; i < plies; i++ {
		ml := movegen.GenerateLegal(&b)
		legal := ml.Slice()
		if len(legal) == 0 {
			return b, rep
		}
		m := legal[g.rng.Intn(len(legal))]
		b = b.MakeMove(m)
		rep.Push(b.Key())
	}

	return b, rep
}

// clampEval saturates a search Value into the int16 range a
// MoveRecord stores it in; mate scores are already well within range
// (Checkmate is 32766) so this only guards against Inf itself leaking
// out of an unfinished search.
func clampEval(v Value) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32767 {
		return -32767
	}
	return int16(v)
}
