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

// Package eval turns a board.Board into a Value, the way the searcher
// scores leaf nodes. The engine is built around the Evaluator
// interface rather than a single free function so the search package
// never depends on a concrete evaluation implementation - useful for
// testing the searcher itself against a trivial material-only
// evaluator, and for the datagen package to plug in whatever
// evaluator a given self-play run wants.
package eval

import (
	"github.com/corvidchess/corvid/board"
	"github.com/corvidchess/corvid/config"
	. "github.com/corvidchess/corvid/types"
)

// Evaluator scores a position from the perspective of the side to
// move: positive favors the mover, negative favors the opponent.
type Evaluator interface {
	Evaluate(b *board.Board) Value
}

// GamePhaseMax is the game-phase weight total of a full initial army
// (2 rooks + 2 knights + 2 bishops + 1 queen, per side, matching
// types.PieceType.GamePhaseValue's weights).
const GamePhaseMax = 24

// ClassicalEvaluator is a hand-tuned material + piece-square-table
// evaluator with an optional mobility term, in the tradition of a
// classical (non-NNUE) chess engine's static evaluation function.
type ClassicalEvaluator struct{}

// NewClassicalEvaluator creates a ClassicalEvaluator. There is no
// per-instance state today, but the constructor keeps the call site
// symmetric with evaluators that do carry precomputed tables (a
// future pawn-structure cache, for instance).
func NewClassicalEvaluator() *ClassicalEvaluator {
	return &ClassicalEvaluator{}
}

// Evaluate scores b from the side to move's perspective.
func (e *ClassicalEvaluator) Evaluate(b *board.Board) Value {
	phase := gamePhase(b)
	phaseFactor := float64(phase) / float64(GamePhaseMax)
	if phaseFactor > 1 {
		phaseFactor = 1
	}

	value := e.material(b) + e.positional(b, phaseFactor)
	if config.Settings.Eval.UseMobility {
		value += e.mobility(b)
	}

	if b.SideToMove() == Black {
		value = -value
	}

	// Tempo bonus rewards whoever is to move, scaled down in the
	// endgame where zugzwang makes "it's your turn" worth less.
	value += Value(float64(config.Settings.Eval.Tempo) * phaseFactor)

	return value
}

func (e *ClassicalEvaluator) material(b *board.Board) Value {
	var v Value
	for pt := Pawn; pt < PtLength; pt++ {
		count := b.Pieces(White, pt).PopCount() - b.Pieces(Black, pt).PopCount()
		v += Value(count * pt.ValueOf())
	}
	return v
}

func (e *ClassicalEvaluator) positional(b *board.Board, phaseFactor float64) Value {
	var mg, eg int
	for c := White; c <= Black; c++ {
		sign := 1
		if c == Black {
			sign = -1
		}
		for pt := Pawn; pt < PtLength; pt++ {
			pieces := b.Pieces(c, pt)
			for pieces != 0 {
				sq := pieces.PopLsb()
				m, e := pieceSquareValue(pt, c, sq)
				mg += sign * m
				eg += sign * e
			}
		}
	}
	return Value(float64(mg)*phaseFactor + float64(eg)*(1-phaseFactor))
}

// mobility rewards the raw count of squares each side's knights,
// bishops and rooks attack (own-occupied squares included) - a cheap
// proxy for piece activity that does not require generating actual moves.
func (e *ClassicalEvaluator) mobility(b *board.Board) Value {
	occ := b.OccupiedAll()
	var whiteMob, blackMob int
	for _, pt := range [3]PieceType{Knight, Bishop, Rook} {
		whiteMob += countAttacks(b, pt, White, occ)
		blackMob += countAttacks(b, pt, Black, occ)
	}
	return Value((whiteMob - blackMob) * mobilityWeight)
}

const mobilityWeight = 2

func countAttacks(b *board.Board, pt PieceType, c Side, occ Bitboard) int {
	pieces := b.Pieces(c, pt)
	total := 0
	for pieces != 0 {
		sq := pieces.PopLsb()
		total += AttacksBb(pt, sq, occ).PopCount()
	}
	return total
}

func gamePhase(b *board.Board) int {
	phase := 0
	for c := White; c <= Black; c++ {
		for pt := Knight; pt <= Queen; pt++ {
			phase += b.Pieces(c, pt).PopCount() * pt.GamePhaseValue()
		}
	}
	return phase
}
