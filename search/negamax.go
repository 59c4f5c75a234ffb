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
	"math"

	"github.com/corvidchess/corvid/board"
	"github.com/corvidchess/corvid/config"
	"github.com/corvidchess/corvid/movegen"
	"github.com/corvidchess/corvid/tt"
	. "github.com/corvidchess/corvid/types"
)

// hasNonPawnMaterial reports whether us has any piece besides pawns and
// the king - the null-move precondition from spec.md §9's corrected
// reading ("not in check AND has non-king/non-pawn material"; the
// source's own phrasing ambiguously ORs the two, which would allow a
// null move while in check, an unsound position to pass the turn in).
func hasNonPawnMaterial(b *board.Board, us Side) bool {
	return b.Pieces(us, Knight)|b.Pieces(us, Bishop)|b.Pieces(us, Rook)|b.Pieces(us, Queen) != 0
}

// legalChild plays m on b and reports the resulting position together
// with whether the move was legal - one move application shared by the
// legality check and the recursive call, instead of making the move
// twice (once to test legality, once to recurse).
func legalChild(b *board.Board, m Move) (board.Board, bool) {
	us := b.SideToMove()
	after := b.MakeMove(m)
	return after, !after.IsInCheck(us)
}

// qsearch resolves the position down to a "quiet" state by only
// considering captures, so negamax's static evaluation at depth 0
// never mistakes a position with a hanging queen for a quiet leaf.
func (s *Searcher) qsearch(b board.Board, ply int, alpha, beta Value, isPV bool) Value {
	s.nodes++
	if s.checkTimeUp() {
		return ValueZero
	}

	standPat := s.eval.Evaluate(&b)
	if standPat >= beta {
		return standPat
	}
	if b.IsDraw() {
		return ValueDraw
	}
	if standPat > alpha {
		alpha = standPat
	}

	var ttMove Move
	if config.Settings.Search.UseTT && !isPV {
		if entry, ok := s.tt.Probe(b.Key()); ok {
			ttMove = entry.Move
			v := tt.ValueFromTT(entry.Value, ply)
			switch entry.Bound {
			case tt.BoundExact:
				return v
			case tt.BoundLower:
				if v >= beta {
					return v
				}
			case tt.BoundUpper:
				if v <= alpha {
					return v
				}
			}
		}
	}

	pseudo := movegen.GeneratePseudoLegal(&b, movegen.GenCaptures)
	ordered := s.orderMoves(&b, pseudo, ttMove, ply)

	bestValue := standPat
	bestMove := MoveNone
	bound := tt.BoundUpper

	for _, om := range ordered {
		m := om.move
		after, legal := legalChild(&b, m)
		if !legal {
			continue
		}
		value := -s.qsearch(after, ply+1, -beta, -alpha, isPV)
		if s.isCancelled() {
			return ValueZero
		}
		if value > bestValue {
			bestValue = value
			bestMove = m
			if value > alpha {
				alpha = value
				bound = tt.BoundExact
				if value >= beta {
					bound = tt.BoundLower
					break
				}
			}
		}
	}

	if config.Settings.Search.UseTT {
		s.tt.Store(b.Key(), bestMove, tt.ValueToTT(bestValue, ply), 0, bound)
	}
	return bestValue
}

// negamax is the main PVS search: it returns the value of b from the
// side to move's perspective, searched to depth plies, recording the
// best line's root move as a side effect when ply == 0.
func (s *Searcher) negamax(b board.Board, depth, ply int, alpha, beta Value, isPV bool, doNull bool) Value {
	if s.isCancelled() {
		return ValueZero
	}
	s.nodes++
	if s.checkTimeUp() {
		return ValueZero
	}

	if depth <= 0 {
		return s.qsearch(b, ply, alpha, beta, isPV)
	}

	if ply > 0 {
		if s.rep.Contains(b.Key()) || b.IsDraw() {
			return ValueDraw
		}
	}

	inCheck := b.IsInCheck(b.SideToMove())

	var ttMove Move
	if config.Settings.Search.UseTT && !isPV {
		if entry, ok := s.tt.Probe(b.Key()); ok {
			ttMove = entry.Move
			if int(entry.Depth) >= depth {
				v := tt.ValueFromTT(entry.Value, ply)
				switch entry.Bound {
				case tt.BoundExact:
					return v
				case tt.BoundLower:
					if v >= beta {
						return v
					}
				case tt.BoundUpper:
					if v <= alpha {
						return v
					}
				}
			}
		}
	}

	if config.Settings.Search.UseRFP && !isPV && !inCheck {
		staticEval := s.eval.Evaluate(&b)
		if staticEval.Abs() < MateThreshold && staticEval >= beta+Value(depth*config.Settings.Search.RfpScale) {
			return staticEval
		}
	}

	if config.Settings.Search.UseNullMove && !isPV && doNull && !inCheck &&
		hasNonPawnMaterial(&b, b.SideToMove()) {
		nullChild := b.MakeNullMove()
		reduced := depth - config.Settings.Search.NmpDepthReduction
		if reduced < 0 {
			reduced = 0
		}
		nullValue := -s.negamax(nullChild, reduced, ply+1, -beta, -beta+1, false, false)
		if s.isCancelled() {
			return ValueZero
		}
		if nullValue >= beta {
			return nullValue
		}
	}

	s.rep.Push(b.Key())

	pseudo := movegen.GeneratePseudoLegal(&b, movegen.GenAll)
	ordered := s.orderMoves(&b, pseudo, ttMove, ply)

	bestValue := -Inf
	bestMove := MoveNone
	bound := tt.BoundUpper
	movesSearched := 0
	newDepth := depth - 1
	lmrCutoffIndex := 0
	if ply == 0 {
		lmrCutoffIndex = 1
	}

	for _, om := range ordered {
		m := om.move
		child, legal := legalChild(&b, m)
		if !legal {
			continue
		}

		var value Value
		if config.Settings.Search.UseLMR && depth >= config.Settings.Search.LmrMinDepth &&
			movesSearched > lmrCutoffIndex && !inCheck {
			reduction := lmrReduction(depth, movesSearched)
			reducedDepth := newDepth - reduction
			if reducedDepth < 0 {
				reducedDepth = 0
			}
			if reducedDepth > newDepth {
				reducedDepth = newDepth
			}
			value = -s.negamax(child, reducedDepth, ply+1, -alpha-1, -alpha, false, true)
			if value > alpha && reducedDepth < newDepth {
				value = -s.negamax(child, newDepth, ply+1, -alpha-1, -alpha, false, true)
			}
		} else {
			value = -s.negamax(child, newDepth, ply+1, -alpha-1, -alpha, false, true)
		}

		if isPV && (movesSearched == 0 || value > alpha) {
			if s.isCancelled() {
				s.rep.Pop()
				return ValueZero
			}
			value = -s.negamax(child, newDepth, ply+1, -beta, -alpha, true, true)
		}

		movesSearched++

		if s.isCancelled() {
			s.rep.Pop()
			return ValueZero
		}

		if value > bestValue {
			bestValue = value
			bestMove = m
			if value > alpha {
				alpha = value
				bound = tt.BoundExact
				if value >= beta {
					bound = tt.BoundLower
					if m.IsQuiet() && ply < MaxPly {
						s.killers.store(ply, m)
						s.history.add(m.From(), m.To(), depth)
					}
					break
				}
			}
		}
	}

	s.rep.Pop()

	if movesSearched == 0 {
		if inCheck {
			bestValue = Value(ply) - Checkmate
		} else {
			bestValue = ValueDraw
		}
		bound = tt.BoundExact
	}

	if ply == 0 && bestMove != MoveNone {
		s.bestRootMove = bestMove
	}

	if config.Settings.Search.UseTT {
		s.tt.Store(b.Key(), bestMove, tt.ValueToTT(bestValue, ply), depth, bound)
	}

	return bestValue
}

// lmrReduction computes the late-move-reduction depth cut for the
// i-th move searched at depth (spec.md §4.I's exact formula).
func lmrReduction(depth, movesSearched int) int {
	a := config.Settings.Search.LmrA
	b := config.Settings.Search.LmrB
	r := a + b*math.Log(float64(depth))*math.Log(float64(maxInt(movesSearched+1, 1)))
	return int(math.Floor(r))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
