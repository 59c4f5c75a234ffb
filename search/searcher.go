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

// Package search implements the engine's PVS/negamax searcher:
// iterative deepening with aspiration windows on top of a negamax core
// that itself does quiescence search, transposition-table probing,
// null-move and reverse-futility pruning, late move reductions, and
// killer/history move ordering.
//
// The search tree is built by copying board.Board, never by mutating
// and unmaking a move in place - every negamax/qsearch call receives
// its own Board value and hands a fresh one to its children. There is
// therefore no undo stack anywhere in this package, unlike an
// undo-stack based engine.
package search

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidchess/corvid/board"
	"github.com/corvidchess/corvid/config"
	"github.com/corvidchess/corvid/eval"
	"github.com/corvidchess/corvid/logging"
	"github.com/corvidchess/corvid/tt"
	. "github.com/corvidchess/corvid/types"
)

var out = message.NewPrinter(language.English)
var log = logging.GetLog("search")

// Searcher owns every piece of mutable search state: the transposition
// table, killer/history tables and the repetition stack. It is not
// safe for two searches to run concurrently on the same Searcher - the
// isRunning semaphore enforces that the same way a chess engine's UCI
// loop only ever runs one search at a time.
type Searcher struct {
	tt      *tt.Table
	eval    eval.Evaluator
	killers killerTable
	history historyTable
	rep     RepetitionStack

	isRunning  *semaphore.Weighted
	cancelFlag atomic.Bool

	nodes     int64
	startTime time.Time
	deadline  time.Time
	hasDeadline bool
	hardNodes int64

	bestRootMove  Move
	bestRootValue Value

	// OnIteration, if set, is called once per completed (non-cancelled)
	// iterative-deepening depth - the hook the UCI front-end uses to
	// print "info depth ... pv ..." lines without this package knowing
	// anything about UCI's text format.
	OnIteration func(Result)
}

// NewSearcher creates a Searcher with a transposition table sized
// ttSizeMB and the given evaluator.
func NewSearcher(ttSizeMB int, evaluator eval.Evaluator) *Searcher {
	return &Searcher{
		tt:        tt.NewTable(ttSizeMB),
		eval:      evaluator,
		rep:       NewRepetitionStack(),
		isRunning: semaphore.NewWeighted(1),
	}
}

// Clear resets every piece of search state that should not survive a
// UCI "ucinewgame" command: the transposition table, killer and
// history tables. Game history (the repetition stack) is the caller's
// responsibility to rebuild via SetHistory.
func (s *Searcher) Clear() {
	s.tt.Clear()
	s.killers.clear()
	s.history.clear()
}

// Resize reallocates the transposition table to sizeMB megabytes.
func (s *Searcher) Resize(sizeMB int) {
	s.tt.Resize(sizeMB)
}

// HashFull reports the transposition table's fill level in per-mille,
// the way UCI's "info hashfull" field wants it.
func (s *Searcher) HashFull() int {
	return s.tt.HashFull()
}

// SetHistory replaces the repetition stack with the Zobrist keys of
// every position played so far in the game (from the game's start or
// the last irreversible move, whichever a caller chooses to track) -
// called by the UCI "go" handler before each search starts.
func (s *Searcher) SetHistory(keys []board.Key) {
	s.rep = NewRepetitionStack()
	for _, k := range keys {
		s.rep.Push(k)
	}
}

// IsSearching reports whether a search is currently running.
func (s *Searcher) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// Stop requests the running search to cancel as soon as its next
// checkTimeUp poll observes the flag - safe to call concurrently
// with a running search, per spec.md §5.
func (s *Searcher) Stop() {
	s.cancelFlag.Store(true)
}

// Wait blocks until the running search (if any) has finished.
func (s *Searcher) Wait() {
	_ = s.isRunning.Acquire(context.Background(), 1)
	s.isRunning.Release(1)
}

// StartSearch begins searching b under limits in its own goroutine and
// returns immediately; call Wait or rely on OnIteration/the returned
// channel to learn when it finishes. position b is copied - the caller
// keeps whatever Board it already had. StartSearch does not return
// until the goroutine has finished initializing its own state (deadline,
// node budget, and so on), so a Stop issued right after StartSearch
// returns can never race the initialization it is meant to interrupt.
func (s *Searcher) StartSearch(b board.Board, limits Limits) <-chan Result {
	resultCh := make(chan Result, 1)
	initDone := make(chan struct{})
	go s.run(b, limits, resultCh, initDone)
	<-initDone
	return resultCh
}

func (s *Searcher) run(b board.Board, limits Limits, resultCh chan<- Result, initDone chan<- struct{}) {
	if !s.isRunning.TryAcquire(1) {
		log.Error("search already running")
		close(initDone)
		close(resultCh)
		return
	}
	defer s.isRunning.Release(1)

	s.nodes = 0
	s.cancelFlag.Store(false)
	s.bestRootMove = MoveNone
	s.bestRootValue = ValueZero
	s.startTime = time.Now()

	s.hardNodes = limits.Nodes
	if limits.TimeControl() {
		budget := limits.budget(b.SideToMove())
		s.deadline = s.startTime.Add(budget)
		s.hasDeadline = true
	} else {
		s.hasDeadline = false
	}

	close(initDone)

	result := s.iterativeDeepening(b, limits)
	result.Time = time.Since(s.startTime)
	log.Info(out.Sprintf("search finished after %d ms, depth %d, %d nodes",
		result.Time.Milliseconds(), result.Depth, result.Nodes))

	resultCh <- result
	close(resultCh)
}

// isCancelled reports whether Stop has been called or a poll inside
// checkTimeUp has already decided the search must end.
func (s *Searcher) isCancelled() bool {
	return s.cancelFlag.Load()
}

// checkTimeUp polls the hard node limit and, every TimeCheckFrequency
// nodes, the deadline - cheap enough to call from every negamax/qsearch
// node without a background goroutine racing the search (spec.md §5:
// "the cancellation check is polling, not preemption").
func (s *Searcher) checkTimeUp() bool {
	if s.isCancelled() {
		return true
	}
	if s.hardNodes > 0 && s.nodes >= s.hardNodes {
		s.cancelFlag.Store(true)
		return true
	}
	if s.hasDeadline && uint64(s.nodes)%config.Settings.Search.TimeCheckFrequency == 0 {
		if time.Now().After(s.deadline) {
			s.cancelFlag.Store(true)
			return true
		}
	}
	return false
}

// iterativeDeepening drives the search one depth at a time, widening an
// aspiration window around the previous iteration's value (spec.md
// §4.I). Depth 1 always searches the full [-Inf, +Inf] window since
// there is no prior value to center a window on.
func (s *Searcher) iterativeDeepening(b board.Board, limits Limits) Result {
	maxDepth := MaxPly - 1
	if limits.Depth > 0 && limits.Depth < maxDepth {
		maxDepth = limits.Depth
	}

	result := Result{BestMove: MoveNone, BestValue: ValueDraw}

	for depth := 1; depth <= maxDepth; depth++ {
		var value Value
		if depth == 1 || !config.Settings.Search.UseAspiration {
			value = s.negamax(b, depth, 0, -Inf, Inf, true, true)
		} else {
			delta := Value(config.Settings.Search.AspDelta)
			alpha := s.bestRootValue - delta
			beta := s.bestRootValue + delta
			for {
				value = s.negamax(b, depth, 0, alpha, beta, true, true)
				if s.isCancelled() {
					break
				}
				if value <= alpha {
					alpha -= delta
				} else if value >= beta {
					beta += delta
				} else {
					break
				}
				delta *= Value(config.Settings.Search.AspMultiplier)
				if alpha < -Inf {
					alpha = -Inf
				}
				if beta > Inf {
					beta = Inf
				}
			}
		}

		if s.isCancelled() {
			break
		}

		s.bestRootValue = value
		result = Result{
			BestMove:  s.bestRootMove,
			BestValue: value,
			Depth:     depth,
			Nodes:     s.nodes,
			Time:      time.Since(s.startTime),
		}
		if s.OnIteration != nil {
			s.OnIteration(result)
		}

		if limits.Nodes > 0 && s.nodes >= limits.Nodes {
			break
		}
		if value.IsMate() {
			break
		}
	}

	result.Nodes = s.nodes
	return result
}
