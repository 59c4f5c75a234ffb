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

package uci

import (
	"strconv"
	"time"

	"github.com/corvidchess/corvid/search"
)

// goCommand parses a "go [movetime <ms>] [wtime <ms>] [btime <ms>]
// [winc <ms>] [binc <ms>] [nodes <n>] [depth <n>] [infinite]" command
// (spec.md §6) and starts a search over the current position.
func (h *Handler) goCommand(tokens []string) {
	limits := search.NewLimits()

	i := 1
	for i < len(tokens) {
		tok := tokens[i]
		i++
		switch tok {
		case "infinite":
			limits.Infinite = true
		case "movetime":
			i, limits.MoveTime = h.parseMs(tokens, i)
		case "wtime":
			i, limits.WhiteTime = h.parseMs(tokens, i)
		case "btime":
			i, limits.BlackTime = h.parseMs(tokens, i)
		case "winc":
			i, limits.WhiteInc = h.parseMs(tokens, i)
		case "binc":
			i, limits.BlackInc = h.parseMs(tokens, i)
		case "depth":
			if i < len(tokens) {
				if d, err := strconv.Atoi(tokens[i]); err == nil {
					limits.Depth = d
				} else {
					h.sendInfoString(out.Sprintf("go: invalid depth %q", tokens[i]))
				}
				i++
			}
		case "nodes":
			if i < len(tokens) {
				if n, err := strconv.ParseInt(tokens[i], 10, 64); err == nil {
					limits.Nodes = n
				} else {
					h.sendInfoString(out.Sprintf("go: invalid nodes %q", tokens[i]))
				}
				i++
			}
		default:
			// unrecognized subcommand (e.g. "ponder", "searchmoves",
			// "mate"): spec.md's UCI surface doesn't define these, so
			// they are silently skipped rather than rejected outright.
		}
	}

	h.searcher.SetHistory(h.history)
	ch := h.searcher.StartSearch(h.board, limits)
	done := make(chan struct{})
	h.searchDone = done
	go h.awaitResult(ch, done)
}

func (h *Handler) parseMs(tokens []string, i int) (int, time.Duration) {
	if i >= len(tokens) {
		return i, 0
	}
	ms, err := strconv.ParseInt(tokens[i], 10, 64)
	if err != nil {
		h.sendInfoString(out.Sprintf("go: invalid time value %q", tokens[i]))
		return i + 1, 0
	}
	return i + 1, time.Duration(ms) * time.Millisecond
}

func (h *Handler) awaitResult(ch <-chan search.Result, done chan<- struct{}) {
	result := <-ch
	h.send(out.Sprintf("bestmove %s", result.BestMove.Uci()))
	close(done)
}

// sendIterationInfo is the Searcher.OnIteration hook: it turns a
// completed iterative-deepening depth into the "info ..." line spec.md
// §6 specifies.
func (h *Handler) sendIterationInfo(r search.Result) {
	nps := int64(0)
	if r.Time > 0 {
		nps = r.Nodes * int64(time.Second) / int64(r.Time)
	}
	h.send(out.Sprintf("info depth %d nodes %d nps %d hashfull %d score %s time %d pv %s",
		r.Depth, r.Nodes, nps, h.searcher.HashFull(), r.BestValue.UciString(),
		r.Time.Milliseconds(), r.BestMove.Uci()))
}
