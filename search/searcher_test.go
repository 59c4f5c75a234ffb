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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/board"
	"github.com/corvidchess/corvid/eval"
	. "github.com/corvidchess/corvid/types"
)

func newTestSearcher() *Searcher {
	return NewSearcher(1, eval.NewClassicalEvaluator())
}

func searchSync(t *testing.T, s *Searcher, b board.Board, limits Limits) Result {
	t.Helper()
	ch := s.StartSearch(b, limits)
	select {
	case r := <-ch:
		return r
	case <-time.After(10 * time.Second):
		t.Fatal("search did not finish in time")
		return Result{}
	}
}

func TestFindsMateInOne(t *testing.T) {
	s := newTestSearcher()
	b, err := board.FromFEN("7k/5Q2/6K1/8/8/8/8/8 w - - 0 1")
	require.NoError(t, err)

	result := searchSync(t, s, b, Limits{Depth: 4})

	assert.True(t, result.BestValue.IsMate())
	assert.Equal(t, 1, result.BestValue.MateInMoves())
}

func TestFindsHangingQueenCapture(t *testing.T) {
	s := newTestSearcher()
	// White queen on d1 can take the undefended black queen on d8.
	b, err := board.FromFEN("3q3k/8/8/8/8/8/8/3Q3K w - - 0 1")
	require.NoError(t, err)

	result := searchSync(t, s, b, Limits{Depth: 3})

	assert.Equal(t, SqD1, result.BestMove.From())
	assert.Equal(t, SqD8, result.BestMove.To())
}

func TestRespectsNodeLimit(t *testing.T) {
	s := newTestSearcher()
	b := board.StartPosition()

	result := searchSync(t, s, b, Limits{Nodes: 500})

	assert.LessOrEqual(t, result.Nodes, int64(5000))
	assert.NotEqual(t, MoveNone, result.BestMove)
}

func TestStopCancelsSearchPromptly(t *testing.T) {
	s := newTestSearcher()
	b := board.StartPosition()

	ch := s.StartSearch(b, Limits{Depth: MaxPly - 1})
	time.Sleep(20 * time.Millisecond)
	s.Stop()

	select {
	case result := <-ch:
		assert.NotEqual(t, MoveNone, result.BestMove)
	case <-time.After(5 * time.Second):
		t.Fatal("search did not stop promptly")
	}
}

func TestIterativeDeepeningReportsIncreasingDepth(t *testing.T) {
	s := newTestSearcher()
	b := board.StartPosition()

	var depths []int
	s.OnIteration = func(r Result) {
		depths = append(depths, r.Depth)
	}

	searchSync(t, s, b, Limits{Depth: 4})

	require.NotEmpty(t, depths)
	for i, d := range depths {
		assert.Equal(t, i+1, d)
	}
}

func TestDrawnPositionScoresAsDraw(t *testing.T) {
	s := newTestSearcher()
	// Bare kings: no legal mating material, immediately a draw.
	b, err := board.FromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	result := searchSync(t, s, b, Limits{Depth: 3})

	assert.Equal(t, ValueDraw, result.BestValue)
}

func TestIsSearchingReflectsLifecycle(t *testing.T) {
	s := newTestSearcher()
	b := board.StartPosition()

	assert.False(t, s.IsSearching())
	ch := s.StartSearch(b, Limits{Depth: MaxPly - 1})
	assert.True(t, s.IsSearching())
	s.Stop()
	<-ch
	s.Wait()
	assert.False(t, s.IsSearching())
}

func TestClearResetsTablesWithoutPanicking(t *testing.T) {
	s := newTestSearcher()
	b := board.StartPosition()
	_ = searchSync(t, s, b, Limits{Depth: 2})
	s.Clear()
	result := searchSync(t, s, b, Limits{Depth: 2})
	assert.NotEqual(t, MoveNone, result.BestMove)
}

func TestLmrReductionGrowsWithDepthAndMoveIndex(t *testing.T) {
	shallow := lmrReduction(3, 5)
	deep := lmrReduction(8, 5)
	assert.GreaterOrEqual(t, deep, shallow)

	early := lmrReduction(6, 1)
	late := lmrReduction(6, 20)
	assert.GreaterOrEqual(t, late, early)
}
