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
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/board"
)

func TestUciCommandPrintsIdAndOk(t *testing.T) {
	h := NewHandler()
	result := h.Command("uci")
	assert.Contains(t, result, "id name corvid")
	assert.Contains(t, result, "option name Hash")
	assert.Contains(t, result, "uciok")
}

func TestIsReadyCommand(t *testing.T) {
	h := NewHandler()
	result := h.Command("isready")
	assert.Contains(t, result, "readyok")
}

func TestLoopStopsOnQuit(t *testing.T) {
	h := NewHandler()
	h.InIo = bufio.NewScanner(strings.NewReader("uci\nquit\n"))
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)
	h.Loop()
	assert.Contains(t, buf.String(), "uciok")
}

func TestPositionStartposCommand(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos")
	assert.Equal(t, board.StartFen, h.board.Fen())
}

func TestPositionFenCommand(t *testing.T) {
	h := NewHandler()
	fen := "4k3/8/8/8/8/8/8/4K2R w K - 0 1"
	h.Command("position fen " + fen)
	assert.Equal(t, fen, h.board.Fen())
}

func TestPositionWithMovesAppliesThem(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos moves e2e4 e7e5")

	want, err := board.FromFEN("rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 3")
	require.NoError(t, err)
	assert.Equal(t, want.Key(), h.board.Key())
}

func TestPositionRejectsIllegalMove(t *testing.T) {
	h := NewHandler()
	result := h.Command("position startpos moves e2e5")
	assert.Contains(t, result, "info string")
	assert.Equal(t, board.StartFen, h.board.Fen())
}

func TestSetOptionHashIsAcceptedSilently(t *testing.T) {
	h := NewHandler()
	result := h.Command("setoption name Hash value 1")
	assert.Empty(t, result)
}

func TestGoCommandReportsBestmove(t *testing.T) {
	h := NewHandler()
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)

	h.Command("position startpos")
	h.handle("go depth 3")
	<-h.searchDone

	assert.Contains(t, buf.String(), "bestmove")
	assert.Contains(t, buf.String(), "info depth")
}

func TestStopEndsAnInfiniteSearchPromptly(t *testing.T) {
	h := NewHandler()
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)

	h.Command("position startpos")
	h.handle("go infinite")
	h.handle("stop")
	<-h.searchDone

	assert.Contains(t, buf.String(), "bestmove")
}
