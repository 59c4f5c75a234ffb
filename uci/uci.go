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

// Package uci implements the UCI protocol front-end: reading commands
// from an input stream, driving a board.Board and a search.Searcher in
// response, and writing UCI-formatted replies to an output stream. The
// core engine packages (board, movegen, search) know nothing about the
// UCI text protocol; this package is the only thing that translates
// between the two.
package uci

import (
	"bufio"
	"bytes"
	"os"
	"regexp"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidchess/corvid/board"
	"github.com/corvidchess/corvid/eval"
	"github.com/corvidchess/corvid/logging"
	"github.com/corvidchess/corvid/movegen"
	"github.com/corvidchess/corvid/search"
	. "github.com/corvidchess/corvid/types"
	"github.com/corvidchess/corvid/version"
)

var out = message.NewPrinter(language.English)
var log = logging.GetLog("uci")
var uciLog = logging.GetUciLog()

// Handler owns the position and searcher a UCI session drives, plus
// the input/output streams it talks to the GUI on.
type Handler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	board    board.Board
	history  []board.Key
	searcher *search.Searcher

	// searchDone is closed once the most recent "go" command's bestmove
	// line has been written - nil until the first "go". Exposed only to
	// let tests wait for an async search deterministically instead of
	// racing Searcher.Wait, which unblocks as soon as the search
	// goroutine itself returns, before awaitResult has printed anything.
	searchDone chan struct{}
}

// NewHandler creates a Handler reading from stdin and writing to
// stdout, with a fresh Searcher over a classical evaluator.
func NewHandler() *Handler {
	h := &Handler{
		InIo:     bufio.NewScanner(os.Stdin),
		OutIo:    bufio.NewWriter(os.Stdout),
		board:    board.StartPosition(),
		searcher: search.NewSearcher(optionHashMB, eval.NewClassicalEvaluator()),
	}
	h.searcher.OnIteration = h.sendIterationInfo
	return h
}

// Loop reads commands from InIo until "quit" is received.
func (h *Handler) Loop() {
	for h.InIo.Scan() {
		if h.handle(h.InIo.Text()) {
			return
		}
	}
}

// Command runs a single UCI command and returns everything it wrote,
// without disturbing the Handler's real OutIo. Mostly useful for
// testing one command at a time instead of driving the full Loop.
func (h *Handler) Command(cmd string) string {
	real := h.OutIo
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)
	h.handle(cmd)
	_ = h.OutIo.Flush()
	h.OutIo = real
	return buf.String()
}

var whitespace = regexp.MustCompile(`\s+`)

func (h *Handler) handle(cmd string) bool {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return false
	}
	uciLog.Infof("<< %s", cmd)
	tokens := whitespace.Split(cmd, -1)
	switch tokens[0] {
	case "quit":
		return true
	case "uci":
		h.uciCommand()
	case "isready":
		h.send("readyok")
	case "ucinewgame":
		h.board = board.StartPosition()
		h.history = nil
		h.searcher.Clear()
	case "setoption":
		h.setOptionCommand(tokens)
	case "position":
		h.positionCommand(tokens)
	case "go":
		h.goCommand(tokens)
	case "stop":
		h.searcher.Stop()
	case "debug", "register", "ponderhit":
		// acknowledged, no behavior defined for this front-end
	default:
		log.Warningf("unknown command: %s", cmd)
	}
	return false
}

func (h *Handler) uciCommand() {
	h.send("id name corvid " + version.Version())
	h.send("id author the corvid contributors")
	for _, line := range optionLines() {
		h.send(line)
	}
	h.send("uciok")
}

// positionCommand rebuilds h.board from "startpos" or a FEN, then
// replays any trailing "moves" by matching each UCI move string
// against the pseudo-legal move list and accepting only a match that
// movegen.IsLegal passes (spec.md §6).
func (h *Handler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		h.sendInfoString("position: missing startpos/fen")
		return
	}

	i := 1
	var b board.Board
	switch tokens[i] {
	case "startpos":
		b = board.StartPosition()
		i++
	case "fen":
		i++
		start := i
		for i < len(tokens) && tokens[i] != "moves" {
			i++
		}
		fen := strings.Join(tokens[start:i], " ")
		parsed, err := board.FromFEN(fen)
		if err != nil {
			h.sendInfoString(out.Sprintf("position: invalid fen %q: %v", fen, err))
			return
		}
		b = parsed
	default:
		h.sendInfoString("position: expected 'startpos' or 'fen'")
		return
	}

	history := make([]board.Key, 0, 64)
	history = append(history, b.Key())

	if i < len(tokens) && tokens[i] == "moves" {
		i++
		for ; i < len(tokens); i++ {
			m := findMove(&b, tokens[i])
			if !m.IsValid() {
				h.sendInfoString(out.Sprintf("position: illegal move %q", tokens[i]))
				return
			}
			b = b.MakeMove(m)
			history = append(history, b.Key())
		}
	}

	h.board = b
	h.history = history
}

// findMove resolves a UCI move string to the legal move it names,
// searching the pseudo-legal list and returning MoveNone unless the
// match passes movegen.IsLegal. It relies on Move.Uci's rendering being
// canonical so a plain string match is enough (spec.md §6: castling/en passant are encoded
// as the king/pawn move, nothing special-cased here).
func findMove(b *board.Board, uciStr string) Move {
	ml := movegen.GeneratePseudoLegal(b, movegen.GenAll)
	for _, m := range ml.Slice() {
		if m.Uci() == uciStr && movegen.IsLegal(b, m) {
			return m
		}
	}
	return MoveNone
}

func (h *Handler) sendInfoString(s string) {
	h.send(out.Sprintf("info string %s", s))
}

func (h *Handler) send(s string) {
	uciLog.Infof(">> %s", s)
	_, _ = h.OutIo.WriteString(s + "\n")
	_ = h.OutIo.Flush()
}
