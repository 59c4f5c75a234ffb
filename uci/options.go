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
	"strings"
)

// optionHashMB is the "Hash" option's default, per spec.md §6.
const optionHashMB = 64

const (
	optionHashMin = 1
	optionHashMax = 16384
)

// optionLines renders the "option ..." lines the "uci" command prints,
// one per supported UCI option.
func optionLines() []string {
	return []string{
		out.Sprintf("option name Hash type spin default %d min %d max %d",
			optionHashMB, optionHashMin, optionHashMax),
	}
}

// setOptionCommand parses "setoption name <name> value <value>" and
// dispatches on the option name. Unknown options are reported back as
// an info string rather than silently ignored.
func (h *Handler) setOptionCommand(tokens []string) {
	if len(tokens) < 3 || tokens[1] != "name" {
		h.sendInfoString("setoption: malformed command")
		return
	}

	i := 2
	var name strings.Builder
	for i < len(tokens) && tokens[i] != "value" {
		if name.Len() > 0 {
			name.WriteByte(' ')
		}
		name.WriteString(tokens[i])
		i++
	}

	value := ""
	if i < len(tokens) && tokens[i] == "value" && i+1 < len(tokens) {
		value = strings.Join(tokens[i+1:], " ")
	}

	switch name.String() {
	case "Hash":
		mb, err := strconv.Atoi(value)
		if err != nil {
			h.sendInfoString(out.Sprintf("setoption Hash: invalid value %q", value))
			return
		}
		if mb < optionHashMin {
			mb = optionHashMin
		}
		if mb > optionHashMax {
			mb = optionHashMax
		}
		h.searcher.Resize(mb)
	default:
		h.sendInfoString(out.Sprintf("setoption: no such option %q", name.String()))
	}
}
