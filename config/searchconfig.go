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

package config

// searchConfiguration holds every tunable named in the search spec
// (spec.md §4.I). All are safe defaults matching the spec's own
// constants; a config.toml may override any of them.
type searchConfiguration struct {
	// Transposition table
	UseTT  bool
	HashMB int // UCI "Hash" option default, converted to TT capacity

	// Move ordering
	UseKiller bool
	UseHistory bool

	// Null move pruning
	UseNullMove         bool
	NmpDepthReduction   int

	// Reverse futility pruning
	UseRFP   bool
	RfpScale int

	// Late move reductions
	UseLMR      bool
	LmrMinDepth int
	LmrA        float64
	LmrB        float64

	// Aspiration windows
	UseAspiration bool
	AspDelta      int
	AspMultiplier int

	// Stopping
	TimeCheckFrequency uint64
}

func init() {
	Settings.Search.UseTT = true
	Settings.Search.HashMB = 64

	Settings.Search.UseKiller = true
	Settings.Search.UseHistory = true

	Settings.Search.UseNullMove = true
	Settings.Search.NmpDepthReduction = 3

	Settings.Search.UseRFP = true
	Settings.Search.RfpScale = 100

	Settings.Search.UseLMR = true
	Settings.Search.LmrMinDepth = 2
	Settings.Search.LmrA = 0.8
	Settings.Search.LmrB = 0.4

	Settings.Search.UseAspiration = true
	Settings.Search.AspDelta = 30
	Settings.Search.AspMultiplier = 2

	Settings.Search.TimeCheckFrequency = 1024
}
