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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayGameProducesAWellFormedRecord(t *testing.T) {
	g := NewGeneratorWithBudget(1, 1, 2000)
	game := g.PlayGame()

	assert.NotZero(t, game.Header.Occupancy, "a played-out game still has at least the two kings on the board")
	assert.Contains(t, []Wdl{WdlLoss, WdlDraw, WdlWin}, game.Header.Wdl)

	var buf bytes.Buffer
	require.NoError(t, game.WriteTo(&buf))

	got, err := ReadGame(&buf)
	require.NoError(t, err)
	assert.Equal(t, game, got)
}

func TestPlayGameIsDeterministicForAFixedSeed(t *testing.T) {
	g1 := NewGeneratorWithBudget(1, 42, 1500)
	g2 := NewGeneratorWithBudget(1, 42, 1500)

	game1 := g1.PlayGame()
	game2 := g2.PlayGame()

	assert.Equal(t, game1.Header, game2.Header)
	assert.Equal(t, len(game1.Moves), len(game2.Moves))
}

func TestGeneratorReusesSearcherAcrossGames(t *testing.T) {
	g := NewGeneratorWithBudget(1, 7, 1500)
	first := g.PlayGame()
	second := g.PlayGame()

	// Both calls must run to completion without panicking or deadlocking
	// on the shared Searcher - the regression this guards is Clear()
	// failing to reset state a second search call depends on.
	assert.Contains(t, []Wdl{WdlLoss, WdlDraw, WdlWin}, first.Header.Wdl)
	assert.Contains(t, []Wdl{WdlLoss, WdlDraw, WdlWin}, second.Header.Wdl)
}
