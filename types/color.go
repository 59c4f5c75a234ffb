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

package types

import "fmt"

// Side (called Color in the teacher engine) represents one of the two
// players.
type Side uint8

const (
	White Side = 0
	Black Side = 1
)

// Opposite returns the other side. Side/Opposite is an involution:
// c.Opposite().Opposite() == c.
func (c Side) Opposite() Side {
	return c ^ 1
}

// IsValid reports whether c is White or Black.
func (c Side) IsValid() bool {
	return c < 2
}

// String returns "w" or "b".
func (c Side) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		panic(fmt.Sprintf("invalid side %d", c))
	}
}

var pawnDirection = [2]Direction{North, South}

// PawnDirection returns the direction pawns of this side push toward:
// North for White, South for Black.
func (c Side) PawnDirection() Direction {
	return pawnDirection[c]
}

var promotionRank = [2]Rank{Rank8, Rank1}

// PromotionRank returns the rank on which this side's pawns promote.
func (c Side) PromotionRank() Rank {
	return promotionRank[c]
}

var pawnDoublePushRank = [2]Rank{Rank2, Rank7}

// PawnStartRank returns the rank this side's pawns start on.
func (c Side) PawnStartRank() Rank {
	return pawnDoublePushRank[c]
}
