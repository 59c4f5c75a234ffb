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

package board

import (
	. "github.com/corvidchess/corvid/types"
)

// Key is a Zobrist hash of a position, used as the transposition table
// and repetition-detection key. It needs all 64 bits for a good
// distribution over the search tree.
type Key uint64

type zobristTable struct {
	pieces         [PieceLength][SqLength]Key
	castlingRights [16]Key
	enPassantFile  [8]Key
	sideToMove     Key
}

var zobrist zobristTable

var zobristInitialized = false

// initZobrist fills the Zobrist table with a fixed seed so every run
// of the engine hashes positions identically - required for TT entries
// saved to a persistent book/cache to stay valid across restarts.
func initZobrist() {
	if zobristInitialized {
		return
	}
	r := NewPrnG(1070372)
	for pc := PieceNone; pc < PieceLength; pc++ {
		for sq := SqA1; sq <= SqH8; sq++ {
			zobrist.pieces[pc][sq] = Key(r.Rand64())
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobrist.castlingRights[cr] = Key(r.Rand64())
	}
	for f := FileA; f <= FileH; f++ {
		zobrist.enPassantFile[f] = Key(r.Rand64())
	}
	zobrist.sideToMove = Key(r.Rand64())
	zobristInitialized = true
}

func pieceKey(p Piece, sq Square) Key       { return zobrist.pieces[p][sq] }
func castlingKey(cr CastlingRights) Key     { return zobrist.castlingRights[cr] }
func enPassantKey(f File) Key               { return zobrist.enPassantFile[f] }
func sideToMoveKey() Key                    { return zobrist.sideToMove }
