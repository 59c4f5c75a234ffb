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

// Package board represents a single chess position and the rules for
// moving from one position to the next.
//
// Board is a plain value type: MakeMove takes a Board by value and
// returns a new Board by value, with no undo stack. This trades the
// extra copy (64 bytes of mailbox plus a handful of bitboards, all
// stack-friendly) for a searcher that can fan out over goroutines or
// keep old positions around without ever worrying about an unmake
// call being skipped or mis-ordered.
package board

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/corvidchess/corvid/logging"
	. "github.com/corvidchess/corvid/types"
)

var log = logging.GetLog("board")

// StartFen is the FEN of the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Board is the complete, unique state of a chess position (everything
// but the move history needed for threefold repetition, which callers
// track externally by chaining Key() values - see spec.md's rationale
// for keeping repetition detection out of the position itself).
type Board struct {
	mailbox [SqLength]Piece

	piecesBb   [2][PtLength]Bitboard
	occupiedBb [2]Bitboard

	kingSquare [2]Square

	castlingRights CastlingRights
	epSquare       Square
	halfMoveClock  int
	fullMoveNumber int
	sideToMove     Side

	key Key
}

func init() {
	initZobrist()
}

// StartPosition returns the standard chess starting position.
func StartPosition() Board {
	b, err := FromFEN(StartFen)
	if err != nil {
		panic(fmt.Sprintf("board: start FEN failed to parse: %v", err))
	}
	return b
}

// FromFEN parses a FEN string into a Board. Only the piece placement
// field is mandatory; the remaining fields default to white to move,
// no castling rights, no en passant square, halfmove clock 0 and
// fullmove number 1, matching how engines are expected to tolerate
// abbreviated FENs from GUIs.
func FromFEN(fen string) (Board, error) {
	var b Board
	fen = strings.TrimSpace(fen)
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return b, errors.New("board: fen must not be empty")
	}

	if ok, _ := regexp.MatchString(`^[1-8pPnNbBrRqQkK/]+$`, fields[0]); !ok {
		return b, errors.New("board: fen piece placement contains invalid characters")
	}

	sq := SqA8
	for _, c := range fields[0] {
		switch {
		case c == '/':
			sq = sq.To(South).To(South)
		case c >= '1' && c <= '8':
			sq = Square(int(sq) + int(c-'0')*int(East))
		default:
			if sq > SqH8 {
				return b, errors.New("board: fen piece placement overruns a rank")
			}
			pc := pieceFromChar(c)
			if pc == PieceNone {
				return b, fmt.Errorf("board: invalid piece character %q", c)
			}
			b.putPiece(pc, sq)
			sq++
		}
	}
	if sq != SqA2 {
		return b, errors.New("board: fen piece placement does not cover exactly 64 squares")
	}

	b.sideToMove = White
	b.epSquare = SqNone
	b.fullMoveNumber = 1

	if len(fields) >= 2 {
		switch fields[1] {
		case "w":
			b.sideToMove = White
		case "b":
			b.sideToMove = Black
		default:
			return b, errors.New("board: fen side to move must be 'w' or 'b'")
		}
	}

	if len(fields) >= 3 {
		if ok, _ := regexp.MatchString(`^(K?Q?k?q?|-)$`, fields[2]); !ok {
			return b, errors.New("board: fen castling rights contains invalid characters")
		}
		if fields[2] != "-" {
			for _, c := range fields[2] {
				switch c {
				case 'K':
					b.castlingRights |= WhiteOO
				case 'Q':
					b.castlingRights |= WhiteOOO
				case 'k':
					b.castlingRights |= BlackOO
				case 'q':
					b.castlingRights |= BlackOOO
				}
			}
		}
	}

	if len(fields) >= 4 && fields[3] != "-" {
		b.epSquare = ParseSquare(fields[3])
		if b.epSquare == SqNone {
			return b, errors.New("board: invalid en passant square")
		}
		// Keep the square only when a pawn of the side to move can
		// capture onto it, the same rule MakeMove applies.
		if PawnAttacksBb(b.sideToMove.Opposite(), b.epSquare)&b.piecesBb[b.sideToMove][Pawn] == 0 {
			b.epSquare = SqNone
		}
	}

	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return b, errors.New("board: invalid halfmove clock")
		}
		b.halfMoveClock = n
	}

	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return b, errors.New("board: invalid fullmove number")
		}
		b.fullMoveNumber = n
	}

	b.key = b.computeKeyFromScratch()
	log.Debugf("parsed fen %q -> key %x", fen, b.key)
	return b, nil
}

// computeKeyFromScratch hashes the whole position; used only once, at
// FEN-parse time, after which MakeMove maintains the key incrementally.
func (b *Board) computeKeyFromScratch() Key {
	var k Key
	for sq := SqA1; sq <= SqH8; sq++ {
		if pc := b.mailbox[sq]; pc != PieceNone {
			k ^= pieceKey(pc, sq)
		}
	}
	k ^= castlingKey(b.castlingRights)
	if b.epSquare != SqNone {
		k ^= enPassantKey(b.epSquare.FileOf())
	}
	if b.sideToMove == Black {
		k ^= sideToMoveKey()
	}
	return k
}

// Key returns the Zobrist hash of the position.
func (b *Board) Key() Key { return b.key }

// SideToMove returns the side to move.
func (b *Board) SideToMove() Side { return b.sideToMove }

// CastlingRights returns the castling rights still available.
func (b *Board) CastlingRights() CastlingRights { return b.castlingRights }

// EnPassantSquare returns the en passant target square, or SqNone.
func (b *Board) EnPassantSquare() Square { return b.epSquare }

// HalfMoveClock returns the halfmove clock (plies since the last
// capture or pawn move), used for the fifty-move rule.
func (b *Board) HalfMoveClock() int { return b.halfMoveClock }

// FullMoveNumber returns the FEN fullmove counter. It is tracked for
// FEN round-tripping and UCI display only; nothing in the search or
// move generator reads it.
func (b *Board) FullMoveNumber() int { return b.fullMoveNumber }

// PieceOn returns the piece occupying sq, or PieceNone.
func (b *Board) PieceOn(sq Square) Piece { return b.mailbox[sq] }

// KingSquare returns the square of c's king.
func (b *Board) KingSquare(c Side) Square { return b.kingSquare[c] }

// Pieces returns the bitboard of c's pieces of type pt.
func (b *Board) Pieces(c Side, pt PieceType) Bitboard { return b.piecesBb[c][pt] }

// Occupied returns the bitboard of all pieces of side c.
func (b *Board) Occupied(c Side) Bitboard { return b.occupiedBb[c] }

// OccupiedAll returns the bitboard of all pieces on the board.
func (b *Board) OccupiedAll() Bitboard { return b.occupiedBb[White] | b.occupiedBb[Black] }

func (b *Board) putPiece(pc Piece, sq Square) {
	b.mailbox[sq] = pc
	c, pt := pc.SideOf(), pc.TypeOf()
	b.piecesBb[c][pt] = b.piecesBb[c][pt].PushSquare(sq)
	b.occupiedBb[c] = b.occupiedBb[c].PushSquare(sq)
	if pt == King {
		b.kingSquare[c] = sq
	}
}

func (b *Board) removePiece(sq Square) Piece {
	pc := b.mailbox[sq]
	b.mailbox[sq] = PieceNone
	c, pt := pc.SideOf(), pc.TypeOf()
	b.piecesBb[c][pt] = b.piecesBb[c][pt].PopSquare(sq)
	b.occupiedBb[c] = b.occupiedBb[c].PopSquare(sq)
	return pc
}

func (b *Board) movePiece(from, to Square) {
	b.putPiece(b.removePiece(from), to)
}

var pieceCharTable = map[rune]Piece{
	'P': WhitePawn, 'N': WhiteKnight, 'B': WhiteBishop, 'R': WhiteRook, 'Q': WhiteQueen, 'K': WhiteKing,
	'p': BlackPawn, 'n': BlackKnight, 'b': BlackBishop, 'r': BlackRook, 'q': BlackQueen, 'k': BlackKing,
}

func pieceFromChar(c rune) Piece {
	return pieceCharTable[c]
}

// Fen renders the position as a FEN string.
func (b *Board) Fen() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := b.mailbox[SquareOf(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r == Rank1 {
			break
		}
		sb.WriteString("/")
	}

	sb.WriteString(" ")
	sb.WriteString(b.sideToMove.String())
	sb.WriteString(" ")
	sb.WriteString(b.castlingRights.String())
	sb.WriteString(" ")
	sb.WriteString(b.epSquare.String())
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(b.halfMoveClock))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(b.fullMoveNumber))
	return sb.String()
}

// String renders an 8x8 board diagram followed by the FEN, for debug
// logging.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			sb.WriteString("| ")
			sb.WriteString(b.mailbox[SquareOf(f, r)].String())
			sb.WriteString(" ")
		}
		sb.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	sb.WriteString(b.Fen())
	sb.WriteString("\n")
	return sb.String()
}
