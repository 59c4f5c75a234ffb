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

// Package datagen implements the self-play training-data generator
// (spec.md §6): a Marlinformat binary record writer/reader plus a
// self-play harness that plays random-opening games to a natural
// ending and records one (move, eval) pair per ply.
package datagen

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/corvidchess/corvid/board"
	. "github.com/corvidchess/corvid/types"
)

// Wdl is the game outcome from White's perspective, as stored in a
// Marlinformat header.
type Wdl uint8

const (
	WdlLoss Wdl = 0
	WdlDraw Wdl = 1
	WdlWin  Wdl = 2
)

// marlinPieceIndex maps this engine's 1-indexed PieceType (Pawn=1 ..
// King=6) to Marlinformat's 0-indexed piece nibble (Pawn=0 .. King=5).
var marlinPieceIndex = [PtLength]uint8{
	PtNone: 0xF, // never encoded - occupancy only iterates real pieces
	Pawn:   0,
	Knight: 1,
	Bishop: 2,
	Rook:   3,
	Queen:  4,
	King:   5,
}

// marlinCastleRook is the special piece-index value a rook is given
// instead of 3 when it still sits on its starting square and that
// side's castling right through it hasn't been lost yet.
const marlinCastleRook = 6

// cornerCastlingRight names, for each of the four rook starting
// squares, the single castling right that square's rook guards.
var cornerCastlingRight = map[Square]CastlingRights{
	SqA1: WhiteOOO, SqH1: WhiteOO,
	SqA8: BlackOOO, SqH8: BlackOO,
}

// Header is one position's worth of Marlinformat fixed fields (the
// "header" of original_source/src/datagen.hpp's Game struct): board
// state plus the game's final outcome, with no per-move data.
type Header struct {
	Occupancy     Bitboard
	Pieces        [16]byte // 32 nibbles, one per set occupancy bit, low-to-high square order
	EpSquare      byte     // bits 0-6 = square (or 64 if none), bit 7 = Black to move
	HalfMoveClock byte
	Wdl           Wdl
}

// EncodeHeader packs b's position into a Marlinformat header. wdl is
// the eventual game result, known only once the game the position
// belongs to has finished.
func EncodeHeader(b *board.Board, wdl Wdl) Header {
	h := Header{
		Occupancy:     b.OccupiedAll(),
		HalfMoveClock: byte(b.HalfMoveClock()),
		Wdl:           wdl,
	}

	occ := h.Occupancy
	cr := b.CastlingRights()
	i := 0
	for occ != 0 {
		sq := occ.PopLsb()
		p := b.PieceOn(sq)
		pt := p.TypeOf()

		idx := marlinPieceIndex[pt]
		if pt == Rook {
			if right, ok := cornerCastlingRight[sq]; ok && cr.Has(right) {
				idx = marlinCastleRook
			}
		}
		if p.SideOf() == Black {
			idx |= 8
		}

		setNibble(h.Pieces[:], i, idx)
		i++
	}

	ep := b.EnPassantSquare()
	if ep == SqNone {
		h.EpSquare = 64
	} else {
		h.EpSquare = byte(ep)
	}
	if b.SideToMove() == Black {
		h.EpSquare |= 0x80
	}

	return h
}

// setNibble packs value (0-15) into the i'th nibble of a byte slice,
// low nibble first within each byte (original_source/src/datagen.hpp's
// NibbleArray::set).
func setNibble(dst []byte, i int, value uint8) {
	byteIdx := i / 2
	if i%2 == 0 {
		dst[byteIdx] = (dst[byteIdx] &^ 0x0F) | (value & 0x0F)
	} else {
		dst[byteIdx] = (dst[byteIdx] &^ 0xF0) | (value << 4)
	}
}

func getNibble(src []byte, i int) uint8 {
	byteIdx := i / 2
	if i%2 == 0 {
		return src[byteIdx] & 0x0F
	}
	return src[byteIdx] >> 4
}

// WriteTo writes h in spec.md §6's binary layout: little-endian
// occupancy, packed piece nibbles, ep_square, halfmove_clock, a fixed
// fullmove_clock of 1, a fixed eval of 0, wdl, and one zero pad byte.
func (h Header) WriteTo(w io.Writer) error {
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(h.Occupancy))
	copy(buf[8:24], h.Pieces[:])
	buf[24] = h.EpSquare
	buf[25] = h.HalfMoveClock
	binary.LittleEndian.PutUint16(buf[26:28], 1) // fullmove_clock, always 1
	binary.LittleEndian.PutUint16(buf[28:30], 0) // eval, always 0 for the header itself
	buf[30] = byte(h.Wdl)
	buf[31] = 0 // padding
	_, err := w.Write(buf[:])
	return err
}

// ReadHeader reads a Header previously written by Header.WriteTo.
func ReadHeader(r io.Reader) (Header, error) {
	var buf [32]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Header{}, err
	}
	var h Header
	h.Occupancy = Bitboard(binary.LittleEndian.Uint64(buf[0:8]))
	copy(h.Pieces[:], buf[8:24])
	h.EpSquare = buf[24]
	h.HalfMoveClock = buf[25]
	h.Wdl = Wdl(buf[30])
	return h, nil
}

// PieceIndexAt returns the piece nibble stored for the i'th set bit of
// h.Occupancy (in ascending square order), split into its 0-5 type
// index (or marlinCastleRook) and whether it belongs to Black.
func (h Header) PieceIndexAt(i int) (index uint8, black bool) {
	raw := getNibble(h.Pieces[:], i)
	return raw & 7, raw&8 != 0
}

// ViriMove is the 16-bit packed move record spec.md §6 stores per ply,
// grounded on original_source/src/move.hpp's ViriMove constructor:
// bits 0-5 are the origin square, bits 6-11 the destination square
// (rewritten to the rook's origin square for a castle), bits 14-15
// select normal(0)/en-passant(1)/castle(2)/promotion(3), and for a
// promotion only, bits 12-13 carry the promoted piece (0=Knight ..
// 3=Queen).
type ViriMove uint16

const (
	viriKindNormal    uint16 = 0x0000
	viriKindEnPassant uint16 = 0x4000
	viriKindCastle    uint16 = 0x8000
	viriKindPromotion uint16 = 0xC000
)

// rookOriginForCastle maps a king's castling destination square to the
// rook's origin square, since ViriMove reports a castle's "to" as the
// rook it castles with, not the king's landing square.
var rookOriginForCastle = map[Square]Square{
	SqC1: SqA1, SqG1: SqH1,
	SqC8: SqA8, SqG8: SqH8,
}

// EncodeMove converts m into its ViriMove encoding.
func EncodeMove(m Move) ViriMove {
	data := uint16(m.From())

	to := m.To()
	switch {
	case m.IsEnPassant():
		data |= viriKindEnPassant
	case m.IsCastle():
		data |= viriKindCastle
		to = rookOriginForCastle[to]
	case m.IsPromotion():
		data |= viriKindPromotion | (uint16(m.PromotionType()-Knight) << 12)
	}

	data |= uint16(to) << 6
	return ViriMove(data)
}

// MoveRecord is one ply of a recorded game: the move played and the
// signed centipawn evaluation the search assigned it, from White's
// perspective.
type MoveRecord struct {
	Move ViriMove
	Eval int16
}

func (r MoveRecord) writeTo(w io.Writer) error {
	var buf [4]byte
	binary.LittleEndian.PutUint16(buf[0:2], uint16(r.Move))
	binary.LittleEndian.PutUint16(buf[2:4], uint16(r.Eval))
	_, err := w.Write(buf[:])
	return err
}

func readMoveRecord(r io.Reader) (MoveRecord, bool, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return MoveRecord{}, false, err
	}
	move := binary.LittleEndian.Uint16(buf[0:2])
	ev := binary.LittleEndian.Uint16(buf[2:4])
	if move == 0 && ev == 0 {
		return MoveRecord{}, false, nil // zero terminator, no more moves
	}
	return MoveRecord{Move: ViriMove(move), Eval: int16(ev)}, true, nil
}

// Game is one self-play game: the starting position's header (with
// the game's final wdl already filled in) followed by the sequence of
// moves played from it.
type Game struct {
	Header Header
	Moves  []MoveRecord
}

// WriteTo writes g in full: the header, each move record, then the
// 4-byte zero terminator original_source/src/datagen.cpp writes after
// every game's move list.
func (g Game) WriteTo(w io.Writer) error {
	if err := g.Header.WriteTo(w); err != nil {
		return fmt.Errorf("datagen: write header: %w", err)
	}
	for _, m := range g.Moves {
		if err := m.writeTo(w); err != nil {
			return fmt.Errorf("datagen: write move: %w", err)
		}
	}
	var terminator [4]byte
	_, err := w.Write(terminator[:])
	return err
}

// ReadGame reads one Game previously written by Game.WriteTo.
func ReadGame(r io.Reader) (Game, error) {
	header, err := ReadHeader(r)
	if err != nil {
		return Game{}, err
	}
	g := Game{Header: header}
	for {
		rec, ok, err := readMoveRecord(r)
		if err != nil {
			return Game{}, fmt.Errorf("datagen: read move: %w", err)
		}
		if !ok {
			return g, nil
		}
		g.Moves = append(g.Moves, rec)
	}
}
