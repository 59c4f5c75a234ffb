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

// Package movegen generates pseudo-legal and legal moves for a
// board.Board, piece type by piece type the way a classical mailbox+
// bitboard engine does it. A GenMode selects captures, quiets or both;
// with GenAll the captures and quiet moves of each piece type come out
// interleaved, and the searcher orders the list itself.
package movegen

import (
	"github.com/corvidchess/corvid/board"
	. "github.com/corvidchess/corvid/types"
)

// GenMode selects which subset of pseudo-legal moves to generate.
type GenMode int

const (
	GenCaptures GenMode = 1 << iota
	GenQuiets
	GenAll = GenCaptures | GenQuiets
)

// sliderPieceTypes are generated with the magic-bitboard attack table;
// Knight and King use the precomputed pseudo-attack table instead, and
// pawns have their own direction-shift based generator.
var sliderPieceTypes = [3]PieceType{Bishop, Rook, Queen}

// GeneratePseudoLegal returns every pseudo-legal move for the side to
// move in b: moves that obey piece movement rules but may leave the
// mover's own king in check. Use IsLegal or GenerateLegal to filter
// those out.
func GeneratePseudoLegal(b *board.Board, mode GenMode) MoveList {
	ml := NewMoveList()
	us := b.SideToMove()
	ownOcc := b.Occupied(us)
	allOcc := b.OccupiedAll()

	if mode&GenCaptures != 0 {
		generatePawnCaptures(b, us, &ml)
	}
	if mode&GenQuiets != 0 {
		generatePawnQuiets(b, us, &ml)
		generateCastling(b, us, &ml)
	}
	for _, pt := range [2]PieceType{Knight, King} {
		generateFromAttackTable(b, pt, us, ownOcc, allOcc, mode, &ml)
	}
	for _, pt := range sliderPieceTypes {
		generateFromAttackTable(b, pt, us, ownOcc, allOcc, mode, &ml)
	}
	return ml
}

// GenerateLegal returns only the moves in GeneratePseudoLegal that do
// not leave the mover's own king in check.
func GenerateLegal(b *board.Board) MoveList {
	pseudo := GeneratePseudoLegal(b, GenAll)
	legal := NewMoveList()
	for _, m := range pseudo.Slice() {
		if IsLegal(b, m) {
			legal.Push(m)
		}
	}
	return legal
}

// IsLegal reports whether making m on b leaves the mover's own king
// safe. It is the single source of truth for legality: castling's
// "king does not pass through check" rule is checked at generation
// time (generateCastling), everything else is checked here by actually
// playing the move and looking at the resulting position.
func IsLegal(b *board.Board, m Move) bool {
	us := b.SideToMove()
	after := b.MakeMove(m)
	return !after.IsInCheck(us)
}

func generateFromAttackTable(b *board.Board, pt PieceType, us Side, ownOcc, allOcc Bitboard, mode GenMode, ml *MoveList) {
	pieces := b.Pieces(us, pt)
	theirOcc := allOcc &^ ownOcc
	for pieces != 0 {
		from := pieces.PopLsb()
		attacks := AttacksBb(pt, from, allOcc) &^ ownOcc
		if mode&GenCaptures != 0 {
			caps := attacks & theirOcc
			for caps != 0 {
				to := caps.PopLsb()
				ml.Push(NewMove(from, to, FlagCapture))
			}
		}
		if mode&GenQuiets != 0 {
			quiets := attacks &^ theirOcc
			for quiets != 0 {
				to := quiets.PopLsb()
				ml.Push(NewMove(from, to, FlagQuiet))
			}
		}
	}
}

func pawnCaptureDirs(us Side) (left, right Direction) {
	if us == White {
		return Northwest, Northeast
	}
	return Southwest, Southeast
}

func generatePawnCaptures(b *board.Board, us Side, ml *MoveList) {
	pawns := b.Pieces(us, Pawn)
	them := us.Opposite()
	theirs := b.Occupied(them)
	promoRank := us.PromotionRank().Bb()
	left, right := pawnCaptureDirs(us)

	for _, d := range [2]Direction{left, right} {
		back := -d
		targets := pawns.Shift(d) & theirs
		promo := targets & promoRank
		for promo != 0 {
			to := promo.PopLsb()
			from := to.To(back)
			pushPromotions(ml, from, to, true)
		}
		plain := targets &^ promoRank
		for plain != 0 {
			to := plain.PopLsb()
			from := to.To(back)
			ml.Push(NewMove(from, to, FlagCapture))
		}
	}

	if ep := b.EnPassantSquare(); ep != SqNone {
		attackers := PawnAttacksBb(them, ep) & pawns
		for attackers != 0 {
			from := attackers.PopLsb()
			ml.Push(NewMove(from, ep, FlagEnPassant))
		}
	}
}

func generatePawnQuiets(b *board.Board, us Side, ml *MoveList) {
	pawns := b.Pieces(us, Pawn)
	empty := ^b.OccupiedAll()
	pushDir := us.PawnDirection()
	back := -pushDir
	promoRank := us.PromotionRank().Bb()

	singles := pawns.Shift(pushDir) & empty
	promo := singles & promoRank
	for promo != 0 {
		to := promo.PopLsb()
		from := to.To(back)
		pushPromotions(ml, from, to, false)
	}
	plain := singles &^ promoRank
	for plain != 0 {
		to := plain.PopLsb()
		from := to.To(back)
		ml.Push(NewMove(from, to, FlagQuiet))
	}

	doubleStart := (pawns & us.PawnStartRank().Bb()).Shift(pushDir) & empty
	doubles := doubleStart.Shift(pushDir) & empty
	for doubles != 0 {
		to := doubles.PopLsb()
		from := to.To(back).To(back)
		ml.Push(NewMove(from, to, FlagDoublePush))
	}
}

func pushPromotions(ml *MoveList, from, to Square, capture bool) {
	for _, pt := range [4]PieceType{Queen, Knight, Rook, Bishop} {
		ml.Push(NewPromotionMove(from, to, pt, capture))
	}
}

type castleSpec struct {
	right         CastlingRights
	kingFrom      Square
	kingTo        Square
	emptySquares  Bitboard
	throughSquare Square // square the king crosses that must not be attacked (kingFrom is checked separately)
}

var whiteCastles = []castleSpec{
	{WhiteOO, SqE1, SqG1, SqF1.Bb() | SqG1.Bb(), SqF1},
	{WhiteOOO, SqE1, SqC1, SqD1.Bb() | SqC1.Bb() | SqB1.Bb(), SqD1},
}

var blackCastles = []castleSpec{
	{BlackOO, SqE8, SqG8, SqF8.Bb() | SqG8.Bb(), SqF8},
	{BlackOOO, SqE8, SqC8, SqD8.Bb() | SqC8.Bb() | SqB8.Bb(), SqD8},
}

func generateCastling(b *board.Board, us Side, ml *MoveList) {
	if b.CastlingRights() == CastlingNone {
		return
	}
	specs := whiteCastles
	if us == Black {
		specs = blackCastles
	}
	allOcc := b.OccupiedAll()
	for _, spec := range specs {
		if !b.CastlingRights().Has(spec.right) {
			continue
		}
		if allOcc&spec.emptySquares != 0 {
			continue
		}
		if b.IsSquareAttacked(spec.kingFrom, us.Opposite()) {
			continue
		}
		if b.IsSquareAttacked(spec.throughSquare, us.Opposite()) {
			continue
		}
		if b.IsSquareAttacked(spec.kingTo, us.Opposite()) {
			continue
		}
		flag := FlagCastleKing
		if spec.right == WhiteOOO || spec.right == BlackOOO {
			flag = FlagCastleQueen
		}
		ml.Push(NewMove(spec.kingFrom, spec.kingTo, flag))
	}
}
