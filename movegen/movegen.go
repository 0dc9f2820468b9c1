/*
 * chesscore - a fixed-depth chess engine core in Go
 *
 * MIT License
 *
 * Copyright (c) 2024 chesscore contributors
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

// Package movegen walks a position's bitboards and emits every
// pseudo-legal move for the side to move, per spec.md §4.5. Legality
// (own king left in check) is left to position.MakeMove, not checked here
// - except for castling, whose king-path-attacked precondition is part of
// pseudo-legality itself.
package movegen

import (
	"github.com/mfkoch/chesscore/logging"
	"github.com/mfkoch/chesscore/position"
	"github.com/mfkoch/chesscore/types"
)

var log = logging.GetLog("movegen")

// Generate appends every pseudo-legal move for p's side to move into ml.
// ml is not cleared first, so callers reusing a buffer across plies must
// call ml.Clear() themselves.
func Generate(p *position.Position, ml *types.MoveList) {
	us := p.SideToMove()
	generatePawnMoves(p, us, ml)
	generatePieceMoves(p, us, types.Knight, ml)
	generatePieceMoves(p, us, types.Bishop, ml)
	generatePieceMoves(p, us, types.Rook, ml)
	generatePieceMoves(p, us, types.Queen, ml)
	generatePieceMoves(p, us, types.King, ml)
	generateCastling(p, us, ml)
	log.Debugf("Generate: %d pseudo-legal moves for %s", ml.Len(), us)
}

func generatePawnMoves(p *position.Position, us types.Color, ml *types.MoveList) {
	t := p.Tables()
	them := us.Flip()
	pawns := p.PiecesBB(us, types.Pawn)
	empty := p.Empty()
	theirs := p.OccupiedBB(them)
	promRank := us.PromotionRank()
	pushDir := types.Direction(us.PawnDirection()) * types.North

	for bb := pawns; bb != 0; {
		from := bb.PopLsb()

		// single / double push
		if one := from.To(pushDir); one != types.SqNone && empty.Has(one) {
			addPawnAdvance(ml, from, one, promRank, types.Quiet)
			if from.RankOf() == us.PawnStartRank() {
				if two := one.To(pushDir); two != types.SqNone && empty.Has(two) {
					ml.Add(types.NewMove(from, two, types.Pawn, types.PtNone, types.DoublePush))
				}
			}
		}

		// captures, including en passant
		targets := t.PawnAttacks[us][from]
		for capBb := targets & theirs; capBb != 0; {
			to := capBb.PopLsb()
			captured := p.PieceAt(to).Type
			addPawnCapture(ml, from, to, captured, promRank)
		}
		if p.EpSquare() != types.SqNone && targets.Has(p.EpSquare()) {
			ml.Add(types.NewMove(from, p.EpSquare(), types.Pawn, types.Pawn, types.EnPassant))
		}
	}
}

func addPawnAdvance(ml *types.MoveList, from, to types.Square, promRank types.Rank, flag types.MoveFlag) {
	if to.RankOf() == promRank {
		addPromotions(ml, from, to, types.PtNone)
		return
	}
	ml.Add(types.NewMove(from, to, types.Pawn, types.PtNone, flag))
}

func addPawnCapture(ml *types.MoveList, from, to types.Square, captured types.PieceType, promRank types.Rank) {
	if to.RankOf() == promRank {
		addPromotions(ml, from, to, captured)
		return
	}
	ml.Add(types.NewMove(from, to, types.Pawn, captured, types.Quiet))
}

// promotionFlags lists the four promotion flags in a fixed order; every
// promoting push or capture emits exactly one move per entry, per
// spec.md §8 property 8.
var promotionFlags = [4]types.MoveFlag{types.PromoKnight, types.PromoBishop, types.PromoRook, types.PromoQueen}

func addPromotions(ml *types.MoveList, from, to types.Square, captured types.PieceType) {
	for _, flag := range promotionFlags {
		ml.Add(types.NewMove(from, to, types.Pawn, captured, flag))
	}
}

func generatePieceMoves(p *position.Position, us types.Color, pt types.PieceType, ml *types.MoveList) {
	t := p.Tables()
	occ := p.AllOccupied()
	own := p.OccupiedBB(us)

	for bb := p.PiecesBB(us, pt); bb != 0; {
		from := bb.PopLsb()
		attacks := t.Attacks(pt, from, occ) &^ own
		for dest := attacks; dest != 0; {
			to := dest.PopLsb()
			captured := p.PieceAt(to).Type
			ml.Add(types.NewMove(from, to, pt, captured, types.Quiet))
		}
	}
}

func generateCastling(p *position.Position, us types.Color, ml *types.MoveList) {
	t := p.Tables()
	occ := p.AllOccupied()
	cr := p.CastleRights()

	tryCastle := func(right types.CastlingRights, flag types.MoveFlag) {
		if !cr.Has(right) {
			return
		}
		path := t.CastlingPathFor(right)
		if occ&path.Empty != 0 {
			return
		}
		for _, sq := range path.KingPath {
			if p.IsAttacked(sq, us.Flip()) {
				return
			}
		}
		ml.Add(types.NewMove(path.KingFrom, path.KingTo, types.King, types.PtNone, flag))
	}

	tryCastle(types.KingsideRight(us), types.KingCastle)
	tryCastle(types.QueensideRight(us), types.QueenCastle)
}
