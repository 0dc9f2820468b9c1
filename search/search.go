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

// Package search implements a fixed-depth negamax search with alpha-beta
// pruning over a material-only evaluation, per spec.md §4.9. There is no
// iterative deepening, quiescence search or move ordering - those are out
// of scope.
package search

import (
	"github.com/mfkoch/chesscore/config"
	"github.com/mfkoch/chesscore/logging"
	"github.com/mfkoch/chesscore/movegen"
	"github.com/mfkoch/chesscore/position"
	"github.com/mfkoch/chesscore/types"
)

var log = logging.GetLog("search")

// mateScore is the magnitude returned for a checkmated position, biased
// by the number of plies from the root so that shorter mates are
// preferred over longer ones once combined with the ply argument.
const mateScore = types.ValueMate

// Evaluate scores p from the perspective of the side to move: sum of own
// piece values minus sum of opponent piece values, per spec.md §4.9.
func Evaluate(p *position.Position) types.Value {
	us := p.SideToMove()
	them := us.Flip()
	var score types.Value
	for pt := types.Pawn; pt < types.PtLength; pt++ {
		n := types.Value(p.PiecesBB(us, pt).PopCount())
		m := types.Value(p.PiecesBB(them, pt).PopCount())
		score += (n - m) * types.Value(pt.Value())
	}
	return score
}

// Negamax evaluates p to depth plies using alpha-beta pruning, returning
// a score from the perspective of the side to move. ply is the number of
// half-moves already played from the search root, used only to prefer
// shorter mates.
func Negamax(p *position.Position, depth, ply int, alpha, beta types.Value) types.Value {
	if depth == 0 {
		return Evaluate(p)
	}

	var ml types.MoveList
	movegen.Generate(p, &ml)

	legalCount := 0
	best := -types.ValueInf

	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		if !p.MakeMove(m) {
			continue
		}
		legalCount++
		score := -Negamax(p, depth-1, ply+1, -beta, -alpha)
		p.UndoMove()

		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}

	if legalCount == 0 {
		if p.IsAttacked(p.KingSquare(p.SideToMove()), p.SideToMove().Flip()) {
			return -mateScore + types.Value(ply)
		}
		return types.ValueZero
	}
	return best
}

// RootMove is one candidate move at the search root, scored from the
// perspective of the side to move at the root.
type RootMove struct {
	Move  types.Move
	Score types.Value
}

// SearchPosition runs a fixed-depth search from p and returns every legal
// root move with its negamax score, plus the best one. depth defaults to
// config.Settings.Search.Depth when depth <= 0.
func SearchPosition(p *position.Position, depth int) (best RootMove, all []RootMove) {
	if depth <= 0 {
		depth = config.Settings.Search.Depth
	}

	var ml types.MoveList
	movegen.Generate(p, &ml)

	best.Score = -types.ValueInf
	best.Move = types.MoveNone

	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		if !p.MakeMove(m) {
			continue
		}
		score := -Negamax(p, depth-1, 1, -types.ValueInf, types.ValueInf)
		p.UndoMove()

		rm := RootMove{Move: m, Score: score}
		all = append(all, rm)
		if score > best.Score {
			best = rm
		}
	}

	log.Debugf("SearchPosition: depth=%d best=%s score=%d", depth, best.Move, best.Score)
	return best, all
}
