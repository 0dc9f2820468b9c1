package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mfkoch/chesscore/position"
	"github.com/mfkoch/chesscore/types"
)

func mustPosition(t *testing.T, fen string) *position.Position {
	t.Helper()
	p, err := position.NewFEN(fen, types.Default())
	assert.NoError(t, err)
	return p
}

func TestEvaluateStartingPositionIsZero(t *testing.T) {
	p := mustPosition(t, position.StartFEN)
	assert.Equal(t, types.ValueZero, Evaluate(p))
}

func TestEvaluateFavorsMaterialUp(t *testing.T) {
	// White is up a queen.
	p := mustPosition(t, "4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	assert.True(t, Evaluate(p) > 0)

	// From Black's perspective the same material deficit scores negative.
	pBlackToMove := mustPosition(t, "4k3/8/8/8/8/8/8/3QK3 b - - 0 1")
	assert.True(t, Evaluate(pBlackToMove) < 0)
}

func TestNegamaxDetectsBackRankCheckmate(t *testing.T) {
	// Black to move, king cornered on h8 behind its own g7/h7 pawns,
	// mated by the rook's unobstructed check along the 8th rank.
	p := mustPosition(t, "R6k/6pp/8/8/8/8/8/6K1 b - - 0 1")
	score := Negamax(p, 1, 0, -types.ValueInf, types.ValueInf)
	assert.Equal(t, -mateScore, score)
}

func TestNegamaxDetectsStalemate(t *testing.T) {
	// Classic stalemate: black king on a8 has no moves and is not in check.
	p := mustPosition(t, "k7/8/1Q6/8/8/8/8/6K1 b - - 0 1")
	score := Negamax(p, 1, 0, -types.ValueInf, types.ValueInf)
	assert.Equal(t, types.ValueZero, score)
}

func TestSearchPositionFindsMateInOne(t *testing.T) {
	// White to move: Ra1-a8 delivers back-rank mate against the king
	// cornered on h8 behind its own g7/h7 pawns.
	p := mustPosition(t, "7k/6pp/8/8/8/8/8/R5K1 w - - 0 1")
	best, all := SearchPosition(p, 2)
	assert.NotEmpty(t, all)
	assert.Equal(t, types.SqA1, best.Move.Origin())
	assert.Equal(t, types.SqA8, best.Move.Target())
}
