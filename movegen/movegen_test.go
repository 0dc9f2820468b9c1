package movegen

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

func TestStartingPositionMoveCount(t *testing.T) {
	p := mustPosition(t, position.StartFEN)
	var ml types.MoveList
	Generate(p, &ml)
	assert.Equal(t, 20, ml.Len())
}

func TestPromotionEmitsExactlyFourMoves(t *testing.T) {
	// White pawn one step from promoting, nothing to capture.
	p := mustPosition(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	var ml types.MoveList
	Generate(p, &ml)

	var promoCount int
	for i := 0; i < ml.Len(); i++ {
		if ml.At(i).IsPromotion() {
			promoCount++
		}
	}
	assert.Equal(t, 4, promoCount)
}

func TestEnPassantPseudoLegalMoveEmitted(t *testing.T) {
	p := mustPosition(t, "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
	var ml types.MoveList
	Generate(p, &ml)

	found := false
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		if m.Flag() == types.EnPassant {
			assert.Equal(t, types.SqE5, m.Origin())
			assert.Equal(t, types.SqF6, m.Target())
			found = true
		}
	}
	assert.True(t, found, "expected an en passant move to be generated")
}

func TestCastlingNotGeneratedThroughCheck(t *testing.T) {
	// black rook on h1 pins nothing but attacks e1 itself along the first
	// rank: white king is in check, so no castling move should be generated
	// at all.
	p := mustPosition(t, "4k3/8/8/8/8/8/8/R3K2r w Q - 0 1")
	var ml types.MoveList
	Generate(p, &ml)

	for i := 0; i < ml.Len(); i++ {
		flag := ml.At(i).Flag()
		assert.NotEqual(t, types.KingCastle, flag)
		assert.NotEqual(t, types.QueenCastle, flag)
	}
}

func TestQueenAttacksAreUnionOfRookAndBishop(t *testing.T) {
	tb := types.Default()
	occ := types.SqD4.Bb() | types.SqD6.Bb() | types.SqB4.Bb() | types.SqG4.Bb()
	for sq := types.SqA1; sq <= types.SqH8; sq++ {
		queen := tb.Attacks(types.Queen, sq, occ)
		union := tb.Attacks(types.Rook, sq, occ) | tb.Attacks(types.Bishop, sq, occ)
		assert.Equal(t, union, queen)
	}
}
