package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPieceStringAndParse(t *testing.T) {
	wn := MakePiece(White, Knight)
	assert.Equal(t, "N", wn.String())

	bq := MakePiece(Black, Queen)
	assert.Equal(t, "q", bq.String())

	assert.True(t, PieceNone.IsNone())
	assert.Equal(t, "-", PieceNone.String())
}

func TestPieceFromChar(t *testing.T) {
	p, ok := PieceFromChar('R')
	assert.True(t, ok)
	assert.Equal(t, MakePiece(White, Rook), p)

	p, ok = PieceFromChar('b')
	assert.True(t, ok)
	assert.Equal(t, MakePiece(Black, Bishop), p)

	_, ok = PieceFromChar('x')
	assert.False(t, ok)
}

func TestColorFlipAndPawnGeometry(t *testing.T) {
	assert.Equal(t, Black, White.Flip())
	assert.Equal(t, White, Black.Flip())
	assert.Equal(t, 1, White.PawnDirection())
	assert.Equal(t, -1, Black.PawnDirection())
	assert.Equal(t, Rank8, White.PromotionRank())
	assert.Equal(t, Rank1, Black.PromotionRank())
	assert.Equal(t, Rank2, White.PawnStartRank())
	assert.Equal(t, Rank4, White.PawnDoublePushRank())
}
