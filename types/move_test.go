package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveEncodeDecode(t *testing.T) {
	m := NewMove(SqE2, SqE4, Pawn, PtNone, DoublePush)
	assert.Equal(t, SqE2, m.Origin())
	assert.Equal(t, SqE4, m.Target())
	assert.Equal(t, Pawn, m.MovingPiece())
	assert.Equal(t, PtNone, m.CapturedPiece())
	assert.False(t, m.IsCapture())
	assert.Equal(t, DoublePush, m.Flag())
	assert.True(t, m.IsValid())
	assert.Equal(t, "e2e4", m.String())
}

func TestMovePromotionAndCapture(t *testing.T) {
	m := NewMove(SqE7, SqD8, Pawn, Queen, PromoQueen)
	assert.True(t, m.IsPromotion())
	assert.Equal(t, Queen, m.PromotedTo())
	assert.True(t, m.IsCapture())
	assert.Equal(t, Queen, m.CapturedPiece())
	assert.Equal(t, "e7d8q", m.String())
}

func TestMoveNoneIsInvalid(t *testing.T) {
	assert.False(t, MoveNone.IsValid())
	assert.Equal(t, "0000", MoveNone.String())
}

func TestMoveListAddAndContains(t *testing.T) {
	var ml MoveList
	a := NewMove(SqG1, SqF3, Knight, PtNone, Quiet)
	b := NewMove(SqB1, SqC3, Knight, PtNone, Quiet)
	ml.Add(a)
	ml.Add(b)
	assert.Equal(t, 2, ml.Len())
	assert.True(t, ml.Contains(a))
	assert.Equal(t, b, ml.At(1))

	ml.Clear()
	assert.Equal(t, 0, ml.Len())
	assert.False(t, ml.Contains(a))
}
