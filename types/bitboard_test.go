package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBbAndSquares(t *testing.T) {
	assert.Equal(t, Bitboard(1), SqA1.Bb())
	assert.Equal(t, Bitboard(1)<<63, SqH8.Bb())
	assert.True(t, FileABb.Has(SqA1))
	assert.False(t, FileABb.Has(SqB1))
	assert.True(t, Rank1Bb.Has(SqH1))
}

func TestPopCountLsbPopLsb(t *testing.T) {
	b := SqA1.Bb() | SqD4.Bb() | SqH8.Bb()
	assert.Equal(t, 3, b.PopCount())
	assert.Equal(t, SqA1, b.Lsb())

	first := b.PopLsb()
	assert.Equal(t, SqA1, first)
	assert.Equal(t, 2, b.PopCount())

	second := b.PopLsb()
	assert.Equal(t, SqD4, second)

	third := b.PopLsb()
	assert.Equal(t, SqH8, third)

	assert.Equal(t, BbZero, b)
	assert.Equal(t, SqNone, b.PopLsb())
}

func TestShiftEdgeMasking(t *testing.T) {
	// a pawn-like east shift from the H file must not wrap to the A file
	assert.Equal(t, BbZero, shift(SqH4.Bb(), East))
	assert.Equal(t, BbZero, shift(SqA4.Bb(), West))
	assert.Equal(t, SqB5.Bb(), shift(SqA4.Bb(), Northeast))
	assert.Equal(t, BbZero, shift(SqH4.Bb(), Northeast))
}
