package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeSquareAndString(t *testing.T) {
	assert.Equal(t, SqE4, MakeSquare("e4"))
	assert.Equal(t, "e4", SqE4.String())
	assert.Equal(t, SqNone, MakeSquare("z9"))
	assert.Equal(t, "-", SqNone.String())
}

func TestFileRankOf(t *testing.T) {
	assert.Equal(t, FileE, SqE4.FileOf())
	assert.Equal(t, Rank4, SqE4.RankOf())
	assert.Equal(t, SqE4, SquareOf(FileE, Rank4))
	assert.Equal(t, SqNone, SquareOf(File(-1), Rank4))
}

func TestSquareToEdgeWrap(t *testing.T) {
	assert.Equal(t, SqNone, SqH4.To(East))
	assert.Equal(t, SqNone, SqA4.To(West))
	assert.Equal(t, SqNone, SqH4.To(Northeast))
	assert.Equal(t, SqA5, SqA4.To(North))
	assert.Equal(t, SqNone, SqA8.To(North))
}

func TestSquareDistance(t *testing.T) {
	assert.Equal(t, 0, SquareDistance(SqE4, SqE4))
	assert.Equal(t, 7, SquareDistance(SqA1, SqH8))
	assert.Equal(t, 1, SquareDistance(SqE4, SqE5))
}
