package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMagicAttacksMatchClassical checks spec.md §8 property 5: magic
// lookups must agree with classical ray-tracing for the same occupancy.
func TestMagicAttacksMatchClassical(t *testing.T) {
	tb := Default()

	occupied := SqD4.Bb() | SqD6.Bb() | SqB4.Bb() | SqG4.Bb() | SqA1.Bb() | SqH8.Bb()

	for sq := SqA1; sq <= SqH8; sq++ {
		rookWant := slidingAttack(rookDirections, sq, occupied)
		rookGot := tb.RookMagics[sq].attacksFor(occupied)
		assert.Equal(t, rookWant, rookGot, "rook mismatch at %s", sq)

		bishopWant := slidingAttack(bishopDirections, sq, occupied)
		bishopGot := tb.BishopMagics[sq].attacksFor(occupied)
		assert.Equal(t, bishopWant, bishopGot, "bishop mismatch at %s", sq)
	}
}

func TestRelevantBlockerMaskExcludesEdges(t *testing.T) {
	mask := relevantBlockerMask(rookDirections, SqA1)
	assert.False(t, mask.Has(SqA8))
	assert.False(t, mask.Has(SqH1))
	assert.True(t, mask.Has(SqA2))
	assert.True(t, mask.Has(SqB1))
}

func TestPrngDeterministic(t *testing.T) {
	a := newPrng(42)
	b := newPrng(42)
	assert.Equal(t, a.next(), b.next())
	assert.Equal(t, a.sparse(), b.sparse())
}
