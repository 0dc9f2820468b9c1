package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCastlingHasIsAndNotOr(t *testing.T) {
	rights := CastlingWK | CastlingBQ

	// AND-mask semantics: holding only WK must not report holding WQ.
	assert.True(t, rights.Has(CastlingWK))
	assert.True(t, rights.Has(CastlingBQ))
	assert.False(t, rights.Has(CastlingWQ))
	assert.False(t, rights.Has(CastlingWhite))
}

func TestCastlingRemove(t *testing.T) {
	rights := CastlingAny
	rights.Remove(CastlingWK)
	assert.False(t, rights.Has(CastlingWK))
	assert.True(t, rights.Has(CastlingWQ))
	assert.True(t, rights.Has(CastlingBlack))
}

func TestCastlingString(t *testing.T) {
	assert.Equal(t, "KQkq", CastlingAny.String())
	assert.Equal(t, "-", CastlingNone.String())
	assert.Equal(t, "Kq", (CastlingWK | CastlingBQ).String())
}

func TestKingsideQueensideRightLookup(t *testing.T) {
	assert.Equal(t, CastlingWK, KingsideRight(White))
	assert.Equal(t, CastlingBQ, QueensideRight(Black))
}
