package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mfkoch/chesscore/position"
	"github.com/mfkoch/chesscore/testsuite"
	"github.com/mfkoch/chesscore/types"
)

// perftDepthCap bounds how deep TestPerftSuite walks each case. Some of
// testdata/perft.epd's D4 counts run into the millions of nodes, too slow
// for a suite that runs on every commit; shallower depths still exercise
// every move-generation edge case in spec.md §8 (castling, en passant,
// promotion, pins) since they all appear by depth 1-2 in these positions.
const perftDepthCap = 3

func TestPerftSuite(t *testing.T) {
	cases, err := testsuite.Load("../testdata/perft.epd")
	assert.NoError(t, err)
	assert.NotEmpty(t, cases)

	for _, c := range cases {
		p, err := position.NewFEN(c.Fen, types.Default())
		assert.NoError(t, err, "fen %s", c.Fen)

		for depth := 1; depth <= c.MaxDepth() && depth <= perftDepthCap; depth++ {
			want, ok := c.Counts[depth]
			if !ok {
				continue
			}
			got := Perft(p, depth)
			assert.Equal(t, want, got, "perft(%d) mismatch for %s", depth, c.Fen)
		}
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	p, err := position.NewFEN(position.StartFEN, types.Default())
	assert.NoError(t, err)

	entries, total := PerftDivide(p, 3)
	assert.Equal(t, Perft(p, 3), total)

	var sum uint64
	for _, e := range entries {
		sum += e.Nodes
	}
	assert.Equal(t, total, sum)
}

func TestPerftDepthZeroIsOneLeaf(t *testing.T) {
	p, err := position.NewFEN(position.StartFEN, types.Default())
	assert.NoError(t, err)
	assert.Equal(t, uint64(1), Perft(p, 0))
}
