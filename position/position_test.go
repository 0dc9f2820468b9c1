package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mfkoch/chesscore/types"
)

func TestNewFENStartingPosition(t *testing.T) {
	tb := types.Default()
	p, err := NewFEN(StartFEN, tb)
	assert.NoError(t, err)
	assert.Equal(t, types.White, p.SideToMove())
	assert.Equal(t, types.CastlingAny, p.CastleRights())
	assert.Equal(t, types.SqNone, p.EpSquare())
	assert.Equal(t, 0, p.HalfmoveClock())
	assert.Equal(t, 1, p.FullmoveNumber())
	assert.Equal(t, types.MakePiece(types.White, types.Rook), p.PieceAt(types.SqA1))
	assert.Equal(t, types.MakePiece(types.Black, types.King), p.PieceAt(types.SqE8))
	assert.True(t, p.PieceAt(types.SqE4).IsNone())
}

func TestFENRoundTrip(t *testing.T) {
	tb := types.Default()
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range fens {
		p, err := NewFEN(fen, tb)
		assert.NoError(t, err)
		assert.Equal(t, fen, p.FEN())
	}
}

func TestMalformedFENRejected(t *testing.T) {
	tb := types.Default()
	_, err := NewFEN("not a fen", tb)
	assert.Error(t, err)
}

func TestKeyMatchesFullRecomputation(t *testing.T) {
	tb := types.Default()
	p, err := NewFEN(StartFEN, tb)
	assert.NoError(t, err)
	assert.Equal(t, p.computeKey(), p.Key())

	m := types.NewMove(types.SqE2, types.SqE4, types.Pawn, types.PtNone, types.DoublePush)
	ok := p.MakeMove(m)
	assert.True(t, ok)
	assert.Equal(t, p.computeKey(), p.Key())

	p.UndoMove()
	assert.Equal(t, p.computeKey(), p.Key())
}

func TestMakeUndoRoundTrip(t *testing.T) {
	tb := types.Default()
	p, err := NewFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", tb)
	assert.NoError(t, err)
	before := p.FEN()
	beforeKey := p.Key()

	moves := []types.Move{
		types.NewMove(types.SqE1, types.SqG1, types.King, types.PtNone, types.KingCastle),
		types.NewMove(types.SqE5, types.SqD7, types.Knight, types.Pawn, types.Quiet),
		types.NewMove(types.SqA2, types.SqA4, types.Pawn, types.PtNone, types.DoublePush),
	}
	for _, m := range moves {
		ok := p.MakeMove(m)
		assert.True(t, ok, "move %s should be legal", m)
		p.UndoMove()
		assert.Equal(t, before, p.FEN(), "FEN did not round-trip for %s", m)
		assert.Equal(t, beforeKey, p.Key(), "key did not round-trip for %s", m)
	}
}

func TestEnPassantCaptureRestoresCapturedPawn(t *testing.T) {
	tb := types.Default()
	p, err := NewFEN("rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3", tb)
	assert.NoError(t, err)

	m := types.NewMove(types.SqE5, types.SqF6, types.Pawn, types.Pawn, types.EnPassant)
	ok := p.MakeMove(m)
	assert.True(t, ok)
	assert.True(t, p.PieceAt(types.SqF5).IsNone())
	assert.True(t, p.PieceAt(types.SqF6).Type == types.Pawn)

	p.UndoMove()
	assert.Equal(t, types.MakePiece(types.Black, types.Pawn), p.PieceAt(types.SqF5))
	assert.True(t, p.PieceAt(types.SqF6).IsNone())
	assert.Equal(t, types.SqF6, p.EpSquare())
}

func TestCastlingInvalidatedByRookMove(t *testing.T) {
	tb := types.Default()
	p, err := NewFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", tb)
	assert.NoError(t, err)

	ok := p.MakeMove(types.NewMove(types.SqH1, types.SqG1, types.Rook, types.PtNone, types.Quiet))
	assert.True(t, ok)
	assert.False(t, p.CastleRights().Has(types.CastlingWK))
	assert.True(t, p.CastleRights().Has(types.CastlingWQ))
}

func TestIllegalMoveLeavesKingInCheckIsRejected(t *testing.T) {
	tb := types.Default()
	// black rook on h2 covers all of rank 2, including e2.
	p, err := NewFEN("4k3/8/8/8/8/8/7r/4K3 w - - 0 1", tb)
	assert.NoError(t, err)

	before := p.FEN()
	ok := p.MakeMove(types.NewMove(types.SqE1, types.SqE2, types.King, types.PtNone, types.Quiet))
	assert.False(t, ok)
	assert.Equal(t, before, p.FEN())
}
