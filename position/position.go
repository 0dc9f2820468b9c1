/*
 * chesscore - a fixed-depth chess engine core in Go
 *
 * MIT License
 *
 * Copyright (c) 2024 chesscore contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package position implements the board representation, Zobrist hashing
// and make/undo move logic: bitboards per (color, piece kind), incremental
// hashing, and exact reversibility of every derived field.
package position

import (
	"fmt"

	"github.com/mfkoch/chesscore/assert"
	"github.com/mfkoch/chesscore/logging"
	"github.com/mfkoch/chesscore/types"
)

var log = logging.GetLog("position")

// maxHistory bounds the undo stack; 2048 plies comfortably exceeds any
// conceivable game length.
const maxHistory = 2048

// undo captures everything make overwrites, so undo can restore it
// directly instead of recomputing it.
type undo struct {
	move          types.Move
	key           types.Key
	castleRights  types.CastlingRights
	epSquare      types.Square
	halfmoveClock int
	captured      types.PieceType
}

// Position is the mutable board: per-(color,kind) bitboards, aggregate
// occupancy, castle rights, en-passant target, side to move, move counters
// and an incrementally maintained Zobrist key. All mutation happens
// through MakeMove/UndoMove; there is no other way to change a Position
// once constructed.
type Position struct {
	tables *types.Tables

	board [types.SqLength]types.Piece
	pieces [types.ColorLength][types.PtLength]types.Bitboard
	occ    [types.ColorLength]types.Bitboard

	sideToMove     types.Color
	castleRights   types.CastlingRights
	epSquare       types.Square
	halfmoveClock  int
	fullmoveNumber int
	key            types.Key

	kingSquare [types.ColorLength]types.Square

	history   [maxHistory]undo
	histLen   int
}

// New returns an empty position (no pieces, White to move, no castling
// rights) bound to tb. Most callers want NewFEN with a starting FEN
// instead; New exists for tests that build up a board piece by piece.
func New(tb *types.Tables) *Position {
	p := &Position{tables: tb}
	for sq := types.SqA1; sq <= types.SqH8; sq++ {
		p.board[sq] = types.PieceNone
	}
	p.epSquare = types.SqNone
	p.kingSquare[types.White] = types.SqNone
	p.kingSquare[types.Black] = types.SqNone
	p.fullmoveNumber = 1
	return p
}

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Tables returns the attack/Zobrist tables this position was built with.
func (p *Position) Tables() *types.Tables { return p.tables }

// SideToMove returns the color to move.
func (p *Position) SideToMove() types.Color { return p.sideToMove }

// CastleRights returns the current castling rights.
func (p *Position) CastleRights() types.CastlingRights { return p.castleRights }

// EpSquare returns the current en-passant target square, or types.SqNone.
func (p *Position) EpSquare() types.Square { return p.epSquare }

// HalfmoveClock returns the current fifty-move-rule counter.
func (p *Position) HalfmoveClock() int { return p.halfmoveClock }

// FullmoveNumber returns the current full-move number.
func (p *Position) FullmoveNumber() int { return p.fullmoveNumber }

// Key returns the incrementally maintained Zobrist position key.
func (p *Position) Key() types.Key { return p.key }

// PieceAt returns the piece on sq, or types.PieceNone if empty.
func (p *Position) PieceAt(sq types.Square) types.Piece { return p.board[sq] }

// PiecesBB returns the bitboard of pieces of kind pt belonging to c.
func (p *Position) PiecesBB(c types.Color, pt types.PieceType) types.Bitboard {
	return p.pieces[c][pt]
}

// OccupiedBB returns the union of all pieces belonging to c.
func (p *Position) OccupiedBB(c types.Color) types.Bitboard { return p.occ[c] }

// AllOccupied returns the union of both colors' occupancy.
func (p *Position) AllOccupied() types.Bitboard { return p.occ[types.White] | p.occ[types.Black] }

// Empty returns the complement of AllOccupied.
func (p *Position) Empty() types.Bitboard { return ^p.AllOccupied() }

// KingSquare returns the cached square of c's king.
func (p *Position) KingSquare(c types.Color) types.Square { return p.kingSquare[c] }

// computeKey recomputes the Zobrist key from scratch; used by tests to
// verify the incrementally maintained key never drifts (spec.md §8
// property 3).
func (p *Position) computeKey() types.Key {
	t := p.tables
	var k types.Key
	for sq := types.SqA1; sq <= types.SqH8; sq++ {
		pc := p.board[sq]
		if !pc.IsNone() {
			k ^= t.ZobristPiece[pc.Color][pc.Type][sq]
		}
	}
	k ^= t.ZobristCastle[p.castleRights]
	k ^= t.ZobristSide[p.sideToMove]
	if p.epSquare != types.SqNone {
		k ^= t.ZobristEpFile[p.epSquare.FileOf()]
	}
	return k
}

func (p *Position) putPiece(pc types.Piece, sq types.Square) {
	assert.Assert(p.board[sq].IsNone(), "putPiece: %s already occupied", sq)
	p.board[sq] = pc
	p.pieces[pc.Color][pc.Type] = p.pieces[pc.Color][pc.Type].PushSquare(sq)
	p.occ[pc.Color] = p.occ[pc.Color].PushSquare(sq)
	if pc.Type == types.King {
		p.kingSquare[pc.Color] = sq
	}
	p.key ^= p.tables.ZobristPiece[pc.Color][pc.Type][sq]
}

func (p *Position) removePiece(sq types.Square) types.Piece {
	pc := p.board[sq]
	assert.Assert(!pc.IsNone(), "removePiece: %s already empty", sq)
	p.board[sq] = types.PieceNone
	p.pieces[pc.Color][pc.Type] = p.pieces[pc.Color][pc.Type].PopSquare(sq)
	p.occ[pc.Color] = p.occ[pc.Color].PopSquare(sq)
	p.key ^= p.tables.ZobristPiece[pc.Color][pc.Type][sq]
	return pc
}

func (p *Position) movePiece(from, to types.Square) {
	p.putPiece(p.removePiece(from), to)
}

func (p *Position) setCastleRights(cr types.CastlingRights) {
	p.key ^= p.tables.ZobristCastle[p.castleRights]
	p.castleRights = cr
	p.key ^= p.tables.ZobristCastle[p.castleRights]
}

func (p *Position) setEpSquare(sq types.Square) {
	if p.epSquare != types.SqNone {
		p.key ^= p.tables.ZobristEpFile[p.epSquare.FileOf()]
	}
	p.epSquare = sq
	if p.epSquare != types.SqNone {
		p.key ^= p.tables.ZobristEpFile[p.epSquare.FileOf()]
	}
}

// homeSquareRight returns the castling rights lost when sq is vacated or
// captured on: one right for a rook home square, both of that color's
// rights for a king home square, none otherwise.
func homeSquareRight(sq types.Square) types.CastlingRights {
	switch sq {
	case types.SqE1:
		return types.CastlingWhite
	case types.SqH1:
		return types.CastlingWK
	case types.SqA1:
		return types.CastlingWQ
	case types.SqE8:
		return types.CastlingBlack
	case types.SqH8:
		return types.CastlingBK
	case types.SqA8:
		return types.CastlingBQ
	default:
		return types.CastlingNone
	}
}

func (p *Position) invalidateCastleRights(from, to types.Square) {
	lost := homeSquareRight(from) | homeSquareRight(to)
	if lost == types.CastlingNone {
		return
	}
	remaining := p.castleRights
	remaining.Remove(lost)
	if remaining != p.castleRights {
		p.setCastleRights(remaining)
	}
}

// MakeMove applies m to the position per spec.md §4.7, returning false
// (and restoring the position to its pre-call state) if m leaves the
// mover's own king in check. Callers MUST treat a false return as
// IllegalMove and not otherwise trust the board - though MakeMove itself
// already undid the attempt by the time it returns.
func (p *Position) MakeMove(m types.Move) bool {
	assert.Assert(m.IsValid(), "MakeMove: invalid move %s", m)

	mover := p.sideToMove
	from, to := m.Origin(), m.Target()
	fromPiece := p.board[from]
	assert.Assert(fromPiece.Color == mover, "MakeMove: %s does not belong to side to move", from)

	capturedKind := m.CapturedPiece()

	p.history[p.histLen] = undo{
		move:          m,
		key:           p.key,
		castleRights:  p.castleRights,
		epSquare:      p.epSquare,
		halfmoveClock: p.halfmoveClock,
		captured:      capturedKind,
	}
	p.histLen++
	assert.Assert(p.histLen < maxHistory, "MakeMove: history stack exhausted")

	wasPawnMove := fromPiece.Type == types.Pawn
	wasCapture := capturedKind != types.PtNone

	switch m.Flag() {
	case types.EnPassant:
		capSq := to.To(types.Direction(mover.Flip().PawnDirection()) * types.North)
		p.removePiece(capSq)
		p.movePiece(from, to)
		p.setEpSquare(types.SqNone)
	case types.KingCastle, types.QueenCastle:
		var right types.CastlingRights
		if mover == types.White {
			if m.Flag() == types.KingCastle {
				right = types.CastlingWK
			} else {
				right = types.CastlingWQ
			}
		} else {
			if m.Flag() == types.KingCastle {
				right = types.CastlingBK
			} else {
				right = types.CastlingBQ
			}
		}
		path := p.tables.CastlingPathFor(right)
		p.movePiece(from, to)
		p.movePiece(path.RookFrom, path.RookTo)
		rights := p.castleRights
		if mover == types.White {
			rights.Remove(types.CastlingWhite)
		} else {
			rights.Remove(types.CastlingBlack)
		}
		p.setCastleRights(rights)
		p.setEpSquare(types.SqNone)
	default:
		if wasCapture {
			p.removePiece(to)
		}
		p.invalidateCastleRights(from, to)
		if m.IsPromotion() {
			p.removePiece(from)
			p.putPiece(types.MakePiece(mover, m.PromotedTo()), to)
		} else {
			p.movePiece(from, to)
		}
		if wasPawnMove && m.Flag() == types.DoublePush {
			p.setEpSquare(to.To(types.Direction(mover.Flip().PawnDirection()) * types.North))
		} else {
			p.setEpSquare(types.SqNone)
		}
	}

	if wasCapture || wasPawnMove {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}
	if mover == types.Black {
		p.fullmoveNumber++
	}

	p.key ^= p.tables.ZobristSide[p.sideToMove]
	p.sideToMove = p.sideToMove.Flip()
	p.key ^= p.tables.ZobristSide[p.sideToMove]

	if p.IsAttacked(p.kingSquare[mover], p.sideToMove) {
		log.Debugf("MakeMove: %s leaves %s king on %s in check, undoing", m, mover, p.kingSquare[mover])
		p.UndoMove()
		return false
	}
	return true
}

// UndoMove reverses the most recently made move. Calling it with an empty
// history is a programmer error.
func (p *Position) UndoMove() {
	assert.Assert(p.histLen > 0, "UndoMove: history is empty")

	p.histLen--
	rec := p.history[p.histLen]
	m := rec.move

	mover := p.sideToMove.Flip()

	switch m.Flag() {
	case types.EnPassant:
		p.movePiece(m.Target(), m.Origin())
		capSq := m.Target().To(types.Direction(mover.Flip().PawnDirection()) * types.North)
		p.putPiece(types.MakePiece(mover.Flip(), types.Pawn), capSq)
	case types.KingCastle, types.QueenCastle:
		var right types.CastlingRights
		if mover == types.White {
			if m.Flag() == types.KingCastle {
				right = types.CastlingWK
			} else {
				right = types.CastlingWQ
			}
		} else {
			if m.Flag() == types.KingCastle {
				right = types.CastlingBK
			} else {
				right = types.CastlingBQ
			}
		}
		path := p.tables.CastlingPathFor(right)
		p.movePiece(m.Target(), m.Origin())
		p.movePiece(path.RookTo, path.RookFrom)
	default:
		if m.IsPromotion() {
			p.removePiece(m.Target())
			p.putPiece(types.MakePiece(mover, types.Pawn), m.Origin())
		} else {
			p.movePiece(m.Target(), m.Origin())
		}
		if rec.captured != types.PtNone {
			p.putPiece(types.MakePiece(mover.Flip(), rec.captured), m.Target())
		}
	}

	p.castleRights = rec.castleRights
	p.epSquare = rec.epSquare
	p.halfmoveClock = rec.halfmoveClock
	p.key = rec.key

	if mover == types.Black {
		p.fullmoveNumber--
	}
	p.sideToMove = mover
}

// IsAttacked reports whether any piece of color by attacks sq, per
// spec.md §4.6.
func (p *Position) IsAttacked(sq types.Square, by types.Color) bool {
	t := p.tables
	occ := p.AllOccupied()

	if t.PawnAttacks[by.Flip()][sq]&p.pieces[by][types.Pawn] != 0 {
		return true
	}
	if t.KnightAttacks[sq]&p.pieces[by][types.Knight] != 0 {
		return true
	}
	if t.KingAttacks[sq]&p.pieces[by][types.King] != 0 {
		return true
	}
	bishops := p.pieces[by][types.Bishop] | p.pieces[by][types.Queen]
	if t.Attacks(types.Bishop, sq, occ)&bishops != 0 {
		return true
	}
	rooks := p.pieces[by][types.Rook] | p.pieces[by][types.Queen]
	if t.Attacks(types.Rook, sq, occ)&rooks != 0 {
		return true
	}
	return false
}

// String renders the board as an 8x8 ASCII grid plus FEN and key, in the
// teacher's StringBoard/StringFen style.
func (p *Position) String() string {
	s := p.FEN() + "\n"
	s += "+---+---+---+---+---+---+---+---+\n"
	for r := types.Rank8; r >= types.Rank1; r-- {
		for f := types.FileA; f <= types.FileH; f++ {
			s += "| " + p.board[types.SquareOf(f, r)].String() + " "
		}
		s += "|\n+---+---+---+---+---+---+---+---+\n"
	}
	s += fmt.Sprintf("key: %016x side: %s\n", uint64(p.key), p.sideToMove)
	return s
}
