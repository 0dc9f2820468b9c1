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

package types

import "sync"

// Key is a 64-bit Zobrist position hash.
type Key uint64

// CastlingPath describes what must be true of a board for one of the four
// castling moves to be generated: the squares between king and rook must
// be empty, and the three squares the king occupies, crosses and lands on
// must not be attacked.
type CastlingPath struct {
	// Empty is the set of squares (excluding the king's origin) that must
	// be unoccupied for the rook and king to have a clear path.
	Empty Bitboard
	// KingPath is the three squares {origin, transit, destination} of the
	// king that must not be attacked by the opponent.
	KingPath [3]Square
	KingFrom Square
	KingTo   Square
	RookFrom Square
	RookTo   Square
}

// Tables holds every piece of data precomputed once at startup: pseudo
// attack tables for pawns/knights/kings, magic bitboards for sliding
// attacks, castling path masks and Zobrist keys. It has no mutable state
// after NewTables returns, so a single Tables value may be shared freely
// - including, per spec.md §5, across goroutines of a future parallel
// search.
type Tables struct {
	PawnAttacks   [ColorLength][SqLength]Bitboard
	KnightAttacks [SqLength]Bitboard
	KingAttacks   [SqLength]Bitboard

	RookMagics   [SqLength]Magic
	BishopMagics [SqLength]Magic

	Castling [4]CastlingPath // indexed by bit position of CastlingWK/WQ/BK/BQ

	ZobristPiece  [ColorLength][PtLength][SqLength]Key
	ZobristCastle [CastlingRightsLength]Key
	ZobristSide   [ColorLength]Key
	ZobristEpFile [FileLength]Key
}

// NewTables builds a fresh, independent Tables value. Building it twice is
// wasteful but always produces functionally equivalent tables (the magic
// numbers chosen may differ between builds since the search is
// randomized, but every build is verified correct before being returned).
// Returns the MagicBootstrapFailed error (a *magicBootstrapError, not
// wrapped) if the randomized magic-number search exceeds its retry budget
// for some square.
func NewTables() (*Tables, error) {
	t := &Tables{}
	t.initPseudoAttacks()
	t.initCastlingPaths()
	var err error
	t.RookMagics, err = buildMagics(rookDirections)
	if err != nil {
		return nil, err
	}
	t.BishopMagics, err = buildMagics(bishopDirections)
	if err != nil {
		return nil, err
	}
	t.initZobrist()
	return t, nil
}

var defaultTables *Tables
var defaultTablesOnce sync.Once

// Default returns a process-wide Tables instance, built once on first use
// and reused thereafter. Building magic bitboards takes a noticeable
// fraction of a second, so most callers pass this instance to
// position.New/NewFEN (which always take an explicit Tables) and share it
// instead of paying that cost per position. Panics if the bootstrap fails,
// since a failure here indicates a bug rather than bad input - callers
// needing to handle that error explicitly should call NewTables directly.
func Default() *Tables {
	defaultTablesOnce.Do(func() {
		tb, err := NewTables()
		if err != nil {
			panic(err)
		}
		defaultTables = tb
	})
	return defaultTables
}

func (t *Tables) initPseudoAttacks() {
	for sq := SqA1; sq <= SqH8; sq++ {
		b := sq.Bb()

		t.PawnAttacks[White][sq] = shift(b, Northeast) | shift(b, Northwest)
		t.PawnAttacks[Black][sq] = shift(b, Southeast) | shift(b, Southwest)

		var knight Bitboard
		for _, d := range knightSteps(sq) {
			knight = knight.PushSquare(d)
		}
		t.KnightAttacks[sq] = knight

		var king Bitboard
		for _, d := range []Direction{North, South, East, West, Northeast, Northwest, Southeast, Southwest} {
			if s := sq.To(d); s != SqNone {
				king = king.PushSquare(s)
			}
		}
		t.KingAttacks[sq] = king
	}
}

// knightSteps returns the (up to 8) legal knight-move destinations from
// sq, computed directly from file/rank deltas so edge wrap-around is
// never possible.
func knightSteps(sq Square) []Square {
	f, r := int(sq.FileOf()), int(sq.RankOf())
	deltas := [8][2]int{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	dests := make([]Square, 0, 8)
	for _, d := range deltas {
		nf, nr := f+d[0], r+d[1]
		if nf >= int(FileA) && nf < int(FileLength) && nr >= int(Rank1) && nr < int(RankLength) {
			dests = append(dests, SquareOf(File(nf), Rank(nr)))
		}
	}
	return dests
}

// Attacks returns the attack set of a piece of type pt (not Pawn) standing
// on sq given the current total board occupancy, consulting the magic
// tables for sliding pieces and the precomputed pseudo-attacks otherwise.
func (t *Tables) Attacks(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		return t.BishopMagics[sq].attacksFor(occupied)
	case Rook:
		return t.RookMagics[sq].attacksFor(occupied)
	case Queen:
		return t.BishopMagics[sq].attacksFor(occupied) | t.RookMagics[sq].attacksFor(occupied)
	case Knight:
		return t.KnightAttacks[sq]
	case King:
		return t.KingAttacks[sq]
	default:
		return BbZero
	}
}

func intermediate(from, to Square) Bitboard {
	var b Bitboard
	ff, tf := int(from.FileOf()), int(to.FileOf())
	r := from.RankOf()
	lo, hi := ff, tf
	if lo > hi {
		lo, hi = hi, lo
	}
	for f := lo + 1; f < hi; f++ {
		b = b.PushSquare(SquareOf(File(f), r))
	}
	return b
}

func (t *Tables) initCastlingPaths() {
	t.Castling[0] = CastlingPath{ // WK
		Empty:    intermediate(SqE1, SqH1),
		KingPath: [3]Square{SqE1, SqF1, SqG1},
		KingFrom: SqE1, KingTo: SqG1,
		RookFrom: SqH1, RookTo: SqF1,
	}
	t.Castling[1] = CastlingPath{ // WQ
		Empty:    intermediate(SqE1, SqA1),
		KingPath: [3]Square{SqE1, SqD1, SqC1},
		KingFrom: SqE1, KingTo: SqC1,
		RookFrom: SqA1, RookTo: SqD1,
	}
	t.Castling[2] = CastlingPath{ // BK
		Empty:    intermediate(SqE8, SqH8),
		KingPath: [3]Square{SqE8, SqF8, SqG8},
		KingFrom: SqE8, KingTo: SqG8,
		RookFrom: SqH8, RookTo: SqF8,
	}
	t.Castling[3] = CastlingPath{ // BQ
		Empty:    intermediate(SqE8, SqA8),
		KingPath: [3]Square{SqE8, SqD8, SqC8},
		KingFrom: SqE8, KingTo: SqC8,
		RookFrom: SqA8, RookTo: SqD8,
	}
}

// CastlingPathFor returns the precomputed path data for one of the four
// castling rights (CastlingWK, CastlingWQ, CastlingBK or CastlingBQ).
func (t *Tables) CastlingPathFor(right CastlingRights) CastlingPath {
	switch right {
	case CastlingWK:
		return t.Castling[0]
	case CastlingWQ:
		return t.Castling[1]
	case CastlingBK:
		return t.Castling[2]
	default:
		return t.Castling[3]
	}
}

// zobristSeed is fixed so that two Tables built independently only ever
// differ in their (functionally interchangeable) magic numbers, never in
// their Zobrist keys - useful for reproducing test failures.
const zobristSeed = 1070372

func (t *Tables) initZobrist() {
	r := newPrng(zobristSeed)
	for c := White; c <= Black; c++ {
		for pt := King; pt < PtLength; pt++ {
			for sq := SqA1; sq <= SqH8; sq++ {
				t.ZobristPiece[c][pt][sq] = Key(r.next())
			}
		}
	}
	for cr := 0; cr < CastlingRightsLength; cr++ {
		t.ZobristCastle[cr] = Key(r.next())
	}
	for f := FileA; f < FileLength; f++ {
		t.ZobristEpFile[f] = Key(r.next())
	}
	t.ZobristSide[White] = Key(r.next())
	t.ZobristSide[Black] = Key(r.next())
}
