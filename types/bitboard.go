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

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of squares; bit i set means square i is a
// member of the set.
type Bitboard uint64

// various constant bitboards, built by direct bitwise generation - no
// magic numbers involved at this level.
const (
	BbZero Bitboard = 0
	BbAll  Bitboard = ^BbZero

	FileABb Bitboard = 0x0101010101010101
	FileBBb Bitboard = FileABb << 1
	FileCBb Bitboard = FileABb << 2
	FileDBb Bitboard = FileABb << 3
	FileEBb Bitboard = FileABb << 4
	FileFBb Bitboard = FileABb << 5
	FileGBb Bitboard = FileABb << 6
	FileHBb Bitboard = FileABb << 7

	Rank1Bb Bitboard = 0xFF
	Rank2Bb Bitboard = Rank1Bb << (8 * 1)
	Rank3Bb Bitboard = Rank1Bb << (8 * 2)
	Rank4Bb Bitboard = Rank1Bb << (8 * 3)
	Rank5Bb Bitboard = Rank1Bb << (8 * 4)
	Rank6Bb Bitboard = Rank1Bb << (8 * 5)
	Rank7Bb Bitboard = Rank1Bb << (8 * 6)
	Rank8Bb Bitboard = Rank1Bb << (8 * 7)

	notFileABb = ^FileABb
	notFileHBb = ^FileHBb
)

var fileBb = [FileLength]Bitboard{FileABb, FileBBb, FileCBb, FileDBb, FileEBb, FileFBb, FileGBb, FileHBb}
var rankBb = [RankLength]Bitboard{Rank1Bb, Rank2Bb, Rank3Bb, Rank4Bb, Rank5Bb, Rank6Bb, Rank7Bb, Rank8Bb}

// Bb returns the bitboard of all eight squares on f's file.
func (f File) Bb() Bitboard { return fileBb[f] }

// Bb returns the bitboard of all eight squares on r's rank.
func (r Rank) Bb() Bitboard { return rankBb[r] }

// Bb returns the single-bit bitboard for sq.
func (sq Square) Bb() Bitboard {
	return Bitboard(1) << uint(sq)
}

// Has reports whether sq's bit is set in b.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bb() != 0
}

// PushSquare returns b with sq's bit set.
func (b Bitboard) PushSquare(sq Square) Bitboard {
	return b | sq.Bb()
}

// PopSquare returns b with sq's bit cleared.
func (b Bitboard) PopSquare(sq Square) Bitboard {
	return b &^ sq.Bb()
}

// PopCount returns the number of set bits in b.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the index of the least significant set bit, as a Square.
// The result is undefined (callers must guard with b != BbZero) if b is
// empty; in practice it returns SqNone's numeric value, 64, which is safe
// to compare against but not to index an attack table with.
func (b Bitboard) Lsb() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns the least significant set bit of *b as a Square and
// clears it. Returns SqNone if *b is empty.
func (b *Bitboard) PopLsb() Square {
	if *b == BbZero {
		return SqNone
	}
	sq := b.Lsb()
	*b &= *b - 1
	return sq
}

// shift moves every bit of b one square in direction d, masking off bits
// that would wrap around the board edge.
func shift(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b &^ FileHBb) << 1
	case West:
		return (b &^ FileABb) >> 1
	case Northeast:
		return (b &^ FileHBb) << 9
	case Southeast:
		return (b &^ FileHBb) >> 7
	case Southwest:
		return (b &^ FileABb) >> 9
	case Northwest:
		return (b &^ FileABb) << 7
	default:
		return b
	}
}

// String returns the 64-bit binary representation, MSB (square H8) first.
func (b Bitboard) String() string {
	return fmt.Sprintf("%064b", uint64(b))
}

// StrBoard renders b as an 8x8 ASCII board, rank 8 at the top.
func (b Bitboard) StrBoard() string {
	var s strings.Builder
	s.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; r >= Rank1; r-- {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, r)) {
				s.WriteString("| X ")
			} else {
				s.WriteString("|   ")
			}
		}
		s.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	return s.String()
}
