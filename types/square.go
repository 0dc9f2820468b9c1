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

import "github.com/mfkoch/chesscore/assert"

// Square is one of the 64 board squares, indexed A1=0 .. H8=63.
type Square int8

//noinspection GoUnusedConst
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
)

// IsValid reports whether sq is one of the 64 board squares.
func (sq Square) IsValid() bool {
	return sq >= SqA1 && sq < SqNone
}

// FileOf returns the file of sq.
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank of sq.
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// SquareOf returns the square at the given file and rank, or SqNone if
// either is out of range.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(int(r)<<3 + int(f))
}

// MakeSquare parses a two-character algebraic square such as "e4". Returns
// SqNone if s is not a valid square string.
func MakeSquare(s string) Square {
	if assert.DEBUG {
		assert.Assert(len(s) == 2, "square string %q is not 2 characters long", s)
	}
	if len(s) != 2 {
		return SqNone
	}
	f := File(s[0] - 'a')
	r := Rank(s[1] - '1')
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return SquareOf(f, r)
}

// String returns the algebraic name of sq, e.g. "e4", or "-" if invalid.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// To returns the square reached by stepping once in direction d from sq,
// or SqNone if that step would leave the board (including wrap-around on
// the east/west edges).
func (sq Square) To(d Direction) Square {
	switch d {
	case North, South:
		t := sq + Square(d)
		if t.IsValid() {
			return t
		}
		return SqNone
	case East, Northeast, Southeast:
		if sq.FileOf() == FileH {
			return SqNone
		}
		t := sq + Square(d)
		if t.IsValid() {
			return t
		}
		return SqNone
	case West, Northwest, Southwest:
		if sq.FileOf() == FileA {
			return SqNone
		}
		t := sq + Square(d)
		if t.IsValid() {
			return t
		}
		return SqNone
	default:
		return SqNone
	}
}

// squareDistance[a][b] is the Chebyshev distance between two squares,
// precomputed once at init since it depends only on file/rank deltas.
var squareDistance [SqLength][SqLength]int

func init() {
	abs := func(x int) int {
		if x < 0 {
			return -x
		}
		return x
	}
	max := func(a, b int) int {
		if a > b {
			return a
		}
		return b
	}
	for a := SqA1; a <= SqH8; a++ {
		for b := SqA1; b <= SqH8; b++ {
			fd := abs(int(a.FileOf()) - int(b.FileOf()))
			rd := abs(int(a.RankOf()) - int(b.RankOf()))
			squareDistance[a][b] = max(fd, rd)
		}
	}
}

// SquareDistance returns the Chebyshev (king-move) distance between s1 and s2.
func SquareDistance(s1, s2 Square) int {
	return squareDistance[s1][s2]
}
