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

import "strings"

// CastlingRights packs the four independent castling rights (WK, WQ, BK,
// BQ) into one 4-bit value.
type CastlingRights uint8

const (
	CastlingNone CastlingRights = 0
)

// explicit bit assignment - clearer than iota math for a 4-bit flag set.
const (
	castlingWK CastlingRights = 1 << 0
	castlingWQ CastlingRights = 1 << 1
	castlingBK CastlingRights = 1 << 2
	castlingBQ CastlingRights = 1 << 3
)

const (
	// CastlingWK is White's kingside right.
	CastlingWK = castlingWK
	// CastlingWQ is White's queenside right.
	CastlingWQ = castlingWQ
	// CastlingBK is Black's kingside right.
	CastlingBK = castlingBK
	// CastlingBQ is Black's queenside right.
	CastlingBQ = castlingBQ

	CastlingWhite CastlingRights = castlingWK | castlingWQ
	CastlingBlack CastlingRights = castlingBK | castlingBQ
	CastlingAny   CastlingRights = CastlingWhite | CastlingBlack

	// CastlingRightsLength is the number of distinct castling-rights
	// combinations (2^4), used to size the Zobrist castling-key table.
	CastlingRightsLength = 16
)

// Has reports whether every bit set in rhs is also set in lhs. This is a
// bitwise-AND test, not OR: testing rights with OR would make any nonzero
// right look like every right is held.
func (lhs CastlingRights) Has(rhs CastlingRights) bool {
	return lhs&rhs == rhs
}

// Remove clears the given right(s) from lhs.
func (lhs *CastlingRights) Remove(rhs CastlingRights) {
	*lhs &^= rhs
}

// KingsideRight returns the kingside castling right for color c.
func KingsideRight(c Color) CastlingRights {
	if c == White {
		return CastlingWK
	}
	return CastlingBK
}

// QueensideRight returns the queenside castling right for color c.
func QueensideRight(c Color) CastlingRights {
	if c == White {
		return CastlingWQ
	}
	return CastlingBQ
}

// String renders castling rights in FEN order, e.g. "KQkq", or "-" if none.
func (lhs CastlingRights) String() string {
	var b strings.Builder
	if lhs.Has(CastlingWK) {
		b.WriteByte('K')
	}
	if lhs.Has(CastlingWQ) {
		b.WriteByte('Q')
	}
	if lhs.Has(CastlingBK) {
		b.WriteByte('k')
	}
	if lhs.Has(CastlingBQ) {
		b.WriteByte('q')
	}
	if b.Len() == 0 {
		return "-"
	}
	return b.String()
}
