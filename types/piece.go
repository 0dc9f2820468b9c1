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

// Piece is a (Color, PieceType) pair. Unlike the classic "color punned into
// the high bit of an enum" trick, this keeps color and kind as separate,
// named fields; the zero value Piece{} (White, PtNone) is the empty-square
// sentinel, so a zeroed board starts out correctly empty.
type Piece struct {
	Color Color
	Type  PieceType
}

// PieceNone is the empty-square sentinel.
var PieceNone = Piece{Color: White, Type: PtNone}

// MakePiece builds a Piece from its color and kind.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece{Color: c, Type: pt}
}

// IsNone reports whether p represents an empty square.
func (p Piece) IsNone() bool {
	return p.Type == PtNone
}

var whiteChars = [PtLength]string{"-", "K", "P", "N", "B", "R", "Q"}
var blackChars = [PtLength]string{"-", "k", "p", "n", "b", "r", "q"}

// String returns the standard single-character piece letter: uppercase for
// White, lowercase for Black, "-" for an empty square.
func (p Piece) String() string {
	if p.IsNone() {
		return "-"
	}
	if p.Color == White {
		return whiteChars[p.Type]
	}
	return blackChars[p.Type]
}

// PieceFromChar parses a single FEN piece letter into a Piece. Returns
// PieceNone, false for an unrecognized letter.
func PieceFromChar(c byte) (Piece, bool) {
	for pt := King; pt < PtLength; pt++ {
		if whiteChars[pt] != "-" && whiteChars[pt][0] == c {
			return MakePiece(White, pt), true
		}
		if blackChars[pt] != "-" && blackChars[pt][0] == c {
			return MakePiece(Black, pt), true
		}
	}
	return PieceNone, false
}
