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

// MoveFlag classifies a Move beyond its origin/target squares.
type MoveFlag uint8

const (
	Quiet MoveFlag = iota
	KingCastle
	QueenCastle
	EnPassant
	DoublePush
	PromoKnight
	PromoBishop
	PromoRook
	PromoQueen
	moveFlagLength
)

// IsPromotion reports whether f is one of the four promotion flags.
func (f MoveFlag) IsPromotion() bool {
	return f >= PromoKnight && f <= PromoQueen
}

// PromotedType returns the piece type a promotion flag promotes to. Only
// meaningful when IsPromotion() is true.
func (f MoveFlag) PromotedType() PieceType {
	switch f {
	case PromoKnight:
		return Knight
	case PromoBishop:
		return Bishop
	case PromoRook:
		return Rook
	case PromoQueen:
		return Queen
	default:
		return PtNone
	}
}

// Move is a move packed into 32 bits:
//
//	bits  0- 5  origin square      (6 bits)
//	bits  6-11  target square      (6 bits)
//	bits 12-15  moving piece kind  (4 bits)
//	bits 16-19  captured piece kind (4 bits, PtNone if none)
//	bits 20-23  flag               (4 bits)
//
// A Move is constructed once by the generator and never mutated; make/undo
// and search only ever read it through the accessors below, so the packing
// itself stays a private implementation detail.
type Move uint32

const (
	MoveNone Move = 0

	originShift   = 0
	targetShift   = 6
	movingShift   = 12
	capturedShift = 16
	flagShift     = 20

	squareBits Move = 0x3F
	kindBits   Move = 0xF
	flagBits   Move = 0xF
)

// NewMove packs a move's fields into a Move value.
func NewMove(origin, target Square, moving, captured PieceType, flag MoveFlag) Move {
	return Move(origin)<<originShift |
		Move(target)<<targetShift |
		Move(moving)<<movingShift |
		Move(captured)<<capturedShift |
		Move(flag)<<flagShift
}

// Origin returns the move's origin square.
func (m Move) Origin() Square {
	return Square((m >> originShift) & squareBits)
}

// Target returns the move's target square.
func (m Move) Target() Square {
	return Square((m >> targetShift) & squareBits)
}

// MovingPiece returns the kind of piece making the move.
func (m Move) MovingPiece() PieceType {
	return PieceType((m >> movingShift) & kindBits)
}

// CapturedPiece returns the kind of piece captured by the move, or PtNone
// if the move is not a capture. For EnPassant this is always Pawn even
// though the captured pawn does not stand on Target().
func (m Move) CapturedPiece() PieceType {
	return PieceType((m >> capturedShift) & kindBits)
}

// IsCapture reports whether the move captures a piece (including en passant).
func (m Move) IsCapture() bool {
	return m.CapturedPiece() != PtNone
}

// Flag returns the move's flag.
func (m Move) Flag() MoveFlag {
	return MoveFlag((m >> flagShift) & flagBits)
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Flag().IsPromotion()
}

// PromotedTo returns the piece type a promotion move promotes to. Only
// meaningful when IsPromotion() is true.
func (m Move) PromotedTo() PieceType {
	return m.Flag().PromotedType()
}

// IsValid reports whether m looks like a legitimately constructed move
// (not the MoveNone sentinel, with in-range squares and piece kinds).
func (m Move) IsValid() bool {
	return m != MoveNone &&
		m.Origin().IsValid() &&
		m.Target().IsValid() &&
		m.MovingPiece().IsValid() &&
		m.Flag() < moveFlagLength
}

// String returns a UCI-style representation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m == MoveNone {
		return "0000"
	}
	var s strings.Builder
	s.WriteString(m.Origin().String())
	s.WriteString(m.Target().String())
	if m.IsPromotion() {
		s.WriteString(strings.ToLower(m.PromotedTo().Char()))
	}
	return s.String()
}
