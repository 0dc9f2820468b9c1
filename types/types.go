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

// Package types contains the board-independent value types shared by the
// whole engine: squares, colors, pieces, bitboards, moves and the
// precomputed attack tables ("Tables") sliding and non-sliding attack
// lookups are based on.
//
// None of these types hold any hidden mutable global state: the only
// nontrivial precomputation (magic bitboards, pseudo attacks) lives behind
// a Tables value built once by NewTables and then passed around or shared
// read-only, per the single-initializer pattern described for this engine.
package types

const (
	// SqLength is the number of squares on the board.
	SqLength = 64

	// ColorLength is the number of colors.
	ColorLength = 2

	// MaxDepth is the maximum supported search depth.
	MaxDepth = 128

	// MaxMoves bounds the number of plies a single game/undo history holds.
	MaxMoves = 2048

	// MaxMoveListLength is the capacity of a MoveList. 218 is the
	// documented maximum number of legal moves in any reachable chess
	// position; 256 leaves headroom without being wasteful.
	MaxMoveListLength = 256
)
