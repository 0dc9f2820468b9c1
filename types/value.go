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

// Value is a centipawn evaluation score from the perspective of the side
// to move.
type Value int32

const (
	// ValueZero is a draw/stalemate score.
	ValueZero Value = 0

	// ValueInf is larger in magnitude than any reachable evaluation or
	// mate score; used to seed alpha-beta's initial window.
	ValueInf Value = 100_000

	// ValueMate is the base mate score. A position where the side to move
	// is checkmated scores -(ValueMate - ply), so shorter mates for the
	// mating side (found at a shallower ply from the root) score higher
	// in magnitude and are preferred by the search.
	ValueMate Value = 50_000
)

// IsMateScore reports whether v represents a forced mate rather than a
// material evaluation.
func (v Value) IsMateScore() bool {
	return v <= -ValueMate+Value(MaxDepth) || v >= ValueMate-Value(MaxDepth)
}
