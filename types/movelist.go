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
	"strings"
)

// MoveList is a bounded, zero-allocation buffer of moves. Its capacity
// (MaxMoveListLength) comfortably exceeds the documented maximum of 218
// legal moves in any reachable chess position, so callers on the
// generator's hot path can keep one on the stack and reuse it across
// positions with Clear.
type MoveList struct {
	moves [MaxMoveListLength]Move
	len   int
}

// Len returns the number of moves currently stored.
func (ml *MoveList) Len() int {
	return ml.len
}

// Clear empties the list without releasing its backing array.
func (ml *MoveList) Clear() {
	ml.len = 0
}

// Add appends a move. Panics if the list is already at capacity, which
// would indicate a move-generation bug (more legal moves than the
// documented chess maximum), not a recoverable runtime condition.
func (ml *MoveList) Add(m Move) {
	if ml.len >= MaxMoveListLength {
		panic(fmt.Sprintf("MoveList: capacity %d exceeded", MaxMoveListLength))
	}
	ml.moves[ml.len] = m
	ml.len++
}

// At returns the move at index i. Panics if i is out of range.
func (ml *MoveList) At(i int) Move {
	if i < 0 || i >= ml.len {
		panic(fmt.Sprintf("MoveList: index %d out of range [0,%d)", i, ml.len))
	}
	return ml.moves[i]
}

// Contains reports whether m is present in the list (by value equality,
// ignoring any sort-value bits since none are encoded in this Move layout).
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.len; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// String renders the list as a space-separated sequence of UCI move strings.
func (ml *MoveList) String() string {
	var s strings.Builder
	s.WriteString("[")
	for i := 0; i < ml.len; i++ {
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(ml.moves[i].String())
	}
	s.WriteString("]")
	return s.String()
}
