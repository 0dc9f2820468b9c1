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

package movegen

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mfkoch/chesscore/position"
	"github.com/mfkoch/chesscore/types"
)

// numberPrinter formats perft node counts with thousands separators in log
// output, the way the teacher's perft harness formats them for console
// output - here routed through the logging package instead of stdout,
// since console rendering is out of scope.
var numberPrinter = message.NewPrinter(language.English)

// Perft counts leaf positions reached by playing only legal moves, per
// spec.md §6.2/§8. It is a pure function of (position, depth); it mutates
// p transiently via MakeMove/UndoMove but always restores it.
func Perft(p *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var ml types.MoveList
	Generate(p, &ml)

	var nodes uint64
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		if !p.MakeMove(m) {
			continue
		}
		nodes += Perft(p, depth-1)
		p.UndoMove()
	}
	return nodes
}

// DivideEntry is one root move's contribution to a PerftDivide result.
type DivideEntry struct {
	Move  types.Move
	Nodes uint64
}

// PerftDivide runs Perft one ply at a time from the root, attributing the
// node count reached after each legal root move. Useful for isolating
// which root move a perft mismatch comes from; not part of spec.md, added
// as a thin wrapper over Perft/Generate/MakeMove/UndoMove per SPEC_FULL's
// supplemented-features note.
func PerftDivide(p *position.Position, depth int) ([]DivideEntry, uint64) {
	var ml types.MoveList
	Generate(p, &ml)

	var total uint64
	entries := make([]DivideEntry, 0, ml.Len())
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		if !p.MakeMove(m) {
			continue
		}
		n := Perft(p, depth-1)
		p.UndoMove()
		entries = append(entries, DivideEntry{Move: m, Nodes: n})
		total += n
	}
	log.Debugf("PerftDivide depth=%d total=%s", depth, numberPrinter.Sprintf("%d", total))
	return entries, total
}
