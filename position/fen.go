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

package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mfkoch/chesscore/types"
)

// MalformedFENError reports that a FEN string did not match the grammar
// of spec.md §6.1.
type MalformedFENError struct {
	Fen    string
	Reason string
}

func (e *MalformedFENError) Error() string {
	return fmt.Sprintf("malformed FEN %q: %s", e.Fen, e.Reason)
}

// NewFEN parses fen (the six space-separated fields of spec.md §6.1) into
// a fresh Position bound to tb. Only field semantics are validated; no
// legality checking of the resulting position is performed.
func NewFEN(fen string, tb *types.Tables) (*Position, error) {
	fen = strings.TrimSpace(fen)
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, &MalformedFENError{Fen: fen, Reason: "empty input"}
	}

	p := New(tb)

	sq := types.SqA8
	for _, c := range fields[0] {
		switch {
		case c >= '1' && c <= '8':
			sq = sq + types.Square(c-'0')
		case c == '/':
			sq = sq.To(types.South).To(types.South)
		default:
			pc, ok := types.PieceFromChar(byte(c))
			if !ok {
				return nil, &MalformedFENError{Fen: fen, Reason: fmt.Sprintf("invalid piece char %q", c)}
			}
			if sq == types.SqNone || !sq.IsValid() {
				return nil, &MalformedFENError{Fen: fen, Reason: "piece placement overruns the board"}
			}
			p.putPiece(pc, sq)
			sq++
		}
	}

	p.sideToMove = types.White
	if len(fields) >= 2 {
		switch fields[1] {
		case "w":
			p.sideToMove = types.White
		case "b":
			p.sideToMove = types.Black
		default:
			return nil, &MalformedFENError{Fen: fen, Reason: fmt.Sprintf("invalid active color %q", fields[1])}
		}
	}
	p.key ^= tb.ZobristSide[p.sideToMove]

	if len(fields) >= 3 && fields[2] != "-" {
		var cr types.CastlingRights
		for _, c := range fields[2] {
			switch c {
			case 'K':
				cr |= types.CastlingWK
			case 'Q':
				cr |= types.CastlingWQ
			case 'k':
				cr |= types.CastlingBK
			case 'q':
				cr |= types.CastlingBQ
			default:
				return nil, &MalformedFENError{Fen: fen, Reason: fmt.Sprintf("invalid castling char %q", c)}
			}
		}
		p.castleRights = cr
	}
	p.key ^= tb.ZobristCastle[p.castleRights]

	p.epSquare = types.SqNone
	if len(fields) >= 4 && fields[3] != "-" {
		ep := types.MakeSquare(fields[3])
		if ep == types.SqNone {
			return nil, &MalformedFENError{Fen: fen, Reason: fmt.Sprintf("invalid en passant square %q", fields[3])}
		}
		p.epSquare = ep
		p.key ^= tb.ZobristEpFile[ep.FileOf()]
	}

	p.halfmoveClock = 0
	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, &MalformedFENError{Fen: fen, Reason: fmt.Sprintf("invalid halfmove clock %q", fields[4])}
		}
		p.halfmoveClock = n
	}

	p.fullmoveNumber = 1
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, &MalformedFENError{Fen: fen, Reason: fmt.Sprintf("invalid fullmove number %q", fields[5])}
		}
		p.fullmoveNumber = n
	}

	log.Debugf("NewFEN: parsed %q -> key=%016x", fen, uint64(p.key))
	return p, nil
}

// FEN renders the position back into the six-field format of spec.md
// §6.1, the inverse of NewFEN. Not required by the spec but exercised by
// round-trip tests since a position that can only be read and never
// rendered is otherwise untestable from the outside.
func (p *Position) FEN() string {
	var b strings.Builder
	for r := types.Rank8; r >= types.Rank1; r-- {
		empty := 0
		for f := types.FileA; f <= types.FileH; f++ {
			pc := p.board[types.SquareOf(f, r)]
			if pc.IsNone() {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(pc.String())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if r > types.Rank1 {
			b.WriteString("/")
		}
	}
	b.WriteString(" ")
	b.WriteString(p.sideToMove.String())
	b.WriteString(" ")
	b.WriteString(p.castleRights.String())
	b.WriteString(" ")
	b.WriteString(p.epSquare.String())
	b.WriteString(" ")
	b.WriteString(strconv.Itoa(p.halfmoveClock))
	b.WriteString(" ")
	b.WriteString(strconv.Itoa(p.fullmoveNumber))
	return b.String()
}
