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

// Package testsuite reads perft test data in the format of spec.md §6.2:
// one position per line, `<FEN> ; D1 <n1> ; D2 <n2> ; ...`. It only loads
// and parses the cases; running movegen.Perft against them (up to a depth
// cap) is done by movegen's tests.
package testsuite

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/mfkoch/chesscore/logging"
)

var log = logging.GetLog("testsuite")

var depthFieldRegex = regexp.MustCompile(`^D(\d+)$`)

// MalformedPerftLineError reports a line violating the grammar of
// spec.md §6.2 (error kind MalformedPerftLine).
type MalformedPerftLineError struct {
	Line   string
	Reason string
}

func (e *MalformedPerftLineError) Error() string {
	return fmt.Sprintf("malformed perft line %q: %s", e.Line, e.Reason)
}

// Case is one perft test line: a starting FEN and the expected leaf count
// at each depth the line specifies.
type Case struct {
	Fen    string
	Counts map[int]uint64 // depth -> expected node count
}

// MaxDepth returns the highest depth this case specifies a count for.
func (c Case) MaxDepth() int {
	max := 0
	for d := range c.Counts {
		if d > max {
			max = d
		}
	}
	return max
}

// parseLine parses one "<FEN> ; D1 <n1> ; D2 <n2> ; ..." line.
func parseLine(line string) (Case, error) {
	fields := strings.Split(line, ";")
	if len(fields) < 2 {
		return Case{}, &MalformedPerftLineError{Line: line, Reason: "expected a FEN followed by at least one 'Dn <count>' field"}
	}

	fen := strings.TrimSpace(fields[0])
	if fen == "" {
		return Case{}, &MalformedPerftLineError{Line: line, Reason: "empty FEN field"}
	}

	counts := make(map[int]uint64, len(fields)-1)
	for _, f := range fields[1:] {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		parts := strings.Fields(f)
		if len(parts) != 2 {
			return Case{}, &MalformedPerftLineError{Line: line, Reason: fmt.Sprintf("malformed depth field %q", f)}
		}
		m := depthFieldRegex.FindStringSubmatch(parts[0])
		if m == nil {
			return Case{}, &MalformedPerftLineError{Line: line, Reason: fmt.Sprintf("depth field %q does not match D<n>", parts[0])}
		}
		depth, err := strconv.Atoi(m[1])
		if err != nil {
			return Case{}, &MalformedPerftLineError{Line: line, Reason: fmt.Sprintf("invalid depth %q", m[1])}
		}
		count, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			return Case{}, &MalformedPerftLineError{Line: line, Reason: fmt.Sprintf("invalid node count %q", parts[1])}
		}
		counts[depth] = count
	}
	if len(counts) == 0 {
		return Case{}, &MalformedPerftLineError{Line: line, Reason: "no depth fields found"}
	}

	return Case{Fen: fen, Counts: counts}, nil
}

// Load reads every non-blank, non-comment line of path as a perft test
// case. Lines starting with '#' (after trimming whitespace) are treated
// as comments and skipped.
func Load(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		log.Errorf("Load: cannot open %q: %s", path, err)
		return nil, err
	}
	defer f.Close()

	var cases []Case
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		c, err := parseLine(line)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	log.Infof("Load: read %d perft cases from %s", len(cases), path)
	return cases, nil
}
