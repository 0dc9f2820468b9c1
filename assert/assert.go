//go:build !debug

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

// Package assert provides cheap, compile-time-removable sanity checks for
// invariants the rest of the engine relies on but never wants to pay for
// in a release build.
package assert

import "fmt"

// DEBUG gates whether Assert actually evaluates. Kept false so the move
// generator and search hot paths cost nothing; flip locally while
// debugging a make/undo or magic-index issue.
const DEBUG = false

// Assert panics with a formatted message if cond is false. Callers in hot
// paths must additionally guard the call with "if assert.DEBUG { ... }" -
// arguments are still evaluated even when Assert itself is a no-op.
func Assert(cond bool, format string, args ...interface{}) {
	if !DEBUG {
		return
	}
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
