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

// Package config holds process-wide, TOML-configurable settings for the
// engine: log verbosity, search depth and transposition table size.
// A missing or unreadable config file is not fatal - defaults apply.
package config

import (
	"github.com/BurntSushi/toml"
)

// Settings is the global configuration, populated by Load (or left at the
// defaults below if Load is never called).
var Settings = conf{
	Log: logConfig{
		Level: 2,
	},
	Search: searchConfig{
		Depth: 4,
	},
	TT: ttConfig{
		SizeMB: 64,
	},
}

type conf struct {
	Log    logConfig
	Search searchConfig
	TT     ttConfig
}

// logConfig controls the verbosity of the logging package's backends.
// Level follows github.com/op/go-logging's Level enum (0=CRITICAL .. 5=DEBUG).
type logConfig struct {
	Level int `toml:"level"`
}

// searchConfig controls the fixed-depth negamax search.
type searchConfig struct {
	Depth int `toml:"depth"`
}

// ttConfig controls the transposition table's capacity.
type ttConfig struct {
	SizeMB int `toml:"size_mb"`
}

// Load decodes path as a TOML file into Settings, leaving whatever fields
// the file omits at their current (default) values. Returns the decode
// error verbatim; callers may choose to ignore it and keep running on
// defaults, as a missing config file is not a fatal condition.
func Load(path string) error {
	_, err := toml.DecodeFile(path, &Settings)
	return err
}
