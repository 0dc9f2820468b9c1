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

// Package transpositiontable implements the fixed-capacity, open-addressed
// transposition table of spec.md §4.10: linear probing from key mod
// capacity, tombstones on delete rather than compaction. It is not safe
// for concurrent use - per spec.md §5 the engine is single-threaded.
package transpositiontable

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mfkoch/chesscore/logging"
	"github.com/mfkoch/chesscore/types"
)

var log = logging.GetLog("tt")
var numberPrinter = message.NewPrinter(language.English)

// entry is one slot of the table.
type entry struct {
	key        types.Key
	move       types.Move
	occupied   bool
	tombstoned bool
}

// Stats tracks usage counters, mirroring the teacher's TtStats the way a
// real engine reports hash-table health.
type Stats struct {
	Inserts    uint64
	Lookups    uint64
	Hits       uint64
	Deletes    uint64
	Collisions uint64
}

// Table is the transposition table itself: a fixed-length array of
// entries sized to a power of two so the probe start index is a cheap
// mask instead of a modulo.
type Table struct {
	entries   []entry
	mask      uint64
	liveCount uint64
	Stats     Stats
}

// New creates a table with room for at least capacity live entries,
// rounded up to the next power of two.
func New(capacity int) *Table {
	size := uint64(1)
	for size < uint64(capacity) {
		size <<= 1
	}
	return &Table{
		entries: make([]entry, size),
		mask:    size - 1,
	}
}

// Capacity returns the number of slots backing the table.
func (t *Table) Capacity() int { return len(t.entries) }

// LiveCount returns the number of slots currently holding a live (not
// tombstoned) entry.
func (t *Table) LiveCount() uint64 { return t.liveCount }

// TableFullError reports that Insert could find no empty or tombstoned
// slot to place a new key into (spec.md §7, TableFull).
type TableFullError struct{ Key types.Key }

func (e *TableFullError) Error() string {
	return numberPrinter.Sprintf("transposition table full, cannot insert key %d", uint64(e.Key))
}

// Insert places move under key, per spec.md §4.10: probe linearly from
// key mod capacity, skipping slots occupied by a different live key,
// until an empty, tombstoned, or matching-key slot is found.
//
// Collision policy (an explicit choice spec.md leaves to the
// implementation): when the probe reaches a live slot holding key before
// any empty or tombstoned slot, Insert replaces that slot's move. It
// never evicts a different live key to make room; otherwise it claims
// the first empty or tombstoned slot, even if a live entry for key sits
// further along the probe path.
func (t *Table) Insert(key types.Key, move types.Move) error {
	t.Stats.Inserts++
	idx := uint64(key) & t.mask
	for i := uint64(0); i <= t.mask; i++ {
		slot := &t.entries[idx]
		if !slot.occupied {
			*slot = entry{key: key, move: move, occupied: true}
			t.liveCount++
			return nil
		}
		if slot.key == key {
			slot.move = move
			slot.tombstoned = false
			return nil
		}
		t.Stats.Collisions++
		idx = (idx + 1) & t.mask
	}
	log.Warningf("Insert: table full at key %016x", uint64(key))
	return &TableFullError{Key: key}
}

// Lookup probes linearly from key mod capacity, skipping tombstones but
// stopping at a truly empty slot, and returns the stored move if a live
// entry matches key.
func (t *Table) Lookup(key types.Key) (types.Move, bool) {
	t.Stats.Lookups++
	idx := uint64(key) & t.mask
	for i := uint64(0); i <= t.mask; i++ {
		slot := &t.entries[idx]
		if !slot.occupied && !slot.tombstoned {
			return types.MoveNone, false
		}
		if slot.occupied && slot.key == key {
			t.Stats.Hits++
			return slot.move, true
		}
		idx = (idx + 1) & t.mask
	}
	return types.MoveNone, false
}

// Delete removes key's entry if present, leaving a tombstone behind so
// later lookups still probe past this slot to find keys that collided
// with it.
func (t *Table) Delete(key types.Key) {
	t.Stats.Deletes++
	idx := uint64(key) & t.mask
	for i := uint64(0); i <= t.mask; i++ {
		slot := &t.entries[idx]
		if !slot.occupied && !slot.tombstoned {
			return
		}
		if slot.occupied && slot.key == key {
			slot.occupied = false
			slot.tombstoned = true
			t.liveCount--
			return
		}
		idx = (idx + 1) & t.mask
	}
}

// Clear empties the table without reallocating its backing array.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = entry{}
	}
	t.liveCount = 0
	log.Debugf("Clear: table reset (%s slots)", numberPrinter.Sprintf("%d", len(t.entries)))
}
