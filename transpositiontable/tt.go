/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
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

// Package transpositiontable implements a direct-mapped, Zobrist-indexed
// transposition table for the search. The TtTable type is not thread safe
// and needs to be synchronized externally if ever shared across goroutines.
package transpositiontable

import (
	"math"
	"unsafe"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"chesscore/logging"
	"chesscore/position"
	. "chesscore/types"
)

var out = message.NewPrinter(language.German)
var log = logging.GetLog("tt")

// Flag classifies how a stored score relates to the true minimax value of
// the position at the time of the store.
type Flag int8

const (
	// NoFlag marks an empty or invalid entry.
	NoFlag Flag = iota
	// Exact means the stored score is the exact minimax value.
	Exact
	// LowerBound means the stored score is a lower bound (search failed high).
	LowerBound
	// UpperBound means the stored score is an upper bound (search failed low).
	UpperBound
)

// TtEntry is one slot of the table: a Zobrist key, the search depth it was
// stored at, a score with its bound classification, and the best move found
// at that node (MoveNone if none).
type TtEntry struct {
	Key   position.Key
	Move  Move
	Score Value
	Depth int8
	Flag  Flag
}

// TtEntrySize is the size in bytes of each TtEntry.
const TtEntrySize = int(unsafe.Sizeof(TtEntry{}))

// MaxSizeInMB is the maximal memory usage permitted for a table.
const MaxSizeInMB = 65_536

// TtTable is a direct-mapped transposition table: a slot is addressed by
// zobrist & mask, and holds at most one entry.
type TtTable struct {
	data            []TtEntry
	mask            uint64
	sizeInByte      uint64
	numberOfEntries uint64
	Stats           TtStats
}

// TtStats holds statistical data on tt usage.
type TtStats struct {
	numberOfPuts       uint64
	numberOfCollisions uint64
	numberOfOverwrites uint64
	numberOfUpdates    uint64
	numberOfProbes     uint64
	numberOfHits       uint64
	numberOfMisses     uint64
}

// NewTtTable creates a new TtTable sized to the largest power-of-two entry
// count fitting within sizeInMByte.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := &TtTable{}
	tt.Resize(sizeInMByte)
	return tt
}

// Resize resizes the table, clearing all entries. Not safe to call while a
// search is reading or writing the table.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		log.Error(out.Sprintf("requested TT size of %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}

	sizeInByte := uint64(sizeInMByte) * MB
	maxEntries := uint64(0)
	if sizeInByte >= uint64(TtEntrySize) {
		maxEntries = uint64(1) << uint64(math.Floor(math.Log2(float64(sizeInByte)/float64(TtEntrySize))))
	}

	tt.mask = 0
	if maxEntries > 0 {
		tt.mask = maxEntries - 1
	}
	tt.sizeInByte = maxEntries * uint64(TtEntrySize)
	tt.data = make([]TtEntry, maxEntries)
	tt.numberOfEntries = 0
	tt.Stats = TtStats{}

	log.Info(out.Sprintf("TT size %d MByte, capacity %d entries of %d bytes (requested %d MByte)",
		tt.sizeInByte/MB, maxEntries, TtEntrySize, sizeInMByte))
}

// Probe returns the stored entry for key and true, or a zero entry and
// false if the slot is empty or holds a different position.
func (tt *TtTable) Probe(key position.Key) (TtEntry, bool) {
	tt.Stats.numberOfProbes++
	if len(tt.data) == 0 {
		tt.Stats.numberOfMisses++
		return TtEntry{}, false
	}
	e := tt.data[tt.hash(key)]
	if e.Key == key && e.Flag != NoFlag {
		tt.Stats.numberOfHits++
		return e, true
	}
	tt.Stats.numberOfMisses++
	return TtEntry{}, false
}

// Put stores an entry for key, following the depth-preferred replacement
// policy: a slot is overwritten if empty or if the new entry's depth is at
// least the existing entry's depth.
func (tt *TtTable) Put(key position.Key, move Move, score Value, depth int8, flag Flag) {
	if len(tt.data) == 0 {
		return
	}
	tt.Stats.numberOfPuts++

	slot := tt.hash(key)
	existing := &tt.data[slot]

	if existing.Flag == NoFlag {
		tt.numberOfEntries++
		*existing = TtEntry{Key: key, Move: move, Score: score, Depth: depth, Flag: flag}
		return
	}
	if existing.Key != key {
		tt.Stats.numberOfCollisions++
	} else {
		tt.Stats.numberOfUpdates++
	}
	if depth >= existing.Depth {
		tt.Stats.numberOfOverwrites++
		*existing = TtEntry{Key: key, Move: move, Score: score, Depth: depth, Flag: flag}
	}
}

// Clear resets all entries.
func (tt *TtTable) Clear() {
	tt.data = make([]TtEntry, len(tt.data))
	tt.numberOfEntries = 0
	tt.Stats = TtStats{}
}

// Hashfull returns how full the table is, in permille, as per UCI.
func (tt *TtTable) Hashfull() int {
	if len(tt.data) == 0 {
		return 0
	}
	return int((1000 * tt.numberOfEntries) / uint64(len(tt.data)))
}

// String returns a human-readable summary of table size and usage stats.
func (tt *TtTable) String() string {
	return out.Sprintf("TT: size %d MB entries %d/%d (%d permille) puts %d updates %d collisions %d "+
		"overwrites %d probes %d hits %d (%d%%) misses %d (%d%%)",
		tt.sizeInByte/MB, tt.numberOfEntries, len(tt.data), tt.Hashfull(),
		tt.Stats.numberOfPuts, tt.Stats.numberOfUpdates, tt.Stats.numberOfCollisions, tt.Stats.numberOfOverwrites,
		tt.Stats.numberOfProbes, tt.Stats.numberOfHits, (tt.Stats.numberOfHits*100)/(1+tt.Stats.numberOfProbes),
		tt.Stats.numberOfMisses, (tt.Stats.numberOfMisses*100)/(1+tt.Stats.numberOfProbes))
}

// Len returns the number of non-empty entries in the table.
func (tt *TtTable) Len() uint64 {
	return tt.numberOfEntries
}

func (tt *TtTable) hash(key position.Key) uint64 {
	return uint64(key) & tt.mask
}
