//
// Corvid - a UCI-compatible chess engine written in Go
//
// MIT License
//
// Copyright (c) 2020-2024 The Corvid Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package transpositiontable implements a fixed-size, direct-mapped hash
// table used to cache search results keyed by a position's Zobrist key.
// TtTable is not safe for concurrent Put/Probe from multiple searchers; in
// particular Resize and Clear must never race with an in-flight search.
package transpositiontable

import (
	"math"
	"runtime"
	"sync"
	"time"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/corvidchess/corvid/internal/logging"
	. "github.com/corvidchess/corvid/internal/types"
	"github.com/corvidchess/corvid/internal/util"
)

var out = message.NewPrinter(language.German)

// MaxSizeInMB caps how much memory a single TtTable may claim.
const MaxSizeInMB = 65_536

// newEntryAge is the age stamped onto an entry the moment it is written;
// Probe walks it back towards 0 on a hit, AgeEntries pushes every live
// entry further from 0 once per iteration so stale lines lose priority.
const newEntryAge = uint16(1)

// TtTable is a direct-mapped transposition table: a Zobrist key maps to
// exactly one slot via a bitmask, so lookups and stores are both O(1) with
// no chaining, at the cost of possible overwrites between unrelated
// positions that hash to the same slot.
type TtTable struct {
	log *logging.Logger

	slots     []TtEntry
	indexMask uint64
	capacity  uint64
	occupied  uint64
	sizeBytes uint64

	Stats Counters
}

// Counters tracks usage statistics purely for reporting; nothing in the
// table's behavior depends on these values.
type Counters struct {
	puts       uint64
	collisions uint64
	overwrites uint64
	updates    uint64
	probes     uint64
	hits       uint64
	misses     uint64
}

// NewTtTable builds a table sized to the largest power-of-two entry count
// that fits within sizeInMByte.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := &TtTable{log: myLogging.GetLog()}
	tt.Resize(sizeInMByte)
	return tt
}

// Resize clears the table and reallocates it for a new memory budget.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Error(out.Sprintf("requested TT size %d MB reduced to max %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}

	budget := uint64(sizeInMByte) * MB
	entries := uint64(0)
	if budget >= TtEntrySize {
		entries = 1 << uint64(math.Floor(math.Log2(float64(budget/TtEntrySize))))
	}

	tt.capacity = entries
	tt.indexMask = 0
	if entries > 0 {
		tt.indexMask = entries - 1
	}
	tt.sizeBytes = entries * TtEntrySize
	tt.slots = make([]TtEntry, entries)
	tt.occupied = 0

	tt.log.Info(out.Sprintf("TT size %d MByte, capacity %d entries of %d bytes (requested %d MByte)",
		tt.sizeBytes/MB, tt.capacity, unsafe.Sizeof(TtEntry{}), sizeInMByte))
	tt.log.Debug(util.MemStat())
}

// slotFor returns the single candidate slot a key can ever occupy.
func (tt *TtTable) slotFor(key Key) *TtEntry {
	return &tt.slots[uint64(key)&tt.indexMask]
}

// GetEntry returns the entry at key's slot if it actually stores that key,
// without touching any statistics or aging.
func (tt *TtTable) GetEntry(key Key) *TtEntry {
	if e := tt.slotFor(key); e.key == key {
		return e
	}
	return nil
}

// Probe looks up key and, on a hit, nudges the entry's age back towards
// "just used" so a subsequent store is less likely to evict it.
func (tt *TtTable) Probe(key Key) *TtEntry {
	if tt.capacity == 0 {
		return nil
	}
	tt.Stats.probes++
	e := tt.slotFor(key)
	if e.key != key {
		tt.Stats.misses++
		return nil
	}
	e.bumpAgeFresher()
	tt.Stats.hits++
	return e
}

// Put writes a search result into key's slot, following the replacement
// policy: an empty slot is always taken, a colliding key replaces the
// occupant only when it is deeper, or equally deep while the occupant has
// aged past 1, and a repeat of the same key updates
// in place (fields left at their "don't touch" sentinel are preserved).
func (tt *TtTable) Put(key Key, move Move, depth int8, value Value, vt ValueType, eval Value) {
	if tt.capacity == 0 {
		return
	}
	tt.Stats.puts++
	e := tt.slotFor(key)

	switch {
	case e.key == 0:
		tt.occupied++
		tt.store(e, key, move, depth, value, vt, eval, newEntryAge)

	case e.key != key:
		tt.Stats.collisions++
		if depth > e.Depth() || (depth == e.Depth() && e.Age() > 1) {
			tt.Stats.overwrites++
			tt.store(e, key, move, depth, value, vt, eval, newEntryAge)
		}

	default:
		tt.Stats.updates++
		tt.update(e, move, depth, value, vt, eval)
	}
}

func (tt *TtTable) store(e *TtEntry, key Key, move Move, depth int8, value Value, vt ValueType, eval Value, age uint16) {
	e.key = key
	e.move = uint16(move)
	e.eval = int16(eval)
	e.value = int16(value)
	e.meta = packMeta(depth, vt, age)
}

// update overwrites an existing entry for the same key, keeping whatever
// the caller passed as "no new information" sentinels (MoveNone, ValueNA).
func (tt *TtTable) update(e *TtEntry, move Move, depth int8, value Value, vt ValueType, eval Value) {
	if move != MoveNone {
		e.move = uint16(move)
	}
	if eval != ValueNA {
		e.eval = int16(eval)
	}
	if value != ValueNA {
		e.value = int16(value)
		e.meta = packMeta(depth, vt, e.Age())
	}
}

// Clear drops every entry without changing the table's capacity.
func (tt *TtTable) Clear() {
	tt.slots = make([]TtEntry, tt.capacity)
	tt.occupied = 0
	tt.Stats = Counters{}
}

// Hashfull reports occupancy in permill, as UCI's "hashfull" info field expects.
func (tt *TtTable) Hashfull() int {
	if tt.capacity == 0 {
		return 0
	}
	return int((1000 * tt.occupied) / tt.capacity)
}

func (tt *TtTable) String() string {
	st := tt.Stats
	return out.Sprintf("TT: size %d MB max entries %d of size %d Bytes entries %d (%d%%) puts %d "+
		"updates %d collisions %d overwrites %d probes %d hits %d (%d%%) misses %d (%d%%)",
		tt.sizeBytes/MB, tt.capacity, unsafe.Sizeof(TtEntry{}), tt.occupied, tt.Hashfull()/10,
		st.puts, st.updates, st.collisions, st.overwrites, st.probes,
		st.hits, (st.hits*100)/(1+st.probes),
		st.misses, (st.misses*100)/(1+st.probes))
}

// Len returns the number of occupied slots.
func (tt *TtTable) Len() uint64 {
	return tt.occupied
}

// AgeEntries pushes every occupied slot's age one step further from fresh,
// fanned out across the available CPUs since the table can hold tens of
// millions of entries by the time a long search calls this between moves.
func (tt *TtTable) AgeEntries() {
	start := time.Now()
	if tt.occupied > 0 {
		workers := uint64(runtime.NumCPU())
		if workers == 0 {
			workers = 1
		}
		chunk := tt.capacity / workers
		var wg sync.WaitGroup
		wg.Add(int(workers))
		for w := uint64(0); w < workers; w++ {
			from := w * chunk
			to := from + chunk
			if w == workers-1 {
				to = tt.capacity
			}
			go func(from, to uint64) {
				defer wg.Done()
				for i := from; i < to; i++ {
					if tt.slots[i].key != 0 {
						tt.slots[i].bumpAgeOlder()
					}
				}
			}(from, to)
		}
		wg.Wait()
	}
	tt.log.Debug(out.Sprintf("aged %d entries of %d in %d ms", tt.occupied, len(tt.slots), time.Since(start).Milliseconds()))
}
