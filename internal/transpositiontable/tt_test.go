/*
 * Corvid - a UCI-compatible chess engine written in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2024 The Corvid Authors
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

package transpositiontable

import (
	"math/rand"
	"os"
	"path"
	"runtime"
	"testing"
	"time"
	"unsafe"

	logging2 "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

var logTest *logging2.Logger

func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	logTest = logging.GetTestLog()
	os.Exit(m.Run())
}

func TestEntrySize(t *testing.T) {
	var e TtEntry
	assert.EqualValues(t, 16, unsafe.Sizeof(e))
	logTest.Debugf("size of TtEntry: %d bytes", unsafe.Sizeof(e))
}

func TestResizeCapacity(t *testing.T) {
	cases := []struct {
		mb       int
		capacity uint64
	}{
		{2, 131_072},
		{64, 4_194_304},
		{100, 4_194_304},
		{4_096, 268_435_456},
	}
	for _, c := range cases {
		tt := NewTtTable(c.mb)
		assert.Equal(t, c.capacity, tt.capacity)
		assert.Equal(t, int(c.capacity), cap(tt.slots))
	}
}

func TestGetEntryAndProbe(t *testing.T) {
	tt := NewTtTable(64)
	pos := position.NewPosition()
	move := CreateMove(SqE2, SqE4, Normal, PtNone)

	tt.Put(pos.ZobristKey(), move, 5, Value(17), EXACT, Value(20))

	e := tt.GetEntry(pos.ZobristKey())
	assert.Equal(t, pos.ZobristKey(), e.Key())
	assert.Equal(t, move, e.Move())
	assert.EqualValues(t, 5, e.Depth())
	assert.Equal(t, EXACT, e.Vtype())
	assert.EqualValues(t, 1, e.Age())

	// a probe hit walks the age back towards fresh
	e = tt.Probe(pos.ZobristKey())
	assert.EqualValues(t, 0, e.Age())
	e = tt.Probe(pos.ZobristKey())
	assert.EqualValues(t, 0, e.Age()) // does not go negative

	pos.DoMove(move)
	assert.Nil(t, tt.Probe(pos.ZobristKey()))
}

func TestClear(t *testing.T) {
	tt := NewTtTable(1)
	pos := position.NewPosition()
	move := CreateMove(SqE2, SqE4, Normal, PtNone)

	tt.Put(pos.ZobristKey(), move, 5, Value(1), EXACT, Value(1))
	assert.EqualValues(t, 1, tt.Len())

	tt.Clear()
	assert.Nil(t, tt.Probe(pos.ZobristKey()))
	assert.EqualValues(t, 0, tt.Len())
	assert.EqualValues(t, 0, tt.Stats.puts)
}

func TestAgeEntries(t *testing.T) {
	tt := NewTtTable(5_000)

	start := time.Now()
	for i := range tt.slots {
		tt.slots[i].key = Key(i)
		tt.slots[i].meta = packMeta(0, Vnone, 1)
		tt.occupied++
	}
	tt.slots[0].meta = packMeta(0, Vnone, 0)
	logTest.Debug(out.Sprintf("filled %d slots in %d ms", len(tt.slots), time.Since(start).Milliseconds()))

	assert.EqualValues(t, 0, tt.GetEntry(0).Age())
	assert.EqualValues(t, 1, tt.GetEntry(1).Age())
	assert.EqualValues(t, 1, tt.GetEntry(Key(tt.capacity-1)).Age())

	tt.AgeEntries()

	assert.EqualValues(t, 0, tt.GetEntry(0).Age())
	assert.EqualValues(t, 2, tt.GetEntry(1).Age())
	assert.EqualValues(t, 2, tt.GetEntry(Key(tt.capacity-1)).Age())
}

func TestPutReplacementPolicy(t *testing.T) {
	tt := NewTtTable(4)
	move := CreateMove(SqE2, SqE4, Normal, PtNone)

	// fresh slot is always taken
	tt.Put(111, move, 4, Value(111), ALPHA, Value(1))
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 1, tt.Stats.puts)
	e := tt.Probe(111)
	assert.EqualValues(t, 111, e.Key())
	assert.EqualValues(t, 4, e.Depth())
	assert.Equal(t, ALPHA, e.Vtype())

	// same key updates in place
	tt.Put(111, move, 5, Value(112), BETA, Value(2))
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 2, tt.Stats.puts)
	assert.EqualValues(t, 1, tt.Stats.updates)
	assert.EqualValues(t, 0, tt.Stats.collisions)
	e = tt.Probe(111)
	assert.EqualValues(t, 5, e.Depth())
	assert.Equal(t, BETA, e.Vtype())

	// a same-depth collision against a freshly aged entry is refused
	collision := Key(111 + tt.capacity)
	tt.Put(collision, move, 5, Value(113), EXACT, Value(3))
	assert.EqualValues(t, 3, tt.Stats.puts)
	assert.EqualValues(t, 1, tt.Stats.collisions)
	assert.EqualValues(t, 0, tt.Stats.overwrites)
	assert.Nil(t, tt.Probe(collision))

	// a deeper collision always wins
	tt.Put(collision, move, 6, Value(114), EXACT, Value(4))
	assert.EqualValues(t, 1, tt.Stats.overwrites)
	e = tt.Probe(collision)
	assert.EqualValues(t, collision, e.Key())
	assert.EqualValues(t, 6, e.Depth())
}

func TestHashfull(t *testing.T) {
	tt := NewTtTable(1)
	move := CreateMove(SqE2, SqE4, Normal, PtNone)
	assert.EqualValues(t, 0, tt.Hashfull())
	for i := uint64(0); i < tt.capacity/10; i++ {
		tt.Put(Key(i), move, 1, Value(1), EXACT, Value(1))
	}
	assert.InDelta(t, 100, tt.Hashfull(), 5)
}

func TestTimingTT(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test in short mode.")
	}

	tt := NewTtTable(1_024)
	move := CreateMove(SqE2, SqE4, Normal, PtNone)

	const rounds = 5
	const iterations uint64 = 50_000_000

	for r := 1; r <= rounds; r++ {
		out.Printf("round %d\n", r)
		key := Key(rand.Uint64())
		depth := int8(rand.Int31n(128))
		value := Value(rand.Int31n(int32(ValueMax)))
		vt := ValueType(rand.Int31n(4))
		start := time.Now()
		for i := uint64(0); i < iterations; i++ {
			tt.Put(key+Key(i), move, depth, value, vt, Value(0))
		}
		for i := uint64(0); i < iterations; i++ {
			_ = tt.Probe(key + Key(2*i))
		}
		elapsed := time.Since(start)
		out.Println(tt.String())
		out.Printf("round took %d ns for %d iterations (1 put + 1 probe)\n", elapsed.Nanoseconds(), iterations)
	}
}
