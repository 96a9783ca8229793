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

package transpositiontable

import (
	. "github.com/corvidchess/corvid/internal/types"
)

// TtEntry is one slot of the transposition table. The struct is packed to
// stay at 16 bytes: a plain Go struct of a Key, a Move, two Values and an
// int8 depth would be 24 bytes or more once aligned, so depth/type/age are
// folded into a single uint16 field and unpacked on access.
type TtEntry struct {
	key   Key
	move  uint16 // low 16 bits of a Move; see Move(e.move)
	eval  int16  // static eval at the time of the store
	value int16  // search value, already adjusted for mate distance
	meta  uint16 // bit-packed: [depth:7][type:2][age:3], high to low
}

// TtEntrySize is sizeof(TtEntry) in bytes; kept explicit rather than relying
// on unsafe.Sizeof everywhere a capacity calculation needs it.
const TtEntrySize = 16

// bit layout of TtEntry.meta: age occupies the low 3 bits so increasing or
// decreasing it is a plain +/-1 on the whole field as long as type/depth
// above it are unaffected by the carry (age saturates before that happens).
const (
	ageBits  = 3
	typeBits = 2

	ageMask  = uint16(1<<ageBits) - 1
	typeMask = uint16(1<<typeBits) - 1

	typeShift  = ageBits
	depthShift = ageBits + typeBits
)

func packMeta(depth int8, vt ValueType, age uint16) uint16 {
	return uint16(depth)<<depthShift | uint16(vt)<<typeShift | (age & ageMask)
}

func (e *TtEntry) Key() Key       { return e.key }
func (e *TtEntry) Move() Move     { return Move(e.move) }
func (e *TtEntry) Value() Value   { return Value(e.value) }
func (e *TtEntry) Eval() Value    { return Value(e.eval) }
func (e *TtEntry) Depth() int8    { return int8(e.meta >> depthShift) }
func (e *TtEntry) Age() int8      { return int8(e.meta & ageMask) }
func (e *TtEntry) Vtype() ValueType {
	return ValueType((e.meta >> typeShift) & typeMask)
}

func (e *TtEntry) bumpAgeOlder() {
	if e.Age() < ageMask {
		e.meta++
	}
}

func (e *TtEntry) bumpAgeFresher() {
	if e.Age() > 0 {
		e.meta--
	}
}
