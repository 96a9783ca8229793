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

package types

// value.go holds Value (a centipawn/mate-distance score) and ValueType
// (whether a stored Value is exact or a search bound), since every
// transposition-table entry and search return carries one of each.

import (
	"strconv"
	"strings"

	"github.com/corvidchess/corvid/internal/util"
)

// Value is a search or evaluation score in centipawns. Scores near
// ValueCheckMate instead encode "mate in N" distances.
type Value int16

const (
	ValueZero Value = 0
	ValueDraw Value = 0
	ValueOne  Value = 1

	ValueInf Value = 15_000
	ValueNA  Value = -ValueInf - 1

	ValueMax Value = 10_000
	ValueMin Value = -ValueMax

	ValueCheckMate          Value = ValueMax
	ValueCheckMateThreshold Value = ValueCheckMate - MaxDepth - 1
)

func (v Value) IsValid() bool {
	return v >= ValueMin && v <= ValueMax
}

// IsCheckMateValue reports whether v is close enough to ValueCheckMate
// that it encodes a forced mate rather than a material/positional score.
func (v Value) IsCheckMateValue() bool {
	mag := util.Abs(int(v))
	return mag > int(ValueCheckMateThreshold) && mag <= int(ValueCheckMate)
}

// String renders v the way UCI's "score" info field does: "cp <n>" for a
// plain score, "mate <n>" (signed) for a forced mate, or "N/A".
func (v Value) String() string {
	switch {
	case v == ValueNA:
		return "N/A"
	case v.IsCheckMateValue():
		pliesToMate := int(ValueCheckMate) - util.Abs(int(v))
		movesToMate := (pliesToMate + 1) / 2
		var sb strings.Builder
		sb.WriteString("mate ")
		if v < ValueZero {
			sb.WriteByte('-')
		}
		sb.WriteString(strconv.Itoa(movesToMate))
		return sb.String()
	default:
		return "cp " + strconv.Itoa(int(v))
	}
}

// ValueType records what kind of bound a stored Value represents: an
// exact score, or an alpha/beta cutoff bound from a search that stopped
// early.
type ValueType int8

const (
	Vnone ValueType = iota
	EXACT
	ALPHA // upper bound
	BETA  // lower bound
	Vlength
)

func (vt ValueType) IsValid() bool {
	return vt < Vlength
}

var valueTypeNames = [Vlength]string{"NoneValue", "ExactValue", "AlphaValue", "BetaValue"}

func (vt ValueType) String() string {
	return valueTypeNames[vt]
}
