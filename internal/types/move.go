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

import (
	"fmt"
	"strings"

	"github.com/corvidchess/corvid/internal/assert"
)

// Move packs a from-square, to-square, move type and (for promotions) a
// promotion piece type into the low 16 bits, leaving the high 16 bits free
// to carry a move generator's sort value:
//
//	bit:   31..16            15 14  13 12   11..6   5..0
//	field: sort value         type  promo   from    to
//
// MoveNone (all zero) is never a legal encoding of a real move.
type Move uint32

const MoveNone Move = 0

const (
	toShift       uint = 0
	fromShift     uint = 6
	promTypeShift uint = 12
	typeShift     uint = 14
	valueShift    uint = 16

	squareBits Move = 0x3F
	toMask          = squareBits << toShift
	fromMask        = squareBits << fromShift
	promTypeMask  Move = 3 << promTypeShift
	moveTypeMask  Move = 3 << typeShift
	moveMask      Move = 0xFFFF
	valueMask     Move = 0xFFFF << valueShift
)

// encode packs the move-identity bits shared by CreateMove and
// CreateMoveValue; promType below Knight (including PtNone, for non-promo
// moves) collapses to Knight since only 2 bits are available to store it.
func encode(from, to Square, t MoveType, promType PieceType) Move {
	if promType < Knight {
		promType = Knight
	}
	return Move(to)<<toShift |
		Move(from)<<fromShift |
		Move(promType-Knight)<<promTypeShift |
		Move(t)<<typeShift
}

// CreateMove builds a Move with no sort value attached.
func CreateMove(from, to Square, t MoveType, promType PieceType) Move {
	return encode(from, to, t, promType)
}

// CreateMoveValue builds a Move carrying value as its sort value.
func CreateMoveValue(from, to Square, t MoveType, promType PieceType, value Value) Move {
	return encode(from, to, t, promType) | Move(value-ValueNA)<<valueShift
}

func (m Move) MoveType() MoveType {
	return MoveType((m & moveTypeMask) >> typeShift)
}

// PromotionType returns the promotion piece type. The result is only
// meaningful when MoveType() == Promotion.
func (m Move) PromotionType() PieceType {
	return PieceType((m&promTypeMask)>>promTypeShift) + Knight
}

func (m Move) To() Square {
	return Square((m & toMask) >> toShift)
}

func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// MoveOf strips any attached sort value, leaving the bare move identity.
func (m Move) MoveOf() Move {
	return m & moveMask
}

// ValueOf returns the sort value stashed in the high 16 bits.
func (m Move) ValueOf() Value {
	return Value((m&valueMask)>>valueShift) + ValueNA
}

// SetValue stores v as m's sort value; a MoveNone is left untouched since
// there is no move identity to attach a value to.
func (m *Move) SetValue(v Value) Move {
	if assert.DEBUG {
		assert.Assert(v == ValueNA || v.IsValid(), "Invalid value value: %d", v)
	}
	if *m == MoveNone {
		return *m
	}
	*m = *m&moveMask | Move(v-ValueNA)<<valueShift
	return *m
}

// IsValid reports whether m's squares, promotion type, move type and sort
// value (if any) all decode to something legal. MoveNone is never valid.
func (m Move) IsValid() bool {
	return m != MoveNone &&
		m.From().IsValid() &&
		m.To().IsValid() &&
		m.PromotionType().IsValid() &&
		m.MoveType().IsValid() &&
		(m.ValueOf() == ValueNA || m.ValueOf().IsValid())
}

func (m Move) String() string {
	if m == MoveNone {
		return "Move: { MoveNone }"
	}
	return fmt.Sprintf("Move: { %-5s  type:%1s  prom:%1s  value:%-6d  (%d) }",
		m.StringUci(), m.MoveType().String(), m.PromotionType().Char(), m.ValueOf(), m)
}

// StringUci renders m in UCI long algebraic notation, e.g. "e2e4" or
// "e7e8q" for a promotion.
func (m Move) StringUci() string {
	if m == MoveNone {
		return "NoMove"
	}
	var sb strings.Builder
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if m.MoveType() == Promotion {
		sb.WriteString(m.PromotionType().Char())
	}
	return sb.String()
}

// StringBits renders every field of m alongside its raw bit pattern, for
// debugging the encoding itself.
func (m Move) StringBits() string {
	return fmt.Sprintf(
		"Move { From[%-0.6b](%s) To[%-0.6b](%s) Prom[%-0.2b](%s) tType[%-0.2b](%s) value[%-0.16b](%d) (%d)}",
		m.From(), m.From().String(),
		m.To(), m.To().String(),
		m.PromotionType(), m.PromotionType().Char(),
		m.MoveType(), m.MoveType().String(),
		m.ValueOf(), m.ValueOf(),
		m)
}
