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

// Color is the side to move or the owner of a piece: White or Black.
// Every per-color lookup table in this file is indexed [White, Black], so
// Color doubles as that index directly.
type Color uint8

const (
	White Color = iota
	Black
	ColorLength
)

// Flip returns the other color.
func (c Color) Flip() Color {
	return c ^ 1
}

func (c Color) IsValid() bool {
	return c < ColorLength
}

var colorLabels = [ColorLength]string{White: "w", Black: "b"}

func (c Color) String() string {
	if !c.IsValid() {
		panic("invalid color")
	}
	return colorLabels[c]
}

// perColor holds the handful of values that differ only by which way White
// vs. Black faces on the board; each accessor below is a thin indexed view
// onto one of these tables.
type perColor struct {
	sign        [ColorLength]int
	pawnPush    [ColorLength]Direction
	promoRank   [ColorLength]Bitboard
	doublePush  [ColorLength]Bitboard
}

var byColor = perColor{
	sign:       [ColorLength]int{White: 1, Black: -1},
	pawnPush:   [ColorLength]Direction{White: North, Black: South},
	promoRank:  [ColorLength]Bitboard{White: Rank8_Bb, Black: Rank1_Bb},
	doublePush: [ColorLength]Bitboard{White: Rank3_Bb, Black: Rank6_Bb},
}

// Direction returns +1 for White and -1 for Black, for formulas that read
// the same for both sides once multiplied by this sign.
func (c Color) Direction() int {
	return byColor.sign[c]
}

// MoveDirection returns the ray direction a pawn of color c advances in.
func (c Color) MoveDirection() Direction {
	return byColor.pawnPush[c]
}

// PromotionRankBb returns the rank c's pawns promote on.
func (c Color) PromotionRankBb() Bitboard {
	return byColor.promoRank[c]
}

// PawnDoubleRank returns the rank c's pawns land on after a two-square
// opening push.
func (c Color) PawnDoubleRank() Bitboard {
	return byColor.doublePush[c]
}
