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

// Square identifies one of the 64 squares of a chess board, numbered by
// rank starting at a1=0 up through h8=63; SqNone marks "no square".
type Square uint8

const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
)

// IsValid reports whether sq names one of the 64 board squares.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file sq sits on.
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank sq sits on.
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// MakeSquare parses a two-character square label such as "e4", returning
// SqNone if s does not name a square on the board.
func MakeSquare(s string) Square {
	file := File(s[0] - 'a')
	rank := Rank(s[1] - '1')
	if !file.IsValid() || !rank.IsValid() {
		return SqNone
	}
	return SquareOf(file, rank)
}

// SquareOf combines a file and rank into a square, or SqNone if either is
// out of range.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square((int(r) << 3) + int(f))
}

// String renders sq as its algebraic label (e.g. "e5"), or "-" for SqNone.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// To steps one square from sq along ray direction d, returning SqNone if
// that step would leave the board, including wrapping around a file edge.
func (sq Square) To(d Direction) Square {
	return rayNeighbor[sq][dirSlot[d]]
}

// rayNeighbor[sq][slot] precomputes Square.To for every square and every
// ray direction, indexed through dirSlot so the hot path is two array
// lookups instead of a branch over the direction value.
var rayNeighbor [SqLength][8]Square

var dirSlot = buildDirSlot()

func buildDirSlot() map[Direction]int {
	m := make(map[Direction]int, len(Directions))
	for i, d := range Directions {
		m[d] = i
	}
	return m
}

// wrapsAt names, for the four ray directions that can run off the left or
// right edge of the board, the file a step in that direction must not
// start from. North and South have no entry: they only overflow past
// rank 8 or rank 1, which plain Square arithmetic already catches via
// IsValid.
var wrapsAt = map[Direction]File{
	East:      FileH,
	Northeast: FileH,
	Southeast: FileH,
	West:      FileA,
	Southwest: FileA,
	Northwest: FileA,
}

func (sq Square) step(d Direction) Square {
	if edge, wraps := wrapsAt[d]; wraps && sq.FileOf() == edge {
		return SqNone
	}
	next := sq + Square(d)
	if !next.IsValid() {
		return SqNone
	}
	return next
}

func init() {
	for sq := SqA1; sq < SqNone; sq++ {
		for slot, d := range Directions {
			rayNeighbor[sq][slot] = sq.step(d)
		}
	}
}
