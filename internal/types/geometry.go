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

// geometry.go groups the small coordinate types (File, Rank, Direction,
// Orientation) that describe where things are on the board and how to
// move between them, as opposed to square.go's Square itself.

// Direction is an offset applied to a Square to move along a ray.
type Direction int8

const (
	North     Direction = 8
	South     Direction = -North
	East      Direction = 1
	West      Direction = -East
	Northeast           = North + East
	Southeast           = South + East
	Southwest           = South + West
	Northwest           = North + West
)

// Directions lists every ray direction in a fixed, stable order; code that
// precomputes per-square, per-direction tables iterates this slice.
var Directions = [8]Direction{North, East, South, West, Northeast, Southeast, Southwest, Northwest}

var directionNames = map[Direction]string{
	North: "N", East: "E", South: "S", West: "W",
	Northeast: "NE", Southeast: "SE", Southwest: "SW", Northwest: "NW",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	panic("invalid direction")
}

// Orientation indexes the eight rays emanating from a square, used by the
// sliding-piece ray tables. Unlike Direction it is a dense 0..7 index
// suitable for direct array indexing rather than a board-offset value.
type Orientation uint8

const (
	NW Orientation = iota
	N
	NE
	E
	SE
	S
	SW
	W
)

var orientationNames = [8]string{"NW", "N", "NE", "E", "SE", "S", "SW", "W"}

func (o Orientation) IsValid() bool { return o < 8 }

func (o Orientation) String() string {
	if !o.IsValid() {
		panic("invalid orientation")
	}
	return orientationNames[o]
}

// File is a column of the board, a (0) through h (7).
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	FileNone
)

const fileLetters = "abcdefgh"

func (f File) IsValid() bool { return f < FileNone }

// Bb returns the full-file bitboard for f.
func (f File) Bb() Bitboard { return fileBb[f] }

func (f File) String() string {
	if !f.IsValid() {
		return "-"
	}
	return string(fileLetters[f])
}

// Rank is a row of the board, 1 (0) through 8 (7).
type Rank uint8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	RankNone
	RankLength = RankNone
)

const rankDigits = "12345678"

func (r Rank) IsValid() bool { return r < RankNone }

// Bb returns the full-rank bitboard for r.
func (r Rank) Bb() Bitboard { return rankBb[r] }

func (r Rank) String() string {
	if !r.IsValid() {
		return "-"
	}
	return string(rankDigits[r])
}
