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

// Package types is the engine's vocabulary: squares, pieces, moves, values
// and the other primitives every other package builds on. Most of these
// read as enums; Go const blocks plus a named integer type stand in for
// that since the language has no enum keyword.
package types

var typesReady bool

// init runs once, building the precomputed bitboard and piece-square
// tables every other function in this package assumes are already filled
// in by the time it's called.
func init() {
	if typesReady {
		return
	}
	initBb()
	initPosValues()
	typesReady = true
}

// board geometry and search limits
const (
	SqLength int = 64
	MaxDepth     = 128
	MaxMoves     = 512
)

// byte-size helpers, used by anything sizing a memory budget (the
// transposition table in particular).
const (
	KB uint64 = 1024
	MB uint64 = KB * KB
	GB uint64 = KB * MB
)

// GamePhaseMax bounds the running tally used to blend midgame and endgame
// piece-square values: it is the total GamePhaseValue of every officer
// (knight/bishop/rook/queen) on a full board.
const GamePhaseMax = 24

// Key is a Zobrist hash identifying a position (not necessarily uniquely).
type Key uint64
