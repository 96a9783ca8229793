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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/internal/position"
)

// ///////////////////////////////////////////////////////////////
// Perft tests from https://www.chessprogramming.org/Perft_Results
// ///////////////////////////////////////////////////////////////

// perftRow is the expected leaf-node classification at one depth.
type perftRow struct {
	depth                                     int
	nodes, captures, enpassant, checks, mates uint64
	castles, promotions                       uint64
}

// perftFields selects which of a perftRow's counters are actually asserted;
// some source positions never exercise castling or promotion at the tested
// depths, so those columns were never populated for them.
type perftFields struct {
	castles, promotions bool
}

type perftCase struct {
	name     string
	fen      string
	onDemand bool
	fields   perftFields
	rows     []perftRow
}

func runPerftCase(t *testing.T, c perftCase) {
	t.Run(c.name, func(t *testing.T) {
		a := assert.New(t)
		var perft Perft
		for _, row := range c.rows {
			perft.StartPerft(c.fen, row.depth, c.onDemand)
			a.Equal(row.nodes, perft.Nodes, "nodes at depth %d", row.depth)
			a.Equal(row.captures, perft.CaptureCounter, "captures at depth %d", row.depth)
			a.Equal(row.enpassant, perft.EnpassantCounter, "en passant at depth %d", row.depth)
			a.Equal(row.checks, perft.CheckCounter, "checks at depth %d", row.depth)
			a.Equal(row.mates, perft.CheckMateCounter, "mates at depth %d", row.depth)
			if c.fields.castles {
				a.Equal(row.castles, perft.CastleCounter, "castles at depth %d", row.depth)
			}
			if c.fields.promotions {
				a.Equal(row.promotions, perft.PromotionCounter, "promotions at depth %d", row.depth)
			}
		}
	})
}

// Performing PERFT Test for Depth 6
// -----------------------------------------
// Time         : 28.532 ms
// NPS          : 172.724 nps
// Results:
//   Nodes     : 119.060.324
//   Captures  : 2.812.008
//   EnPassant : 5.248
//   Checks    : 809.099
//   CheckMates: 10.828
//   Castles   : 0
//   Promotions: 0
// -----------------------------------------
// Finished PERFT Test for Depth 6
func TestPerft(t *testing.T) {
	standardRows := []perftRow{
		{depth: 1, nodes: 20},
		{depth: 2, nodes: 400},
		{depth: 3, nodes: 8_902, captures: 34, checks: 12},
		{depth: 4, nodes: 197_281, captures: 1_576, checks: 469, mates: 8},
		{depth: 5, nodes: 4_865_609, captures: 82_719, enpassant: 258, checks: 27_351, mates: 347},
	}

	cases := []perftCase{
		{
			name: "standard position batch generation",
			fen:  position.StartFen,
			rows: standardRows,
		},
		{
			name:     "standard position on demand generation",
			fen:      position.StartFen,
			onDemand: true,
			rows:     standardRows,
		},
		{
			name:     "kiwipete",
			fen:      "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - ",
			onDemand: true,
			fields:   perftFields{castles: true, promotions: true},
			rows: []perftRow{
				{depth: 1, nodes: 48, captures: 8, castles: 2},
				{depth: 2, nodes: 2_039, captures: 351, enpassant: 1, checks: 3, castles: 91},
				{depth: 3, nodes: 97_862, captures: 17_102, enpassant: 45, checks: 993, mates: 1, castles: 3_162},
				{depth: 4, nodes: 4_085_603, captures: 757_163, enpassant: 1_929, checks: 25_523, mates: 43, castles: 128_013, promotions: 15_172},
			},
		},
		{
			name:   "mirror position white to move",
			fen:    "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq -",
			fields: perftFields{castles: true, promotions: true},
			rows: []perftRow{
				{depth: 1, nodes: 6},
				{depth: 2, nodes: 264, captures: 87, checks: 10, castles: 6, promotions: 48},
				{depth: 3, nodes: 9467, captures: 1021, enpassant: 4, checks: 38, mates: 22, promotions: 120},
				{depth: 4, nodes: 422333, captures: 131393, checks: 15492, mates: 5, castles: 7795, promotions: 60032},
				{depth: 5, nodes: 15833292, captures: 2046173, enpassant: 6512, checks: 200568, mates: 50562, promotions: 329464},
			},
		},
		{
			name:   "mirror position black to move (mirrored)",
			fen:    "r2q1rk1/pP1p2pp/Q4n2/bbp1p3/Np6/1B3NBn/pPPP1PPP/R3K2R b KQ -",
			fields: perftFields{castles: true, promotions: true},
			rows: []perftRow{
				{depth: 1, nodes: 6},
				{depth: 2, nodes: 264, captures: 87, checks: 10, castles: 6, promotions: 48},
				{depth: 3, nodes: 9467, captures: 1021, enpassant: 4, checks: 38, mates: 22, promotions: 120},
				{depth: 4, nodes: 422333, captures: 131393, checks: 15492, mates: 5, castles: 7795, promotions: 60032},
				{depth: 5, nodes: 15833292, captures: 2046173, enpassant: 6512, checks: 200568, mates: 50562, promotions: 329464},
			},
		},
		{
			name: "position 5",
			fen:  "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ -",
			rows: []perftRow{
				{depth: 1, nodes: 44},
				{depth: 2, nodes: 1_486},
				{depth: 3, nodes: 62_379},
				{depth: 4, nodes: 2_103_487},
			},
		},
	}

	for _, c := range cases {
		runPerftCase(t, c)
	}
}

// TestPerftMultiRunsEveryDepth confirms StartPerftMulti visits each depth in
// the requested range, leaving Nodes holding the final depth's result.
func TestPerftMultiRunsEveryDepth(t *testing.T) {
	var perft Perft
	perft.StartPerftMulti(position.StartFen, 1, 3, false)
	assert.Equal(t, uint64(8_902), perft.Nodes)
}
