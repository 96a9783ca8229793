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

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

func TestAttacksTo(t *testing.T) {
	type probe struct {
		sq   Square
		c    Color
		want uint64
	}
	tests := []struct {
		name   string
		fen    string
		probes []probe
	}{
		{
			name: "middlegame position with both bishops active",
			fen:  "2brr1k1/1pq1b1p1/p1np1p1p/P1p1p2n/1PNPPP2/2P1BNP1/4Q1BP/R2R2K1 w - -",
			probes: []probe{
				{SqE5, White, 740294656},
				{SqF1, White, 20552},
				{SqD4, White, 3407880},
				{SqD4, Black, 4483945857024},
				{SqD6, Black, 582090251837636608},
				{SqF8, Black, 5769111122661605376},
			},
		},
		{
			name: "position with queens and a rook battery",
			fen:  "r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/6R1/pbp2PPP/1R4K1 b kq e3",
			probes: []probe{
				{SqE5, Black, 2339760743907840},
				{SqB1, Black, 1280},
				{SqG3, White, 40960},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := position.NewPosition(tt.fen)
			for _, pr := range tt.probes {
				got := AttacksTo(p, pr.sq, pr.c)
				logTest.Debug("\n", got.StringBoard())
				logTest.Debug(got.StringGrouped())
				assert.EqualValues(t, pr.want, got, "AttacksTo(%s, %s)", pr.sq, pr.c)
			}
		})
	}
}

func TestRevealedAttacks(t *testing.T) {
	p := position.NewPosition("1k1r3q/1ppn3p/p4b2/4p3/8/P2N2P1/1PP1R1BP/2K1Q3 w - -")
	occ := p.OccupiedAll()
	sq := SqE5

	attacksTo := AttacksTo(p, sq, White) | AttacksTo(p, sq, Black)
	logTest.Debug("Direct\n", attacksTo.StringBoard())
	logTest.Debug(attacksTo.StringGrouped())
	assert.EqualValues(t, 2286984186302464, attacksTo)

	steps := []struct {
		uncover Square
		want    Bitboard
	}{
		{SqF6, 9225623836668989440},
		{SqE2, 9225623836668985360},
	}
	for _, s := range steps {
		attacksTo.PopSquare(s.uncover)
		occ.PopSquare(s.uncover)

		attacksTo |= revealedAttacks(p, sq, occ, White) | revealedAttacks(p, sq, occ, Black)
		logTest.Debug("Revealed\n", attacksTo.StringBoard())
		logTest.Debug(attacksTo.StringGrouped())
		assert.EqualValues(t, s.want, attacksTo)
	}
}

func TestLeastValuablePiece(t *testing.T) {
	p := position.NewPosition("r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/6R1/pbp2PPP/1R4K1 b kq e3")
	attacksTo := AttacksTo(p, SqE5, Black)

	logTest.Debug("All attackers\n", attacksTo.StringBoard())
	logTest.Debug(attacksTo.StringGrouped())
	assert.EqualValues(t, 2339760743907840, attacksTo)

	// each successive least-valuable-attacker pick should remove itself from
	// the set, surfacing the next cheapest piece until nothing is left.
	want := []Square{SqG6, SqD7, SqB2, SqE6, SqNone}
	for _, sq := range want {
		lva := getLeastValuablePiece(p, attacksTo, Black)
		logTest.Debug("Least valuable piece:", lva.String())
		assert.EqualValues(t, sq, lva)
		attacksTo.PopSquare(lva)
	}
}
