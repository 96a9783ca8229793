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
	"github.com/corvidchess/corvid/internal/moveslice"
	"github.com/corvidchess/corvid/internal/position"
)

// on demand generation state. odNew is the one-off state handled before the
// table-driven stages (pushing the pv move); odGen marks the first table
// entry and odEnd is computed from the table length so adding a stage never
// needs a renumber.
const (
	odNew int8 = iota
	odGen
)

var odEnd = odGen + int8(len(odStages))

// odStage is one phase of on demand move generation. It only runs when the
// caller's requested mode includes runMode; subMode is what gets passed down
// to the generator itself (captures or non-captures).
type odStage struct {
	runMode    GenMode
	subMode    GenMode
	gen        func(mg *Movegen, p *position.Position, mode GenMode, ml *moveslice.MoveSlice)
	pushKiller bool
}

// Stages run in this order regardless of requested mode; a stage whose
// runMode bit is not set in the caller's mode is skipped without generating
// or sorting. This mirrors roughly the order of most promising moves first.
var odStages = []odStage{
	{GenCap, GenCap, (*Movegen).generatePawnMoves, false},
	{GenCap, GenCap, (*Movegen).generateMoves, false},
	{GenCap, GenCap, (*Movegen).generateKingMoves, false},
	{GenNonCap, GenNonCap, (*Movegen).generatePawnMoves, true},
	{GenNonCap, GenNonCap, (*Movegen).generateCastling, true},
	{GenNonCap, GenNonCap, (*Movegen).generateMoves, true},
	{GenNonCap, GenNonCap, (*Movegen).generateKingMoves, true},
}

// fillOnDemandMoveList calls the actual generation of moves in phases,
// one stage per call into this loop, stopping as soon as a stage produces
// at least one move (or the pv move was pushed).
func (mg *Movegen) fillOnDemandMoveList(p *position.Position, mode GenMode) {
	for mg.onDemandMoves.Len() == 0 && mg.currentODStage < odEnd {
		if mg.currentODStage == odNew {
			mg.pushPvMove(p, mode)
			mg.currentODStage = odGen
		} else {
			stage := odStages[mg.currentODStage-odGen]
			if mode&stage.runMode != 0 {
				stage.gen(mg, p, stage.subMode, mg.onDemandMoves)
				if stage.pushKiller {
					mg.pushKiller(mg.onDemandMoves)
				}
			}
			mg.currentODStage++
		}
		if mg.onDemandMoves.Len() > 0 {
			mg.onDemandMoves.Sort()
		}
	}
}

// pushPvMove pushes the pv move into the on demand list, honoring mode:
// a capturing pv move is only pushed when captures were requested, and
// likewise for a non-capturing one.
func (mg *Movegen) pushPvMove(p *position.Position, mode GenMode) {
	if mg.pvMove == MoveNone {
		return
	}
	switch mode {
	case GenAll:
		mg.pvMovePushed = true
		mg.onDemandMoves.PushBack(mg.pvMove)
	case GenCap:
		if p.IsCapturingMove(mg.pvMove) {
			mg.pvMovePushed = true
			mg.onDemandMoves.PushBack(mg.pvMove)
		}
	case GenNonCap:
		if !p.IsCapturingMove(mg.pvMove) {
			mg.pvMovePushed = true
			mg.onDemandMoves.PushBack(mg.pvMove)
		}
	}
}

func (mg *Movegen) pushKiller(m *moveslice.MoveSlice) {
	// Killer may only be returned if they actually are valid moves
	// in this position which we can't know as Killers are stored
	// for the whole ply. Checking a killer's validity is expensive
	// (amounts to a whole move generation) so we only re-sort them
	// to the top once they are actually generated.
	for i := 0; i < len(*m); i++ {
		move := &(*m)[i]
		if mg.killerMoves[1] == move.MoveOf() {
			(*move).SetValue(-4001)
		}
		if mg.killerMoves[0] == move.MoveOf() {
			(*move).SetValue(-4000)
		}
	}
}
