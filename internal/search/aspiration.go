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

package search

import (
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// This file holds alternative root search strategies that narrow the
// alpha/beta window around the previous iteration's score instead of
// searching the full window every iteration. Both fall back to rootSearch
// for the actual node search and read the result back out of pv[0].

// aspirationSearch searches with a window around lastValue and re-searches
// with a widened window whenever the result falls outside of it. Saves
// nodes over a full-window search whenever the score is stable between
// iterations, which is the common case deep into a game.
func (s *Search) aspirationSearch(p *position.Position, depth int, lastValue Value) Value {
	window := Value(50)
	alpha := lastValue - window
	beta := lastValue + window
	if alpha < ValueMin {
		alpha = ValueMin
	}
	if beta > ValueMax {
		beta = ValueMax
	}

	for {
		s.rootSearch(p, depth, alpha, beta)
		if s.stopConditions() {
			return s.pv[0].At(0).ValueOf()
		}
		value := s.pv[0].At(0).ValueOf()

		switch {
		case value <= alpha:
			s.statistics.AspirationResearches++
			s.sendAspirationResearchInfo(ALPHA)
			window *= 4
			alpha = lastValue - window
			if alpha < ValueMin {
				alpha = ValueMin
			}
		case value >= beta:
			s.statistics.AspirationResearches++
			s.sendAspirationResearchInfo(BETA)
			window *= 4
			beta = lastValue + window
			if beta > ValueMax {
				beta = ValueMax
			}
		default:
			return value
		}

		// window grew too wide to be useful - fall back to a full window search
		if alpha <= ValueMin && beta >= ValueMax {
			s.rootSearch(p, depth, ValueMin, ValueMax)
			return s.pv[0].At(0).ValueOf()
		}
	}
}

// mtdf implements MTD(f): a series of zero (minimal) window searches around
// a first guess that converge on the minimax value. Typically needs fewer
// total nodes than a full window search at the cost of re-searching the
// tree several times with a 1-point window.
func (s *Search) mtdf(p *position.Position, depth int, firstGuess Value) Value {
	g := firstGuess
	upperBound := ValueMax
	lowerBound := ValueMin

	for lowerBound < upperBound {
		beta := g
		if g == lowerBound {
			beta = g + 1
		}
		s.rootSearch(p, depth, beta-1, beta)
		if s.stopConditions() {
			break
		}
		g = s.pv[0].At(0).ValueOf()
		if g < beta {
			upperBound = g
		} else {
			lowerBound = g
		}
	}
	return g
}
