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
)

// Score carries an evaluation term as a pair of values, one for the
// midgame and one for the endgame, so a term can be tapered between the
// two once the game phase is known rather than computed twice.
type Score struct {
	MidGameValue int
	EndGameValue int
}

func (s *Score) Add(other Score) {
	s.MidGameValue += other.MidGameValue
	s.EndGameValue += other.EndGameValue
}

func (s *Score) Sub(other Score) {
	s.MidGameValue -= other.MidGameValue
	s.EndGameValue -= other.EndGameValue
}

// ValueFromScore blends the midgame and endgame halves using gamePhaseFactor
// as the midgame weight (1.0 = pure midgame, 0.0 = pure endgame).
func (s *Score) ValueFromScore(gamePhaseFactor float64) Value {
	mid := Value(float64(s.MidGameValue) * gamePhaseFactor)
	end := Value(float64(s.EndGameValue) * (1.0 - gamePhaseFactor))
	return mid + end
}

func (s *Score) String() string {
	return fmt.Sprintf("{ mid:%d end:%d }", s.MidGameValue, s.EndGameValue)
}
