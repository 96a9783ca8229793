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
	"strings"
)

// CastlingRights is a 4-bit set of which castling moves are still legally
// available: kingside/queenside for each color, independent of whether the
// move can be played this ply (that also needs clear squares and no check).
type CastlingRights uint8

const (
	CastlingNone     CastlingRights = 0
	CastlingWhiteOO  CastlingRights = 1 << 0 // 0001
	CastlingWhiteOOO CastlingRights = 1 << 1 // 0010
	CastlingBlackOO  CastlingRights = 1 << 2 // 0100
	CastlingBlackOOO CastlingRights = 1 << 3 // 1000

	CastlingWhite        = CastlingWhiteOO | CastlingWhiteOOO
	CastlingBlack        = CastlingBlackOO | CastlingBlackOOO
	CastlingAny          = CastlingWhite | CastlingBlack
	CastlingRightsLength = CastlingAny + 1
)

// Has reports whether any bit set in rhs is also set in cr.
func (cr CastlingRights) Has(rhs CastlingRights) bool {
	return cr&rhs != 0
}

// Remove clears the bits in rhs from cr and returns the new value.
func (cr *CastlingRights) Remove(rhs CastlingRights) CastlingRights {
	*cr &^= rhs
	return *cr
}

// Add sets the bits in rhs on cr and returns the new value.
func (cr *CastlingRights) Add(rhs CastlingRights) CastlingRights {
	*cr |= rhs
	return *cr
}

// castlingLetters lists each right in FEN order alongside the letter it
// contributes to CastlingRights.String.
var castlingLetters = [...]struct {
	right CastlingRights
	char  byte
}{
	{CastlingWhiteOO, 'K'},
	{CastlingWhiteOOO, 'Q'},
	{CastlingBlackOO, 'k'},
	{CastlingBlackOOO, 'q'},
}

// String renders cr the way FEN does, e.g. "KQkq", "Kq" or "-" for none.
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	var sb strings.Builder
	for _, e := range castlingLetters {
		if cr.Has(e.right) {
			sb.WriteByte(e.char)
		}
	}
	return sb.String()
}
