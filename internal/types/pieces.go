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

// pieces.go groups PieceType (what a piece is) and Piece (what a piece is
// plus whose side it belongs to), since a Piece is built directly from a
// PieceType and a Color.

import "strings"

// PieceType names a kind of chess piece independent of color. The low bit
// pattern matters: a sliding piece type has bit 0b0100 set.
type PieceType uint8

const (
	PtNone PieceType = iota
	King
	Pawn
	Knight
	Bishop
	Rook
	Queen
	PtLength
)

func (pt PieceType) IsValid() bool {
	return pt < PtLength
}

func (pt PieceType) IsSliding() bool {
	return pt >= Bishop && pt < PtLength
}

var ptGamePhase = [PtLength]int{0, 0, 0, 1, 1, 2, 4}

// GamePhaseValue weights how much one instance of pt counts towards the
// running game-phase tally used to blend midgame/endgame evaluation.
func (pt PieceType) GamePhaseValue() int {
	return ptGamePhase[pt]
}

var ptMaterial = [PtLength]Value{0, 2000, 100, 320, 330, 500, 900}

// ValueOf returns the static material value of one piece of type pt.
func (pt PieceType) ValueOf() Value {
	return ptMaterial[pt]
}

var ptNames = [PtLength]string{"NOPIECE", "King", "Pawn", "Knight", "Bishop", "Rook", "Queen"}

func (pt PieceType) String() string {
	return ptNames[pt]
}

const ptChars = "-KPNBRQ"

func (pt PieceType) Char() string {
	return string(ptChars[pt])
}

// Piece is a PieceType tagged with a Color, packed as (color<<3)|type so a
// piece's color and type can both be recovered with a shift/mask.
type Piece int8

const (
	PieceNone   Piece = 0
	WhiteKing   Piece = 1
	WhitePawn   Piece = 2
	WhiteKnight Piece = 3
	WhiteBishop Piece = 4
	WhiteRook   Piece = 5
	WhiteQueen  Piece = 6
	BlackKing   Piece = 9
	BlackPawn   Piece = 10
	BlackKnight Piece = 11
	BlackBishop Piece = 12
	BlackRook   Piece = 13
	BlackQueen  Piece = 14
	PieceLength Piece = 16
)

// MakePiece packs a color and a piece type into a single Piece value.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int(c)<<3 + int(pt))
}

func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// ValueOf returns the material value of p, ignoring its color.
func (p Piece) ValueOf() Value {
	return p.TypeOf().ValueOf()
}

const pieceLetters = " KPNBRQ- kpnbrq-"

// PieceFromChar parses a single FEN piece letter, returning PieceNone if s
// is not exactly one recognized letter.
func PieceFromChar(s string) Piece {
	if len(s) != 1 || s == "-" {
		return PieceNone
	}
	index := strings.IndexByte(pieceLetters, s[0])
	if index == -1 {
		return PieceNone
	}
	return Piece(index)
}

func (p Piece) String() string {
	return string(pieceLetters[p])
}

const pieceDisplayChars = " KONBRQ- k*nbrq-"

// Char renders p the way the board printer does, with O/* standing in for
// white/black pawns so they read distinctly from PieceNone's '-'.
func (p Piece) Char() string {
	return string(pieceDisplayChars[p])
}

var pieceGlyphs = [...]string{" ", "♔", "♙", "♘", "♗", "♖", "♕", "-", " ", "♚", "♟", "♞", "♝", "♜", "♛", "-"}

// UniChar renders p as its Unicode chess glyph.
func (p Piece) UniChar() string {
	return pieceGlyphs[p]
}
