//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
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

// Package types holds the primitive chess data types (squares, bitboards,
// pieces, moves, values) shared by every other package, plus the
// precomputed attack and ray tables built once at process start.
package types

// SqLength is the number of real squares on the board (SqNone is one past it).
const SqLength int = 64

// MaxDepth bounds search recursion and the history/killer tables sized by ply.
const MaxDepth = 128

// MaxMoves bounds the fixed-capacity move buffer used per ply.
const MaxMoves = 512

// Byte-size helpers used when sizing the transposition table.
const (
	KB uint64 = 1024
	MB uint64 = KB * KB
	GB uint64 = KB * MB
)

// GamePhaseMax is the sum of GamePhaseValue() over a full set of non-pawn,
// non-king pieces on both sides; used as the denominator of the tapered
// evaluation's phase fraction.
const GamePhaseMax = 24

var initialized = false

func init() {
	if initialized {
		return
	}
	initBb()
	initialized = true
}
