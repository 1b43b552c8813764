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

package types

import "fmt"

// Value is a centipawn evaluation or search score. Mate scores are encoded
// as ValueCheckMate minus the number of plies to mate, so that closer mates
// sort as larger (for the side delivering them).
type Value int16

// Value constants.
const (
	ValueZero  Value = 0
	ValueDraw  Value = 0
	ValueOne   Value = 1
	ValueInf   Value = 15_000
	ValueNA    Value = -ValueInf - 1
	ValueMax   Value = 10_000
	ValueMin   Value = -ValueMax
	ValueCheckMate          = ValueMax
	ValueCheckMateThreshold = ValueCheckMate - MaxDepth - 1
)

// IsValid reports whether v falls within the representable score range.
func (v Value) IsValid() bool {
	return v >= ValueNA && v <= ValueInf
}

// IsCheckMateValue reports whether v encodes a forced mate (in either
// direction) rather than a material/positional score.
func (v Value) IsCheckMateValue() bool {
	return v >= ValueCheckMateThreshold || v <= -ValueCheckMateThreshold
}

// String formats v as "mate N", "N/A" or "cp N" (centipawns).
func (v Value) String() string {
	switch {
	case v == ValueNA:
		return "N/A"
	case v > 0 && v.IsCheckMateValue():
		movesToMate := (int(ValueCheckMate-v) + 1) / 2
		return fmt.Sprintf("mate %d", movesToMate)
	case v < 0 && v.IsCheckMateValue():
		movesToMate := (int(ValueCheckMate+v) + 1) / 2
		return fmt.Sprintf("mate -%d", movesToMate)
	default:
		return fmt.Sprintf("cp %d", v)
	}
}
