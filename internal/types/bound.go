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

// Bound classifies a transposition-table score relative to the window it
// was computed under: Exact when alpha < score < beta, Upper when the
// search failed low (score <= alpha), Lower when it failed high (score >= beta).
type Bound int8

//noinspection GoVarAndConstTypeMayBeOmitted
const (
	BoundNone  Bound = 0
	BoundExact Bound = 1
	BoundUpper Bound = 2
	BoundLower Bound = 3
	BoundLength int  = 4
)

// IsValid checks if b is a valid Bound
func (b Bound) IsValid() bool {
	return b < 4
}

var boundToString = [BoundLength]string{"None", "Exact", "Upper", "Lower"}

// String returns a string representation of the bound kind
func (b Bound) String() string {
	return boundToString[b]
}
