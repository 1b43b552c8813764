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

package eval

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvid-engine/corvid/internal/config"
	"github.com/corvid-engine/corvid/internal/position"
	. "github.com/corvid-engine/corvid/internal/types"
)

// make tests run in the project root directory.
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	os.Exit(m.Run())
}

func TestStartPosZeroEval(t *testing.T) {
	config.Settings.Eval.Tempo = 0
	p := position.NewPosition()
	e := NewEvaluator()
	assert.EqualValues(t, 0, e.Evaluate(p))
}

func TestMirroredZeroEval(t *testing.T) {
	config.Settings.Eval.Tempo = 0
	p := position.NewPosition("r1bq1rk1/pppp1pp1/2n2n1p/1B2p3/1b2P3/2N2N1P/PPPP1PP1/R1BQ1RK1 w - -")
	e := NewEvaluator()
	assert.EqualValues(t, 0, e.Evaluate(p))
}

func TestEvaluateMaterialOnly(t *testing.T) {
	config.Settings.Eval.Tempo = 0
	config.Settings.Eval.UsePosition = false
	defer func() { config.Settings.Eval.UsePosition = true }()
	// white is up a queen
	p := position.NewPosition("4k3/8/8/8/8/8/8/Q3K3 w - -")
	e := NewEvaluator()
	assert.EqualValues(t, Queen.ValueOf(), e.Evaluate(p))
}

func TestFinalEvalCheckmate(t *testing.T) {
	assert.EqualValues(t, -(ValueCheckMate + 3), FinalEval(true, 3))
	assert.True(t, Value(-(ValueCheckMate+3)).IsCheckMateValue())
}

func TestFinalEvalStalemate(t *testing.T) {
	assert.EqualValues(t, ValueDraw, FinalEval(false, 5))
}

func TestIsEndgame(t *testing.T) {
	p := position.NewPosition("4k3/4p3/8/8/8/8/8/4K3 w - -")
	assert.True(t, IsEndgame(p))
	p = position.NewPosition()
	assert.False(t, IsEndgame(p))
}
