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

// Package eval contains the position evaluator: tapered material and
// piece-square score. The search depends on its exact output so the more
// elaborate structural terms (pawn structure, mobility, king safety, ...)
// are intentionally not part of it.
package eval

import (
	"github.com/op/go-logging"

	"github.com/corvid-engine/corvid/internal/config"
	myLogging "github.com/corvid-engine/corvid/internal/logging"
	"github.com/corvid-engine/corvid/internal/position"
	. "github.com/corvid-engine/corvid/internal/types"
)

// Evaluator evaluates chess positions using material and piece-square
// values tapered between the opening and the endgame. Create a new
// instance with NewEvaluator().
type Evaluator struct {
	log *logging.Logger
}

// NewEvaluator creates a new instance of an Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		log: myLogging.GetLog(),
	}
}

// Evaluate calculates a value for a chess position from the view of the
// side to move, in centipawns. It does not detect checkmate or stalemate -
// callers must check for these at nodes with zero legal moves and score
// them separately (FinalEval gives such a score).
func (e *Evaluator) Evaluate(p *position.Position) Value {
	if p.HasInsufficientMaterial() {
		return ValueDraw
	}

	// Every partial score is accumulated from White's perspective and only
	// flipped to the side to move's perspective right before returning.
	var mid, end Value

	if config.Settings.Eval.UseMaterial {
		mid = p.Material(White) - p.Material(Black)
		end = mid
	}

	if config.Settings.Eval.UsePosition {
		mid += p.PsqMidValue(White) - p.PsqMidValue(Black)
		end += p.PsqEndValue(White) - p.PsqEndValue(Black)
	}

	// tempo bonus for the side to move, applied to the opening weight only
	if p.NextPlayer() == White {
		mid += Value(config.Settings.Eval.Tempo)
	} else {
		mid -= Value(config.Settings.Eval.Tempo)
	}

	value := taper(mid, end, p.GamePhase())

	return value * Value(p.NextPlayer().Direction())
}

// taper blends the opening (mid) and endgame (end) scores according to the
// current game phase. gamePhase is the weighted sum of non-pawn material
// still on the board (24 at the start, 0 with bare kings) as tracked
// incrementally by Position. It is inverted and rescaled to the 0..256
// raw-phase range used by the blend formula, where 0 means "opening" and
// 256 means "endgame".
func taper(mid, end Value, gamePhase int) Value {
	rawPhase := GamePhaseMax - gamePhase
	phase256 := rawPhase * 256 / GamePhaseMax
	return Value((int(mid)*(256-phase256) + int(end)*phase256) / 256)
}

// FinalEval returns the score for a position at which the side to move has
// no legal moves: a checkmate score if inCheck, a draw (stalemate) score
// otherwise. depth is the remaining search depth at that node, so that a
// mate found closer to the root (more depth remaining) scores higher for the
// winning side than one found deeper.
func FinalEval(inCheck bool, depth int) Value {
	if inCheck {
		return -(ValueCheckMate + Value(depth))
	}
	return ValueDraw
}

// IsEndgame reports whether the side to move owns only king and pawns.
func IsEndgame(p *position.Position) bool {
	return p.MaterialNonPawn(p.NextPlayer()) == 0
}
