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

package search

import (
	"github.com/op/go-logging"

	. "github.com/corvid-engine/corvid/internal/config"
	myLogging "github.com/corvid-engine/corvid/internal/logging"
	"github.com/corvid-engine/corvid/internal/movegen"
	"github.com/corvid-engine/corvid/internal/moveslice"
	"github.com/corvid-engine/corvid/internal/position"
	"github.com/corvid-engine/corvid/internal/transpositiontable"
	. "github.com/corvid-engine/corvid/internal/types"
)

var trace = false

// nullMoveMinDepth is the minimum remaining depth required for null move
// pruning to fire. Below this depth the reduction would eat the whole
// remaining tree.
const nullMoveMinDepth = 3

// iidReduction is the depth reduction applied by internal iterative
// deepening when populating a missing TT move at a PV node.
const iidReduction = 2

// lmrMinMovesSearched is how many moves into a node's move loop late move
// reduction starts considering a move for reduction.
const lmrMinMovesSearched = 3

// rootSearch starts the actual recursive alpha beta search with the root
// moves for the first ply. Root moves are treated a little different so
// keeping this separate supports readability over littering search with
// "if ply == 0" branches. Returns the best value found among all root
// moves.
func (s *Search) rootSearch(position *position.Position, depth int, alpha Value, beta Value) Value {
	if trace {
		s.slog.Debugf("Ply %-2.d Depth %-2.d start: %s", 0, depth, s.statistics.CurrentVariation.StringUci())
		defer s.slog.Debugf("Ply %-2.d Depth %-2.d end: %s", 0, depth, s.statistics.CurrentVariation.StringUci())
	}

	// In root search we search all moves and store the value into the
	// root moves themselves for sorting in the next iteration. Best
	// move is stored in pv[0][0], best value in pv[0][0].value. The
	// next iteration begins with the best move of the last iteration
	// so pv[0][0] always holds the last best move independent of
	// whether a better one is found this iteration.
	bestNodeValue := ValueNA
	var value Value

	for i, m := range *s.rootMoves {
		position.DoMove(m)
		s.nodesVisited++
		s.statistics.CurrentVariation.PushBack(m)
		s.statistics.CurrentRootMoveIndex = i
		s.statistics.CurrentRootMove = m

		if s.checkDrawRepAnd50(position, 2) {
			value = ValueDraw
		} else {
			// PVS: the first move in a node is the assumed PV and is
			// searched with the full window. Every other move is
			// searched with a null window first.
			if !Settings.Search.UsePVS || i == 0 {
				value = -s.search(position, depth-1, 1, -beta, -alpha, true, true)
			} else {
				value = -s.search(position, depth-1, 1, -alpha-1, -alpha, false, true)
				if value > alpha && value < beta && !s.stopConditions() {
					s.statistics.RootPvsResearches++
					value = -s.search(position, depth-1, 1, -beta, -alpha, true, true)
				}
			}
		}

		s.statistics.CurrentVariation.PopBack()
		position.UndoMove()

		// We want to do at least one complete search with depth 1.
		// After that we can stop any time - any new best move will
		// already have been stored in pv[0].
		if s.stopConditions() && depth > 1 {
			return bestNodeValue
		}

		s.rootMoves.Set(i, m.SetValue(value))

		if value > bestNodeValue {
			bestNodeValue = value
			savePV(m, s.pv[1], s.pv[0])
		}
	}

	return bestNodeValue
}

// search is the normal alpha beta search after the root ply (ply > 0). It
// is called recursively until the remaining depth reaches 0, at which
// point it hands off to qsearch. Most pruning happens here.
func (s *Search) search(p *position.Position, depth int, ply int, alpha Value, beta Value, isPV bool, doNull bool) Value {
	if trace {
		s.slog.Debugf("%0*s Ply %-2.d Depth %-2.d a:%-6.d b:%-6.d pv:%-6.v start:  %s", ply, "", ply, depth, alpha, beta, isPV, s.statistics.CurrentVariation.StringUci())
		defer s.slog.Debugf("%0*s Ply %-2.d Depth %-2.d a:%-6.d b:%-6.d pv:%-6.v end  :  %s", ply, "", ply, depth, alpha, beta, isPV, s.statistics.CurrentVariation.StringUci())
	}

	if s.stopConditions() {
		return ValueNA
	}

	hasCheck := p.HasCheck()

	// Check extension: if in check, search one ply deeper before
	// dropping into quiescence. Unconditional - this is cheap relative
	// to what it buys in tactical safety.
	if hasCheck {
		depth++
		s.statistics.CheckExtension++
	}

	if depth <= 0 || ply >= MaxDepth {
		return s.qsearch(p, ply, alpha, beta, isPV)
	}

	us := p.NextPlayer()
	bestNodeValue := ValueNA
	bestNodeMove := MoveNone
	ttMove := MoveNone
	ttType := ALPHA

	// TT Lookup. If a position is stored in the TT we retrieve the
	// entry and use the stored move as a best-move hint (searched
	// first by the move generator). If we have a value from a similar
	// or deeper search we check if it lets us cut the node outright.
	var ttEntry *transpositiontable.TtEntry
	if Settings.Search.UseTT {
		ttEntry = s.tt.Probe(p.ZobristKey())
		if ttEntry != nil {
			s.statistics.TTHit++
			ttMove = ttEntry.Move().MoveOf()
			if int(ttEntry.Depth()) >= depth {
				ttValue := valueFromTT(ttEntry.Value(), ply)
				cut := false
				switch {
				case !ttValue.IsValid():
					cut = false
				case ttEntry.Vtype() == EXACT:
					cut = true
				case ttEntry.Vtype() == ALPHA && ttValue <= alpha:
					cut = true
				case ttEntry.Vtype() == BETA && ttValue >= beta:
					cut = true
				}
				if cut {
					s.getPVLine(p, s.pv[ply], depth)
					s.statistics.TTCuts++
					return ttValue
				}
				s.statistics.TTNoCuts++
			}
		} else {
			s.statistics.TTMiss++
		}
	}

	// static_eval is computed at most once per node; callers below
	// reuse this value instead of re-invoking the evaluator.
	var staticEval Value
	staticEvalComputed := false
	evalFn := func() Value {
		if !staticEvalComputed {
			staticEval = s.evaluate(p, ply)
			staticEvalComputed = true
		}
		return staticEval
	}

	canPrune := !isPV && !hasCheck && doNull && p.GamePhase() > 0

	if Settings.Search.UseRazoring && canPrune && depth == 1 {
		if evalFn()+Rook.ValueOf() < alpha {
			s.statistics.RfpPrunings++
			return s.qsearch(p, ply, alpha, beta, isPV)
		}
	}

	if Settings.Search.UseFutility && canPrune && depth <= 4 {
		margin := Value(depth) * Pawn.ValueOf()
		if evalFn()-margin >= beta {
			s.statistics.FpPrunings++
			return evalFn()
		}
	}

	matethreat := false
	if Settings.Search.UseNullMove && canPrune && depth >= nullMoveMinDepth && p.MaterialNonPawn(us) > 0 {
		r := Settings.Search.NullMoveReduction
		newDepth := depth - r - 1
		if newDepth < 0 {
			newDepth = 0
		}

		p.DoNullMove()
		s.nodesVisited++
		nValue := -s.search(p, newDepth, ply+1, -beta, -beta+1, false, false)
		p.UndoNullMove()

		if s.stopConditions() {
			return ValueNA
		}

		if nValue > ValueCheckMateThreshold {
			s.statistics.NMPMateBeta++
			nValue = ValueCheckMateThreshold
		} else if nValue < -ValueCheckMateThreshold {
			s.statistics.NMPMateAlpha++
			matethreat = true
		}

		if nValue >= beta {
			s.statistics.NullMoveCuts++
			if Settings.Search.UseTT {
				s.storeTT(p, depth, ply, ttMove, nValue, BETA)
			}
			return nValue
		}
	}

	// Internal iterative deepening: when no TT move is available at a
	// PV node and we're deep enough that move ordering really matters,
	// do a reduced search first purely to populate the TT with a move.
	if Settings.Search.UseIID && depth >= Settings.Search.IidMinDepth && ttMove == MoveNone && doNull && isPV {
		newDepth := depth - iidReduction
		if newDepth < 0 {
			newDepth = 0
		}
		s.search(p, newDepth, ply, alpha, beta, isPV, true)
		s.statistics.IIDsearches++

		if s.stopConditions() {
			return ValueNA
		}

		if s.pv[ply].Len() > 0 {
			s.statistics.IIDmoves++
			ttMove = s.pv[ply].At(0).MoveOf()
		}
	}

	myMg := s.mg[ply]
	myMg.ResetOnDemand()
	s.pv[ply].Clear()

	if ttMove != MoveNone {
		s.statistics.TTMoveUsed++
		myMg.SetPvMove(ttMove)
	} else {
		s.statistics.NoTTMove++
	}

	var value Value
	movesSearched := 0
	originalAlpha := alpha

	for move := myMg.GetNextMove(p, movegen.GenAll, hasCheck); move != MoveNone; move = myMg.GetNextMove(p, movegen.GenAll, hasCheck) {
		givesCheck := p.GivesCheck(move)
		isQuiet := move.MoveType() != Promotion && !p.IsCapturingMove(move)
		isKiller := move == (*myMg.KillerMoves())[0] || move == (*myMg.KillerMoves())[1]

		newDepth := depth - 1
		lmrDepth := newDepth

		if canPrune && isQuiet && !isKiller && move != ttMove && !givesCheck && !matethreat {
			// Futility pruning at move level: if even the best case
			// material swing can't reach alpha, skip quiet moves past
			// the first few.
			if Settings.Search.UseFutility && depth <= 3 && movesSearched > 0 {
				margin := [4]Value{0, 200, 300, 500}[depth]
				if evalFn()+margin <= alpha {
					s.statistics.FpPrunings++
					continue
				}
			}

			// Late move pruning: skip quiet moves once we're deep
			// into the move list at shallow depth - by then move
			// ordering has already exhausted the interesting tries.
			if Settings.Search.UseFutility && depth <= 3 && movesSearched >= 8+4*depth {
				s.statistics.LmpCuts++
				continue
			}

			// Late move reduction: moves ordered late are rarely
			// going to beat alpha, so search them to a reduced depth
			// first and only re-search at full depth if they do.
			if Settings.Search.UseLmr && depth >= Settings.Search.LmrMinDepth && movesSearched >= lmrMinMovesSearched {
				lmrDepth -= Settings.Search.LmrReduction
				if lmrDepth < 0 {
					lmrDepth = 0
				}
				s.statistics.LmrReductions++
			}
		}

		p.DoMove(move)

		if !p.WasLegalMove() {
			p.UndoMove()
			continue
		}

		s.nodesVisited++
		s.statistics.CurrentVariation.PushBack(move)
		s.sendSearchUpdateToUci()

		if s.checkDrawRepAnd50(p, 2) {
			value = ValueDraw
		} else if !Settings.Search.UsePVS || movesSearched == 0 {
			value = -s.search(p, newDepth, ply+1, -beta, -alpha, true, true)
		} else {
			value = -s.search(p, lmrDepth, ply+1, -alpha-1, -alpha, false, true)
			if value > alpha && !s.stopConditions() {
				if lmrDepth < newDepth {
					s.statistics.LmrResearches++
					value = -s.search(p, newDepth, ply+1, -beta, -alpha, true, true)
				} else if value < beta {
					s.statistics.PvsResearches++
					value = -s.search(p, newDepth, ply+1, -beta, -alpha, true, true)
				}
			}
		}

		movesSearched++
		s.statistics.CurrentVariation.PopBack()
		p.UndoMove()

		if s.stopConditions() {
			return ValueNA
		}

		if value > bestNodeValue {
			bestNodeValue = value
			bestNodeMove = move
			if value > alpha {
				savePV(move, s.pv[ply+1], s.pv[ply])
				if value >= beta {
					s.statistics.BetaCuts++
					if movesSearched == 1 {
						s.statistics.BetaCuts1st++
					}
					if Settings.Search.UseKillerMoves && isQuiet {
						myMg.StoreKiller(move)
					}
					ttType = BETA
					break
				}
				alpha = value
				ttType = EXACT
			}
		}
	}

	if movesSearched == 0 && !s.stopConditions() {
		if hasCheck {
			s.statistics.Checkmates++
			bestNodeValue = -ValueCheckMate + Value(ply)
		} else {
			s.statistics.Stalemates++
			bestNodeValue = ValueDraw
		}
		ttType = EXACT
	}

	if bestNodeValue <= originalAlpha {
		ttType = ALPHA
	} else if bestNodeValue >= beta {
		ttType = BETA
	}

	if Settings.Search.UseTT {
		s.storeTT(p, depth, ply, bestNodeMove, bestNodeValue, ttType)
	}

	return bestNodeValue
}

// qsearch extends the search past the nominal horizon along capturing and
// check-evading lines only, to avoid misjudging a position where a
// material exchange is still in progress.
func (s *Search) qsearch(p *position.Position, ply int, alpha Value, beta Value, isPV bool) Value {
	if trace {
		s.slog.Debugf("%0*s Ply %-2.d QSearch     a:%-6.d b:%-6.d pv:%-6.v start:  %s", ply, "", ply, alpha, beta, isPV, s.statistics.CurrentVariation.StringUci())
		defer s.slog.Debugf("%0*s Ply %-2.d QSearch     a:%-6.d b:%-6.d pv:%-6.v end  :  %s", ply, "", ply, alpha, beta, isPV, s.statistics.CurrentVariation.StringUci())
	}

	if s.statistics.CurrentExtraSearchDepth < ply {
		s.statistics.CurrentExtraSearchDepth = ply
	}

	if !Settings.Search.UseQuiescence || ply >= MaxDepth {
		return s.evaluate(p, ply)
	}

	bestNodeValue := ValueNA
	ttType := ALPHA
	ttMove := MoveNone
	hasCheck := p.HasCheck()

	// Stand pat: if we're not in check, the position is at least as
	// good as its static evaluation, because the side to move can
	// always decline to continue the exchange.
	if !hasCheck {
		standPat := s.evaluate(p, ply)
		if standPat >= beta {
			s.statistics.StandpatCuts++
			return standPat
		}
		if standPat+Queen.ValueOf() < alpha && p.GamePhase() > 0 {
			return alpha
		}
		if standPat > alpha {
			alpha = standPat
		}
		bestNodeValue = standPat
	}

	if Settings.Search.UseTT {
		ttEntry := s.tt.Probe(p.ZobristKey())
		if ttEntry != nil {
			s.statistics.TTHit++
			ttMove = ttEntry.Move().MoveOf()
			ttValue := valueFromTT(ttEntry.Value(), ply)
			cut := false
			switch {
			case !ttValue.IsValid():
				cut = false
			case ttEntry.Vtype() == EXACT:
				cut = true
			case ttEntry.Vtype() == ALPHA && ttValue <= alpha:
				cut = true
			case ttEntry.Vtype() == BETA && ttValue >= beta:
				cut = true
			}
			if cut {
				s.statistics.TTCuts++
				return ttValue
			}
			s.statistics.TTNoCuts++
		} else {
			s.statistics.TTMiss++
		}
	}

	bestNodeMove := MoveNone
	myMg := s.mg[ply]
	myMg.ResetOnDemand()
	s.pv[ply].Clear()

	if ttMove != MoveNone {
		s.statistics.TTMoveUsed++
		myMg.SetPvMove(ttMove)
	} else {
		s.statistics.NoTTMove++
	}

	var value Value
	movesSearched := 0

	var mode movegen.GenMode
	if hasCheck {
		s.statistics.CheckInQS++
		mode = movegen.GenAll
	} else {
		mode = movegen.GenCap
	}

	for move := myMg.GetNextMove(p, mode, hasCheck); move != MoveNone; move = myMg.GetNextMove(p, mode, hasCheck) {
		// Only look at moves worth recapturing - good captures, and
		// anything while we're escaping check.
		if !hasCheck && !s.goodCapture(p, move) {
			continue
		}

		p.DoMove(move)

		if !p.WasLegalMove() {
			p.UndoMove()
			continue
		}

		s.nodesVisited++
		s.statistics.CurrentVariation.PushBack(move)
		s.sendSearchUpdateToUci()

		if hasCheck && s.checkDrawRepAnd50(p, 2) {
			value = ValueDraw
		} else {
			value = -s.qsearch(p, ply+1, -beta, -alpha, isPV)
		}

		movesSearched++
		s.statistics.CurrentVariation.PopBack()
		p.UndoMove()

		if s.stopConditions() {
			return ValueNA
		}

		if value > bestNodeValue {
			bestNodeValue = value
			bestNodeMove = move
			if value > alpha {
				savePV(move, s.pv[ply+1], s.pv[ply])
				if value >= beta {
					s.statistics.BetaCuts++
					if movesSearched == 1 {
						s.statistics.BetaCuts1st++
					}
					ttType = BETA
					break
				}
				alpha = value
				ttType = EXACT
			}
		}
	}

	if movesSearched == 0 && !s.stopConditions() && hasCheck {
		s.statistics.Checkmates++
		bestNodeValue = -ValueCheckMate + Value(ply)
		ttType = EXACT
	}

	if Settings.Search.UseTT {
		s.storeTT(p, 0, ply, bestNodeMove, bestNodeValue, ttType)
	}

	return bestNodeValue
}

// evaluate counts the evaluation in the search statistics and returns the
// static evaluator's value for the position.
func (s *Search) evaluate(position *position.Position, ply int) Value {
	s.statistics.LeafPositionsEvaluated++
	s.statistics.Evaluations++
	return s.eval.Evaluate(position)
}

// goodCapture filters the moves considered in quiescence search down to
// those likely to actually change the material balance, using static
// exchange evaluation.
func (s *Search) goodCapture(p *position.Position, move Move) bool {
	return see(p, move) > 0
}

// savePV adds move as the first move to a cleared dest and appends all
// of src after it.
func savePV(move Move, src *moveslice.MoveSlice, dest *moveslice.MoveSlice) {
	dest.Clear()
	dest.PushBack(move)
	*dest = append(*dest, *src...)
}

// storeTT stores the result of a node into the transposition table.
func (s *Search) storeTT(p *position.Position, depth int, ply int, move Move, value Value, valueType ValueType) {
	s.tt.Put(p.ZobristKey(), move, int8(depth), valueToTT(value, ply), valueType, ValueNA)
}

// getPVLine fills pv with the chain of best moves starting at the given
// position, as long as they remain present in the TT.
func (s *Search) getPVLine(p *position.Position, pv *moveslice.MoveSlice, depth int) {
	pv.Clear()
	counter := 0
	ttMatch := s.tt.GetEntry(p.ZobristKey())
	for ttMatch != nil && ttMatch.Move() != MoveNone && counter < depth {
		pv.PushBack(ttMatch.Move().MoveOf())
		p.DoMove(ttMatch.Move().MoveOf())
		counter++
		ttMatch = s.tt.GetEntry(p.ZobristKey())
	}
	for i := 0; i < counter; i++ {
		p.UndoMove()
	}
}

// valueToTT adjusts a mate value for the current ply before storing it,
// so that a mate score read back out at a different ply can be corrected
// again by valueFromTT.
func valueToTT(value Value, ply int) Value {
	if value.IsCheckMateValue() {
		if value > 0 {
			value += Value(ply)
		} else {
			value -= Value(ply)
		}
	}
	return value
}

// valueFromTT reverses the ply adjustment made by valueToTT.
func valueFromTT(value Value, ply int) Value {
	if value.IsCheckMateValue() {
		if value > 0 {
			value -= Value(ply)
		} else {
			value += Value(ply)
		}
	}
	return value
}

// getSearchTraceLog returns the dedicated search logger, used for the
// verbose node-by-node trace enabled by the trace flag above.
func getSearchTraceLog() *logging.Logger {
	return myLogging.GetSearchLog()
}
