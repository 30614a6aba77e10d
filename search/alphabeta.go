/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package search

import (
	"chesscore/config"
	"chesscore/movegen"
	"chesscore/position"
	"chesscore/transpositiontable"
	. "chesscore/types"
)

var trace = false

// search is the recursive negamax with alpha-beta pruning. Scores are
// always from the point of view of the side to move in p. The returned
// move is MoveNone at leaf, draw and mate nodes.
//
// Node order: transposition table probe, draw predicates, leaf
// evaluation, then the move loop with a fail-high cutoff. The result is
// classified against the original alpha for the table store: a score that
// never raised alpha is an upper bound, a score at or above beta a lower
// bound, anything in between exact.
func (s *Searcher) search(p *position.Position, depth int, alpha, beta Value) (Move, Value) {
	s.statistics.NodesVisited++
	if trace {
		slog.Debugf("depth %-2d window [%d,%d] key %d", depth, alpha, beta, p.ZobristKey())
	}

	alphaOrig := alpha

	useTt := config.Settings.Search.UseTT
	if useTt {
		if e, ok := s.tt.Probe(p.ZobristKey()); ok && int(e.Depth) >= depth {
			switch e.Flag {
			case transpositiontable.Exact:
				s.statistics.TtCuts++
				return e.Move, e.Score
			case transpositiontable.LowerBound:
				if e.Score >= beta {
					s.statistics.TtCuts++
					return e.Move, e.Score
				}
			case transpositiontable.UpperBound:
				if e.Score <= alpha {
					s.statistics.TtCuts++
					return e.Move, e.Score
				}
			}
		}
	}

	if p.IsDraw() {
		return MoveNone, ValueDraw
	}

	if depth == 0 {
		s.statistics.LeafPositionsEvaluated++
		return MoveNone, s.eval.Evaluate(p)
	}

	moves := s.mg.GenerateMoves(p)
	s.statistics.MovesGenerated += int64(moves.Len())

	// No legal move: the side to move is either mated or stalemated.
	// A mated side loses from its own point of view.
	if moves.Len() == 0 {
		if p.InCheck(p.NextPlayer()) {
			return MoveNone, -ValueCheckMate
		}
		return MoveNone, ValueDraw
	}

	bestMove := MoveNone
	bestValue := -ValueInf

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)

		// The generator proved this move mates the opponent; no need to
		// descend into the subtree.
		if m.ValueOf() == movegen.MateScore {
			return m, ValueCheckMate
		}

		p.DoMove(m)
		_, value := s.search(p, depth-1, -beta, -alpha)
		value = -value
		p.UndoMove()

		if value > bestValue {
			bestValue = value
			bestMove = m
		}
		if value > alpha {
			alpha = value
		}
		if alpha >= beta {
			s.statistics.BetaCutoffs++
			break
		}
	}

	if useTt {
		flag := transpositiontable.Exact
		if bestValue <= alphaOrig {
			flag = transpositiontable.UpperBound
		} else if bestValue >= beta {
			flag = transpositiontable.LowerBound
		}
		s.tt.Put(p.ZobristKey(), bestMove, bestValue, int8(depth), flag)
	}

	return bestMove, bestValue
}
