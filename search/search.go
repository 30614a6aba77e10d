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

// Package search implements the negamax alpha-beta searcher. A Searcher
// exclusively borrows one Position and one transposition table for the
// duration of a search; the search itself is a synchronous recursion with
// no goroutines and no cancellation.
package search

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"chesscore/config"
	"chesscore/logging"
	"chesscore/movegen"
	"chesscore/position"
	"chesscore/transpositiontable"
	. "chesscore/types"
)

var out = message.NewPrinter(language.German)
var log = logging.GetLog("search")

// slog is the high-volume in-search logger, leveled independently of the
// standard log so deep traces can be switched on without drowning the rest.
var slog = logging.GetSearchLog("search")

// Evaluator is the contract the searcher requires of a position evaluator:
// a finite score in centipawn-like units from the side to move's point of
// view, total over all legal positions. The default implementation lives in
// the evaluator package; a host may supply any other.
type Evaluator interface {
	Evaluate(p *position.Position) Value
}

// Searcher runs fixed-depth negamax searches on a Position. It owns its
// transposition table exclusively; running two searches concurrently
// requires two Searchers (and two Positions).
type Searcher struct {
	mg         *movegen.MoveGen
	eval       Evaluator
	tt         *transpositiontable.TtTable
	statistics Statistics
}

// NewSearcher creates a Searcher using the given evaluator and a
// transposition table sized from the search configuration.
func NewSearcher(eval Evaluator) *Searcher {
	return &Searcher{
		mg:   movegen.NewMoveGen(),
		eval: eval,
		tt:   transpositiontable.NewTtTable(config.Settings.Search.TtSizeMb),
	}
}

// StartSearch runs a fixed-depth search on p and returns the best root
// move with its score. p is mutated during the search via make/unmove but
// is always restored before StartSearch returns. A position with no legal
// moves is not an error: the result carries MoveNone and the terminal
// score (mate or stalemate draw).
func (s *Searcher) StartSearch(p *position.Position, depth int) Result {
	if depth < 1 {
		depth = 1
	}
	if depth > config.Settings.Search.MaxDepth {
		depth = config.Settings.Search.MaxDepth
	}

	s.statistics = Statistics{}
	start := time.Now()

	bestMove, bestValue := s.search(p, depth, -ValueInf, ValueInf)

	result := Result{
		BestMove:    bestMove,
		BestValue:   bestValue,
		SearchDepth: depth,
		Nodes:       s.statistics.NodesVisited,
		SearchTime:  time.Since(start),
	}

	log.Debug(result.String())
	log.Debug(s.statistics.String())

	return result
}

// Statistics returns the counters of the most recent search.
func (s *Searcher) Statistics() *Statistics {
	return &s.statistics
}

// TtString returns a summary of the transposition table state, for
// diagnostics after a search.
func (s *Searcher) TtString() string {
	return s.tt.String()
}

// ClearTt empties the transposition table, e.g. between unrelated
// positions in tests.
func (s *Searcher) ClearTt() {
	s.tt.Clear()
}
