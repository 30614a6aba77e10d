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

// Statistics collects counters during a search. Not essential for a
// functioning search but cheap to keep and useful for judging move
// ordering quality and transposition table effectiveness.
type Statistics struct {
	NodesVisited           int64
	MovesGenerated         int64
	LeafPositionsEvaluated int64
	BetaCutoffs            int64
	TtCuts                 int64
}

func (st *Statistics) String() string {
	return out.Sprintf("nodes = %d, moves generated = %d, leaves evaluated = %d, beta cutoffs = %d, tt cuts = %d",
		st.NodesVisited, st.MovesGenerated, st.LeafPositionsEvaluated, st.BetaCutoffs, st.TtCuts)
}
