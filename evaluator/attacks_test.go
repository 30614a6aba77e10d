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

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chesscore/position"
	. "chesscore/types"
)

func TestAttacks_StartPosition(t *testing.T) {
	p := position.NewPosition()
	a := NewAttacks()
	a.Compute(p)

	assert.Equal(t, p.ZobristKey(), a.Zobrist)

	// each knight reaches two free squares, everything else is blocked in
	assert.Equal(t, 4, a.Mobility[White])
	assert.Equal(t, 4, a.Mobility[Black])

	// all of rank 3 is attacked by white pawns; the files B..G twice
	assert.Equal(t, Rank3_Bb, a.Pawns[White])
	assert.Equal(t, Rank6_Bb, a.Pawns[Black])
	assert.Equal(t, Rank3_Bb&^FileA_Bb&^FileH_Bb, a.PawnsDouble[White])
	assert.Equal(t, Rank6_Bb&^FileA_Bb&^FileH_Bb, a.PawnsDouble[Black])
}

func TestAttacks_FromAndTo(t *testing.T) {
	p := position.NewPosition("r1b1k2r/pppp1ppp/2n2n2/1Bb1p2q/4P3/2NP1N2/1PP2PPP/R1BQK2R w KQkq - 0 1")
	a := NewAttacks()
	a.Compute(p)

	// the white h1 rook reaches the empty squares g1 and f1 along the first rank
	assert.Equal(t, SqF1.Bb()|SqG1.Bb(), a.From[White][SqH1]&^p.OccupiedBb(White))
	// squares of black pieces reaching e5: the c6 knight and the h5 queen
	assert.Equal(t, SqC6.Bb()|SqH5.Bb(), a.To[Black][SqE5]&p.OccupiedBb(Black))
}

func TestAttacks_RecomputeClearsStaleState(t *testing.T) {
	a := NewAttacks()

	p1 := position.NewPosition("7k/8/8/8/3R4/8/8/K7 w - - 0 1")
	a.Compute(p1)
	assert.Equal(t, 17, a.Mobility[White]) // rook 14 + king in the corner 3

	p2 := position.NewPosition("7k/8/8/8/8/8/8/K7 w - - 0 1")
	a.Compute(p2)
	assert.Equal(t, 3, a.Mobility[White])
	assert.Equal(t, BbZero, a.Piece[White][Rook])
}

func TestAttacks_ComputeIsCachedByZobrist(t *testing.T) {
	p := position.NewPosition()
	a := NewAttacks()
	a.Compute(p)
	mobility := a.Mobility[White]

	// same position again: the cached result must be untouched, not doubled
	a.Compute(p)
	assert.Equal(t, mobility, a.Mobility[White])
}
