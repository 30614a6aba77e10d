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

	"chesscore/config"
	"chesscore/position"
	. "chesscore/types"
)

func TestEvaluate_StartPositionBalanced(t *testing.T) {
	tempo := config.Settings.Eval.Tempo
	config.Settings.Eval.Tempo = 0
	defer func() { config.Settings.Eval.Tempo = tempo }()

	e := NewEvaluator()
	pw := position.NewPosition()
	pb := position.NewPosition("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1")

	vw := e.Evaluate(pw)
	// material cancels; only the small positional asymmetry of the phased
	// piece-square tables remains
	assert.Less(t, int(vw), 100)
	assert.Greater(t, int(vw), -100)
	// the same position from the other side's view is the exact negation
	assert.Equal(t, vw, -e.Evaluate(pb))
}

func TestEvaluate_SideToMovePerspective(t *testing.T) {
	tempo := config.Settings.Eval.Tempo
	config.Settings.Eval.Tempo = 0
	defer func() { config.Settings.Eval.Tempo = tempo }()

	e := NewEvaluator()

	// White a rook up: positive for white to move, negative for black.
	pw := position.NewPosition("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	pb := position.NewPosition("4k3/8/8/8/8/8/8/R3K3 b - - 0 1")

	vw := e.Evaluate(pw)
	vb := e.Evaluate(pb)
	assert.Greater(t, vw, Value(400))
	assert.Less(t, vb, Value(-400))
	assert.Equal(t, vw, -vb)
}

func TestEvaluate_TempoBonus(t *testing.T) {
	tempo := config.Settings.Eval.Tempo
	config.Settings.Eval.Tempo = 30
	defer func() { config.Settings.Eval.Tempo = tempo }()

	e := NewEvaluator()
	p := position.NewPosition()
	withTempo := e.Evaluate(p)
	config.Settings.Eval.Tempo = 0
	withoutTempo := e.Evaluate(p)
	// at full game phase the tempo bonus is undamped
	assert.Equal(t, Value(30), withTempo-withoutTempo)
}

func TestEvaluate_MobilityTerm(t *testing.T) {
	tempo := config.Settings.Eval.Tempo
	mob := config.Settings.Eval.UseMobility
	config.Settings.Eval.Tempo = 0
	config.Settings.Eval.UseMobility = true
	defer func() {
		config.Settings.Eval.Tempo = tempo
		config.Settings.Eval.UseMobility = mob
	}()

	e := NewEvaluator()
	// Kings only, plus a white rook in the open: the mobility difference is
	// the rook's 14 free squares (the kings' mobility cancels out except
	// for squares they deny each other - keep them far apart).
	p := position.NewPosition("7k/8/8/8/3R4/8/8/K7 w - - 0 1")
	v := e.Evaluate(p)
	assert.Greater(t, v, Value(500))
}

func TestEvaluate_FiniteAndBounded(t *testing.T) {
	e := NewEvaluator()
	fens := []string{
		position.StartFen,
		"r1b1k2r/pppp1ppp/2n2n2/1Bb1p2q/4P3/2NP1N2/1PP2PPP/R1BQK2R w KQkq - 0 1",
		"8/P7/8/8/8/8/8/4K2k w - - 0 1",
		"4k3/8/8/8/8/8/8/4K2B w - - 0 1",
	}
	for _, fen := range fens {
		p := position.NewPosition(fen)
		v := e.Evaluate(p)
		assert.True(t, v.IsValid(), "eval of %s out of range: %d", fen, v)
		assert.False(t, v.IsCheckMateValue(), "eval of %s in mate range: %d", fen, v)
	}
}
