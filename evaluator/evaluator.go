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

// Package evaluator contains the default position evaluator: material,
// piece-square values phased between mid and end game, an optional
// mobility term, and a tempo bonus. It satisfies the Evaluator contract
// the search requires; a host may substitute any other implementation.
package evaluator

import (
	"chesscore/config"
	"chesscore/position"
	. "chesscore/types"
)

// Evaluator evaluates chess positions using material, positional values
// and optional mobility heuristics. Create a new instance with
// NewEvaluator(). Not safe for concurrent use: the attacks cache is
// mutated during Evaluate.
type Evaluator struct {
	attacks *Attacks
}

// NewEvaluator creates a new instance of an Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		attacks: NewAttacks(),
	}
}

// Evaluate calculates a value for the position in centipawns from the
// point of view of the side to move. The value is finite and bounded well
// below the mate sentinels so that true mate scores remain extremal.
func (e *Evaluator) Evaluate(p *position.Position) Value {
	var value Value

	gamePhaseFactor := float64(p.GamePhase()) / float64(GamePhaseMax)

	// All heuristics below score from the white point of view; the sign is
	// flipped at the end for black to move.
	value += e.material(p)
	value += e.positional(p, gamePhaseFactor)
	if config.Settings.Eval.UseMobility {
		value += e.mobility(p)
	}

	if p.NextPlayer() == Black {
		value *= -1
	}

	// Tempo bonus for the side to move, scaled down towards the endgame.
	value += Value(float64(config.Settings.Eval.Tempo) * gamePhaseFactor)

	return value
}

func (e *Evaluator) material(p *position.Position) Value {
	return p.Material(White) - p.Material(Black)
}

func (e *Evaluator) positional(p *position.Position, gamePhaseFactor float64) Value {
	return Value(float64(p.PsqMidValue(White)-p.PsqMidValue(Black))*gamePhaseFactor +
		float64(p.PsqEndValue(White)-p.PsqEndValue(Black))*(1-gamePhaseFactor))
}

// mobility scores the difference in pseudo-legal non-pawn move counts,
// weighted by the configured bonus per square.
func (e *Evaluator) mobility(p *position.Position) Value {
	e.attacks.Compute(p)
	return Value((e.attacks.Mobility[White] - e.attacks.Mobility[Black]) *
		config.Settings.Eval.MobilityBonus)
}
