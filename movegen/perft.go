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

package movegen

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"chesscore/position"
)

var out = message.NewPrinter(language.German)

// Perft counts the leaf nodes of a fixed-depth legal-move tree, along with
// the standard per-category move counters, to validate move generation
// against known reference values.
type Perft struct {
	Nodes            uint64
	CheckCounter     uint64
	CheckMateCounter uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	stopFlag         bool
}

// NewPerft creates a new empty Perft instance.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop interrupts a running perft pass; for use when StartPerft(Multi) runs
// in its own goroutine.
func (p *Perft) Stop() {
	p.stopFlag = true
}

// StartPerftMulti runs StartPerft once for every depth from startDepth to
// endDepth.
func (p *Perft) StartPerftMulti(fen string, startDepth, endDepth int) {
	p.stopFlag = false
	for i := startDepth; i <= endDepth; i++ {
		if p.stopFlag {
			out.Print("Perft multi depth stopped\n")
			return
		}
		p.StartPerft(fen, i)
	}
}

// StartPerft runs a perft node count for fen at depth and prints a summary.
func (p *Perft) StartPerft(fen string, depth int) {
	p.stopFlag = false
	if depth <= 0 {
		depth = 1
	}

	p.resetCounter()
	pos, err := position.NewPositionFen(fen)
	if err != nil {
		out.Printf("invalid fen: %v\n", err)
		return
	}
	mg := NewMoveGen()

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	result := p.miniMax(depth, pos, mg)
	elapsed := time.Since(start)

	if p.stopFlag {
		out.Print("Perft stopped\n")
		return
	}

	p.Nodes = result

	out.Printf("Time         : %d ms\n", elapsed.Milliseconds())
	out.Printf("NPS          : %d nps\n", (p.Nodes*uint64(time.Second.Nanoseconds()))/uint64(elapsed.Nanoseconds()+1))
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", p.Nodes)
	out.Printf("   Captures  : %d\n", p.CaptureCounter)
	out.Printf("   EnPassant : %d\n", p.EnpassantCounter)
	out.Printf("   Checks    : %d\n", p.CheckCounter)
	out.Printf("   CheckMates: %d\n", p.CheckMateCounter)
	out.Printf("   Castles   : %d\n", p.CastleCounter)
	out.Printf("   Promotions: %d\n", p.PromotionCounter)
	out.Printf("-----------------------------------------\n")
	out.Printf("Finished PERFT Test for Depth %d\n\n", depth)
}

// miniMax walks the fully-legal move tree, counting leaf nodes and (at
// the leaves) the move-category counters.
func (p *Perft) miniMax(depth int, pos *position.Position, mg *MoveGen) uint64 {
	if p.stopFlag {
		return 0
	}
	moves := mg.LegalMoves(pos)
	totalNodes := uint64(0)
	for i := 0; i < moves.Len(); i++ {
		if p.stopFlag {
			return 0
		}
		move := moves.At(i)
		if depth > 1 {
			pos.DoMove(move)
			totalNodes += p.miniMax(depth-1, pos, mg)
			pos.UndoMove()
			continue
		}

		totalNodes++
		if move.IsEnPassant() {
			p.EnpassantCounter++
			p.CaptureCounter++
		} else if move.IsCapture() {
			p.CaptureCounter++
		}
		if move.IsCastle() {
			p.CastleCounter++
		}
		if move.IsPromotion() {
			p.PromotionCounter++
		}

		pos.DoMove(move)
		if pos.InCheck(pos.NextPlayer()) {
			p.CheckCounter++
			if !mg.HasLegalMove(pos) {
				p.CheckMateCounter++
			}
		}
		pos.UndoMove()
	}
	return totalNodes
}

func (p *Perft) resetCounter() {
	p.Nodes = 0
	p.CheckCounter = 0
	p.CheckMateCounter = 0
	p.CaptureCounter = 0
	p.EnpassantCounter = 0
	p.CastleCounter = 0
	p.PromotionCounter = 0
}
