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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"chesscore/position"
	. "chesscore/types"
)

func TestGenerateMoves_StartPosition(t *testing.T) {
	mg := NewMoveGen()
	p := position.NewPosition()
	moves := mg.GenerateMoves(p)
	assert.Equal(t, 20, moves.Len())
	for i := 0; i < moves.Len(); i++ {
		assert.True(t, moves.At(i).IsValid())
	}
}

// TestGenerateMoves_Castling exercises scenario S2 from the spec: both
// castling moves are legal and present exactly once.
func TestGenerateMoves_Castling(t *testing.T) {
	mg := NewMoveGen()
	p := position.NewPosition("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	moves := mg.GenerateMoves(p)

	var castles int
	for i := 0; i < moves.Len(); i++ {
		if moves.At(i).IsCastle() {
			castles++
		}
	}
	assert.Equal(t, 2, castles)
}

// TestGenerateMoves_CastlingBlockedByAttack exercises scenario S3 from the
// spec: the rook on e2 attacks the king's start square e1, so no castling
// move is legal even though both castling rights are still held.
func TestGenerateMoves_CastlingBlockedByAttack(t *testing.T) {
	mg := NewMoveGen()
	p := position.NewPosition("4k3/8/8/8/8/8/4r3/R3K2R w KQ - 0 1")
	moves := mg.GenerateMoves(p)
	for i := 0; i < moves.Len(); i++ {
		assert.False(t, moves.At(i).IsCastle())
	}
}

func TestGenerateMoves_EnPassant(t *testing.T) {
	mg := NewMoveGen()
	p := position.NewPosition("8/8/8/3pP3/8/8/8/4K2k w - d6 0 1")
	moves := mg.GenerateMoves(p)

	var found bool
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.IsEnPassant() {
			found = true
			assert.Equal(t, SqE5, m.From)
			assert.Equal(t, SqD6, m.To)
			assert.True(t, m.IsCapture())
		}
	}
	assert.True(t, found)
}

// TestGenerateMoves_CapturingPromotion exercises a capturing promotion,
// which sets both the Capture and Promotion flags.
func TestGenerateMoves_CapturingPromotion(t *testing.T) {
	mg := NewMoveGen()
	p := position.NewPosition("4n2k/3P4/8/8/8/8/8/4K3 w - - 0 1")
	moves := mg.GenerateMoves(p)

	var capturingPromos int
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.IsPromotion() && m.IsCapture() {
			capturingPromos++
			assert.True(t, m.IsValid())
		}
	}
	assert.Equal(t, 4, capturingPromos)
}

// TestGenerateMoves_PushPromotion exercises scenario S4 from the spec: a
// pawn on the seventh with a free eighth rank yields exactly the four
// promotions.
func TestGenerateMoves_PushPromotion(t *testing.T) {
	mg := NewMoveGen()
	p := position.NewPosition("8/P7/8/8/8/8/8/4K2k w - - 0 1")
	moves := mg.GenerateMoves(p)

	var promos int
	promoted := make(map[PieceType]bool)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.IsPromotion() {
			promos++
			promoted[m.Promo] = true
			assert.Equal(t, SqA8, m.To)
			assert.False(t, m.IsCapture())
		}
	}
	assert.Equal(t, 4, promos)
	assert.Len(t, promoted, 4)
}

// TestRandomWalkRoundTrip plays random legal games and verifies on every
// ply that make/unmove restores the position bit-exactly, including the
// Zobrist key.
func TestRandomWalkRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	mg := NewMoveGen()

	for game := 0; game < 20; game++ {
		p := position.NewPosition()
		for ply := 0; ply < 60; ply++ {
			moves := mg.GenerateMoves(p)
			if moves.Len() == 0 || p.IsDraw() {
				break
			}
			beforeKey := p.ZobristKey()
			beforeStr := p.String()
			for i := 0; i < moves.Len(); i++ {
				p.DoMove(moves.At(i))
				p.UndoMove()
				assert.Equal(t, beforeKey, p.ZobristKey(), "move %s", moves.At(i))
				assert.Equal(t, beforeStr, p.String(), "move %s", moves.At(i))
			}
			p.DoMove(moves.At(rnd.Intn(moves.Len())))
		}
	}
}

func TestGenerateMoves_OrderingPutsMatesFirst(t *testing.T) {
	mg := NewMoveGen()
	// Back-rank mate in one: Ra8#.
	p := position.NewPosition("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	moves := mg.GenerateMoves(p)
	best := moves.At(0)
	assert.Equal(t, MateScore, best.ValueOf())
	assert.Equal(t, SqA8, best.To)
}

func TestHasLegalMove_Checkmate(t *testing.T) {
	mg := NewMoveGen()
	// Fool's mate position: white to move is checkmated.
	p := position.NewPosition("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	assert.False(t, mg.HasLegalMove(p))
	assert.True(t, p.InCheck(White))
}

func TestHasLegalMove_Stalemate(t *testing.T) {
	mg := NewMoveGen()
	p := position.NewPosition("7k/5K2/6Q1/8/8/8/8/8 b - - 0 1")
	assert.False(t, mg.HasLegalMove(p))
	assert.False(t, p.InCheck(Black))
}

func TestGenerateMoves_LeavesPositionUnchanged(t *testing.T) {
	mg := NewMoveGen()
	p := position.NewPosition("r1b1k2r/pppp1ppp/2n2n2/1Bb1p2q/4P3/2NP1N2/1PP2PPP/R1BQK2R w KQkq - 0 1")
	before := p.String()
	beforeKey := p.ZobristKey()
	mg.GenerateMoves(p)
	assert.Equal(t, before, p.String())
	assert.Equal(t, beforeKey, p.ZobristKey())
}
