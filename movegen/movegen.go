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

// Package movegen generates fully legal, ordered moves for a position: a
// pseudo-legal pass by piece type, a make/unmove legality filter, check and
// checkmate annotation, and a move-ordering sort.
package movegen

import (
	"chesscore/movearray"
	"chesscore/position"
	. "chesscore/types"
)

// MateScore is the sort value assigned to a move that delivers checkmate.
// It is strictly greater than any capture/promotion/check score, so a
// search consuming the ordered list can recognize it by sort value alone.
const MateScore int32 = 100_000

// checkScore is the sort value bonus for a quiet move that delivers check.
const checkScore int32 = 500

// MoveGen generates moves for a Position. It carries no state between
// calls; a single instance may be reused freely.
type MoveGen struct{}

// NewMoveGen creates a new move generator.
func NewMoveGen() *MoveGen {
	return &MoveGen{}
}

// GenerateMoves returns all fully legal moves for the side to move in p,
// sorted descending by move-ordering score (see scoreMove). p is left
// unmodified - the legality and annotation passes make and unmove every
// candidate.
func (mg *MoveGen) GenerateMoves(p *position.Position) *movearray.MoveArray {
	side := p.NextPlayer()

	pseudo := movearray.New(MaxMoves)
	mg.generatePseudoLegal(p, side, &pseudo)

	legal := movearray.New(MaxMoves)
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		p.DoMove(m)
		if p.InCheck(side) {
			p.UndoMove()
			continue
		}
		isCheck := p.InCheck(p.NextPlayer())
		isMate := isCheck && !mg.hasLegalMove(p)
		p.UndoMove()

		// scoreMove reads the board in its pre-move state (restored by the
		// UndoMove above) to look up the captured/moving piece types.
		m.SetValue(mg.scoreMove(p, m, isCheck, isMate))
		legal.PushBack(m)
	}
	legal.Sort()
	return &legal
}

// LegalMoves returns the legal moves for the side to move without check
// annotation, scoring or ordering. Bulk consumers like perft need neither
// and the per-move mate test would dominate their runtime.
func (mg *MoveGen) LegalMoves(p *position.Position) *movearray.MoveArray {
	side := p.NextPlayer()

	pseudo := movearray.New(MaxMoves)
	mg.generatePseudoLegal(p, side, &pseudo)

	legal := movearray.New(MaxMoves)
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		p.DoMove(m)
		if !p.InCheck(side) {
			legal.PushBack(m)
		}
		p.UndoMove()
	}
	return &legal
}

// HasLegalMove reports whether the side to move in p has at least one
// legal move, without generating or scoring the full list.
func (mg *MoveGen) HasLegalMove(p *position.Position) bool {
	return mg.hasLegalMove(p)
}

func (mg *MoveGen) hasLegalMove(p *position.Position) bool {
	side := p.NextPlayer()
	pseudo := movearray.New(MaxMoves)
	mg.generatePseudoLegal(p, side, &pseudo)
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		p.DoMove(m)
		legal := !p.InCheck(side)
		p.UndoMove()
		if legal {
			return true
		}
	}
	return false
}

// scoreMove implements the move ordering table: checkmate, then MVV-LVA
// captures, then promotions, then a flat check bonus, then zero.
func (mg *MoveGen) scoreMove(p *position.Position, m Move, isCheck, isMate bool) int32 {
	switch {
	case isMate:
		return MateScore
	case m.IsCapture():
		victim := Pawn
		if !m.IsEnPassant() {
			victim = p.GetPiece(m.To)
		}
		attacker := p.GetPiece(m.From)
		return int32(10*victim.ValueOf() - attacker.ValueOf())
	case m.IsPromotion():
		return int32(m.Promo.ValueOf())
	case isCheck:
		return checkScore
	default:
		return 0
	}
}

// ////////////////////////////////////////////////////////////////////////
// Pseudo-legal generation by piece type
// ////////////////////////////////////////////////////////////////////////

func (mg *MoveGen) generatePseudoLegal(p *position.Position, side Color, out *movearray.MoveArray) {
	mg.generatePawnMoves(p, side, out)
	mg.generateKnightMoves(p, side, out)
	mg.generateSliderMoves(p, side, Bishop, out)
	mg.generateSliderMoves(p, side, Rook, out)
	mg.generateSliderMoves(p, side, Queen, out)
	mg.generateKingMoves(p, side, out)
}

func (mg *MoveGen) generatePawnMoves(p *position.Position, side Color, out *movearray.MoveArray) {
	opp := side.Flip()
	own := p.OccupiedBb(side)
	enemy := p.OccupiedBb(opp)
	occAll := own | enemy

	pushDir := North
	startRank := Rank2
	promoRank := Rank8
	if side == Black {
		pushDir = South
		startRank = Rank7
		promoRank = Rank1
	}

	epSq := p.EpSquare()

	for bb := p.PiecesBb(side, Pawn); bb != BbZero; {
		from := bb.PopLsb()

		if one := from.To(pushDir); one.IsValid() && !occAll.Has(one) {
			if one.RankOf() == promoRank {
				addPromotions(out, from, one, Promotion)
			} else {
				out.PushBack(CreateMove(from, one, Quiet, PtNone))
			}
			if from.RankOf() == startRank {
				if two := one.To(pushDir); two.IsValid() && !occAll.Has(two) {
					out.PushBack(CreateMove(from, two, DoublePawn, PtNone))
				}
			}
		}

		attacks := PawnAttacks(side, from)
		for caps := attacks & enemy; caps != BbZero; {
			to := caps.PopLsb()
			if to.RankOf() == promoRank {
				addPromotions(out, from, to, Promotion|Capture)
			} else {
				out.PushBack(CreateMove(from, to, Capture, PtNone))
			}
		}
		if epSq.IsValid() && attacks.Has(epSq) {
			out.PushBack(CreateMove(from, epSq, EnPassant|Capture, PtNone))
		}
	}
}

func addPromotions(out *movearray.MoveArray, from, to Square, flags MoveFlag) {
	for _, pt := range [4]PieceType{Queen, Rook, Bishop, Knight} {
		out.PushBack(CreateMove(from, to, flags, pt))
	}
}

func (mg *MoveGen) generateKnightMoves(p *position.Position, side Color, out *movearray.MoveArray) {
	own := p.OccupiedBb(side)
	enemy := p.OccupiedBb(side.Flip())
	for bb := p.PiecesBb(side, Knight); bb != BbZero; {
		from := bb.PopLsb()
		targets := KnightAttacks(from) &^ own
		emitTargets(out, from, targets, enemy)
	}
}

func (mg *MoveGen) generateSliderMoves(p *position.Position, side Color, pt PieceType, out *movearray.MoveArray) {
	own := p.OccupiedBb(side)
	enemy := p.OccupiedBb(side.Flip())
	occAll := own | enemy
	for bb := p.PiecesBb(side, pt); bb != BbZero; {
		from := bb.PopLsb()
		var targets Bitboard
		switch pt {
		case Bishop:
			targets = BishopAttacks(from, occAll)
		case Rook:
			targets = RookAttacks(from, occAll)
		case Queen:
			targets = QueenAttacks(from, occAll)
		}
		targets &^= own
		emitTargets(out, from, targets, enemy)
	}
}

func (mg *MoveGen) generateKingMoves(p *position.Position, side Color, out *movearray.MoveArray) {
	own := p.OccupiedBb(side)
	enemy := p.OccupiedBb(side.Flip())
	from := p.KingSquare(side)
	targets := KingAttacks(from) &^ own
	emitTargets(out, from, targets, enemy)
	mg.generateCastling(p, side, out)
}

// generateCastling appends castling moves per the king/rook rule: the
// castling right is still held, the squares between king and rook are
// empty, and the king's start/pass-through/destination squares are not
// attacked. The rook-adjacent square in queen-side castling (b1/b8) must
// be empty but is not checked for attack.
func (mg *MoveGen) generateCastling(p *position.Position, side Color, out *movearray.MoveArray) {
	occAll := p.OccupiedAll()
	opp := side.Flip()
	if side == White {
		if p.CastlingRights().Has(CastlingWhiteOO) &&
			!occAll.Has(SqF1) && !occAll.Has(SqG1) &&
			!p.IsAttacked(SqE1, opp) && !p.IsAttacked(SqF1, opp) && !p.IsAttacked(SqG1, opp) {
			out.PushBack(CreateMove(SqE1, SqG1, KingCastle, PtNone))
		}
		if p.CastlingRights().Has(CastlingWhiteOOO) &&
			!occAll.Has(SqD1) && !occAll.Has(SqC1) && !occAll.Has(SqB1) &&
			!p.IsAttacked(SqE1, opp) && !p.IsAttacked(SqD1, opp) && !p.IsAttacked(SqC1, opp) {
			out.PushBack(CreateMove(SqE1, SqC1, QueenCastle, PtNone))
		}
		return
	}
	if p.CastlingRights().Has(CastlingBlackOO) &&
		!occAll.Has(SqF8) && !occAll.Has(SqG8) &&
		!p.IsAttacked(SqE8, opp) && !p.IsAttacked(SqF8, opp) && !p.IsAttacked(SqG8, opp) {
		out.PushBack(CreateMove(SqE8, SqG8, KingCastle, PtNone))
	}
	if p.CastlingRights().Has(CastlingBlackOOO) &&
		!occAll.Has(SqD8) && !occAll.Has(SqC8) && !occAll.Has(SqB8) &&
		!p.IsAttacked(SqE8, opp) && !p.IsAttacked(SqD8, opp) && !p.IsAttacked(SqC8, opp) {
		out.PushBack(CreateMove(SqE8, SqC8, QueenCastle, PtNone))
	}
}

func emitTargets(out *movearray.MoveArray, from Square, targets, enemy Bitboard) {
	for t := targets; t != BbZero; {
		to := t.PopLsb()
		if enemy.Has(to) {
			out.PushBack(CreateMove(from, to, Capture, PtNone))
		} else {
			out.PushBack(CreateMove(from, to, Quiet, PtNone))
		}
	}
}
