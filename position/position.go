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

// Package position holds the bitboard Board representation: per-side and
// per-piece bitboards, a square-indexed piece list, incrementally
// maintained Zobrist key, and the make/unmove history stack.
package position

import (
	"strings"

	"chesscore/assert"
	. "chesscore/types"
)

// Key is the Zobrist hash of a position.
type Key uint64

func init() {
	initZobrist()
}

// maxGameMoves bounds the preallocated history stack. Conservative - it
// exceeds any realistic line length.
const maxGameMoves = 1024

// state is the metadata snapshotted on every make_move and restored on
// unmove. Restoring state also restores the Zobrist key atomically.
type state struct {
	activeSide     Color
	castling       CastlingRights
	epSquare       Square
	halfMoveClock  int
	fullMoveNumber int
	zobristKey     Key
}

// historyEntry records one played move together with the state it
// overwrote and the piece it captured, if any, so unmove can restore the
// position exactly.
type historyEntry struct {
	move          Move
	prevState     state
	capturedPt    PieceType
	capturedColor Color
	capturedSq    Square
}

// Position is the mutable bitboard board. Create one with NewPosition or
// NewPositionFen; do not construct the zero value directly.
type Position struct {
	sides     [ColorLength]Bitboard
	pieces    [ColorLength][PtLength]Bitboard
	pieceList [SqLength]PieceType
	colorList [SqLength]Color

	st state

	history    [maxGameMoves]historyEntry
	historyLen int
}

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewPosition returns a Board seeded from an optional FEN string; the
// standard starting position is used if no FEN is given. Panics on a
// malformed FEN - use NewPositionFen to handle the error explicitly.
func NewPosition(fen ...string) *Position {
	f := StartFen
	if len(fen) > 0 && fen[0] != "" {
		f = fen[0]
	}
	p, err := NewPositionFen(f)
	if err != nil {
		panic(err)
	}
	return p
}

// NewPositionFen parses fen into a freshly constructed Board. On parse
// failure it returns a FenError and an empty Board in the reset state.
func NewPositionFen(fen string) (*Position, error) {
	p := &Position{}
	p.reset()
	if err := p.loadFen(fen); err != nil {
		p.reset()
		return p, err
	}
	return p, nil
}

// reset clears the board to an empty, valid state (no pieces, White to
// move, no castling rights, no en passant, zero clocks).
func (p *Position) reset() {
	*p = Position{}
	for sq := range p.pieceList {
		p.pieceList[sq] = PtNone
	}
	p.st.activeSide = White
	p.st.epSquare = SqNone
	p.st.fullMoveNumber = 1
	p.st.zobristKey = p.computeZobristKey()
}

// ////////////////////////////////////////////////////////////////////////
// Accessors
// ////////////////////////////////////////////////////////////////////////

// PiecesBb returns the bitboard of pieces of type pt belonging to side c.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard {
	return p.pieces[c][pt]
}

// OccupiedBb returns the occupancy bitboard of side c.
func (p *Position) OccupiedBb(c Color) Bitboard {
	return p.sides[c]
}

// OccupiedAll returns the occupancy bitboard of both sides combined.
func (p *Position) OccupiedAll() Bitboard {
	return p.sides[White] | p.sides[Black]
}

// GetPiece returns the piece type occupying sq, or PtNone if empty.
func (p *Position) GetPiece(sq Square) PieceType {
	return p.pieceList[sq]
}

// GetColor returns the color of the piece occupying sq. Only meaningful
// when GetPiece(sq) != PtNone.
func (p *Position) GetColor(sq Square) Color {
	return p.colorList[sq]
}

// KingSquare returns the square of side c's king.
func (p *Position) KingSquare(c Color) Square {
	return p.pieces[c][King].Lsb()
}

// NextPlayer returns the side to move.
func (p *Position) NextPlayer() Color {
	return p.st.activeSide
}

// Opponent returns the side not to move.
func (p *Position) Opponent() Color {
	return p.st.activeSide.Flip()
}

// EpSquare returns the current en passant target square, or SqNone.
func (p *Position) EpSquare() Square {
	return p.st.epSquare
}

// CastlingRights returns the current castling rights mask.
func (p *Position) CastlingRights() CastlingRights {
	return p.st.castling
}

// HalfMoveClock returns the number of plies since the last pawn move or
// capture, used for the 50-move rule.
func (p *Position) HalfMoveClock() int {
	return p.st.halfMoveClock
}

// FullMoveNumber returns the current full move number.
func (p *Position) FullMoveNumber() int {
	return p.st.fullMoveNumber
}

// ZobristKey returns the incrementally maintained Zobrist hash.
func (p *Position) ZobristKey() Key {
	return p.st.zobristKey
}

// Equals reports whether two positions have the same Zobrist key. This is
// hash-key equality, the same notion the repetition rule uses, not strict
// structural equality.
func (p *Position) Equals(o *Position) bool {
	return p.st.zobristKey == o.st.zobristKey
}

// Material returns the sum of piece values for side c (King excluded -
// its 5000 move-ordering weight would otherwise swamp material balance).
func (p *Position) Material(c Color) Value {
	var v Value
	for pt := Queen; pt <= Pawn; pt++ {
		v += Value(p.pieces[c][pt].PopCount() * pt.ValueOf())
	}
	return v
}

// GamePhase returns the current game phase (sum of GamePhaseValue() over
// all non-pawn, non-king pieces on the board, both sides), capped at
// GamePhaseMax.
func (p *Position) GamePhase() int {
	phase := 0
	for c := White; c <= Black; c++ {
		for pt := Queen; pt <= Knight; pt++ {
			phase += p.pieces[c][pt].PopCount() * pt.GamePhaseValue()
		}
	}
	if phase > GamePhaseMax {
		phase = GamePhaseMax
	}
	return phase
}

// PsqMidValue sums the mid-game piece-square values for all of side c's
// pieces.
func (p *Position) PsqMidValue(c Color) Value {
	var v Value
	for pt := King; pt <= Pawn; pt++ {
		for bb := p.pieces[c][pt]; bb != BbZero; {
			sq := bb.PopLsb()
			v += PosMidValue(c, pt, sq)
		}
	}
	return v
}

// PsqEndValue sums the end-game piece-square values for all of side c's
// pieces.
func (p *Position) PsqEndValue(c Color) Value {
	var v Value
	for pt := King; pt <= Pawn; pt++ {
		for bb := p.pieces[c][pt]; bb != BbZero; {
			sq := bb.PopLsb()
			v += PosEndValue(c, pt, sq)
		}
	}
	return v
}

// String renders the board as an 8x8 ASCII diagram plus a status line,
// for debugging and test failure output.
func (p *Position) String() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			sq := SquareOf(f, r)
			pt := p.pieceList[sq]
			if pt == PtNone {
				os.WriteString("|   ")
				continue
			}
			os.WriteString("| " + PieceChar(p.colorList[sq], pt) + " ")
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	os.WriteString("side=" + p.st.activeSide.Str())
	return os.String()
}

// ////////////////////////////////////////////////////////////////////////
// Board mutation primitives
// ////////////////////////////////////////////////////////////////////////

// placePiece puts a piece of type pt and color c on sq, updating the
// bitboards, piece list and Zobrist key. sq must be currently empty.
func (p *Position) placePiece(c Color, pt PieceType, sq Square) {
	if assert.DEBUG {
		assert.Assert(p.pieceList[sq] == PtNone, "placePiece onto an occupied square")
	}
	p.pieces[c][pt].PushSquare(sq)
	p.sides[c].PushSquare(sq)
	p.pieceList[sq] = pt
	p.colorList[sq] = c
	p.st.zobristKey ^= Key(zobristBase.pieces[c][pt][sq])
}

// removePiece removes whatever piece occupies sq and returns its type and
// color. sq must be occupied.
func (p *Position) removePiece(sq Square) (PieceType, Color) {
	pt := p.pieceList[sq]
	c := p.colorList[sq]
	if assert.DEBUG {
		assert.Assert(pt != PtNone, "removePiece on an empty square")
	}
	p.pieces[c][pt].PopSquare(sq)
	p.sides[c].PopSquare(sq)
	p.pieceList[sq] = PtNone
	p.st.zobristKey ^= Key(zobristBase.pieces[c][pt][sq])
	return pt, c
}

// movePiece relocates the piece on from to the (empty) square to.
func (p *Position) movePiece(from, to Square) {
	pt, c := p.removePiece(from)
	p.placePiece(c, pt, to)
}

// setEpSquare updates the en passant target, XOR-updating the Zobrist key
// for both the old and new value.
func (p *Position) setEpSquare(sq Square) {
	p.st.zobristKey ^= Key(zobristBase.enPassant[p.st.epSquare])
	p.st.epSquare = sq
	p.st.zobristKey ^= Key(zobristBase.enPassant[p.st.epSquare])
}

// clearEp clears the en passant target, if any.
func (p *Position) clearEp() {
	if p.st.epSquare != SqNone {
		p.setEpSquare(SqNone)
	}
}

// setCastling replaces the castling rights mask, XOR-updating the Zobrist
// key for both the old and new value.
func (p *Position) setCastling(cr CastlingRights) {
	p.st.zobristKey ^= Key(zobristBase.castlingRights[p.st.castling])
	p.st.castling = cr
	p.st.zobristKey ^= Key(zobristBase.castlingRights[p.st.castling])
}

// switchSide flips the active side, XOR-updating the side-to-move key.
func (p *Position) switchSide() {
	p.st.activeSide = p.st.activeSide.Flip()
	p.st.zobristKey ^= Key(zobristBase.nextPlayer)
}

// castlingRightForRookCorner returns the single castling right that a rook
// standing on sq (if any) guards, or CastlingNone if sq is not a corner.
func castlingRightForRookCorner(sq Square) CastlingRights {
	switch sq {
	case SqA1:
		return CastlingWhiteOOO
	case SqH1:
		return CastlingWhiteOO
	case SqA8:
		return CastlingBlackOOO
	case SqH8:
		return CastlingBlackOO
	default:
		return CastlingNone
	}
}

// castlingRightsForSide returns both castling rights belonging to c.
func castlingRightsForSide(c Color) CastlingRights {
	if c == White {
		return CastlingWhite
	}
	return CastlingBlack
}

// computeZobristKey recomputes the Zobrist key from scratch, used by FEN
// loading and by tests verifying incremental-update consistency.
func (p *Position) computeZobristKey() Key {
	var key Key
	for c := White; c <= Black; c++ {
		for pt := King; pt < PtNone; pt++ {
			for bb := p.pieces[c][pt]; bb != BbZero; {
				sq := bb.PopLsb()
				key ^= Key(zobristBase.pieces[c][pt][sq])
			}
		}
	}
	key ^= Key(zobristBase.castlingRights[p.st.castling])
	key ^= Key(zobristBase.enPassant[p.st.epSquare])
	if p.st.activeSide == Black {
		key ^= Key(zobristBase.nextPlayer)
	}
	return key
}

// ////////////////////////////////////////////////////////////////////////
// make/unmove
// ////////////////////////////////////////////////////////////////////////

// DoMove plays m on the board, pushing a history entry that UndoMove will
// later pop. The caller must have obtained m from the move generator (or
// otherwise know it to be legal); DoMove does not itself verify legality.
func (p *Position) DoMove(m Move) {
	if assert.DEBUG {
		assert.Assert(p.historyLen < maxGameMoves, "history stack overflow")
	}

	prevState := p.st
	side := p.st.activeSide
	entry := historyEntry{move: m, prevState: prevState, capturedPt: PtNone}

	movingPt := p.pieceList[m.From]

	switch {
	case m.IsCastle():
		p.movePiece(m.From, m.To)
		rookFrom, rookTo := castleRookSquares(m)
		p.movePiece(rookFrom, rookTo)
		p.setCastling(p.st.castling &^ castlingRightsForSide(side))
		p.st.halfMoveClock++
		p.clearEp()

	case m.IsEnPassant():
		capturedSq := epCapturedSquare(m.To, side)
		capPt, capC := p.removePiece(capturedSq)
		entry.capturedPt, entry.capturedColor, entry.capturedSq = capPt, capC, capturedSq
		p.movePiece(m.From, m.To)
		p.st.halfMoveClock = 0
		p.clearEp()

	case m.IsCapture() && m.IsPromotion():
		capPt, capC := p.removePiece(m.To)
		entry.capturedPt, entry.capturedColor, entry.capturedSq = capPt, capC, m.To
		p.removePiece(m.From)
		p.placePiece(side, m.Promo, m.To)
		if cr := castlingRightForRookCorner(m.To); cr != CastlingNone {
			p.setCastling(p.st.castling &^ cr)
		}
		p.st.halfMoveClock = 0
		p.clearEp()

	case m.IsCapture():
		capPt, capC := p.removePiece(m.To)
		entry.capturedPt, entry.capturedColor, entry.capturedSq = capPt, capC, m.To
		if cr := castlingRightForRookCorner(m.To); cr != CastlingNone {
			p.setCastling(p.st.castling &^ cr)
		}
		p.movePiece(m.From, m.To)
		p.st.halfMoveClock = 0
		p.clearEp()

	case m.IsPromotion():
		p.removePiece(m.From)
		p.placePiece(side, m.Promo, m.To)
		p.st.halfMoveClock = 0
		p.clearEp()

	case m.IsDoublePawnPush():
		p.movePiece(m.From, m.To)
		p.st.halfMoveClock = 0
		p.setEpSquare(doublePushEpSquare(m.To, side))

	default: // Quiet
		p.movePiece(m.From, m.To)
		if movingPt == Pawn {
			p.st.halfMoveClock = 0
		} else {
			p.st.halfMoveClock++
		}
		p.clearEp()
	}

	if movingPt == King {
		p.setCastling(p.st.castling &^ castlingRightsForSide(side))
	}
	if movingPt == Rook {
		if cr := castlingRightForRookCorner(m.From); cr != CastlingNone {
			p.setCastling(p.st.castling &^ cr)
		}
	}

	if side == Black {
		p.st.fullMoveNumber++
	}

	p.history[p.historyLen] = entry
	p.historyLen++

	p.switchSide()
}

// UndoMove reverses the most recent DoMove. Calling it with an empty
// history is a programming error.
func (p *Position) UndoMove() {
	if assert.DEBUG {
		assert.Assert(p.historyLen > 0, "unmove on empty history")
	}
	p.historyLen--
	entry := p.history[p.historyLen]
	m := entry.move
	side := entry.prevState.activeSide

	switch {
	case m.IsCastle():
		p.movePiece(m.To, m.From)
		rookFrom, rookTo := castleRookSquares(m)
		p.movePiece(rookTo, rookFrom)

	case m.IsEnPassant():
		p.movePiece(m.To, m.From)
		p.placePiece(entry.capturedColor, entry.capturedPt, entry.capturedSq)

	case m.IsPromotion():
		p.removePiece(m.To)
		p.placePiece(side, Pawn, m.From)
		if m.IsCapture() {
			p.placePiece(entry.capturedColor, entry.capturedPt, entry.capturedSq)
		}

	case m.IsCapture():
		p.movePiece(m.To, m.From)
		p.placePiece(entry.capturedColor, entry.capturedPt, entry.capturedSq)

	default: // Quiet, DoublePawnPush
		p.movePiece(m.To, m.From)
	}

	p.st = entry.prevState
}

// castleRookSquares returns the rook's origin and destination for a
// castling move, derived from the king's destination square.
func castleRookSquares(m Move) (rookFrom, rookTo Square) {
	switch m.To {
	case SqG1:
		return SqH1, SqF1
	case SqC1:
		return SqA1, SqD1
	case SqG8:
		return SqH8, SqF8
	case SqC8:
		return SqA8, SqD8
	default:
		panic("castleRookSquares: invalid castling destination")
	}
}

// epCapturedSquare returns the square of the pawn captured en passant,
// given the capturing pawn's destination and its color.
func epCapturedSquare(to Square, side Color) Square {
	if side == White {
		return to.To(South)
	}
	return to.To(North)
}

// doublePushEpSquare returns the en passant target square created by a
// double pawn push landing on to.
func doublePushEpSquare(to Square, side Color) Square {
	if side == White {
		return to.To(South)
	}
	return to.To(North)
}

// ////////////////////////////////////////////////////////////////////////
// Attack detection
// ////////////////////////////////////////////////////////////////////////

// IsAttacked reports whether sq is attacked by any piece of color by.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	occ := p.OccupiedAll()
	if PawnAttacks(by.Flip(), sq)&p.pieces[by][Pawn] != 0 {
		return true
	}
	if KnightAttacks(sq)&p.pieces[by][Knight] != 0 {
		return true
	}
	if KingAttacks(sq)&p.pieces[by][King] != 0 {
		return true
	}
	rookLike := p.pieces[by][Rook] | p.pieces[by][Queen]
	if RookAttacks(sq, occ)&rookLike != 0 {
		return true
	}
	bishopLike := p.pieces[by][Bishop] | p.pieces[by][Queen]
	if BishopAttacks(sq, occ)&bishopLike != 0 {
		return true
	}
	return false
}

// InCheck reports whether side c's king is currently attacked.
func (p *Position) InCheck(c Color) bool {
	return p.IsAttacked(p.KingSquare(c), c.Flip())
}

// ////////////////////////////////////////////////////////////////////////
// Draw predicates
// ////////////////////////////////////////////////////////////////////////

// DrawByFiftyMoves reports the 50-move rule (100 half-moves).
func (p *Position) DrawByFiftyMoves() bool {
	return p.st.halfMoveClock >= 100
}

// DrawByRepetition reports threefold repetition. Scanning history
// backward, counts prior positions whose Zobrist key equals the current
// one, stopping once an irreversible move (half-move clock reset to 0) is
// crossed. Returns true once that count reaches 3 - the literal reading
// of "count >= 3 prior matches", not the stricter "two prior matches plus
// the current position" interpretation; see the repetition test for the
// calibration this implies.
func (p *Position) DrawByRepetition() bool {
	count := 0
	key := p.st.zobristKey
	for i := p.historyLen - 1; i >= 0; i-- {
		e := p.history[i]
		if e.prevState.zobristKey == key {
			count++
			if count >= 3 {
				return true
			}
		}
		if e.prevState.halfMoveClock == 0 {
			break
		}
	}
	return false
}

// DrawByInsufficientMaterial reports whether neither side has mating
// material: false if any side has a Queen, Rook or Pawn; otherwise true
// for K-K, K+minor-K, or K+B-K+B with same-colored bishops.
func (p *Position) DrawByInsufficientMaterial() bool {
	for c := White; c <= Black; c++ {
		if p.pieces[c][Queen] != BbZero || p.pieces[c][Rook] != BbZero || p.pieces[c][Pawn] != BbZero {
			return false
		}
	}
	whiteMinors := p.pieces[White][Bishop].PopCount() + p.pieces[White][Knight].PopCount()
	blackMinors := p.pieces[Black][Bishop].PopCount() + p.pieces[Black][Knight].PopCount()
	if whiteMinors == 0 && blackMinors == 0 {
		return true
	}
	if whiteMinors+blackMinors == 1 {
		return true
	}
	if whiteMinors == 1 && blackMinors == 1 &&
		p.pieces[White][Bishop].PopCount() == 1 && p.pieces[Black][Bishop].PopCount() == 1 {
		whiteSq := p.pieces[White][Bishop].Lsb()
		blackSq := p.pieces[Black][Bishop].Lsb()
		whiteParity := (int(whiteSq.FileOf()) + int(whiteSq.RankOf())) % 2
		blackParity := (int(blackSq.FileOf()) + int(blackSq.RankOf())) % 2
		return whiteParity == blackParity
	}
	return false
}

// IsDraw reports whether any draw predicate currently holds.
func (p *Position) IsDraw() bool {
	return p.DrawByFiftyMoves() || p.DrawByInsufficientMaterial() || p.DrawByRepetition()
}
