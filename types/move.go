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

package types

import "fmt"

// MoveFlag is a bit set describing the flavor of a move. Exactly one of
// Quiet/Capture/DoublePawn/KingCastle/QueenCastle/Promotion is the primary
// flavor; EnPassant always implies Capture.
type MoveFlag uint8

// Bit positions as required by the move encoding contract.
const (
	Quiet       MoveFlag = 1 << 0
	Capture     MoveFlag = 1 << 1
	DoublePawn  MoveFlag = 1 << 2
	KingCastle  MoveFlag = 1 << 3
	QueenCastle MoveFlag = 1 << 4
	EnPassant   MoveFlag = 1 << 5
	Promotion   MoveFlag = 1 << 6
)

// Move is the engine's truth about a chess move: origin and destination
// square, an optional promotion piece type, and the flag set describing its
// flavor. Algebraic rendering (String) is for humans only.
type Move struct {
	From      Square
	To        Square
	Promo     PieceType
	Flags     MoveFlag
	sortValue int32
}

// MoveNone represents the absence of a move.
var MoveNone = Move{From: SqNone, To: SqNone, Promo: PtNone, Flags: 0}

// CreateMove builds a move with the given origin, destination, flag set and
// optional promotion piece type (PtNone if not a promotion).
func CreateMove(from, to Square, flags MoveFlag, promo PieceType) Move {
	return Move{From: from, To: to, Promo: promo, Flags: flags}
}

// IsValid reports whether the move has valid squares and a coherent flag
// set: Quiet/DoublePawn/KingCastle/QueenCastle must appear alone, while
// Capture and Promotion may combine (a capturing promotion sets both) and
// EnPassant always implies Capture.
func (m Move) IsValid() bool {
	if !m.From.IsValid() || !m.To.IsValid() || m.From == m.To {
		return false
	}
	f := m.Flags
	if f == 0 {
		return false
	}
	if f&EnPassant != 0 && f&Capture == 0 {
		return false
	}
	solo := Quiet | DoublePawn | KingCastle | QueenCastle
	if f&solo != 0 {
		return f&^solo == 0 && (f&(f-1)) == 0
	}
	if f&^(Capture|Promotion|EnPassant) != 0 {
		return false
	}
	return f&(Capture|Promotion) != 0
}

// Has reports whether the given flag is set.
func (m Move) Has(f MoveFlag) bool {
	return m.Flags&f != 0
}

// IsCapture reports whether the move captures a piece (including en passant).
func (m Move) IsCapture() bool {
	return m.Flags&Capture != 0
}

// IsQuiet reports whether the move carries the Quiet flag. A double pawn
// push carries DoublePawn instead and is not reported as quiet.
func (m Move) IsQuiet() bool {
	return m.Flags&Quiet != 0
}

// IsDoublePawnPush reports whether the move is a two-square pawn push.
func (m Move) IsDoublePawnPush() bool {
	return m.Flags&DoublePawn != 0
}

// IsCastle reports whether the move is a king- or queen-side castle.
func (m Move) IsCastle() bool {
	return m.Flags&(KingCastle|QueenCastle) != 0
}

// IsKingCastle reports whether the move is a king-side castle.
func (m Move) IsKingCastle() bool {
	return m.Flags&KingCastle != 0
}

// IsQueenCastle reports whether the move is a queen-side castle.
func (m Move) IsQueenCastle() bool {
	return m.Flags&QueenCastle != 0
}

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m.Flags&EnPassant != 0
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Flags&Promotion != 0
}

// SetValue stores a move-ordering score on the move. Not part of move
// identity; used transiently by the move generator's sort step.
func (m *Move) SetValue(v int32) {
	m.sortValue = v
}

// ValueOf returns the move-ordering score previously set via SetValue.
func (m Move) ValueOf() int32 {
	return m.sortValue
}

// String renders the move in plain coordinate notation (e.g. "e2e4",
// "a7a8Q"). Algebraic rendering is for humans only.
func (m Move) String() string {
	if !m.From.IsValid() || !m.To.IsValid() {
		return "-"
	}
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += m.Promo.Char()
	}
	return s
}

// StringUci renders the move the same way String does; kept as a separate
// name for call sites that mirror the UCI "bestmove" wire format.
func (m Move) StringUci() string {
	return m.String()
}

// StrBits renders the flag set for debugging.
func (m Move) StrBits() string {
	return fmt.Sprintf("%s-%s flags=%07b promo=%s", m.From, m.To, m.Flags, m.Promo.Str())
}
