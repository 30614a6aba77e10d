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

import "math/bits"

// RankLength number of ranks on a board, used to index the magic PRNG seed table.
const RankLength Rank = 8

// rook and bishop magic tables, built once by initAttacks via the Stockfish-style
// fancy-magic builder in magic.go.
var (
	rookTable    []Bitboard
	bishopTable  []Bitboard
	rookMagics   [SqLength]Magic
	bishopMagics [SqLength]Magic
)

var rookDirections = [4]Direction{North, East, South, West}
var bishopDirections = [4]Direction{Northeast, Southeast, Southwest, Northwest}

// pseudoAttacks holds attacks on an empty board for King, Knight, Bishop, Rook
// and Queen, indexed by piece type and origin square.
var pseudoAttacks [PtLength][SqLength]Bitboard

// pawnAttacksTable holds pawn capture attacks (not pushes), indexed by color
// and origin square.
var pawnAttacksTable [ColorLength][SqLength]Bitboard

// Bb returns the file's bitboard (all 8 squares of the file).
func (f File) Bb() Bitboard {
	return FileA_Bb << uint(f)
}

// Bb returns the rank's bitboard (all 8 squares of the rank).
func (r Rank) Bb() Bitboard {
	return Rank1_Bb << uint(8*r)
}

// Bb is an alias of Bitboard for the square, used by the magic bitboard builder.
func (sq Square) Bb() Bitboard {
	return sq.Bitboard()
}

// PopCount returns the number of set bits in the bitboard.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Has reports whether the square's bit is set in the bitboard.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bitboard() != 0
}

// KingAttacks returns the squares a king on sq attacks on an empty board.
func KingAttacks(sq Square) Bitboard {
	return pseudoAttacks[King][sq]
}

// KnightAttacks returns the squares a knight on sq attacks on an empty board.
func KnightAttacks(sq Square) Bitboard {
	return pseudoAttacks[Knight][sq]
}

// PawnAttacks returns the squares a pawn of color c on sq attacks (diagonal
// captures only, not the straight push).
func PawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacksTable[c][sq]
}

// RookAttacks returns rook attacks from sq given the full board occupancy,
// via the precomputed magic bitboard table.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	return AttacksBb(Rook, sq, occupied)
}

// BishopAttacks returns bishop attacks from sq given the full board occupancy.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	return AttacksBb(Bishop, sq, occupied)
}

// QueenAttacks returns queen attacks from sq given the full board occupancy.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return AttacksBb(Bishop, sq, occupied) | AttacksBb(Rook, sq, occupied)
}

// initAttacks builds the magic bitboard tables and the leaper attack tables.
// Must run once, after initBb, before any attack lookup.
func initAttacks() {
	// Generous upper bounds on the shared attack table size (Stockfish's
	// classic sizing: 0x19000 for rooks, 0x1480 for bishops).
	rookTable = make([]Bitboard, 0x19000)
	bishopTable = make([]Bitboard, 0x1480)
	initMagics(&rookTable, &rookMagics, &rookDirections)
	initMagics(&bishopTable, &bishopMagics, &bishopDirections)

	for sq := SqA1; sq <= SqH8; sq++ {
		pseudoAttacks[Bishop][sq] = AttacksBb(Bishop, sq, BbZero)
		pseudoAttacks[Rook][sq] = AttacksBb(Rook, sq, BbZero)
		pseudoAttacks[Queen][sq] = pseudoAttacks[Bishop][sq] | pseudoAttacks[Rook][sq]
		pseudoAttacks[King][sq] = leaperAttacks(sq, kingDeltas)
		pseudoAttacks[Knight][sq] = leaperAttacks(sq, knightDeltas)
		pawnAttacksTable[White][sq] = pawnAttacksFrom(White, sq)
		pawnAttacksTable[Black][sq] = pawnAttacksFrom(Black, sq)
	}
}

type fileRankDelta struct {
	df, dr int
}

var kingDeltas = []fileRankDelta{
	{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

var knightDeltas = []fileRankDelta{
	{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

// leaperAttacks computes the attack set of a single-step piece on sq given a
// fixed list of (file,rank) deltas.
func leaperAttacks(sq Square, deltas []fileRankDelta) Bitboard {
	var bb Bitboard
	f, r := int(sq.FileOf()), int(sq.RankOf())
	for _, d := range deltas {
		nf, nr := f+d.df, r+d.dr
		if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
			bb.PushSquare(SquareOf(File(nf), Rank(nr)))
		}
	}
	return bb
}

// pawnAttacksFrom computes the diagonal capture squares of a pawn of color c
// standing on sq, on an empty board.
func pawnAttacksFrom(c Color, sq Square) Bitboard {
	var bb Bitboard
	base := Direction(c.MoveDirection()) * North
	if to := sq.To(base + East); to.IsValid() {
		bb.PushSquare(to)
	}
	if to := sq.To(base + West); to.IsValid() {
		bb.PushSquare(to)
	}
	return bb
}
