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

// PieceType is a set of constants for piece types in chess. The numeric
// encoding matters: it indexes the pieces[side][6] bitboard array directly.
type PieceType int8

// Piece type constants, King=0 .. Pawn=5, with None=6 as the sentinel.
const (
	King     PieceType = iota // 0
	Queen                     // 1
	Rook                      // 2
	Bishop                    // 3
	Knight                    // 4
	Pawn                      // 5
	PtNone                    // 6
	PtLength = PtNone + 1
)

var pieceTypeToString = [PtLength]string{"King", "Queen", "Rook", "Bishop", "Knight", "Pawn", "NOPIECE"}

// Str returns a string representation of a piece type.
func (pt PieceType) Str() string {
	return pieceTypeToString[pt]
}

var pieceTypeToChar = [PtLength]string{"K", "Q", "R", "B", "N", "P", "-"}

// Char returns a single char string representation of a piece type.
func (pt PieceType) Char() string {
	return pieceTypeToChar[pt]
}

var gamePhaseValue = [PtLength]int{0, 4, 2, 1, 1, 0, 0}

// GamePhaseValue returns a value for calculating game phase by adding the
// number of pieces of this type times this value.
func (pt PieceType) GamePhaseValue() int {
	return gamePhaseValue[pt]
}

// Centipawn values used by move ordering (MVV-LVA) and the default evaluator,
// per the piece values table in the move ordering component design.
var pieceTypeValue = [PtLength]int{5000, 900, 500, 325, 300, 100, 0}

// ValueOf returns the centipawn value of the piece type.
func (pt PieceType) ValueOf() int {
	return pieceTypeValue[pt]
}

// IsValid checks if pt is a valid (non-None) piece type.
func (pt PieceType) IsValid() bool {
	return pt >= King && pt <= Pawn
}
