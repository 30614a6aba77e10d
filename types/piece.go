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

// The board's per-square representation is a (Color, PieceType) pair rather
// than a single packed Piece value: Position keeps a pieceList of PieceType
// and a parallel colorList, while FEN rendering and parsing need the combined
// character, handled by the functions below.

var pieceCharWhite = [PtLength]string{"K", "Q", "R", "B", "N", "P", "-"}
var pieceCharBlack = [PtLength]string{"k", "q", "r", "b", "n", "p", "-"}

// PieceChar returns the FEN character for a (color, piece type) pair.
func PieceChar(c Color, pt PieceType) string {
	if pt == PtNone {
		return "-"
	}
	if c == White {
		return pieceCharWhite[pt]
	}
	return pieceCharBlack[pt]
}

// PieceFromChar parses a single FEN piece character, returning the color,
// piece type and ok=false if the character is not a valid piece letter.
func PieceFromChar(c string) (Color, PieceType, bool) {
	switch c {
	case "K":
		return White, King, true
	case "Q":
		return White, Queen, true
	case "R":
		return White, Rook, true
	case "B":
		return White, Bishop, true
	case "N":
		return White, Knight, true
	case "P":
		return White, Pawn, true
	case "k":
		return Black, King, true
	case "q":
		return Black, Queen, true
	case "r":
		return Black, Rook, true
	case "b":
		return Black, Bishop, true
	case "n":
		return Black, Knight, true
	case "p":
		return Black, Pawn, true
	default:
		return White, PtNone, false
	}
}
