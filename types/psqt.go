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

// PosMidValue returns the pre computed positional value for a piece of the
// given color and type on the given square in the mid game.
func PosMidValue(c Color, pt PieceType, sq Square) Value {
	if c == White {
		return posMidGame[pt][63-sq]
	}
	return posMidGame[pt][sq]
}

// PosEndValue returns the pre computed positional value for a piece of the
// given color and type on the given square in the end game.
func PosEndValue(c Color, pt PieceType, sq Square) Value {
	if c == White {
		return posEndGame[pt][63-sq]
	}
	return posEndGame[pt][sq]
}

// posMidGame/posEndGame are indexed by PieceType and hold the table as seen
// from Black's perspective (rank 8 first); White looks the square up mirrored.
var (
	posMidGame = [PtLength][SqLength]Value{
		King:   kingMidGame,
		Queen:  queenMidGame,
		Rook:   rookMidGame,
		Bishop: bishopMidGame,
		Knight: knightMidGame,
		Pawn:   pawnsMidGame,
	}
	posEndGame = [PtLength][SqLength]Value{
		King:   kingEndGame,
		Queen:  queenEndGame,
		Rook:   rookEndGame,
		Bishop: bishopEndGame,
		Knight: knightEndGame,
		Pawn:   pawnsEndGame,
	}

	// @formatter:off
	pawnsMidGame = [SqLength]Value{
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 5, 5, 5, 5, 5, 5, 0,
		5, 5, 10, 30, 30, 10, 5, 5,
		0, 0, 0, 30, 30, 0, 0, 0,
		5, -5, -10, 0, 0, -10, -5, 5,
		5, 10, 10, -30, -30, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0}

	pawnsEndGame = [SqLength]Value{
		0, 0, 0, 0, 0, 0, 0, 0,
		90, 90, 90, 90, 90, 90, 90, 90,
		40, 50, 50, 60, 60, 50, 50, 40,
		20, 30, 30, 40, 40, 30, 30, 20,
		10, 10, 20, 20, 20, 10, 10, 10,
		5, 10, 10, 10, 10, 10, 10, 5,
		5, 10, 10, 10, 10, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0}

	knightMidGame = [SqLength]Value{
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-50, -25, -20, -30, -30, -20, -25, -50}

	knightEndGame = [SqLength]Value{
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -20, -30, -30, -20, -40, -50}

	bishopMidGame = [SqLength]Value{
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-20, -10, -40, -10, -10, -40, -10, -20}

	bishopEndGame = [SqLength]Value{
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20}

	rookMidGame = [SqLength]Value{
		5, 5, 5, 5, 5, 5, 5, 5,
		10, 10, 10, 10, 10, 10, 10, 10,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		-15, -10, 15, 15, 15, 15, -10, -15}

	rookEndGame = [SqLength]Value{
		5, 5, 5, 5, 5, 5, 5, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0}

	queenMidGame = [SqLength]Value{
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-5, 0, 2, 2, 2, 2, 0, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20}

	queenEndGame = [SqLength]Value{
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20}

	kingMidGame = [SqLength]Value{
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-10, -20, -20, -30, -30, -30, -20, -10,
		0, 0, -20, -20, -20, -20, 0, 0,
		20, 50, 0, -20, -20, 0, 50, 20}

	kingEndGame = [SqLength]Value{
		-50, -30, -30, -20, -20, -30, -30, -50,
		-30, -20, -10, 0, 0, -10, -20, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -30, 0, 0, 0, 0, -30, -30,
		-50, -30, -30, -30, -30, -30, -30, -50}
	// @formatter:on
)
