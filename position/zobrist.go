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

package position

import (
	. "chesscore/types"
)

// helper data structure for Zobrist IDs for chess positions. One key per
// (color, piece type, square), one per castling rights state, one per
// en passant square (plus a slot for "no en passant"), and one toggled
// whenever the side to move changes.
type zobrist struct {
	pieces         [ColorLength][PtLength][SqLength]Key
	castlingRights [CastlingLength]Key
	enPassant      [SqLength + 1]Key
	nextPlayer     Key
}

var zobristBase = zobrist{}

func initZobrist() {
	r := NewPrnG(1070372)
	for c := White; c <= Black; c++ {
		for pt := King; pt < PtNone; pt++ {
			for sq := SqA1; sq <= SqH8; sq++ {
				zobristBase.pieces[c][pt][sq] = Key(r.Rand64())
			}
		}
	}
	for cr := CastlingRights(0); cr < CastlingLength; cr++ {
		zobristBase.castlingRights[cr] = Key(r.Rand64())
	}
	for sq := SqA1; sq <= SqH8; sq++ {
		zobristBase.enPassant[sq] = Key(r.Rand64())
	}
	// en passant[SqNone] is a distinct "no en passant" key, not zero, so
	// that a position with EP unset hashes differently from one where bit
	// patterns of other fields happen to cancel out an all-zero slot.
	zobristBase.enPassant[SqNone] = Key(r.Rand64())
	zobristBase.nextPlayer = Key(r.Rand64())

	checkKeyCollisions()
}

// checkKeyCollisions verifies at build time that the drawn key set is
// collision free. A duplicate key would make two distinct board features
// cancel under XOR and silently corrupt every hash downstream.
func checkKeyCollisions() {
	seen := make(map[Key]bool)
	add := func(k Key) {
		if seen[k] {
			panic("zobrist key collision")
		}
		seen[k] = true
	}
	for c := White; c <= Black; c++ {
		for pt := King; pt < PtNone; pt++ {
			for sq := SqA1; sq <= SqH8; sq++ {
				add(zobristBase.pieces[c][pt][sq])
			}
		}
	}
	for cr := CastlingRights(0); cr < CastlingLength; cr++ {
		add(zobristBase.castlingRights[cr])
	}
	for sq := SqA1; sq <= SqNone; sq++ {
		add(zobristBase.enPassant[sq])
	}
	add(zobristBase.nextPlayer)
}
