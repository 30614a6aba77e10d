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
	"fmt"
	"strconv"
	"strings"

	. "chesscore/types"
)

// FenError reports which of the six FEN fields failed to parse.
type FenError struct {
	Field  string
	Reason string
}

func (e *FenError) Error() string {
	return fmt.Sprintf("fen: bad %s field: %s", e.Field, e.Reason)
}

func fenErr(field, reason string) error {
	return &FenError{Field: field, Reason: reason}
}

// loadFen parses a FEN string into p. p is assumed freshly reset. On any
// parse failure it returns an error and leaves p partially populated; the
// caller (NewPositionFen) resets p again before surfacing the error.
func (p *Position) loadFen(fen string) error {
	fen = strings.ReplaceAll(fen, "–", "-")
	fields := strings.Fields(fen)
	switch len(fields) {
	case 4:
		fields = append(fields, "0", "1")
	case 6:
		// full form
	default:
		return fenErr("fen", fmt.Sprintf("expected 4 or 6 fields, got %d", len(fields)))
	}

	if err := p.loadFenPieces(fields[0]); err != nil {
		return err
	}
	if err := p.loadFenSide(fields[1]); err != nil {
		return err
	}
	if err := p.loadFenCastling(fields[2]); err != nil {
		return err
	}
	if err := p.loadFenEp(fields[3]); err != nil {
		return err
	}
	if err := p.loadFenHalfMove(fields[4]); err != nil {
		return err
	}
	if err := p.loadFenFullMove(fields[5]); err != nil {
		return err
	}

	// rebuild derived state from scratch, as required of a FEN seeder
	for c := White; c <= Black; c++ {
		p.sides[c] = BbZero
		for pt := King; pt < PtNone; pt++ {
			p.sides[c] |= p.pieces[c][pt]
		}
	}
	for sq := SqA1; sq <= SqH8; sq++ {
		p.pieceList[sq] = PtNone
	}
	for c := White; c <= Black; c++ {
		for pt := King; pt < PtNone; pt++ {
			for bb := p.pieces[c][pt]; bb != BbZero; {
				sq := bb.PopLsb()
				p.pieceList[sq] = pt
				p.colorList[sq] = c
			}
		}
	}
	p.st.zobristKey = p.computeZobristKey()
	return nil
}

// loadFenPieces parses the piece-placement field, rank 8 first, and places
// pieces directly into pieces[][]. sides[]/piece_list are rebuilt afterward.
func (p *Position) loadFenPieces(field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return fenErr("piece-placement", fmt.Sprintf("expected 8 ranks, got %d", len(ranks)))
	}
	for i, rankStr := range ranks {
		r := Rank(7 - i)
		f := FileA
		for _, ch := range rankStr {
			if f > FileH {
				return fenErr("piece-placement", "rank overflows 8 files")
			}
			if ch >= '1' && ch <= '8' {
				f += File(ch - '0')
				continue
			}
			c, pt, ok := PieceFromChar(string(ch))
			if !ok {
				return fenErr("piece-placement", fmt.Sprintf("invalid piece character %q", ch))
			}
			sq := SquareOf(f, r)
			p.pieces[c][pt].PushSquare(sq)
			f++
		}
		if f != FileH+1 {
			return fenErr("piece-placement", "rank does not sum to 8 files")
		}
	}
	return nil
}

func (p *Position) loadFenSide(field string) error {
	switch field {
	case "w":
		p.st.activeSide = White
	case "b":
		p.st.activeSide = Black
	default:
		return fenErr("active-side", fmt.Sprintf("expected w or b, got %q", field))
	}
	return nil
}

func (p *Position) loadFenCastling(field string) error {
	if field == "-" {
		p.st.castling = CastlingNone
		return nil
	}
	if len(field) < 1 || len(field) > 4 {
		return fenErr("castling", fmt.Sprintf("expected 1-4 characters, got %q", field))
	}
	var cr CastlingRights
	for _, ch := range field {
		switch ch {
		case 'K':
			cr |= CastlingWhiteOO
		case 'Q':
			cr |= CastlingWhiteOOO
		case 'k':
			cr |= CastlingBlackOO
		case 'q':
			cr |= CastlingBlackOOO
		default:
			return fenErr("castling", fmt.Sprintf("invalid character %q", ch))
		}
	}
	p.st.castling = cr
	return nil
}

func (p *Position) loadFenEp(field string) error {
	if field == "-" {
		p.st.epSquare = SqNone
		return nil
	}
	if len(field) != 2 {
		return fenErr("en-passant", fmt.Sprintf("expected '-' or a square, got %q", field))
	}
	sq := MakeSquare(field)
	if !sq.IsValid() || (sq.RankOf() != Rank3 && sq.RankOf() != Rank6) {
		return fenErr("en-passant", fmt.Sprintf("%q is not a rank 3 or 6 square", field))
	}
	p.st.epSquare = sq
	return nil
}

func (p *Position) loadFenHalfMove(field string) error {
	n, err := strconv.Atoi(field)
	if err != nil || n < 0 || n > 100 {
		return fenErr("half-move-clock", fmt.Sprintf("expected 0-100, got %q", field))
	}
	p.st.halfMoveClock = n
	return nil
}

func (p *Position) loadFenFullMove(field string) error {
	n, err := strconv.Atoi(field)
	if err != nil || n < 1 || n > 1024 {
		return fenErr("full-move-number", fmt.Sprintf("expected 1-1024, got %q", field))
	}
	p.st.fullMoveNumber = n
	return nil
}
