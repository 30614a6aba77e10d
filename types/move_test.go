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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateMove(t *testing.T) {
	type args struct {
		from  Square
		to    Square
		flags MoveFlag
		promo PieceType
	}
	tests := []struct {
		name string
		args args
	}{
		{"e2e4", args{SqE2, SqE4, DoublePawn, PtNone}},
		{"e1g1 castling", args{SqE1, SqG1, KingCastle, PtNone}},
		{"a2a1Q", args{SqA2, SqA1, Promotion, Queen}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CreateMove(tt.args.from, tt.args.to, tt.args.flags, tt.args.promo)
			assert.True(t, got.IsValid(), got.StrBits())
			assert.Equal(t, tt.args.from, got.From)
			assert.Equal(t, tt.args.to, got.To)
			assert.Equal(t, tt.args.flags, got.Flags)
			assert.Equal(t, tt.args.promo, got.Promo)
		})
	}
}

func TestMove_SetValue(t *testing.T) {
	m := CreateMove(SqE2, SqE4, Quiet, PtNone)
	m.SetValue(999)
	assert.Equal(t, int32(999), m.ValueOf())

	m = CreateMove(SqA2, SqA1, Promotion, Queen)
	m.SetValue(100_000)
	assert.Equal(t, int32(100_000), m.ValueOf())
}

func TestMove_String(t *testing.T) {
	assert.Equal(t, "e2e4", CreateMove(SqE2, SqE4, DoublePawn, PtNone).String())
	assert.Equal(t, "e7e5", CreateMove(SqE7, SqE5, Quiet, PtNone).String())
	assert.Equal(t, "a2a1Q", CreateMove(SqA2, SqA1, Promotion, Queen).String())
}

func TestMove_Flavors(t *testing.T) {
	ep := CreateMove(SqE5, SqD6, Capture|EnPassant, PtNone)
	assert.True(t, ep.IsCapture())
	assert.True(t, ep.IsEnPassant())

	oo := CreateMove(SqE1, SqG1, KingCastle, PtNone)
	assert.True(t, oo.IsCastle())
	assert.True(t, oo.IsKingCastle())
	assert.False(t, oo.IsQueenCastle())
}

func TestMoveNone(t *testing.T) {
	assert.False(t, MoveNone.IsValid())
}
