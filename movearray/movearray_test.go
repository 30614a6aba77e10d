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

package movearray

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "chesscore/types"
)

var (
	e2e4 = CreateMove(SqE2, SqE4, DoublePawn, PtNone)
	d7d5 = CreateMove(SqD7, SqD5, DoublePawn, PtNone)
	e4d5 = CreateMove(SqE4, SqD5, Capture, PtNone)
	d8d5 = CreateMove(SqD8, SqD5, Capture, PtNone)
	b1c3 = CreateMove(SqB1, SqC3, Quiet, PtNone)
)

func TestNew(t *testing.T) {
	ma := New(MaxMoves)
	assert.Equal(t, 0, ma.Len())
	assert.Equal(t, MaxMoves, ma.Cap())
}

func TestMoveArray_PushBack(t *testing.T) {
	ma := New(MaxMoves)
	ma.PushBack(e2e4)
	ma.PushBack(d7d5)
	ma.PushBack(e4d5)
	ma.PushBack(d8d5)
	ma.PushBack(b1c3)

	assert.Equal(t, 5, ma.Len())
	assert.Equal(t, MaxMoves, ma.Cap())

	// pushing past the initial capacity grows the backing slice
	for i := 0; i < 1_000; i++ {
		ma.PushBack(e2e4)
	}
	assert.Equal(t, 1_005, ma.Len())
}

func TestMoveArray_At(t *testing.T) {
	ma := New(MaxMoves)
	ma.PushBack(e2e4)
	ma.PushBack(d7d5)
	ma.PushBack(b1c3)

	assert.Equal(t, e2e4, ma.At(0))
	assert.Equal(t, d7d5, ma.At(1))
	assert.Equal(t, b1c3, ma.At(ma.Len()-1))
}

func TestMoveArray_Clear(t *testing.T) {
	ma := New(MaxMoves)
	ma.PushBack(e2e4)
	ma.PushBack(d7d5)
	ma.Clear()
	assert.Equal(t, 0, ma.Len())
	assert.Equal(t, MaxMoves, ma.Cap())
}

func TestMoveArray_Sort(t *testing.T) {
	ma := New(MaxMoves)
	m1 := e2e4
	m1.SetValue(10)
	m2 := d7d5
	m2.SetValue(50)
	m3 := e4d5
	m3.SetValue(30)
	ma.PushBack(m1)
	ma.PushBack(m2)
	ma.PushBack(m3)
	ma.Sort()
	assert.Equal(t, int32(50), ma.At(0).ValueOf())
	assert.Equal(t, int32(30), ma.At(1).ValueOf())
	assert.Equal(t, int32(10), ma.At(2).ValueOf())
}

func TestMoveArray_SortIsStable(t *testing.T) {
	ma := New(MaxMoves)
	m1 := e4d5
	m1.SetValue(30)
	m2 := d8d5
	m2.SetValue(30)
	m3 := b1c3
	m3.SetValue(50)
	ma.PushBack(m1)
	ma.PushBack(m2)
	ma.PushBack(m3)
	ma.Sort()

	// equal-valued moves keep their generation order
	assert.Equal(t, b1c3.String(), ma.At(0).String())
	assert.Equal(t, e4d5.String(), ma.At(1).String())
	assert.Equal(t, d8d5.String(), ma.At(2).String())
}

func TestMoveArray_String(t *testing.T) {
	ma := New(MaxMoves)
	ma.PushBack(e2e4)
	ma.PushBack(e4d5)
	assert.Equal(t, "MoveList: [2] { e2e4, e4d5 }", ma.String())
}
