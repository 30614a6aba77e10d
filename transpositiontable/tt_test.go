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

package transpositiontable

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"

	"chesscore/position"
	. "chesscore/types"
)

func TestNewTtTable_PowerOfTwoSizing(t *testing.T) {
	for _, mb := range []int{1, 2, 64} {
		tt := NewTtTable(mb)
		// capacity must be a power of two so the index mask works
		assert.Equal(t, 1, bits.OnesCount64(uint64(len(tt.data))))
		assert.Equal(t, uint64(len(tt.data)-1), tt.mask)
		assert.LessOrEqual(t, tt.sizeInByte, uint64(mb)*MB)
		assert.Equal(t, uint64(0), tt.Len())
	}
}

func TestPutAndProbe(t *testing.T) {
	tt := NewTtTable(2)
	p := position.NewPosition()
	move := CreateMove(SqE2, SqE4, DoublePawn, PtNone)

	// empty slot: miss
	_, ok := tt.Probe(p.ZobristKey())
	assert.False(t, ok)

	tt.Put(p.ZobristKey(), move, Value(42), 5, Exact)
	assert.Equal(t, uint64(1), tt.Len())

	e, ok := tt.Probe(p.ZobristKey())
	assert.True(t, ok)
	assert.Equal(t, p.ZobristKey(), e.Key)
	assert.Equal(t, move, e.Move)
	assert.Equal(t, Value(42), e.Score)
	assert.EqualValues(t, 5, e.Depth)
	assert.Equal(t, Exact, e.Flag)

	// a different position is a miss even though the table is non-empty
	p.DoMove(move)
	_, ok = tt.Probe(p.ZobristKey())
	assert.False(t, ok)
}

func TestPut_DepthPreferredReplacement(t *testing.T) {
	tt := NewTtTable(2)
	key := position.Key(0xCAFE)
	m1 := CreateMove(SqE2, SqE4, DoublePawn, PtNone)
	m2 := CreateMove(SqD2, SqD4, DoublePawn, PtNone)

	tt.Put(key, m1, Value(10), 6, Exact)

	// lower depth must not replace
	tt.Put(key, m2, Value(20), 4, Exact)
	e, _ := tt.Probe(key)
	assert.Equal(t, m1, e.Move)
	assert.EqualValues(t, 6, e.Depth)

	// equal depth overwrites
	tt.Put(key, m2, Value(20), 6, LowerBound)
	e, _ = tt.Probe(key)
	assert.Equal(t, m2, e.Move)
	assert.Equal(t, LowerBound, e.Flag)

	// higher depth overwrites
	tt.Put(key, m1, Value(30), 8, UpperBound)
	e, _ = tt.Probe(key)
	assert.Equal(t, m1, e.Move)
	assert.EqualValues(t, 8, e.Depth)
}

func TestPut_IndexCollisionIsDropped(t *testing.T) {
	tt := NewTtTable(1)
	m := CreateMove(SqE2, SqE4, DoublePawn, PtNone)

	// two different keys mapping to the same slot
	keyA := position.Key(1)
	keyB := position.Key(uint64(1) + uint64(len(tt.data)))
	assert.Equal(t, tt.hash(keyA), tt.hash(keyB))

	tt.Put(keyA, m, Value(10), 3, Exact)
	tt.Put(keyB, m, Value(20), 5, Exact)

	// the slot now belongs to keyB; probing keyA must not return keyB's entry
	_, ok := tt.Probe(keyA)
	assert.False(t, ok)
	e, ok := tt.Probe(keyB)
	assert.True(t, ok)
	assert.Equal(t, keyB, e.Key)
	assert.EqualValues(t, 1, tt.Stats.numberOfCollisions)
}

func TestClearAndHashfull(t *testing.T) {
	tt := NewTtTable(1)
	m := CreateMove(SqE2, SqE4, DoublePawn, PtNone)

	for i := 0; i < 100; i++ {
		tt.Put(position.Key(i*7919), m, Value(i), 1, Exact)
	}
	assert.Greater(t, tt.Len(), uint64(0))

	tt.Clear()
	assert.Equal(t, uint64(0), tt.Len())
	assert.Equal(t, 0, tt.Hashfull())
	_, ok := tt.Probe(position.Key(7919))
	assert.False(t, ok)
}
