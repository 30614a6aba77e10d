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

// Package movearray provides a array (slice) facade to be used with
// chess moves. It carries exactly the surface the move generator and the
// search need: append, indexed read, and the descending stable sort the
// move ordering contract requires.
package movearray

import (
	"fmt"
	"strings"

	. "chesscore/types"
)

// MoveArray represents a data structure (go slice) for Move.
type MoveArray struct {
	data []Move
}

// New creates a new move array with the given capacity and 0 elements
func New(cap int) MoveArray {
	ma := MoveArray{}
	ma.data = make([]Move, 0, cap)
	return ma
}

// Len returns the number of moves currently stored in the array
func (ma *MoveArray) Len() int {
	return len(ma.data)
}

// Cap returns the capacity of the array
func (ma *MoveArray) Cap() int {
	return cap(ma.data)
}

// PushBack appends an element at the end of the array
func (ma *MoveArray) PushBack(m Move) {
	ma.data = append(ma.data, m)
}

// At returns the move at index i in the array without removing the move
// from the array. At(0) refers to the first move, At(Len()-1) to the last.
// Index will not be checked against bounds.
func (ma *MoveArray) At(i int) Move {
	return ma.data[i]
}

// Clear removes all moves from the array, but retains the current capacity.
// This is useful when repeatedly reusing the array at high frequency to avoid
// GC during reuse.
func (ma *MoveArray) Clear() {
	ma.data = ma.data[:0]
}

// Sort sorts the moves from highest value to lowest value
// Uses InsertionSort as MoveArrays are mostly pre-sorted and small
func (ma *MoveArray) Sort() {
	l := len(ma.data)
	for i := 1; i < l; i++ {
		tmp := ma.data[i]
		j := i
		for j > 0 && tmp.ValueOf() > ma.data[j-1].ValueOf() {
			ma.data[j] = ma.data[j-1]
			j--
		}
		ma.data[j] = tmp
	}
}

// String returns a string representation of a move list
func (ma *MoveArray) String() string {
	var os strings.Builder
	size := ma.Len()
	os.WriteString(fmt.Sprintf("MoveList: [%d] { ", size))
	for i := 0; i < size; i++ {
		if i > 0 {
			os.WriteString(", ")
		}
		m := ma.At(i)
		os.WriteString(m.String())
	}
	os.WriteString(" }")
	return os.String()
}
