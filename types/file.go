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

// File represents one of the eight files of a chess board.
type File int8

// Constants for each file, A..H, plus a sentinel for "no file".
const (
	FileA    File = iota // 0
	FileB                // 1
	FileC                // 2
	FileD                // 3
	FileE                // 4
	FileF                // 5
	FileG                // 6
	FileH                // 7
	FileNone             // 8
)

var fileToString = [FileNone + 1]string{"a", "b", "c", "d", "e", "f", "g", "h", "-"}

// IsValid checks if f represents a valid file on a chess board.
func (f File) IsValid() bool {
	return f >= FileA && f <= FileH
}

// Str returns a string representation of the file.
func (f File) Str() string {
	if !f.IsValid() {
		return "-"
	}
	return fileToString[f]
}

// String satisfies fmt.Stringer.
func (f File) String() string {
	return f.Str()
}
