//go:build debug
// +build debug

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

// Package assert is a helper to allow assert tests in a more standardized
// and simple manner. Using it makes it clear the this is an assertion
// used in non production setting.
package assert

import (
	"fmt"
)

func init() {
	fmt.Println("DEBUG MODE: asserts are active")
}

// DEBUG if this is set to "true" asserts are evaluated
const DEBUG = true

// Assert panics with the given message if the test evaluates to false.
// Call sites wrap this in "if assert.DEBUG { ... }" so the release build
// (where DEBUG is a false constant) eliminates the whole statement.
func Assert(test bool, msg string, a ...interface{}) {
	if !test {
		panic(fmt.Sprintf("Assertion failed: "+msg, a...))
	}
}
