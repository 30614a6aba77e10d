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

// Package logging is a helper for the "github.com/op/go-logging" package
// to reduce the lines of code within each go file to one line.
// The functions return Logger instances which are configured with
// the necessary backends and formatters.
package logging

import (
	"log"
	"os"

	"github.com/op/go-logging"

	"chesscore/config"
)

var (
	standardFormat = logging.MustStringFormatter(`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s} %{module:-10.10s}:  %{message}`)
)

// GetLog returns an instance of a standard Logger for the given module
// name, preconfigured with a os.Stdout backend and a "normal" logging
// format (e.g. time - file - level - module) at config.LogLevel.
func GetLog(name string) *logging.Logger {
	l := logging.MustGetLogger(name)
	backend1 := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	backend1Formatter := logging.NewBackendFormatter(backend1, standardFormat)
	standardBackEnd := logging.AddModuleLevel(backend1Formatter)
	standardBackEnd.SetLevel(logging.Level(config.LogLevel), "")
	l.SetBackend(standardBackEnd)
	return l
}

// GetSearchLog returns a Logger configured at config.SearchLogLevel,
// for usage in the search itself where logging volume is much higher.
func GetSearchLog(name string) *logging.Logger {
	l := logging.MustGetLogger(name)
	backend1 := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	backend1Formatter := logging.NewBackendFormatter(backend1, standardFormat)
	searchBackEnd := logging.AddModuleLevel(backend1Formatter)
	searchBackEnd.SetLevel(logging.Level(config.SearchLogLevel), "")
	l.SetBackend(searchBackEnd)
	return l
}

// GetTestLog returns a Logger configured at config.TestLogLevel,
// for usage from _test.go files.
func GetTestLog(name string) *logging.Logger {
	l := logging.MustGetLogger(name)
	backend1 := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	backend1Formatter := logging.NewBackendFormatter(backend1, standardFormat)
	testBackEnd := logging.AddModuleLevel(backend1Formatter)
	testBackEnd.SetLevel(logging.Level(config.TestLogLevel), "")
	l.SetBackend(testBackEnd)
	return l
}
