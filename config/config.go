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

package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// DEBUG gates the extra runtime checks/warnings that are too expensive to
// carry in a release build.
const DEBUG = false

// globally available config values
var (
	// LogLevel defines the general log level set by default or given by the command line arguments
	LogLevel = 2

	// SearchLogLevel defines the search log level set by default or given by the command line arguments
	SearchLogLevel = 2

	// TestLogLevel defines the log level used by loggers obtained through
	// GetTestLog - kept separate so tests can be noisier or quieter than
	// the normal engine run without touching LogLevel.
	TestLogLevel = 5

	// Settings is the global configuration read in from file
	Settings conf

	// ConfFile is the path of the TOML settings file read by Setup. It
	// must be set before Setup is called, otherwise the default is used.
	ConfFile = "./config.toml"

	initialized = false
)

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
}

func Setup() {
	if initialized {
		return
	}

	// read configuration file - on error report and keep the compiled-in
	// defaults
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		fmt.Println(err)
	}

	// setup log level - from config file if given, otherwise leave defaults
	setupLogLvl()

	// setup search config after reading from configuration file if necessary
	setupSearch()

	// setup eval config after reading from configuration file if necessary
	setupEval()

	initialized = true
}
