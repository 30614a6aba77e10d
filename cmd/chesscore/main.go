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

// The chesscore binary is a small driver around the engine core: it seeds
// a position from a FEN and either runs a perft node count or a
// fixed-depth search and prints the best move.
package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"chesscore/config"
	"chesscore/evaluator"
	"chesscore/logging"
	"chesscore/movegen"
	"chesscore/position"
	"chesscore/search"
	"chesscore/util"
)

var out = message.NewPrinter(language.German)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	fen := flag.String("fen", position.StartFen, "fen of the position to search or count")
	perftDepth := flag.Int("perft", 0, "runs perft to the given depth on the position instead of searching")
	depth := flag.Int("depth", 6, "search depth in plies")
	prof := flag.Bool("profile", false, "write a cpu profile to the working directory")
	versionInfo := flag.Bool("version", false, "prints environment info and exits")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	// the config file needs to be resolved and set before config.Setup()
	// is called, otherwise the default is used
	if resolved, err := util.ResolveFile(*configFile); err == nil {
		config.ConfFile = resolved
	}
	config.Setup()

	// command line overwrites config file
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	log := logging.GetLog("main")

	if *prof {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	if *perftDepth > 0 {
		perft := movegen.NewPerft()
		perft.StartPerftMulti(*fen, 1, *perftDepth)
		return
	}

	p, err := position.NewPositionFen(*fen)
	if err != nil {
		out.Printf("invalid fen %q: %v\n", *fen, err)
		os.Exit(1)
	}
	log.Infof("searching depth %d on %s", *depth, *fen)

	s := search.NewSearcher(evaluator.NewEvaluator())
	result := s.StartSearch(p, *depth)

	out.Println(result.String())
	out.Println(s.Statistics().String())
	out.Println(s.TtString())
}

func printVersionInfo() {
	out.Println("chesscore")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
