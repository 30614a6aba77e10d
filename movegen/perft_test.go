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

package movegen

import (
	"os"
	"testing"

	"github.com/pkg/profile"
	"github.com/stretchr/testify/assert"
)

const startFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// results holds the reference perft counts for the standard start position,
// depth 1 through 5.
var results = [6][6]uint64{
	// N     Nodes   Captures   EP   Checks   Mates
	{0, 1, 0, 0, 0, 0},
	{1, 20, 0, 0, 0, 0},
	{2, 400, 0, 0, 0, 0},
	{3, 8_902, 34, 0, 12, 0},
	{4, 197_281, 1_576, 0, 469, 8},
	{5, 4_865_609, 82_719, 258, 27_351, 347},
}

func Test_StandardPerft(t *testing.T) {
	const maxDepth = 5
	var perft Perft
	a := assert.New(t)

	for i := 1; i <= maxDepth; i++ {
		perft.StartPerft(startFen, i)
		a.Equal(results[i][1], perft.Nodes, "depth %d nodes", i)
		a.Equal(results[i][2], perft.CaptureCounter, "depth %d captures", i)
		a.Equal(results[i][3], perft.EnpassantCounter, "depth %d en passant", i)
		a.Equal(results[i][4], perft.CheckCounter, "depth %d checks", i)
		a.Equal(results[i][5], perft.CheckMateCounter, "depth %d mates", i)
	}
}

// BenchmarkPerft profiles the whole generate/make/unmove pipeline. Inspect
// the profile with: go tool pprof cpu.pprof
func BenchmarkPerft(b *testing.B) {
	defer profile.Start(profile.CPUProfile, profile.ProfilePath(os.TempDir()), profile.Quiet, profile.NoShutdownHook).Stop()
	var perft Perft
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		perft.StartPerft(startFen, 4)
	}
}
