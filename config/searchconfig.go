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

// searchConfiguration holds the tunables for the negamax/alpha-beta
// searcher and its transposition table.
type searchConfiguration struct {
	// TtSizeMb is the transposition table size in megabytes.
	TtSizeMb int

	// MaxDepth is the hard ply limit the searcher will not exceed.
	MaxDepth int

	// UseTT toggles transposition table probing and storing.
	UseTT bool
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Search.TtSizeMb = 64
	Settings.Search.MaxDepth = 64
	Settings.Search.UseTT = true
}

// set defaults for configurations here in case a configuration
// is not available from the config file
func setupSearch() {
	if Settings.Search.TtSizeMb <= 0 {
		Settings.Search.TtSizeMb = 64
	}
	if Settings.Search.MaxDepth <= 0 {
		Settings.Search.MaxDepth = 64
	}
}
