/*
 * MIT License
 *
 * Copyright (c) 2026 corvid contributors
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

// Package config holds the engine-wide, file-overridable settings:
// logging levels, search tuning constants, and evaluation weights.
// Defaults are set in each sub-file's init() and may be overridden by
// a TOML config file via Setup().
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// LogLevel is the currently active standard log level.
var LogLevel = LogLevels["info"]

// SearchLogLevel is the currently active search-hot-path log level.
var SearchLogLevel = LogLevels["warning"]

// ConfFile is the path to the TOML configuration file. Set this before
// calling Setup() to use a non-default location.
var ConfFile = "./config/config.toml"

// Settings is the global, process-wide configuration.
var Settings conf

var initialized = false

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
}

// Setup reads ConfFile (if present) into Settings, overlaying the
// defaults set by each sub-config's init(). Safe to call more than
// once; only the first call has an effect.
func Setup() {
	if initialized {
		return
	}
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		fmt.Println("config: using defaults,", err)
	}
	setupLogLvl()
	initialized = true
}
