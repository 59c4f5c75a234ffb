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

// Package logging wraps "github.com/op/go-logging" to give every other
// package in the engine a one-line way to get a preconfigured, leveled
// logger without repeating backend/formatter setup.
package logging

import (
	"log"
	"os"

	"github.com/op/go-logging"

	"github.com/corvidchess/corvid/config"
)

var (
	standardLog = logging.MustGetLogger("standard")
	searchLog   = logging.MustGetLogger("search")
	uciLog      = logging.MustGetLogger("uci")

	format = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
)

func backend(level int) logging.Backend {
	b := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(b, format))
	leveled.SetLevel(logging.Level(level), "")
	return leveled
}

// GetLog returns the standard engine logger, leveled from config.LogLevel.
func GetLog(module string) *logging.Logger {
	standardLog.SetBackend(backend(config.LogLevel))
	return standardLog
}

// GetSearchLog returns the logger used inside the search hot path,
// leveled from config.SearchLogLevel so it can be silenced independently
// of the rest of the engine during tight searches.
func GetSearchLog() *logging.Logger {
	searchLog.SetBackend(backend(config.SearchLogLevel))
	return searchLog
}

// GetUciLog returns the logger used to trace raw UCI protocol traffic.
func GetUciLog() *logging.Logger {
	uciLog.SetBackend(backend(config.LogLevel))
	return uciLog
}
