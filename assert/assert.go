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

// Package assert provides lightweight invariant checks for conditions
// that can only be violated by a programming error, never by external
// input. Checks guarded by "if assert.DEBUG" compile away to nothing in
// release builds; unguarded calls are checked every time.
package assert

import "fmt"

// DEBUG toggles whether Assert evaluates its condition. The Go compiler
// eliminates calls guarded by "if assert.DEBUG" entirely when this is
// false, so callers should always wrap Assert in that guard rather than
// rely on Assert alone to avoid the cost of building the message.
const DEBUG = false

// Assert panics with msg (formatted like fmt.Sprintf) if test is false.
// Assert does not consult DEBUG itself: wrap a call in
// "if assert.DEBUG { ... }" to drop it from release builds, since an
// unguarded call evaluates its arguments and checks test every time.
func Assert(test bool, msg string, a ...interface{}) {
	if !test {
		panic(fmt.Sprintf(msg, a...))
	}
}
