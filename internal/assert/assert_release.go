// +build !debug

//
// Corvid - a UCI-compatible chess engine written in Go
//
// MIT License
//
// Copyright (c) 2020-2024 The Corvid Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package assert allows invariant checks to be written inline without any
// runtime cost in release builds. This file is the package's only source:
// DEBUG is false and Assert never panics. Building with -tags debug
// excludes this file and leaves the package without an implementation.
package assert

// DEBUG if this is set to "true" asserts are evaluated.
const DEBUG = false

// Assert panics with the given message if test evaluates to false.
// Go still evaluates the arguments to this call even when DEBUG is false,
// so callers must also guard the call itself with "if assert.DEBUG { ... }"
// to avoid the cost of building the message in release builds:
//  if assert.DEBUG {
//    assert.Assert(value > 0, "invalid value %s", value.String())
//  }
func Assert(test bool, msg string, a ...interface{}) {}
