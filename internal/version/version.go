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

// Package version holds build-time version information. The values below are
// overwritten via -ldflags at build time, e.g.:
//   go build -ldflags "-X github.com/corvidchess/corvid/internal/version.version=1.2.3 \
//     -X github.com/corvidchess/corvid/internal/version.gitCommit=$(git rev-parse --short HEAD) \
//     -X github.com/corvidchess/corvid/internal/version.buildDate=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package version

var (
	version   = "dev"
	gitCommit = "none"
	buildDate = "unknown"
)

// Version returns a human readable version string combining the semantic
// version, the short git commit and the build date.
func Version() string {
	return version + " (" + gitCommit + ", built " + buildDate + ")"
}

// GitCommit returns the short git commit this binary was built from.
func GitCommit() string {
	return gitCommit
}

// BuildDate returns the UTC build timestamp of this binary.
func BuildDate() string {
	return buildDate
}
