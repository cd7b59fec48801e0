// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package ignore decides which paths are exempt from license checking.
package ignore

import (
	"path/filepath"
	"slices"
	"strings"
)

// Set is a collection of path segments exempt from checking. A path matches
// the set if any of its segments equals a token exactly; tokens never match
// substrings of a segment.
type Set []string

// Default returns the ignore set used by spdxlint: version-control metadata,
// build output, the build cache, the license text itself and vendored
// third-party code.
func Default() Set {
	return Set{".git", "build", ".cache", "LICENSE.md", "third-party"}
}

// Match reports whether any segment of path equals a token of the set.
// The path is interpreted using the OS path separator.
func (s Set) Match(path string) bool {
	for seg := range strings.SplitSeq(filepath.ToSlash(path), "/") {
		if slices.Contains(s, seg) {
			return true
		}
	}
	return false
}
