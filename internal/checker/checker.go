// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package checker verifies that files in a directory tree carry an SPDX
// license identifier.
package checker

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"go.astrophena.name/spdxlint/internal/ignore"
	"go.astrophena.name/spdxlint/logger"
)

// Marker is the substring whose presence on the first non-shebang line of a
// file satisfies the check. The license expression after the colon is not
// validated.
const Marker = "SPDX-License-Identifier: "

const header = "Files missing an SPDX license identifier:"

// Checker walks a directory tree and reports files that lack the SPDX
// license identifier [Marker] on their first line. If the first line is a
// shebang, the second line is examined instead.
//
// Each invocation of [Checker.Check] is a single stateless pass: running it
// twice on an unmodified tree produces identical output and an identical
// result.
type Checker struct {
	// Root is the directory to check.
	Root string
	// Out receives the report: a header line followed by one violating
	// path per line, written only when violations exist. If nil, os.Stdout
	// is used.
	Out io.Writer
	// Ignored is the set of exempt path segments. If nil, [ignore.Default]
	// is used.
	Ignored ignore.Set
}

// Check walks the tree under Root and reports whether any checked file lacks
// the marker. Paths are reported relative to Root, in traversal order, after
// a single header line.
//
// Any error opening or reading a file is fatal for the whole run: a partial,
// silently incomplete scan would defeat the point of a presubmit check.
func (c *Checker) Check(ctx context.Context) (found bool, err error) {
	out := c.Out
	if out == nil {
		out = os.Stdout
	}
	ignored := c.Ignored
	if ignored == nil {
		ignored = ignore.Default()
	}

	info, err := os.Stat(c.Root)
	if err != nil {
		return false, err
	}
	if !info.IsDir() {
		return false, fmt.Errorf("%s: not a directory", c.Root)
	}

	err = filepath.WalkDir(c.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(c.Root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		if ignored.Match(rel) {
			logger.Debug(ctx, "ignored", slog.String("path", rel))
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		ok, err := hasMarker(path)
		if err != nil {
			return err
		}
		logger.Debug(ctx, "checked", slog.String("path", rel), slog.Bool("ok", ok))
		if ok {
			return nil
		}

		if !found {
			found = true
			fmt.Fprintln(out, header)
		}
		fmt.Fprintln(out, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("checking %s: %w", c.Root, err)
	}
	return found, nil
}

// hasMarker reports whether the first line of the file at path contains
// [Marker]. A leading shebang line is skipped, so executable scripts can
// declare their interpreter first and their license second. A file too short
// to have the examined line (empty, or shebang-only) does not contain the
// marker and is a violation.
func hasMarker(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	line, err := lineUnderTest(f)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	return strings.Contains(line, Marker), nil
}

func lineUnderTest(r io.Reader) (string, error) {
	s := bufio.NewScanner(r)
	if !s.Scan() {
		return "", s.Err()
	}
	line := s.Text()
	if strings.HasPrefix(line, "#!") {
		if !s.Scan() {
			return "", s.Err()
		}
		line = s.Text()
	}
	return line, nil
}
