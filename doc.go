// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Spdxlint verifies that every file in a directory tree declares its license
with an SPDX identifier.

It recursively walks a directory and checks that the first line of each file
contains the "SPDX-License-Identifier: " marker. If the first line is a
shebang (#!), the second line is checked instead, so executable scripts can
declare their interpreter first. The value after the colon is not validated.

Version-control metadata (.git), build output (build), the build cache
(.cache), the license text (LICENSE.md) and vendored code (third-party) are
exempt. A path is exempt when one of its segments equals an exempt name
exactly.

Usage:

	spdxlint [flags] [dir]

With no arguments, the current directory is checked. When files without the
marker are found, spdxlint prints them and exits with a nonzero status,
making it suitable as a CI gate or a pre-commit check.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/spdxlint/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
