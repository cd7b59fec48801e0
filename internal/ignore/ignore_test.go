// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package ignore

import (
	"path/filepath"
	"testing"

	"go.astrophena.name/spdxlint/testutil"
)

func TestMatch(t *testing.T) {
	cases := map[string]struct {
		path string
		want bool
	}{
		"plain file": {
			path: "main.go",
			want: false,
		},
		"git dir": {
			path: ".git/config",
			want: true,
		},
		"nested git dir": {
			path: "sub/.git/HEAD",
			want: true,
		},
		"license file": {
			path: "LICENSE.md",
			want: true,
		},
		"license file in subdir": {
			path: "docs/LICENSE.md",
			want: true,
		},
		"build dir": {
			path: "build/out.bin",
			want: true,
		},
		"cache dir": {
			path: "a/.cache/obj",
			want: true,
		},
		"third-party dir": {
			path: "third-party/lib/lib.c",
			want: true,
		},
		"segment prefix is not a match": {
			path: "thirdpartyfoo/lib.c",
			want: false,
		},
		"token inside a segment": {
			path: "my.git.backup/file",
			want: false,
		},
		"file named like build dir": {
			path: "src/build",
			want: true,
		},
		"deeply nested": {
			path: "a/b/c/d/e.go",
			want: false,
		},
		"deeply nested under third-party": {
			path: "a/third-party/c/d/e.go",
			want: true,
		},
	}

	s := Default()
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, s.Match(filepath.FromSlash(tc.path)), tc.want)
		})
	}
}

func TestMatchEmptySet(t *testing.T) {
	var s Set
	testutil.AssertEqual(t, s.Match(".git/config"), false)
}
